package startup

import "nrf52dk-go/drivers/clock"

// EntryPoint is the application entry. Run passes a zero argument count and
// a nil argument vector.
type EntryPoint func(argc int, argv **byte)

// Sequence is the reset path. The regions come from the linker script.
//
// Until Data and BSS are initialized no Go global holds its value, so the
// steps must be top-level functions that look globals up when called, not
// closures built before Run.
type Sequence struct {
	Data Region
	BSS  Region

	// Runtime sets up the heap and runs package initialization.
	Runtime func()
	BringUp func()
	Main    EntryPoint
}

// Run initializes memory, then runs Runtime, BringUp and Main in that
// order. It never returns: if Main does, the core parks.
func (s Sequence) Run() {
	CopyData(s.Data)
	ZeroBSS(s.BSS)
	if s.Runtime != nil {
		s.Runtime()
	}
	if s.BringUp != nil {
		s.BringUp()
	}
	if s.Main != nil {
		s.Main(0, nil)
	}
	Park()
}

// halt waits for the next event. Tests replace it to escape Park.
var halt = idle

// Park stops forward progress for good.
func Park() {
	for {
		halt()
	}
}

// StartClocks is the nRF52 DK bring-up: HFCLK from the 32 MHz crystal and
// LFCLK from the 32.768 kHz crystal. Each wait spins with no timeout; a
// board without a working crystal hangs here.
func StartClocks(c *clock.Clock) {
	c.ClearHighStarted()
	c.HighSetSource(clock.HighXTAL)
	c.HighStart()
	c.WaitHighStarted()

	c.ClearLowStarted()
	c.LowSetSource(clock.LowXTAL)
	c.LowStart()
	c.WaitLowStarted()
}

// ClockBringUp returns StartClocks bound to c, for use as Sequence.BringUp
// once the heap exists.
func ClockBringUp(c *clock.Clock) func() {
	return func() { StartClocks(c) }
}
