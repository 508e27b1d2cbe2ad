// Package clock drives the nRF52 CLOCK peripheral.
//
// LFCLK, the low frequency clock, runs from one of:
//   - 32.768 kHz RC oscillator (LFRC)
//   - 32.768 kHz crystal oscillator (LFXO)
//   - 32.768 kHz synthesized from HFCLK (LFSYNT)
//
// HFCLK, the high frequency clock, runs from one of:
//   - 64 MHz internal oscillator (HFINT)
//   - 64 MHz crystal oscillator (HFXO), required by the radio, NFC and calibration
//
// Source selection must only be changed while the clock domain is stopped;
// the driver does not enforce this.
package clock

import (
	"nrf52dk-go/errcode"
	"nrf52dk-go/mmio"
)

// HighSource selects the HFCLK source.
type HighSource uint32

const (
	HighRC   HighSource = 0
	HighXTAL HighSource = 1
)

// LowSource selects the LFCLK source.
type LowSource uint32

const (
	LowRC    LowSource = 0
	LowXTAL  LowSource = 1
	LowSynth LowSource = 2
)

// Clock is the handle to the CLOCK register block. The handle is immutable
// but every call touches hardware; it is not safe for concurrent use.
type Clock struct {
	regs *Registers
}

// CLOCK is the single CLOCK peripheral.
var CLOCK = &Clock{regs: blockAt(Base)}

// New binds a handle to a register block. Firmware uses CLOCK; New exists for
// register blocks that are not at the hardware address, such as in tests.
func New(regs *Registers) *Clock { return &Clock{regs: regs} }

// HighStart triggers the HFXO start task.
func (c *Clock) HighStart() { c.regs.TASKS_HFCLKSTART.Write(fieldTask.Val(triggered)) }

// HighStop triggers the HFXO stop task.
func (c *Clock) HighStop() { c.regs.TASKS_HFCLKSTOP.Write(fieldTask.Val(triggered)) }

// HighStarted reports the latched HFCLKSTARTED event. Reading does not clear it.
func (c *Clock) HighStarted() bool { return c.regs.EVENTS_HFCLKSTARTED.Matches(fieldEvent, triggered) }

// ClearHighStarted clears the HFCLKSTARTED event.
func (c *Clock) ClearHighStarted() { c.regs.EVENTS_HFCLKSTARTED.Set(0) }

// HighSetSource writes the HFCLK source selector.
func (c *Clock) HighSetSource(src HighSource) { c.regs.HFCLKSTAT.Modify(fieldHFSrc, uint32(src)) }

// HighSource reads back the HFCLK source selector.
func (c *Clock) HighSource() HighSource { return HighSource(c.regs.HFCLKSTAT.Read(fieldHFSrc)) }

// HighRunning reports the live HFCLK state, distinct from the started event.
func (c *Clock) HighRunning() bool { return c.regs.HFCLKSTAT.Matches(fieldState, running) }

// LowStart triggers the LFCLK start task.
func (c *Clock) LowStart() { c.regs.TASKS_LFCLKSTART.Write(fieldTask.Val(triggered)) }

// LowStop triggers the LFCLK stop task.
func (c *Clock) LowStop() { c.regs.TASKS_LFCLKSTOP.Write(fieldTask.Val(triggered)) }

// LowStarted reports the latched LFCLKSTARTED event. Reading does not clear it.
func (c *Clock) LowStarted() bool { return c.regs.EVENTS_LFCLKSTARTED.Matches(fieldEvent, triggered) }

// ClearLowStarted clears the LFCLKSTARTED event.
func (c *Clock) ClearLowStarted() { c.regs.EVENTS_LFCLKSTARTED.Set(0) }

// LowSetSource writes the LFCLK source selector.
func (c *Clock) LowSetSource(src LowSource) { c.regs.LFCLKSRC.Modify(fieldLFSrc, uint32(src)) }

// LowSource reports the source LFCLK was started from.
func (c *Clock) LowSource() LowSource { return LowSource(c.regs.LFCLKSRCCOPY.Read(fieldLFSrc)) }

// LowRunning reports the live LFCLK state.
func (c *Clock) LowRunning() bool { return c.regs.LFCLKSTAT.Matches(fieldState, running) }

// WaitHighStarted busy-polls the HFCLKSTARTED event. It never times out: an
// oscillator that does not start (for example a missing crystal) hangs here.
func (c *Clock) WaitHighStarted() { mmio.Await(c.HighStarted) }

// WaitLowStarted busy-polls the LFCLKSTARTED event with no timeout.
func (c *Clock) WaitLowStarted() { mmio.Await(c.LowStarted) }

// WaitHighStartedN polls the HFCLKSTARTED event at most limit times and
// returns errcode.Timeout if it never rises.
func (c *Clock) WaitHighStartedN(limit uint32) error {
	if _, ok := mmio.AwaitN(c.HighStarted, limit); !ok {
		return &errcode.E{C: errcode.Timeout, Op: "clock.WaitHighStarted"}
	}
	return nil
}

// WaitLowStartedN is the bounded form of WaitLowStarted.
func (c *Clock) WaitLowStartedN(limit uint32) error {
	if _, ok := mmio.AwaitN(c.LowStarted, limit); !ok {
		return &errcode.E{C: errcode.Timeout, Op: "clock.WaitLowStarted"}
	}
	return nil
}
