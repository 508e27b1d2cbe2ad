package startup

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"nrf52dk-go/drivers/clock"
)

type parked struct{}

// parkToPanic makes Park unwind instead of spinning.
func parkToPanic(t *testing.T) {
	t.Helper()
	prev := halt
	halt = func() { panic(parked{}) }
	t.Cleanup(func() { halt = prev })
}

// parks runs f and reports whether it ended in Park.
func parks(f func()) (ok bool) {
	defer func() {
		_, ok = recover().(parked)
	}()
	f()
	return false
}

func TestRunOrder(t *testing.T) {
	parkToPanic(t)

	image := []uint32{0x11, 0x22, 0x33, guard}
	data := words(3, func(int) uint32 { return 0 })
	bss := words(5, func(int) uint32 { return 0xFFFFFFFF })
	dStart, dEnd := span(data, 1, 4)
	bStart, bEnd := span(bss, 1, 6)

	var steps []string
	s := Sequence{
		Data: Region{Src: unsafe.Pointer(&image[0]), Start: dStart, End: dEnd},
		BSS:  Region{Start: bStart, End: bEnd},
		Runtime: func() {
			if data[1] != 0x11 || data[3] != 0x33 || bss[1] != 0 || bss[5] != 0 {
				t.Error("runtime init ran before memory was initialized")
			}
			steps = append(steps, "runtime")
		},
		BringUp: func() {
			steps = append(steps, "bringup")
		},
		Main: func(argc int, argv **byte) {
			if argc != 0 || argv != nil {
				t.Errorf("main got argc=%d argv=%p", argc, argv)
			}
			steps = append(steps, "main")
		},
	}

	if !parks(s.Run) {
		t.Fatal("Run returned instead of parking")
	}
	if len(steps) != 3 || steps[0] != "runtime" || steps[1] != "bringup" || steps[2] != "main" {
		t.Fatalf("steps %v", steps)
	}
	if data[0] != guard || data[4] != guard || bss[0] != guard || bss[6] != guard {
		t.Fatal("guard words overwritten")
	}
}

func TestRunWithoutBringUpOrMain(t *testing.T) {
	parkToPanic(t)
	s := Sequence{}
	if !parks(s.Run) {
		t.Fatal("empty sequence should park")
	}
}

// crystals starts each oscillator when its start task is written.
func crystals(regs *clock.Registers, stop <-chan struct{}) {
	hf, lf := false, false
	for !hf || !lf {
		select {
		case <-stop:
			return
		default:
		}
		if !hf && atomic.CompareAndSwapUint32(&regs.TASKS_HFCLKSTART.Reg, 1, 0) {
			atomic.StoreUint32(&regs.EVENTS_HFCLKSTARTED.Reg, 1)
			hf = true
		}
		if !lf && atomic.CompareAndSwapUint32(&regs.TASKS_LFCLKSTART.Reg, 1, 0) {
			atomic.StoreUint32(&regs.EVENTS_LFCLKSTARTED.Reg, 1)
			lf = true
		}
		runtime.Gosched()
	}
}

func TestClockBringUp(t *testing.T) {
	regs := new(clock.Registers)
	c := clock.New(regs)
	stop := make(chan struct{})
	defer close(stop)
	go crystals(regs, stop)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ClockBringUp(c)()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("bring-up did not finish")
	}
	if c.HighSource() != clock.HighXTAL {
		t.Fatal("HFCLK source not XTAL")
	}
	if regs.LFCLKSRC.Get()&3 != uint32(clock.LowXTAL) {
		t.Fatalf("LFCLKSRC got %#x", regs.LFCLKSRC.Get())
	}
}

func TestClockBringUpIgnoresStaleEvent(t *testing.T) {
	regs := new(clock.Registers)
	regs.EVENTS_HFCLKSTARTED.Reg = 1
	c := clock.New(regs)

	done := make(chan struct{})
	go func() {
		defer close(done)
		ClockBringUp(c)()
	}()
	select {
	case <-done:
		t.Fatal("bring-up finished without the oscillator starting")
	case <-time.After(50 * time.Millisecond):
	}
	// Let the stuck goroutine finish so it does not outlive the test.
	go crystals(regs, nil)
	<-done
}

// bootClock stands in for a driver singleton that only holds its value once
// package initialization has run.
var bootClock *clock.Clock

func TestBringUpResolvesDriverAfterInit(t *testing.T) {
	parkToPanic(t)
	t.Cleanup(func() { bootClock = nil })

	regs := new(clock.Registers)
	stop := make(chan struct{})
	defer close(stop)
	go crystals(regs, stop)

	s := Sequence{
		Runtime: func() { bootClock = clock.New(regs) },
		BringUp: func() { StartClocks(bootClock) },
	}
	done := make(chan bool)
	go func() { done <- parks(s.Run) }()
	select {
	case ok := <-done:
		if !ok {
			t.Fatal("Run returned instead of parking")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("bring-up did not finish")
	}
	if clock.New(regs).HighSource() != clock.HighXTAL {
		t.Fatal("bring-up did not reach the clock set up during init")
	}
}
