package clock

import (
	"unsafe"

	"nrf52dk-go/mmio"
)

// Base is the CLOCK peripheral base address on the nRF52832.
const Base uintptr = 0x4000_0000

// Registers is the CLOCK register block. Offsets are noted per field.
type Registers struct {
	TASKS_HFCLKSTART mmio.WO32 // 0x000
	TASKS_HFCLKSTOP  mmio.WO32 // 0x004
	TASKS_LFCLKSTART mmio.WO32 // 0x008
	TASKS_LFCLKSTOP  mmio.WO32 // 0x00C
	TASKS_CAL        mmio.WO32 // 0x010
	TASKS_CTSTART    mmio.WO32 // 0x014
	TASKS_CTSTOP     mmio.WO32 // 0x018
	_                [57]uint32

	// Events are latched by hardware and cleared by software writing 0.
	EVENTS_HFCLKSTARTED mmio.RW32 // 0x100
	EVENTS_LFCLKSTARTED mmio.RW32 // 0x104
	_                   uint32
	EVENTS_DONE         mmio.RW32 // 0x10C
	EVENTS_CTTO         mmio.RW32 // 0x110
	_                   [124]uint32

	INTENSET mmio.RW32 // 0x304
	INTENCLR mmio.RW32 // 0x308
	_        [63]uint32

	HFCLKRUN     mmio.RO32 // 0x408
	HFCLKSTAT    mmio.RW32 // 0x40C
	_            uint32
	LFCLKRUN     mmio.RO32 // 0x414
	LFCLKSTAT    mmio.RW32 // 0x418
	LFCLKSRCCOPY mmio.RO32 // 0x41C
	_            [62]uint32

	LFCLKSRC mmio.RW32 // 0x518
	_        [7]uint32
	CTIV     mmio.RW32 // 0x538
	_        [8]uint32

	TRACECONFIG mmio.RW32 // 0x55C
}

// Bit fields.
var (
	fieldTask  = mmio.Field{Shift: 0, Width: 1}
	fieldEvent = mmio.Field{Shift: 0, Width: 1}

	// HFCLKSTAT / LFCLKSTAT / LFCLKSRC / LFCLKSRCCOPY.
	fieldHFSrc = mmio.Field{Shift: 0, Width: 1}
	fieldLFSrc = mmio.Field{Shift: 0, Width: 2}
	fieldState = mmio.Field{Shift: 16, Width: 1}
)

const (
	triggered = 1
	running   = 1
)

func blockAt(addr uintptr) *Registers {
	return (*Registers)(unsafe.Pointer(addr))
}
