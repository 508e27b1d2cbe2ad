package gpio

import (
	"unsafe"

	"nrf52dk-go/mmio"
)

// Base is the P0 GPIO port base address on the nRF52832.
const Base uintptr = 0x5000_0000

// NumPins is the number of pins on port P0.
const NumPins = 32

// Registers is the GPIO P0 register block.
type Registers struct {
	_ [321]uint32

	OUT        mmio.RW32 // 0x504 write port
	OUTSET     mmio.WO32 // 0x508 write 1 drives the pin high
	OUTCLR     mmio.WO32 // 0x50C write 1 drives the pin low
	IN         mmio.RO32 // 0x510 read port
	DIR        mmio.RW32 // 0x514 1 = output
	DIRSET     mmio.WO32 // 0x518 write 1 makes the pin an output
	DIRCLR     mmio.WO32 // 0x51C write 1 makes the pin an input
	LATCH      mmio.RW32 // 0x520 pins that met PIN_CNF[n].SENSE
	DETECTMODE mmio.RW32 // 0x524 DETECT or LDETECT
	_          [118]uint32

	PIN_CNF [NumPins]mmio.RW32 // 0x700
}

// PIN_CNF fields. DIR is the same physical bit as the pin's DIR register bit.
var (
	fieldDir   = mmio.Field{Shift: 0, Width: 1}
	fieldInput = mmio.Field{Shift: 1, Width: 1}
	fieldPull  = mmio.Field{Shift: 2, Width: 2}
	fieldDrive = mmio.Field{Shift: 8, Width: 3}
	fieldSense = mmio.Field{Shift: 16, Width: 2}
)

func blockAt(addr uintptr) *Registers {
	return (*Registers)(unsafe.Pointer(addr))
}
