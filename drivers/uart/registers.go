package uart

import (
	"unsafe"

	"nrf52dk-go/mmio"
)

// Base is the UARTE0 base address on the nRF52832.
const Base uintptr = 0x4000_2000

// Registers is the UARTE0 register block.
type Registers struct {
	TASKS_STARTRX mmio.WO32 // 0x000
	TASKS_STOPRX  mmio.WO32 // 0x004
	TASKS_STARTTX mmio.WO32 // 0x008
	TASKS_STOPTX  mmio.WO32 // 0x00C
	_             [7]uint32
	TASKS_FLUSHRX mmio.WO32 // 0x02C
	_             [52]uint32

	// Events are latched by hardware and cleared by software writing 0.
	EVENTS_CTS       mmio.RW32 // 0x100
	EVENTS_NCTS      mmio.RW32 // 0x104
	EVENTS_RXDRDY    mmio.RW32 // 0x108
	_                uint32
	EVENTS_ENDRX     mmio.RW32 // 0x110
	_                [2]uint32
	EVENTS_TXDRDY    mmio.RW32 // 0x11C
	EVENTS_ENDTX     mmio.RW32 // 0x120
	EVENTS_ERROR     mmio.RW32 // 0x124
	_                [7]uint32
	EVENTS_RXTO      mmio.RW32 // 0x144
	_                uint32
	EVENTS_RXSTARTED mmio.RW32 // 0x14C
	EVENTS_TXSTARTED mmio.RW32 // 0x150
	_                uint32
	EVENTS_TXSTOPPED mmio.RW32 // 0x158
	_                [41]uint32

	SHORTS   mmio.RW32 // 0x200
	_        [63]uint32
	INTEN    mmio.RW32 // 0x300
	INTENSET mmio.RW32 // 0x304
	INTENCLR mmio.RW32 // 0x308
	_        [93]uint32
	ERRORSRC mmio.RW32 // 0x480
	_        [31]uint32
	ENABLE   mmio.RW32 // 0x500
	_        uint32

	PSEL struct {
		RTS mmio.RW32 // 0x508
		TXD mmio.RW32 // 0x50C
		CTS mmio.RW32 // 0x510
		RXD mmio.RW32 // 0x514
	}
	_        [3]uint32
	BAUDRATE mmio.RW32 // 0x524
	_        [3]uint32

	RXD struct {
		PTR    mmio.RW32 // 0x534
		MAXCNT mmio.RW32 // 0x538
		AMOUNT mmio.RO32 // 0x53C
	}
	_ uint32

	TXD struct {
		PTR    mmio.RW32 // 0x544
		MAXCNT mmio.RW32 // 0x548
		AMOUNT mmio.RO32 // 0x54C
	}
	_      [7]uint32
	CONFIG mmio.RW32 // 0x56C
}

var (
	fieldTask   = mmio.Field{Shift: 0, Width: 1}
	fieldEvent  = mmio.Field{Shift: 0, Width: 1}
	fieldEnable = mmio.Field{Shift: 0, Width: 4}

	// PSEL.*: pin number; bit 31 set means disconnected.
	fieldPin = mmio.Field{Shift: 0, Width: 5}

	// CONFIG.
	fieldHWFC   = mmio.Field{Shift: 0, Width: 1}
	fieldParity = mmio.Field{Shift: 1, Width: 3}

	// TXD.MAXCNT / RXD.MAXCNT are 8 bits wide on the nRF52832.
	fieldCount = mmio.Field{Shift: 0, Width: 8}
)

const (
	triggered = 1
	enabled   = 8
	disabled  = 0
)

func blockAt(addr uintptr) *Registers {
	return (*Registers)(unsafe.Pointer(addr))
}
