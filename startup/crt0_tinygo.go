//go:build tinygo && crt0

// Reset glue for firmware that owns its own startup. The stock TinyGo
// runtime also exports Reset_Handler and HardFault_Handler, so every symbol
// here carries a crt0_ prefix and the build needs a target whose linker
// script emits its own vector table naming them:
//
//	slot 0      _stack_top
//	slot 1      crt0_reset
//	slots 2-15  crt0_nmi, crt0_hardfault, crt0_memmanage, crt0_busfault,
//	            crt0_usagefault, crt0_svcall, crt0_debugmon, crt0_pendsv,
//	            crt0_systick (reserved slots 0)
//	slots 16+   crt0_default
//
// and defines _sidata, _sdata, _edata, _sbss, _ebss. The runtime's own
// .isr_vector section must not be kept, which leaves its handlers
// unreferenced.

package startup

import (
	"device/arm"
	"unsafe"

	"nrf52dk-go/board"
	"nrf52dk-go/drivers/clock"
	"nrf52dk-go/drivers/gpio"
)

//go:extern _sidata
var _sidata [0]uint32

//go:extern _sdata
var _sdata [0]uint32

//go:extern _edata
var _edata [0]uint32

//go:extern _sbss
var _sbss [0]uint32

//go:extern _ebss
var _ebss [0]uint32

//go:extern _stack_top
var _stack_top [0]uint32

// Provided by the TinyGo runtime and compiler.

//go:linkname initHeap runtime.initHeap
func initHeap()

//go:linkname initAll runtime.initAll
func initAll()

//go:linkname callMain runtime.callMain
func callMain()

// Default routes every exception taken on this core. It is nil until
// package initialization has run.
var Default *Table

func init() {
	Default = NewTable(uintptr(unsafe.Pointer(&_stack_top)), nil)
	SetIndicator(LEDIndicator(gpio.GPIO0, board.Selected.LEDs))
}

// resetHandler reads nothing but linker symbol addresses and its own stack
// until Run has initialized memory.
//
//export crt0_reset
func resetHandler() {
	disableIRQ()
	Sequence{
		Data: Region{
			Src:   unsafe.Pointer(&_sidata),
			Start: unsafe.Pointer(&_sdata),
			End:   unsafe.Pointer(&_edata),
		},
		BSS: Region{
			Start: unsafe.Pointer(&_sbss),
			End:   unsafe.Pointer(&_ebss),
		},
		Runtime: runtimeInit,
		BringUp: bringUp,
		Main:    enterMain,
	}.Run()
}

func runtimeInit() {
	initHeap()
	initAll()
}

func bringUp() { StartClocks(clock.CLOCK) }

func enterMain(int, **byte) { callMain() }

func dispatch(v Vector) {
	if Default == nil {
		Unhandled(v)
	}
	Default.Dispatch(v)
}

// active returns the exception number from IPSR.
func active() Vector {
	return Vector(arm.AsmFull("mrs {}, ipsr", nil) & 0x1FF)
}

//export crt0_nmi
func nmiHandler() { dispatch(NMI) }

//export crt0_hardfault
func hardFaultHandler() { dispatch(HardFault) }

//export crt0_memmanage
func memManageHandler() { dispatch(MemManage) }

//export crt0_busfault
func busFaultHandler() { dispatch(BusFault) }

//export crt0_usagefault
func usageFaultHandler() { dispatch(UsageFault) }

//export crt0_svcall
func svcHandler() { dispatch(SVCall) }

//export crt0_debugmon
func debugMonHandler() { dispatch(DebugMon) }

//export crt0_pendsv
func pendSVHandler() { dispatch(PendSV) }

//export crt0_systick
func sysTickHandler() { dispatch(SysTick) }

// defaultHandler fills every peripheral interrupt slot.
//
//export crt0_default
func defaultHandler() { dispatch(active()) }
