//go:build tinygo

package startup

import "device/arm"

func enableIRQ()  { arm.Asm("cpsie i") }
func disableIRQ() { arm.Asm("cpsid i") }

// PRIMASK bit 0 set means interrupts are masked.
func irqEnabled() bool { return arm.AsmFull("mrs {}, primask", nil)&1 == 0 }

func idle() { arm.Asm("wfi") }
