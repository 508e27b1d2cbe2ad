//go:build tinygo

package main

import (
	"device/arm"

	"nrf52dk-go/board"
	"nrf52dk-go/drivers/gpio"
)

func main() {
	println("[blinky] boot")
	g := gpio.GPIO0
	leds := board.Selected.LEDs
	for _, led := range leds {
		g.MakeOutput(led)
	}

	for {
		for _, led := range leds {
			g.Toggle(led)
			spin(10000)
		}
	}
}

// spin burns cycles; the demo has no timer.
func spin(n int) {
	for i := 0; i < n; i++ {
		arm.Asm("nop")
	}
}
