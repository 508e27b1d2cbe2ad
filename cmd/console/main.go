//go:build tinygo

package main

import (
	"device/arm"

	"nrf52dk-go/board"
	"nrf52dk-go/drivers/clock"
	"nrf52dk-go/drivers/gpio"
	"nrf52dk-go/drivers/uart"
	"nrf52dk-go/startup"
	"nrf52dk-go/x/conv"
)

const baudRate = 115200

// Placed in RAM so EasyDMA can reach it.
var hello = []byte("HELLO")

func main() {
	println("[console] boot")

	c := clock.CLOCK
	c.ClearHighStarted()
	c.HighStart()
	if err := c.WaitHighStartedN(1 << 20); err != nil {
		println("[console] HFXO:", err.Error())
	}

	u := uart.UART0
	u.Initialize(baudRate)
	con := uart.NewConsole(u, 64)
	startup.SetIndicator(startup.Indicators(
		startup.LEDIndicator(gpio.GPIO0, board.Selected.LEDs),
		startup.ReportTo(con),
	))

	u.Transmit(hello)
	if err := u.TransmitN([]byte("\r\n"), 1<<20); err != nil {
		println("[console] tx:", err.Error())
	}

	con.Write([]byte("baud "))
	con.Write(conv.AppendUint(nil, baudRate))
	con.Write([]byte("\r\n"))

	for {
		arm.Asm("wfi")
	}
}
