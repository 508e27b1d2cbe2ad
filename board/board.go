// Package board describes the wiring of the supported development boards.
// Drivers treat the descriptor as read-only input.
package board

// Board describes what the PCB exposes: indicator LEDs, buttons and the pins
// routed to the on-board USB serial bridge. Numbers are GPIO pin indices.
type Board struct {
	Name string

	// LEDs and buttons are wired active low.
	LEDs    []uint32
	Buttons []uint32
	Reset   uint32

	UART struct {
		TX, RX, CTS, RTS uint32
	}
}

// NRF52DK is the Nordic nRF52 DK (PCA10040); see the back of the board.
var NRF52DK = func() Board {
	b := Board{
		Name:    "nrf52dk",
		LEDs:    []uint32{LED1, LED2, LED3, LED4},
		Buttons: []uint32{Button1, Button2, Button3, Button4},
		Reset:   ButtonReset,
	}
	b.UART.TX = UARTTX
	b.UART.RX = UARTRX
	b.UART.CTS = UARTCTS
	b.UART.RTS = UARTRTS
	return b
}()

const (
	LED1 = 17
	LED2 = 18
	LED3 = 19
	LED4 = 20

	Button1     = 13
	Button2     = 14
	Button3     = 15
	Button4     = 16
	ButtonReset = 21

	UARTRTS = 5
	UARTTX  = 6
	UARTCTS = 7
	UARTRX  = 8
)

// Selected is the board the firmware is built for.
var Selected = NRF52DK
