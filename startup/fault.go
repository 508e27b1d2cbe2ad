package startup

import (
	"io"

	"nrf52dk-go/drivers/gpio"
	"nrf52dk-go/x/conv"
)

// Indicator makes a fault observable before the core parks. It runs in
// fault context and must not allocate.
type Indicator func(v Vector)

var indicate Indicator

// SetIndicator installs ind for Unhandled. A nil ind removes it.
func SetIndicator(ind Indicator) { indicate = ind }

// Unhandled is the fallback for every vector without a handler of its own.
// It signals the fault and parks; there is no recovery path.
func Unhandled(v Vector) {
	if indicate != nil {
		indicate(v)
	}
	Park()
}

// Indicators chains several indicators in order.
func Indicators(inds ...Indicator) Indicator {
	return func(v Vector) {
		for _, ind := range inds {
			if ind != nil {
				ind(v)
			}
		}
	}
}

// LEDIndicator lights every pin in pins. The board LEDs are active low, so
// the pins are driven low.
func LEDIndicator(g *gpio.GPIO, pins []uint32) Indicator {
	return func(Vector) {
		for _, p := range pins {
			g.MakeOutput(p)
			g.Clear(p)
		}
	}
}

// ReportTo writes "fault 0x000000NN\r\n" to w. Write errors are ignored.
func ReportTo(w io.Writer) Indicator {
	return func(v Vector) {
		var line [18]byte
		b := append(line[:0], "fault 0x"...)
		b = conv.AppendHex32(b, uint32(v))
		b = append(b, '\r', '\n')
		_, _ = w.Write(b)
	}
}
