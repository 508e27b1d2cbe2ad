package startup

import (
	"bytes"
	"testing"

	"nrf52dk-go/board"
	"nrf52dk-go/drivers/gpio"
)

func TestReportTo(t *testing.T) {
	var out bytes.Buffer
	report := ReportTo(&out)
	report(HardFault)
	report(IRQ(79))
	if got, want := out.String(), "fault 0x00000003\r\nfault 0x0000005F\r\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestLEDIndicatorDrivesLEDsLow(t *testing.T) {
	regs := new(gpio.Registers)
	g := gpio.New(regs)

	LEDIndicator(g, board.NRF52DK.LEDs)(HardFault)

	for _, p := range board.NRF52DK.LEDs {
		if regs.PIN_CNF[p].Reg&1 != 1 {
			t.Fatalf("LED pin %d not an output", p)
		}
	}
	last := board.NRF52DK.LEDs[len(board.NRF52DK.LEDs)-1]
	if regs.OUTCLR.Reg != 1<<last || regs.OUTSET.Reg != 0 {
		t.Fatalf("OUTCLR=%#08x OUTSET=%#08x", regs.OUTCLR.Reg, regs.OUTSET.Reg)
	}
}

func TestIndicatorsRunInOrder(t *testing.T) {
	var order []string
	ind := Indicators(
		func(Vector) { order = append(order, "leds") },
		nil,
		func(Vector) { order = append(order, "uart") },
	)
	ind(BusFault)
	if len(order) != 2 || order[0] != "leds" || order[1] != "uart" {
		t.Fatalf("order %v", order)
	}
}

func TestUnhandledWithoutIndicatorParks(t *testing.T) {
	parkToPanic(t)
	SetIndicator(nil)
	if !parks(func() { Unhandled(NMI) }) {
		t.Fatal("Unhandled returned")
	}
}
