// Package gpio drives the nRF52 P0 GPIO port.
//
// Every operation takes a pin index and panics if it is not below NumPins: a
// wrapped or ignored index would drive the wrong pin.
package gpio

import (
	"nrf52dk-go/errcode"
	"nrf52dk-go/x/conv"
	"nrf52dk-go/x/mathx"
)

// Pin is a P0 pin index, 0..NumPins-1.
type Pin = uint32

// Direction of a pin.
type Direction uint32

const (
	Input  Direction = 0
	Output Direction = 1
)

// Buffer connects or disconnects the input buffer.
type Buffer uint32

const (
	Connect    Buffer = 0
	Disconnect Buffer = 1
)

// Pull configuration.
type Pull uint32

const (
	PullDisabled Pull = 0
	PullDown     Pull = 1
	PullUp       Pull = 3
)

// Drive configuration: standard (S), high (H) or disconnected (D) drive for '0' then '1'.
type Drive uint32

const (
	S0S1 Drive = iota
	H0S1
	S0H1
	H0H1
	D0S1 // wired-or
	D0H1 // wired-or
	S0D1 // wired-and
	H0D1 // wired-and
)

// Sense configuration.
type Sense uint32

const (
	SenseDisabled Sense = 0
	SenseHigh     Sense = 2
	SenseLow      Sense = 3
)

// Config is the full PIN_CNF setting for one pin.
type Config struct {
	Dir   Direction
	Input Buffer
	Pull  Pull
	Drive Drive
	Sense Sense
}

// GPIO is the handle to the port register block. It holds no state besides
// the block address; callers serialize access themselves.
type GPIO struct {
	regs *Registers
}

// GPIO0 is the single P0 port.
var GPIO0 = &GPIO{regs: blockAt(Base)}

// New binds a handle to a register block not at the hardware address, such as in tests.
func New(regs *Registers) *GPIO { return &GPIO{regs: regs} }

func mustPin(op string, pin Pin) {
	if mathx.Below(pin, NumPins) {
		return
	}
	var buf [16]byte
	msg := conv.AppendUint(append(buf[:0], "pin "...), uint64(pin))
	panic(&errcode.E{C: errcode.InvalidPin, Op: op, Msg: string(msg)})
}

// MakeOutput sets the pin's direction to output and marks PIN_CNF accordingly.
func (g *GPIO) MakeOutput(pin Pin) {
	mustPin("gpio.MakeOutput", pin)
	g.regs.DIRSET.Set(1 << pin)
	g.regs.PIN_CNF[pin].Write(fieldDir.Val(uint32(Output)), fieldInput.Val(uint32(Connect)))
}

// MakeInput sets the pin's direction to input with the input buffer connected.
func (g *GPIO) MakeInput(pin Pin) {
	mustPin("gpio.MakeInput", pin)
	g.regs.DIRCLR.Set(1 << pin)
	g.regs.PIN_CNF[pin].Write(fieldDir.Val(uint32(Input)), fieldInput.Val(uint32(Connect)))
}

// Configure writes every PIN_CNF field of the pin.
func (g *GPIO) Configure(pin Pin, cfg Config) {
	mustPin("gpio.Configure", pin)
	g.regs.PIN_CNF[pin].Write(
		fieldDir.Val(uint32(cfg.Dir)),
		fieldInput.Val(uint32(cfg.Input)),
		fieldPull.Val(uint32(cfg.Pull)),
		fieldDrive.Val(uint32(cfg.Drive)),
		fieldSense.Val(uint32(cfg.Sense)),
	)
}

// Set drives the pin high through OUTSET; other pins are unaffected.
func (g *GPIO) Set(pin Pin) {
	mustPin("gpio.Set", pin)
	g.regs.OUTSET.Set(1 << pin)
}

// Clear drives the pin low through OUTCLR; other pins are unaffected.
func (g *GPIO) Clear(pin Pin) {
	mustPin("gpio.Clear", pin)
	g.regs.OUTCLR.Set(1 << pin)
}

// Toggle flips the pin's output bit. It reads OUT, flips one bit and writes OUT
// back, so it is not atomic with respect to other writers of the port.
func (g *GPIO) Toggle(pin Pin) {
	mustPin("gpio.Toggle", pin)
	g.regs.OUT.Set(g.regs.OUT.Get() ^ 1<<pin)
}

// Get reads the pin's input level.
func (g *GPIO) Get(pin Pin) bool {
	mustPin("gpio.Get", pin)
	return g.regs.IN.HasBits(1 << pin)
}
