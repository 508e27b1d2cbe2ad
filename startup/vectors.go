package startup

import (
	"nrf52dk-go/errcode"
	"nrf52dk-go/x/conv"
	"nrf52dk-go/x/mathx"
)

// Vector is an exception number, the index into the Cortex-M vector table.
type Vector uint32

// Core exceptions. Slots 7-10 and 13 are reserved by the architecture.
const (
	InitialSP  Vector = 0
	Reset      Vector = 1
	NMI        Vector = 2
	HardFault  Vector = 3
	MemManage  Vector = 4
	BusFault   Vector = 5
	UsageFault Vector = 6
	SVCall     Vector = 11
	DebugMon   Vector = 12
	PendSV     Vector = 14
	SysTick    Vector = 15
)

const (
	// NumIRQs is the size of the peripheral interrupt extension on the nRF52832.
	NumIRQs = 80
	// NumVectors counts every slot, the stack pointer included.
	NumVectors = 16 + NumIRQs
)

// IRQ returns the vector of peripheral interrupt n.
func IRQ(n uint32) Vector {
	if !mathx.Below(n, NumIRQs) {
		panic(&errcode.E{C: errcode.InvalidVector, Op: "startup.IRQ", Msg: vectorMsg(Vector(n))})
	}
	return Vector(16 + n)
}

// Reserved reports whether v is an architecture-reserved core slot.
func (v Vector) Reserved() bool {
	return (v >= 7 && v <= 10) || v == 13
}

// Handler runs when its vector fires. Fault handlers must not return.
type Handler func(v Vector)

// Table routes vectors to handlers. Slot 0 holds the initial stack pointer,
// slot 1 the reset entry; every other slot is bound either to a specific
// handler or to the shared fallback.
type Table struct {
	StackTop uintptr
	slots    [NumVectors]Handler
}

// NewTable returns a table with reset in slot 1 and Unhandled everywhere
// else.
func NewTable(stackTop uintptr, reset Handler) *Table {
	t := &Table{StackTop: stackTop}
	for v := range t.slots {
		t.slots[v] = Unhandled
	}
	t.slots[InitialSP] = nil
	if reset != nil {
		t.slots[Reset] = reset
	}
	return t
}

// Bind routes v to h. A nil h restores the fallback. Slots 0 and 1 are fixed
// at build time, as are the reserved ones; binding them panics.
func (t *Table) Bind(v Vector, h Handler) {
	if v <= Reset || v.Reserved() || !mathx.Below(v, NumVectors) {
		panic(&errcode.E{C: errcode.InvalidVector, Op: "startup.Bind", Msg: vectorMsg(v)})
	}
	if h == nil {
		h = Unhandled
	}
	t.slots[v] = h
}

// Handler returns the handler bound to v, nil for slot 0 and out of range
// vectors.
func (t *Table) Handler(v Vector) Handler {
	if !mathx.Below(v, NumVectors) {
		return nil
	}
	return t.slots[v]
}

// Dispatch runs the handler for v. An unbound slot falls back to Unhandled.
func (t *Table) Dispatch(v Vector) {
	if v == InitialSP || !mathx.Below(v, NumVectors) {
		panic(&errcode.E{C: errcode.InvalidVector, Op: "startup.Dispatch", Msg: vectorMsg(v)})
	}
	h := t.slots[v]
	if h == nil {
		h = Unhandled
	}
	h(v)
}

// Complete reports whether the stack pointer is set and 8-byte aligned and
// every executable slot is bound.
func (t *Table) Complete() bool {
	if t.StackTop == 0 || !mathx.AlignedTo(t.StackTop, 8) {
		return false
	}
	for v := Reset; v < NumVectors; v++ {
		if t.slots[v] == nil {
			return false
		}
	}
	return true
}

// EnableInterrupts unmasks interrupts globally once the table is complete.
func (t *Table) EnableInterrupts() {
	if !t.Complete() {
		panic(&errcode.E{C: errcode.IncompleteVectorTable, Op: "startup.EnableInterrupts"})
	}
	enableIRQ()
}

// DisableInterrupts masks interrupts globally.
func DisableInterrupts() { disableIRQ() }

// InterruptsEnabled reports the global interrupt mask.
func InterruptsEnabled() bool { return irqEnabled() }

func vectorMsg(v Vector) string {
	var buf [16]byte
	return string(conv.AppendUint(append(buf[:0], "vector "...), uint64(v)))
}
