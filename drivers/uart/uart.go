// Package uart drives the nRF52 UARTE0 peripheral with EasyDMA.
//
// Transfers are blocking: the driver programs the DMA pointer and length,
// triggers the task and busy-polls the hardware events. The buffer is read or
// written by the peripheral through its address, so it must stay alive and
// unmoved until the call returns; on the nRF52 EasyDMA can only reach data RAM.
package uart

import (
	"runtime"
	"unsafe"

	"nrf52dk-go/board"
	"nrf52dk-go/errcode"
	"nrf52dk-go/mmio"
	"nrf52dk-go/x/mathx"

	"tinygo.org/x/drivers"
)

const (
	// NoPin leaves a PSEL register disconnected.
	NoPin = 0xFFFF_FFFF
	// BoardPin selects the board's pin for that line.
	BoardPin = 0xFFFF_FFFE
)

// MaxTransfer is the largest single EasyDMA transfer (8-bit MAXCNT).
const MaxTransfer = 255

// Config holds the UART line settings. A zero BaudRate means DefaultBaudRate.
// When all four pins are zero every line takes the board's pin; otherwise a
// zero pin is GPIO 0, and BoardPin defaults a single line.
type Config struct {
	BaudRate         uint32
	TX, RX, CTS, RTS uint32
	FlowControl      bool
}

// UART is the handle to the UARTE0 register block. It is not safe for
// concurrent use.
type UART struct {
	regs *Registers
}

// UART0 is the single UARTE instance.
var UART0 = &UART{regs: blockAt(Base)}

// Ensure the driver satisfies the TinyGo drivers contract at compile time.
var _ drivers.UART = (*UART)(nil)

// New binds a handle to a register block not at the hardware address, such as in tests.
func New(regs *Registers) *UART { return &UART{regs: regs} }

// Initialize routes the board's serial pins to the UART and sets the baud rate.
func (u *UART) Initialize(baudRate uint32) {
	u.Configure(Config{BaudRate: baudRate})
}

// Configure applies cfg. Pin numbers at or above 32 other than NoPin and
// BoardPin panic.
func (u *UART) Configure(cfg Config) {
	if cfg.TX == 0 && cfg.RX == 0 && cfg.CTS == 0 && cfg.RTS == 0 {
		cfg.TX, cfg.RX, cfg.CTS, cfg.RTS = BoardPin, BoardPin, BoardPin, BoardPin
	}
	pins := board.Selected.UART
	cfg.TX = orBoard(cfg.TX, pins.TX)
	cfg.RX = orBoard(cfg.RX, pins.RX)
	cfg.CTS = orBoard(cfg.CTS, pins.CTS)
	cfg.RTS = orBoard(cfg.RTS, pins.RTS)
	if cfg.BaudRate == 0 {
		cfg.BaudRate = DefaultBaudRate
	}

	setPin(&u.regs.PSEL.TXD, cfg.TX)
	setPin(&u.regs.PSEL.RXD, cfg.RX)
	setPin(&u.regs.PSEL.CTS, cfg.CTS)
	setPin(&u.regs.PSEL.RTS, cfg.RTS)
	u.SetBaudRate(cfg.BaudRate)

	hwfc := uint32(0)
	if cfg.FlowControl {
		hwfc = 1
	}
	u.regs.CONFIG.Write(fieldHWFC.Val(hwfc), fieldParity.Val(0))
}

func orBoard(pin, def uint32) uint32 {
	if pin == BoardPin {
		return def
	}
	return pin
}

func setPin(r *mmio.RW32, pin uint32) {
	if pin == NoPin {
		r.Set(NoPin)
		return
	}
	if !mathx.Below(pin, 32) {
		panic(&errcode.E{C: errcode.InvalidPin, Op: "uart.Configure"})
	}
	r.Write(fieldPin.Val(pin))
}

// SetBaudRate writes the divisor for rate, falling back to 115200.
func (u *UART) SetBaudRate(rate uint32) {
	u.regs.BAUDRATE.Set(Divisor(rate))
}

// Transmit sends buf and returns once the last byte has left the DMA engine.
// An empty buffer is a no-op. Both waits spin with no timeout.
func (u *UART) Transmit(buf []byte) {
	for len(buf) > 0 {
		n := mathx.Min(len(buf), MaxTransfer)
		u.startTX(buf[:n])
		mmio.Await(u.txStarted)
		mmio.Await(u.txEnded)
		runtime.KeepAlive(buf)
		buf = buf[n:]
	}
}

// TransmitN is Transmit with each wait bounded to limit polls. On timeout the
// transfer is stopped and errcode.Timeout returned.
func (u *UART) TransmitN(buf []byte, limit uint32) error {
	for len(buf) > 0 {
		n := mathx.Min(len(buf), MaxTransfer)
		u.startTX(buf[:n])
		if _, ok := mmio.AwaitN(u.txStarted, limit); !ok {
			return u.abortTX()
		}
		if _, ok := mmio.AwaitN(u.txEnded, limit); !ok {
			return u.abortTX()
		}
		runtime.KeepAlive(buf)
		buf = buf[n:]
	}
	return nil
}

func (u *UART) startTX(chunk []byte) {
	r := u.regs
	r.TXD.PTR.Set(uint32(uintptr(unsafe.Pointer(&chunk[0]))))
	r.TXD.MAXCNT.Write(fieldCount.Val(uint32(len(chunk))))
	r.ENABLE.Write(fieldEnable.Val(enabled))
	r.EVENTS_TXSTARTED.Set(0)
	r.EVENTS_ENDTX.Set(0)
	// Stop any transfer still in flight before starting this one.
	r.TASKS_STOPTX.Write(fieldTask.Val(triggered))
	r.TASKS_STARTTX.Write(fieldTask.Val(triggered))
}

func (u *UART) abortTX() error {
	u.regs.TASKS_STOPTX.Write(fieldTask.Val(triggered))
	return &errcode.E{C: errcode.Timeout, Op: "uart.Transmit"}
}

func (u *UART) txStarted() bool { return u.regs.EVENTS_TXSTARTED.Matches(fieldEvent, triggered) }
func (u *UART) txEnded() bool   { return u.regs.EVENTS_ENDTX.Matches(fieldEvent, triggered) }
func (u *UART) rxEnded() bool   { return u.regs.EVENTS_ENDRX.Matches(fieldEvent, triggered) }

// Receive blocks until the DMA engine has filled up to MaxTransfer bytes of
// buf and returns the number of bytes received.
func (u *UART) Receive(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	n := mathx.Min(len(buf), MaxTransfer)
	r := u.regs
	r.RXD.PTR.Set(uint32(uintptr(unsafe.Pointer(&buf[0]))))
	r.RXD.MAXCNT.Write(fieldCount.Val(uint32(n)))
	r.ENABLE.Write(fieldEnable.Val(enabled))
	r.EVENTS_ENDRX.Set(0)
	r.TASKS_STARTRX.Write(fieldTask.Val(triggered))
	mmio.Await(u.rxEnded)
	runtime.KeepAlive(buf)
	return int(r.RXD.AMOUNT.Read(fieldCount))
}

// Disable turns the peripheral off; PSEL and BAUDRATE are kept.
func (u *UART) Disable() {
	u.regs.ENABLE.Write(fieldEnable.Val(disabled))
}

// Write implements io.Writer on top of Transmit.
func (u *UART) Write(p []byte) (int, error) {
	u.Transmit(p)
	return len(p), nil
}

// Read implements io.Reader on top of Receive.
func (u *UART) Read(p []byte) (int, error) {
	return u.Receive(p), nil
}

// Buffered always reports zero: received bytes go straight to the caller's buffer.
func (u *UART) Buffered() int { return 0 }
