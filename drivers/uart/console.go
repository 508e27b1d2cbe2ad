package uart

import (
	"bytes"
	"io"

	"nrf52dk-go/x/ring"

	"tinygo.org/x/drivers"
)

// Console batches small writes into one port write per line. Over UART0 the
// ring storage doubles as the DMA source, which EasyDMA requires to be in
// RAM.
type Console struct {
	port drivers.UART
	buf  *ring.Ring
}

var _ drivers.UART = (*Console)(nil)

// NewConsole wraps port with a size-byte line buffer. size must be a power
// of two.
func NewConsole(port drivers.UART, size int) *Console {
	return &Console{port: port, buf: ring.New(size)}
}

// Write buffers p, writing to the port whenever the buffer fills and after
// every newline. It always consumes all of p.
func (c *Console) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		w := c.buf.WriteFrom(p[:lineEnd(p)])
		if w == 0 {
			if err := c.Flush(); err != nil {
				return n - len(p), err
			}
			continue
		}
		eol := p[w-1] == '\n'
		p = p[w:]
		if eol || c.buf.Space() == 0 {
			if err := c.Flush(); err != nil {
				return n - len(p), err
			}
		}
	}
	return n, nil
}

// lineEnd returns the length of p up to and including the first newline.
func lineEnd(p []byte) int {
	if i := bytes.IndexByte(p, '\n'); i >= 0 {
		return i + 1
	}
	return len(p)
}

// Flush writes everything buffered, one contiguous span at a time. Bytes the
// port did not take stay buffered.
func (c *Console) Flush() error {
	for span := c.buf.Peek(); len(span) > 0; span = c.buf.Peek() {
		n, err := c.port.Write(span)
		c.buf.Discard(n)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
	}
	return nil
}

// Pending is the number of bytes waiting for Flush.
func (c *Console) Pending() int { return c.buf.Available() }

// Read passes through to the port; input is not buffered.
func (c *Console) Read(p []byte) (int, error) { return c.port.Read(p) }

// Buffered reports the port's received bytes.
func (c *Console) Buffered() int { return c.port.Buffered() }
