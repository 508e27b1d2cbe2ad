// Package ring is a fixed-size single-producer, single-consumer byte ring.
// It never allocates after New and is safe to use from fault context.
package ring

import (
	"sync/atomic"

	"nrf52dk-go/errcode"
)

// Ring is a single-producer, single-consumer byte ring.
type Ring struct {
	buf  []byte
	mask uint32
	rd   atomic.Uint32 // consumer index (monotonic)
	wr   atomic.Uint32 // producer index (monotonic)
}

// New returns a ring of size bytes. size must be a power of two >= 2.
func New(size int) *Ring {
	if size < 2 || (size&(size-1)) != 0 {
		panic(&errcode.E{C: errcode.InvalidParams, Op: "ring.New", Msg: "size must be power of two >= 2"})
	}
	return &Ring{buf: make([]byte, size), mask: uint32(size - 1)}
}

func (r *Ring) size() uint32 { return uint32(len(r.buf)) }

// Space is the number of bytes that can be written.
func (r *Ring) Space() int {
	return int(r.size() - (r.wr.Load() - r.rd.Load()))
}

// Available is the number of bytes that can be read.
func (r *Ring) Available() int {
	return int(r.wr.Load() - r.rd.Load())
}

// Producer side

// WriteFrom copies as much of src as fits and returns the count.
func (r *Ring) WriteFrom(src []byte) (n int) {
	if len(src) == 0 {
		return 0
	}
	rd := r.rd.Load()
	wr := r.wr.Load()
	space := int(r.size() - (wr - rd))
	if space <= 0 {
		return 0
	}
	n = min(len(src), space)

	wrIdx := wr & r.mask
	first := min(int(r.size()-wrIdx), n)
	copy(r.buf[wrIdx:wrIdx+uint32(first)], src[:first])
	if second := n - first; second > 0 {
		copy(r.buf[:second], src[first:n])
	}
	r.wr.Store(wr + uint32(n)) // release
	return n
}

// Consumer side

// ReadInto copies up to len(dst) readable bytes into dst.
func (r *Ring) ReadInto(dst []byte) (n int) {
	n = copy(dst, r.Peek())
	if n < len(dst) {
		// The readable bytes may wrap; Peek only returned the first span.
		r.Discard(n)
		m := copy(dst[n:], r.Peek())
		r.Discard(m)
		return n + m
	}
	r.Discard(n)
	return n
}

// Peek returns the longest contiguous readable span without consuming it.
// The span aliases the ring's storage and stays valid until Discard.
func (r *Ring) Peek() []byte {
	rd := r.rd.Load()
	wr := r.wr.Load() // acquire
	avail := wr - rd
	if avail == 0 {
		return nil
	}
	rdIdx := rd & r.mask
	end := min(rdIdx+avail, r.size())
	return r.buf[rdIdx:end]
}

// Discard consumes n readable bytes. n is clamped to Available.
func (r *Ring) Discard(n int) {
	if n <= 0 {
		return
	}
	rd := r.rd.Load()
	avail := int(r.wr.Load() - rd)
	r.rd.Store(rd + uint32(min(n, avail))) // release
}

// Watermarks exposes the raw monotonic indices.
func (r *Ring) Watermarks() (rd, wr uint32) {
	return r.rd.Load(), r.wr.Load()
}
