// Package startup owns the path from reset to the application: it copies the
// initialized data image into RAM, zeroes .bss, optionally brings up the
// clocks and calls the application entry. It also keeps the vector routing
// table and the default handlers that park the core on a fault.
//
// Everything here except the crt0 glue is plain Go over unsafe.Pointer and
// runs on a host against ordinary buffers.
package startup

import (
	"unsafe"

	"nrf52dk-go/mmio"
	"nrf52dk-go/x/mathx"
)

const wordSize = 4

// Region describes one block handled during reset. Src is only used by
// CopyData. Start and End delimit the destination; End is exclusive.
type Region struct {
	Src        unsafe.Pointer
	Start, End unsafe.Pointer
}

// Words returns the number of whole words in [Start, End), or 0 when End is
// below Start.
func (r Region) Words() uintptr {
	start, end := uintptr(r.Start), uintptr(r.End)
	if end < start {
		return 0
	}
	return (end - start) / wordSize
}

// Valid reports whether the region is ordered and word aligned.
func (r Region) Valid() bool {
	start, end := uintptr(r.Start), uintptr(r.End)
	if end < start || !mathx.AlignedTo(start, wordSize) || !mathx.AlignedTo(end, wordSize) {
		return false
	}
	return r.Src == nil || mathx.AlignedTo(uintptr(r.Src), wordSize)
}

// limit is the last word boundary at or below End. A trailing partial word
// is never touched.
func (r Region) limit() uintptr {
	return uintptr(r.Start) + r.Words()*wordSize
}

// CopyData copies r.Words() words from Src to Start and returns the number
// of words written. Both pointers advance together; the loop stops strictly
// before End.
func CopyData(r Region) uintptr {
	var n uintptr
	end := r.limit()
	src := r.Src
	for dst := r.Start; uintptr(dst) < end; dst = unsafe.Add(dst, wordSize) {
		(*mmio.RW32)(dst).Set((*mmio.RW32)(src).Get())
		src = unsafe.Add(src, wordSize)
		n++
	}
	return n
}

// ZeroBSS writes zero over every word of [Start, End) and returns the number
// of words written.
func ZeroBSS(r Region) uintptr {
	var n uintptr
	end := r.limit()
	for dst := r.Start; uintptr(dst) < end; dst = unsafe.Add(dst, wordSize) {
		(*mmio.RW32)(dst).Set(0)
		n++
	}
	return n
}
