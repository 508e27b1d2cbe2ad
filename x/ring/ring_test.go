package ring

import (
	"testing"

	"nrf52dk-go/errcode"
)

// fakeIO models partial producer progress (accept up to k bytes).
type fakeIO struct{ k int }

func (f fakeIO) write(p []byte) int {
	if len(p) > f.k {
		return f.k
	}
	return len(p)
}

func TestOrderAcrossWrapWithPartialProgress(t *testing.T) {
	r := New(64)
	prod := fakeIO{k: 7}

	const N = 2000
	src := make([]byte, N)
	for i := range src {
		src[i] = byte(i)
	}

	p := src
	dst := make([]byte, N)
	off := 0
	for off < N {
		if len(p) > 0 {
			step := r.WriteFrom(p[:prod.write(p)])
			p = p[step:]
		}
		var tmp [17]byte
		n := r.ReadInto(tmp[:])
		copy(dst[off:], tmp[:n])
		off += n
	}

	for i := 0; i < N; i++ {
		if dst[i] != src[i] {
			t.Fatalf("mismatch at %d: got=%d want=%d", i, dst[i], src[i])
		}
	}
}

func TestSpaceAndAvailable(t *testing.T) {
	r := New(8)
	if r.Space() != 8 || r.Available() != 0 {
		t.Fatalf("empty ring: space=%d avail=%d", r.Space(), r.Available())
	}
	if n := r.WriteFrom([]byte("0123456789")); n != 8 {
		t.Fatalf("write into 8-byte ring -> %d", n)
	}
	if r.Space() != 0 || r.Available() != 8 {
		t.Fatalf("full ring: space=%d avail=%d", r.Space(), r.Available())
	}
	if n := r.WriteFrom([]byte("x")); n != 0 {
		t.Fatalf("write into full ring -> %d", n)
	}
}

func TestPeekStopsAtWrap(t *testing.T) {
	r := New(8)
	r.WriteFrom([]byte("abcdef"))
	r.Discard(5)
	r.WriteFrom([]byte("ghij")) // occupies 5..7 and 0

	if got := string(r.Peek()); got != "fgh" {
		t.Fatalf("first span %q", got)
	}
	r.Discard(3)
	if got := string(r.Peek()); got != "ij" {
		t.Fatalf("second span %q", got)
	}
	r.Discard(100)
	if r.Peek() != nil || r.Available() != 0 {
		t.Fatal("Discard past Available should empty the ring")
	}
	rd, wr := r.Watermarks()
	if rd != 10 || wr != 10 {
		t.Fatalf("watermarks rd=%d wr=%d", rd, wr)
	}
}

func TestReadIntoAcrossWrap(t *testing.T) {
	r := New(4)
	r.WriteFrom([]byte("abc"))
	r.Discard(2)
	r.WriteFrom([]byte("def"))

	buf := make([]byte, 8)
	if n := r.ReadInto(buf); string(buf[:n]) != "cdef" {
		t.Fatalf("got %q", buf[:n])
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, 1, 3, 100} {
		func() {
			defer func() {
				if errcode.Recovered(recover()) != errcode.InvalidParams {
					t.Fatalf("New(%d) should panic with invalid_params", size)
				}
			}()
			New(size)
		}()
	}
}
