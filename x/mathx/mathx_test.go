package mathx

import "testing"

func TestBelow(t *testing.T) {
	if !Below(uint32(31), 32) || Below(uint32(32), 32) || Below(uint32(0xFFFFFFFF), 32) {
		t.Fatal("Below failed at the boundary")
	}
}

func TestMin(t *testing.T) {
	if Min(600, 255) != 255 || Min(90, 255) != 90 || Min(uint32(3), 3) != 3 {
		t.Fatal("Min failed")
	}
}

func TestAlignedTo(t *testing.T) {
	for v, want := range map[uintptr]bool{0x2000_0000: true, 0x2000_0010: true, 0x2000_0012: false, 0x2000_0014: true} {
		if got := AlignedTo(v, 4); got != want {
			t.Fatalf("AlignedTo(%#x, 4) got %v", v, got)
		}
	}
	if AlignedTo(uintptr(0x2001_0004), 8) {
		t.Fatal("0x20010004 is not 8-byte aligned")
	}
}
