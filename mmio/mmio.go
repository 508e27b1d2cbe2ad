// Package mmio provides typed access to memory-mapped peripheral registers.
//
// Register blocks are declared as Go structs of RW32, RO32 and WO32 fields laid
// over a fixed address. Every access goes through a volatile load or store, so
// the compiler can neither cache, reorder nor drop it. Never read or write the
// Reg field with plain Go syntax outside of host-side test harnesses.
package mmio

// Field names a contiguous bit range inside a 32-bit register.
type Field struct {
	Shift uint8
	Width uint8
}

// FieldValue is a value positioned inside a Field, ready to be written.
type FieldValue struct {
	Field Field
	Value uint32
}

// Mask returns the in-place mask of the field.
func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return 0xFFFFFFFF << f.Shift
	}
	return ((1 << f.Width) - 1) << f.Shift
}

// Val positions v inside the field. Bits of v wider than the field are dropped.
func (f Field) Val(v uint32) FieldValue {
	return FieldValue{Field: f, Value: v}
}

func (fv FieldValue) bits() uint32 {
	return (fv.Value << fv.Field.Shift) & fv.Field.Mask()
}

func (f Field) extract(word uint32) uint32 {
	return (word & f.Mask()) >> f.Shift
}

func compose(fvs []FieldValue) uint32 {
	var word uint32
	for _, fv := range fvs {
		word |= fv.bits()
	}
	return word
}

// RW32 is a read-write 32-bit register.
type RW32 struct {
	Reg uint32
}

// Get reads the whole register.
func (r *RW32) Get() uint32 { return load(&r.Reg) }

// Set writes the whole register.
func (r *RW32) Set(v uint32) { store(&r.Reg, v) }

// SetBits sets the bits in mask with a read-modify-write.
func (r *RW32) SetBits(mask uint32) { store(&r.Reg, load(&r.Reg)|mask) }

// ClearBits clears the bits in mask with a read-modify-write.
func (r *RW32) ClearBits(mask uint32) { store(&r.Reg, load(&r.Reg)&^mask) }

// HasBits reports whether any bit of mask is set.
func (r *RW32) HasBits(mask uint32) bool { return load(&r.Reg)&mask != 0 }

// ReplaceBits replaces the bits selected by mask<<pos with value<<pos.
func (r *RW32) ReplaceBits(value, mask uint32, pos uint8) {
	store(&r.Reg, load(&r.Reg)&^(mask<<pos)|(value&mask)<<pos)
}

// Modify rewrites field f with v and leaves every other bit untouched.
func (r *RW32) Modify(f Field, v uint32) {
	store(&r.Reg, load(&r.Reg)&^f.Mask()|f.Val(v).bits())
}

// Matches reads the register and compares field f against expected.
func (r *RW32) Matches(f Field, expected uint32) bool {
	return f.extract(load(&r.Reg)) == expected&(f.Mask()>>f.Shift)
}

// Read returns the value of field f.
func (r *RW32) Read(f Field) uint32 { return f.extract(load(&r.Reg)) }

// Write stores the composition of fvs; fields not named are written as zero.
func (r *RW32) Write(fvs ...FieldValue) { store(&r.Reg, compose(fvs)) }

// RO32 is a read-only 32-bit register (status, events, counters).
type RO32 struct {
	Reg uint32
}

// Get reads the whole register.
func (r *RO32) Get() uint32 { return load(&r.Reg) }

// HasBits reports whether any bit of mask is set.
func (r *RO32) HasBits(mask uint32) bool { return load(&r.Reg)&mask != 0 }

// Read returns the value of field f.
func (r *RO32) Read(f Field) uint32 { return f.extract(load(&r.Reg)) }

// Matches reads the register and compares field f against expected.
func (r *RO32) Matches(f Field, expected uint32) bool {
	return f.extract(load(&r.Reg)) == expected&(f.Mask()>>f.Shift)
}

// WO32 is a write-only 32-bit register (tasks, set/clear strobes).
type WO32 struct {
	Reg uint32
}

// Set writes the whole register.
func (r *WO32) Set(v uint32) { store(&r.Reg, v) }

// Write stores the composition of fvs; fields not named are written as zero.
func (r *WO32) Write(fvs ...FieldValue) { store(&r.Reg, compose(fvs)) }
