// Package bits provides helpers for manipulating bits and bit ranges
// within 16-bit hardware words.
package bits

// Val returns the value of the bit at the given index.
func Val(w uint16, i uint8) uint16 {
	return (w >> i) & 1
}

// Reset resets the bit at the given index.
func Reset(w uint16, i uint8) uint16 {
	return w &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(w uint16, i uint8) uint16 {
	return w | (1 << i)
}

// Test tests the bit at the given index.
func Test(w uint16, i uint8) bool {
	return (w>>i)&1 != 0
}

// Assign sets or resets the bit at the given index depending on v.
func Assign(w uint16, i uint8, v bool) uint16 {
	if v {
		return Set(w, i)
	}
	return Reset(w, i)
}

// Field describes a contiguous range of bits inside a 16-bit word.
type Field struct {
	Shift uint8 // position of the least significant bit
	Width uint8 // number of bits
}

// Mask returns the field mask, already shifted into position.
func (f Field) Mask() uint16 {
	return (1<<f.Width - 1) << f.Shift
}

// Get extracts the field from w.
func (f Field) Get(w uint16) uint16 {
	return (w & f.Mask()) >> f.Shift
}

// Put returns w with the field replaced by v. Bits of v that do not
// fit the field are discarded, every bit outside the field is kept.
func (f Field) Put(w uint16, v uint16) uint16 {
	return w&^f.Mask() | (v<<f.Shift)&f.Mask()
}
