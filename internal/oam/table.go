package oam

import "github.com/thelolagemann/agbsprite/internal/types"

// Table is the application owned shadow copy of the object attribute
// memory. Entries are mutated in place and published with a commit.
type Table [types.Slots]Entry

// clamp bounds count to the table.
func clamp(count int) int {
	if count < 0 {
		return 0
	}
	if count > types.Slots {
		return types.Slots
	}
	return count
}

// Encode writes the first count entries into dst in hardware layout and
// returns the number of bytes written. dst must hold count entries.
func (t *Table) Encode(dst []byte, count int) int {
	count = clamp(count)
	for i := 0; i < count; i++ {
		t[i].Put(dst[i*types.EntrySize:])
	}
	return count * types.EntrySize
}

// DecodeTable reads as many whole entries as src holds, up to the slot
// count, and returns the table along with the number decoded.
func DecodeTable(src []byte) (*Table, int) {
	t := &Table{}
	count := clamp(len(src) / types.EntrySize)
	for i := 0; i < count; i++ {
		t[i] = EntryFromBytes(src[i*types.EntrySize:])
	}
	return t, count
}

// HideAll hides the first count entries.
func (t *Table) HideAll(count int) {
	count = clamp(count)
	for i := 0; i < count; i++ {
		Hide(&t[i])
	}
}

// Visible calls fn for every entry in the first count slots that the
// hardware would draw.
func (t *Table) Visible(count int, fn func(slot int, e Entry)) {
	count = clamp(count)
	for i := 0; i < count; i++ {
		if !t[i].Hidden() {
			fn(i, t[i])
		}
	}
}
