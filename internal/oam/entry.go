// Package oam encodes and decodes the attribute entries held in the
// object attribute memory of the AGB.
//
// Each entry is four halfwords laid out exactly as the hardware reads
// them, which is also the layout of OAM dumps taken from it. The first
// three describe a sprite:
//
//	attr0  0-7  Y coordinate
//	       8-9  object mode (regular, affine, hidden, affine double-size)
//	      10-11 blend mode
//	      12    mosaic
//	      13    colour depth (0 = 16 colours, 1 = 256 colours)
//	      14-15 shape
//	attr1  0-8  X coordinate (signed)
//	       9-13 affine matrix index (affine modes)
//	      12    horizontal flip (regular mode)
//	      13    vertical flip (regular mode)
//	      14-15 size
//	attr2  0-9  tile index
//	      10-11 background priority
//	      12-15 palette bank
//
// The fourth halfword belongs to the affine parameter table and is
// never written by this package.
package oam

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/thelolagemann/agbsprite/internal/types"
	"github.com/thelolagemann/agbsprite/pkg/bits"
)

// Entry is a single sprite slot, in the same layout as the hardware.
type Entry [4]uint16

// an Entry must be exactly one hardware slot wide and halfword aligned.
var (
	_ [types.EntrySize - unsafe.Sizeof(Entry{})]struct{}
	_ [unsafe.Sizeof(Entry{}) - types.EntrySize]struct{}
	_ [2 - unsafe.Alignof(Entry{})]struct{}
	_ [unsafe.Alignof(Entry{}) - 2]struct{}
)

var (
	attr0Y      = bits.Field{Shift: 0, Width: 8}
	attr0Mode   = bits.Field{Shift: 8, Width: 2}
	attr0Blend  = bits.Field{Shift: 10, Width: 2}
	attr0Shape  = bits.Field{Shift: 14, Width: 2}
	attr1X      = bits.Field{Shift: 0, Width: 9}
	attr1Affine = bits.Field{Shift: 9, Width: 5}
	attr1Size   = bits.Field{Shift: 14, Width: 2}
	attr2Tile   = bits.Field{Shift: 0, Width: 10}
	attr2Prio   = bits.Field{Shift: 10, Width: 2}
	attr2Pal    = bits.Field{Shift: 12, Width: 4}
)

const (
	attr0Mosaic = 12
	attr0Depth  = 13
	attr1FlipH  = 12
	attr1FlipV  = 13
)

// Mode is the object mode held in bits 8-9 of attr0.
type Mode uint8

const (
	ModeRegular Mode = iota
	ModeAffine
	ModeHidden
	ModeAffineDouble
)

func (m Mode) String() string {
	switch m {
	case ModeRegular:
		return "regular"
	case ModeAffine:
		return "affine"
	case ModeHidden:
		return "hidden"
	}
	return "affine-double"
}

// HiddenEntry returns the entry every slot is driven to on
// initialisation.
func HiddenEntry() Entry {
	return Entry{uint16(ModeHidden) << attr0Mode.Shift, 0, 0, 0}
}

// EntryFromBytes decodes an entry from the first 8 bytes of b.
func EntryFromBytes(b []byte) Entry {
	_ = b[types.EntrySize-1]
	return Entry{
		binary.LittleEndian.Uint16(b[0:]),
		binary.LittleEndian.Uint16(b[2:]),
		binary.LittleEndian.Uint16(b[4:]),
		binary.LittleEndian.Uint16(b[6:]),
	}
}

// Put encodes the entry into the first 8 bytes of b.
func (e Entry) Put(b []byte) {
	_ = b[types.EntrySize-1]
	binary.LittleEndian.PutUint16(b[0:], e[0])
	binary.LittleEndian.PutUint16(b[2:], e[1])
	binary.LittleEndian.PutUint16(b[4:], e[2])
	binary.LittleEndian.PutUint16(b[6:], e[3])
}

func (e Entry) Shape() Shape { return Shape(attr0Shape.Get(e[0])) }
func (e Entry) Size() Size   { return Size(attr1Size.Get(e[1])) }
func (e Entry) Mode() Mode   { return Mode(attr0Mode.Get(e[0])) }
func (e Entry) Tile() int    { return int(attr2Tile.Get(e[2])) }
func (e Entry) Palette() int { return int(attr2Pal.Get(e[2])) }

// BGPriority returns the drawing priority relative to the background
// layers, 0 being the front.
func (e Entry) BGPriority() int { return int(attr2Prio.Get(e[2])) }

// BlendMode returns the raw blend mode bits. They are preserved but
// never set by this package.
func (e Entry) BlendMode() int { return int(attr0Blend.Get(e[0])) }

func (e Entry) Mosaic() bool { return bits.Test(e[0], attr0Mosaic) }

// EightBitsPerPixel reports whether the sprite uses 256 colour tiles.
func (e Entry) EightBitsPerPixel() bool { return bits.Test(e[0], attr0Depth) }

// Hidden reports whether the hardware skips the entry.
func (e Entry) Hidden() bool { return e.Mode() == ModeHidden }

// Affine reports whether the entry is in either affine mode.
func (e Entry) Affine() bool { return bits.Val(e[0], attr0Mode.Shift) == 1 }

// AffineIndex returns the affine matrix used by the entry. The value is
// only meaningful in an affine mode.
func (e Entry) AffineIndex() int { return int(attr1Affine.Get(e[1])) }

// HorizontalFlip is only meaningful in regular mode, where bit 12 of
// attr1 is not part of the affine index.
func (e Entry) HorizontalFlip() bool { return !e.Affine() && bits.Test(e[1], attr1FlipH) }
func (e Entry) VerticalFlip() bool   { return !e.Affine() && bits.Test(e[1], attr1FlipV) }

// X returns the signed 9-bit X coordinate of the top-left corner.
func (e Entry) X() int {
	x := int(attr1X.Get(e[1]))
	if x&0x100 != 0 {
		x -= 0x200
	}
	return x
}

// Y returns the 8-bit Y coordinate of the top-left corner. The hardware
// wraps Y, so a sprite at 250 is drawn partially from the top of the screen.
func (e Entry) Y() int {
	return int(attr0Y.Get(e[0]))
}

func (e Entry) String() string {
	if e.Hidden() {
		return fmt.Sprintf("hidden tile=%d pal=%d prio=%d", e.Tile(), e.Palette(), e.BGPriority())
	}
	return fmt.Sprintf("%s %s %s x=%d y=%d tile=%d pal=%d prio=%d", e.Mode(), e.Shape(), e.Dimensions(), e.X(), e.Y(), e.Tile(), e.Palette(), e.BGPriority())
}
