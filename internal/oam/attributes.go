package oam

import "github.com/thelolagemann/agbsprite/pkg/bits"

// Setup overwrites e with a visible, regular sprite centred on (x, y).
// Every field of the first three halfwords is rebuilt, so blend, mosaic
// and flip state from a previous sprite in the slot is discarded.
//
// Arguments are not validated: values wider than their field are
// truncated.
func Setup(shape Shape, size Size, tile, palette int, eightBitsPerPixel bool, x, y, bgPriority int, e *Entry) {
	var a0, a1, a2 uint16
	a0 = attr0Shape.Put(a0, uint16(shape))
	a0 = bits.Assign(a0, attr0Depth, eightBitsPerPixel)
	a1 = attr1Size.Put(a1, uint16(size))
	a2 = attr2Tile.Put(a2, uint16(tile))
	a2 = attr2Pal.Put(a2, uint16(palette))
	a2 = attr2Prio.Put(a2, uint16(bgPriority))
	e[0], e[1], e[2] = a0, a1, a2

	// geometry is in place, the centre can now be resolved
	SetPosition(x, y, e)
}

// Dimensions returns the on-screen bounding box of the entry. Affine
// double-size entries reserve twice their base size in both axes.
func (e Entry) Dimensions() Dimensions {
	d := Lookup(e.Shape(), e.Size())
	if e.Mode() == ModeAffineDouble {
		d.Width *= 2
		d.Height *= 2
	}
	return d
}

func SetTile(tile int, e *Entry) {
	e[2] = attr2Tile.Put(e[2], uint16(tile))
}

func SetPalette(palette int, e *Entry) {
	e[2] = attr2Pal.Put(e[2], uint16(palette))
}

func SetBGPriority(priority int, e *Entry) {
	e[2] = attr2Prio.Put(e[2], uint16(priority))
}

// SetPosition moves the entry so that its bounding box is centred on
// (x, y). The corner is x - width/2, y - height/2 with truncating
// division, so odd sizes lean one pixel towards the top-left.
//
// A hidden entry is returned to regular mode first. A hidden entry may
// have been affine, so its attr1 bits 9-13 are cleared rather than read
// back as flip flags; flips must be set again after showing it. The
// bounding box is then resolved from the current shape, size and mode.
func SetPosition(x, y int, e *Entry) {
	if e.Mode() == ModeHidden {
		SetRegular(e)
	}
	d := e.Dimensions()
	e[0] = attr0Y.Put(e[0], uint16(y-d.Height/2))
	e[1] = attr1X.Put(e[1], uint16(x-d.Width/2))
}

// Hide switches the entry to the hidden object mode. Only the mode bits
// change; tile, palette, priority and position survive so that a later
// SetPosition shows the sprite again, in regular mode.
func Hide(e *Entry) {
	e[0] = attr0Mode.Put(e[0], uint16(ModeHidden))
}

// SetAffine puts the entry in affine mode using the given matrix. When
// doubleSize is set the hardware reserves twice the bounding box for
// rotation and scaling, which Dimensions reflects. The stored corner is
// not moved; call SetPosition afterwards to keep the sprite centred.
//
// The hidden mode replaces the affine one, so an affine sprite shown
// again after Hide must be re-armed with SetAffine and repositioned.
func SetAffine(matrix int, doubleSize bool, e *Entry) {
	mode := ModeAffine
	if doubleSize {
		mode = ModeAffineDouble
	}
	e[0] = attr0Mode.Put(e[0], uint16(mode))
	e[1] = attr1Affine.Put(e[1], uint16(matrix))
}

// SetRegular leaves affine mode. The matrix index bits are cleared as
// they overlap the flip flags.
func SetRegular(e *Entry) {
	e[0] = attr0Mode.Put(e[0], uint16(ModeRegular))
	e[1] = attr1Affine.Put(e[1], 0)
}

// SetHorizontalFlip has no effect on affine entries.
func SetHorizontalFlip(flip bool, e *Entry) {
	if e.Affine() {
		return
	}
	e[1] = bits.Assign(e[1], attr1FlipH, flip)
}

// SetVerticalFlip has no effect on affine entries.
func SetVerticalFlip(flip bool, e *Entry) {
	if e.Affine() {
		return
	}
	e[1] = bits.Assign(e[1], attr1FlipV, flip)
}

func SetMosaic(mosaic bool, e *Entry) {
	e[0] = bits.Assign(e[0], attr0Mosaic, mosaic)
}
