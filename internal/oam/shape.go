package oam

import "fmt"

// Shape selects the aspect ratio class of a sprite.
type Shape uint8

const (
	Square Shape = iota
	Wide
	Tall
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Wide:
		return "wide"
	case Tall:
		return "tall"
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

// Size selects one of the four sizes available to each Shape.
type Size uint8

const (
	Size0 Size = iota // smallest
	Size1
	Size2
	Size3 // largest
)

// Dimensions is the pixel bounding box of a sprite.
type Dimensions struct {
	Width, Height int
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// geometry is the hardware shape/size table. The fourth shape code is
// prohibited by the hardware and left zeroed.
var geometry = [4][4]Dimensions{
	Square: {{8, 8}, {16, 16}, {32, 32}, {64, 64}},
	Wide:   {{16, 8}, {32, 8}, {32, 16}, {64, 32}},
	Tall:   {{8, 16}, {8, 32}, {16, 32}, {32, 64}},
}

// Lookup returns the base dimensions of the given shape and size.
// Combinations outside the hardware table are not checked.
func Lookup(shape Shape, size Size) Dimensions {
	return geometry[shape&3][size&3]
}
