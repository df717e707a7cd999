// Package preview draws the layout described by a sprite table, for
// inspecting dumps and snapshots without a real display.
package preview

import (
	"image"
	"image/color"

	"github.com/thelolagemann/agbsprite/internal/oam"
	"github.com/thelolagemann/agbsprite/internal/types"
	"golang.org/x/image/draw"
)

// Background is the colour behind every sprite.
var Background = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}

// bankColours gives each of the 16 palette banks a distinct outline.
var bankColours = [16]color.RGBA{
	{0xFF, 0xFF, 0xFF, 0xFF}, {0xFF, 0x40, 0x40, 0xFF}, {0x40, 0xFF, 0x40, 0xFF}, {0x40, 0x80, 0xFF, 0xFF},
	{0xFF, 0xFF, 0x40, 0xFF}, {0xFF, 0x40, 0xFF, 0xFF}, {0x40, 0xFF, 0xFF, 0xFF}, {0xFF, 0xA0, 0x40, 0xFF},
	{0xA0, 0x40, 0xFF, 0xFF}, {0x80, 0xFF, 0xA0, 0xFF}, {0xFF, 0x80, 0xA0, 0xFF}, {0xA0, 0xA0, 0xA0, 0xFF},
	{0x80, 0x40, 0x20, 0xFF}, {0x20, 0x80, 0x40, 0xFF}, {0x40, 0x20, 0x80, 0xFF}, {0xC0, 0xC0, 0x60, 0xFF},
}

// BankColour returns the outline colour used for a palette bank.
func BankColour(bank int) color.RGBA {
	return bankColours[bank&15]
}

// Bounds returns the on-screen rectangle covered by e, applying the
// hardware's coordinate wrapping: Y wraps at 256, so an entry whose box
// crosses the bottom of that range is drawn from the top of the screen.
func Bounds(e oam.Entry) image.Rectangle {
	d := e.Dimensions()
	x, y := e.X(), e.Y()
	if y+d.Height > 256 {
		y -= 256
	}
	return image.Rect(x, y, x+d.Width, y+d.Height)
}

// Render outlines every visible sprite among the first count entries.
// Lower slots have priority on hardware, so they are drawn last.
func Render(table *oam.Table, count int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, types.ScreenWidth, types.ScreenHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	var slots []int
	table.Visible(count, func(slot int, _ oam.Entry) {
		slots = append(slots, slot)
	})
	for i := len(slots) - 1; i >= 0; i-- {
		e := table[slots[i]]
		outline(img, Bounds(e), BankColour(e.Palette()))
	}
	return img
}

func outline(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	clip := r.Intersect(img.Bounds())
	if clip.Empty() {
		return
	}
	for x := clip.Min.X; x < clip.Max.X; x++ {
		if r.Min.Y == clip.Min.Y {
			img.SetRGBA(x, r.Min.Y, c)
		}
		if r.Max.Y == clip.Max.Y {
			img.SetRGBA(x, r.Max.Y-1, c)
		}
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		if r.Min.X == clip.Min.X {
			img.SetRGBA(r.Min.X, y, c)
		}
		if r.Max.X == clip.Max.X {
			img.SetRGBA(r.Max.X-1, y, c)
		}
	}
}

// Scale enlarges img by an integer factor without smoothing.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
