// Package sprites is the process-wide entry point to the sprite
// hardware. It pairs the attribute codec with a single commit pipeline
// bound to the object attribute memory region at Init.
//
// The bound pipeline is the one piece of shared mutable state. All
// calls are expected from a single execution context, so no locking is
// done; a port that commits from more than one goroutine must add
// exclusion around Commit.
package sprites

import (
	"errors"

	"github.com/thelolagemann/agbsprite/internal/commit"
	"github.com/thelolagemann/agbsprite/internal/hw"
	"github.com/thelolagemann/agbsprite/internal/oam"
)

// ErrNotInitialised is returned by Commit before Init has run.
var ErrNotInitialised = errors.New("sprites: not initialised")

var vram *commit.Pipeline

// Init binds region as the object attribute memory and hides every
// slot in it. It is meant to be called once at startup; calling it again
// rebinds to the new region.
func Init(region hw.Region, opts ...commit.Opt) error {
	p := commit.New(region, opts...)
	if err := p.Init(); err != nil {
		return err
	}
	vram = p
	return nil
}

// Setup fully rewrites e as a visible sprite centred on (x, y).
func Setup(shape oam.Shape, size oam.Size, tile, palette int, eightBitsPerPixel bool, x, y, bgPriority int, e *oam.Entry) {
	oam.Setup(shape, size, tile, palette, eightBitsPerPixel, x, y, bgPriority, e)
}

func Dimensions(e *oam.Entry) oam.Dimensions {
	return e.Dimensions()
}

func SetTile(tile int, e *oam.Entry)                  { oam.SetTile(tile, e) }
func SetPalette(palette int, e *oam.Entry)            { oam.SetPalette(palette, e) }
func SetPosition(x, y int, e *oam.Entry)              { oam.SetPosition(x, y, e) }
func SetBGPriority(priority int, e *oam.Entry)        { oam.SetBGPriority(priority, e) }
func Hide(e *oam.Entry)                               { oam.Hide(e) }
func SetAffine(matrix int, double bool, e *oam.Entry) { oam.SetAffine(matrix, double, e) }

// Commit publishes the first count entries of table. It should only be
// called during vertical blank.
func Commit(table *oam.Table, count int) error {
	if vram == nil {
		return ErrNotInitialised
	}
	return vram.Commit(table, count)
}
