package oam

import "testing"

func TestLookup(t *testing.T) {
	tests := []struct {
		shape Shape
		size  Size
		want  Dimensions
	}{
		{Square, Size0, Dimensions{8, 8}},
		{Square, Size1, Dimensions{16, 16}},
		{Square, Size2, Dimensions{32, 32}},
		{Square, Size3, Dimensions{64, 64}},
		{Wide, Size0, Dimensions{16, 8}},
		{Wide, Size1, Dimensions{32, 8}},
		{Wide, Size2, Dimensions{32, 16}},
		{Wide, Size3, Dimensions{64, 32}},
		{Tall, Size0, Dimensions{8, 16}},
		{Tall, Size1, Dimensions{8, 32}},
		{Tall, Size2, Dimensions{16, 32}},
		{Tall, Size3, Dimensions{32, 64}},
	}

	for _, tt := range tests {
		var e Entry
		Setup(tt.shape, tt.size, 0, 0, false, 0, 0, 0, &e)
		if got := e.Dimensions(); got != tt.want {
			t.Errorf("%s size %d: expected %s, got %s", tt.shape, tt.size, tt.want, got)
		}
		if e.Shape() != tt.shape || e.Size() != tt.size {
			t.Errorf("%s size %d: read back %s size %d", tt.shape, tt.size, e.Shape(), e.Size())
		}

		// double size doubles both axes
		SetAffine(0, true, &e)
		want := Dimensions{tt.want.Width * 2, tt.want.Height * 2}
		if got := e.Dimensions(); got != want {
			t.Errorf("%s size %d double: expected %s, got %s", tt.shape, tt.size, want, got)
		}

		// plain affine does not
		SetAffine(0, false, &e)
		if got := e.Dimensions(); got != tt.want {
			t.Errorf("%s size %d affine: expected %s, got %s", tt.shape, tt.size, tt.want, got)
		}
	}
}

func TestSetPosition(t *testing.T) {
	tests := []struct {
		name         string
		size         Size
		x, y         int
		wantX, wantY int
	}{
		{"16x16", Size1, 100, 80, 92, 72},
		{"8x8", Size0, 100, 80, 96, 76},
		{"64x64 at origin", Size3, 0, 0, -32, 224},
		{"off left edge", Size1, 2, 2, -6, 250},
		{"right edge", Size0, 239, 159, 235, 155},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry
			Setup(Square, tt.size, 0, 0, false, 0, 0, 0, &e)
			SetPosition(tt.x, tt.y, &e)
			if e.X() != tt.wantX || e.Y() != tt.wantY {
				t.Errorf("expected corner (%d, %d), got (%d, %d)", tt.wantX, tt.wantY, e.X(), e.Y())
			}
		})
	}
}

func TestSetPositionDoubleSize(t *testing.T) {
	var e Entry
	Setup(Square, Size1, 0, 0, false, 100, 80, 0, &e)
	SetAffine(3, true, &e)
	SetPosition(100, 80, &e)
	if e.X() != 84 || e.Y() != 64 {
		t.Errorf("expected corner (84, 64), got (%d, %d)", e.X(), e.Y())
	}
	if e.Mode() != ModeAffineDouble || e.AffineIndex() != 3 {
		t.Errorf("expected affine-double with matrix 3, got %s with matrix %d", e.Mode(), e.AffineIndex())
	}
}

func TestSetPositionPreservesWord(t *testing.T) {
	var e Entry
	Setup(Wide, Size2, 0x155, 7, true, 50, 50, 2, &e)
	SetMosaic(true, &e)
	SetHorizontalFlip(true, &e)
	SetVerticalFlip(true, &e)
	before := e

	SetPosition(-20, 200, &e)

	if e[2] != before[2] || e[3] != before[3] {
		t.Errorf("attr2/attr3 changed: %04X %04X -> %04X %04X", before[2], before[3], e[2], e[3])
	}
	if e[0]&0xFF00 != before[0]&0xFF00 {
		t.Errorf("attr0 upper bits changed: %04X -> %04X", before[0], e[0])
	}
	if e[1]&0xFE00 != before[1]&0xFE00 {
		t.Errorf("attr1 upper bits changed: %04X -> %04X", before[1], e[1])
	}
	if !e.Mosaic() || !e.HorizontalFlip() || !e.VerticalFlip() || !e.EightBitsPerPixel() {
		t.Errorf("flags lost: %s", e)
	}
}

func TestWord2Fields(t *testing.T) {
	// every possible attr2 value, with each setter applied in turn
	for w := 0; w <= 0xFFFF; w++ {
		e := Entry{0, 0, uint16(w), 0}
		tile, pal, prio := e.Tile(), e.Palette(), e.BGPriority()

		t1 := e
		SetTile(0x2AA, &t1)
		if t1.Tile() != 0x2AA || t1.Palette() != pal || t1.BGPriority() != prio {
			t.Fatalf("SetTile on %04X: got tile=%d pal=%d prio=%d", w, t1.Tile(), t1.Palette(), t1.BGPriority())
		}

		p1 := e
		SetPalette(0xA, &p1)
		if p1.Palette() != 0xA || p1.Tile() != tile || p1.BGPriority() != prio {
			t.Fatalf("SetPalette on %04X: got tile=%d pal=%d prio=%d", w, p1.Tile(), p1.Palette(), p1.BGPriority())
		}

		b1 := e
		SetBGPriority(1, &b1)
		if b1.BGPriority() != 1 || b1.Tile() != tile || b1.Palette() != pal {
			t.Fatalf("SetBGPriority on %04X: got tile=%d pal=%d prio=%d", w, b1.Tile(), b1.Palette(), b1.BGPriority())
		}
	}
}

func TestWord2FieldValues(t *testing.T) {
	e := Entry{0xFFFF, 0xFFFF, 0x0000, 0xFFFF}
	for tile := 0; tile < 1024; tile++ {
		SetTile(tile, &e)
		if e.Tile() != tile || e.Palette() != 0 || e.BGPriority() != 0 {
			t.Fatalf("tile %d: got %s", tile, e)
		}
	}
	for pal := 0; pal < 16; pal++ {
		for prio := 0; prio < 4; prio++ {
			SetPalette(pal, &e)
			SetBGPriority(prio, &e)
			if e.Palette() != pal || e.BGPriority() != prio || e.Tile() != 1023 {
				t.Fatalf("pal %d prio %d: got tile=%d pal=%d prio=%d", pal, prio, e.Tile(), e.Palette(), e.BGPriority())
			}
		}
	}
	if e[0] != 0xFFFF || e[1] != 0xFFFF || e[3] != 0xFFFF {
		t.Errorf("word2 setters touched other words: %04X", e[:])
	}
}

func TestTruncation(t *testing.T) {
	var e Entry
	Setup(Square, Size0, 1024+5, 17, false, 0, 0, 6, &e)
	if e.Tile() != 5 || e.Palette() != 1 || e.BGPriority() != 2 {
		t.Errorf("expected truncated tile=5 pal=1 prio=2, got tile=%d pal=%d prio=%d", e.Tile(), e.Palette(), e.BGPriority())
	}
}

func TestSetupRoundTrip(t *testing.T) {
	for shape := Square; shape <= Tall; shape++ {
		for size := Size0; size <= Size3; size++ {
			for _, bpp8 := range []bool{false, true} {
				e := Entry{0xFFFF, 0xFFFF, 0xFFFF, 0xBEEF}
				Setup(shape, size, 42, 3, bpp8, 120, 80, 1, &e)
				if e.Shape() != shape || e.Size() != size || e.EightBitsPerPixel() != bpp8 {
					t.Errorf("%s/%d/%t: read back %s/%d/%t", shape, size, bpp8, e.Shape(), e.Size(), e.EightBitsPerPixel())
				}
				if e.Dimensions() != Lookup(shape, size) {
					t.Errorf("%s/%d: expected %s, got %s", shape, size, Lookup(shape, size), e.Dimensions())
				}
				if e.Mode() != ModeRegular || e.Mosaic() || e.BlendMode() != 0 || e.HorizontalFlip() || e.VerticalFlip() {
					t.Errorf("%s/%d: expected clean regular entry, got %04X", shape, size, e[:])
				}
				if e[3] != 0xBEEF {
					t.Errorf("attr3 overwritten: %04X", e[3])
				}
			}
		}
	}
}

func TestHide(t *testing.T) {
	var e Entry
	Setup(Tall, Size2, 300, 9, false, 60, 40, 3, &e)
	x, y := e.X(), e.Y()

	Hide(&e)
	if !e.Hidden() {
		t.Fatalf("expected hidden entry, got %s", e)
	}
	if e.Tile() != 300 || e.Palette() != 9 || e.BGPriority() != 3 {
		t.Errorf("hide changed attr2: %s", e)
	}
	if e.X() != x || e.Y() != y {
		t.Errorf("hide moved the sprite: (%d, %d) -> (%d, %d)", x, y, e.X(), e.Y())
	}

	SetPosition(60, 40, &e)
	if e.Hidden() || e.Mode() != ModeRegular {
		t.Errorf("expected visible entry after SetPosition, got %s", e.Mode())
	}
	if e.X() != x || e.Y() != y || e.Tile() != 300 || e.Palette() != 9 || e.BGPriority() != 3 {
		t.Errorf("expected restored sprite, got %s", e)
	}

	Hide(&e)
	Setup(Tall, Size2, 300, 9, false, 60, 40, 3, &e)
	if e.Hidden() {
		t.Errorf("expected Setup to show a hidden entry")
	}
}

func TestFlipIgnoredWhenAffine(t *testing.T) {
	var e Entry
	Setup(Square, Size1, 0, 0, false, 0, 0, 0, &e)
	SetAffine(0, false, &e)
	SetHorizontalFlip(true, &e)
	SetVerticalFlip(true, &e)
	if e.AffineIndex() != 0 {
		t.Errorf("flip corrupted the affine index: %d", e.AffineIndex())
	}

	SetAffine(31, false, &e)
	SetRegular(&e)
	if e.Mode() != ModeRegular || e.HorizontalFlip() || e.VerticalFlip() {
		t.Errorf("expected clean regular entry, got %s", e)
	}
}

func TestEntryBytes(t *testing.T) {
	e := Entry{0x1234, 0x5678, 0x9ABC, 0xDEF0}
	b := make([]byte, 8)
	e.Put(b)
	want := []byte{0x34, 0x12, 0x78, 0x56, 0xBC, 0x9A, 0xF0, 0xDE}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("expected % X, got % X", want, b)
		}
	}
	if got := EntryFromBytes(b); got != e {
		t.Errorf("expected %04X, got %04X", e[:], got[:])
	}
}

func TestHiddenEntry(t *testing.T) {
	e := HiddenEntry()
	if !e.Hidden() || e[0] != 0x0200 || e[1] != 0 || e[2] != 0 || e[3] != 0 {
		t.Errorf("unexpected hidden entry %04X", e[:])
	}
}

func TestHideAffine(t *testing.T) {
	var e Entry
	Setup(Square, Size1, 7, 5, false, 100, 80, 2, &e)
	SetAffine(12, true, &e)
	SetPosition(100, 80, &e)
	if e.X() != 84 || e.Y() != 64 {
		t.Fatalf("expected double-size corner (84, 64), got (%d, %d)", e.X(), e.Y())
	}

	Hide(&e)
	SetPosition(100, 80, &e)
	if e.Mode() != ModeRegular || e.AffineIndex() != 0 {
		t.Errorf("expected regular entry without a matrix, got %s matrix %d", e.Mode(), e.AffineIndex())
	}
	if e.HorizontalFlip() || e.VerticalFlip() {
		t.Errorf("stale matrix index read back as flips: attr1=%04X", e[1])
	}
	if e.Dimensions() != (Dimensions{16, 16}) || e.X() != 92 || e.Y() != 72 {
		t.Errorf("expected 16x16 at (92, 72), got %s at (%d, %d)", e.Dimensions(), e.X(), e.Y())
	}
	if e.Tile() != 7 || e.Palette() != 5 || e.BGPriority() != 2 {
		t.Errorf("attr2 changed: %s", e)
	}

	// re-arming restores the double-size box
	SetAffine(12, true, &e)
	SetPosition(100, 80, &e)
	if e.Dimensions() != (Dimensions{32, 32}) || e.X() != 84 || e.Y() != 64 {
		t.Errorf("expected 32x32 at (84, 64), got %s at (%d, %d)", e.Dimensions(), e.X(), e.Y())
	}
}

func TestHiddenDimensions(t *testing.T) {
	var e Entry
	Setup(Wide, Size2, 0, 0, false, 0, 0, 0, &e)
	Hide(&e)

	// hidden mode sets attr0 bit 9 like affine double-size, but is not doubled
	if e[0]&0x0200 == 0 {
		t.Fatalf("expected bit 9 set in hidden mode, got %04X", e[0])
	}
	if got := e.Dimensions(); got != (Dimensions{32, 16}) {
		t.Errorf("expected hidden entry to keep its base 32x16 box, got %s", got)
	}
	if got := HiddenEntry().Dimensions(); got != (Dimensions{8, 8}) {
		t.Errorf("expected initialised slot to report 8x8, got %s", got)
	}
}
