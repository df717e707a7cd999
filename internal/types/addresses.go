package types

// The object attribute memory of the AGB is a 1KB block mapped at
// 0x07000000. It holds 128 entries of 8 bytes each, with the affine
// parameters interleaved in the last halfword of each entry.
const (
	// OAMBase is the address the object attribute memory is mapped at.
	OAMBase uint32 = 0x07000000
	// OAMSize is the size of the object attribute memory in bytes.
	OAMSize = 0x400
	// EntrySize is the size of a single attribute entry in bytes.
	EntrySize = 8
	// Slots is the number of sprites the hardware can display.
	Slots = OAMSize / EntrySize
)

const (
	ScreenWidth  = 240
	ScreenHeight = 160
)
