// Package ram provides a plain memory backed region.
package ram

import (
	"github.com/thelolagemann/agbsprite/internal/hw"
)

// RAM represents a block of RAM.
type RAM struct {
	data []byte
	copy hw.Copier
}

// Opt configures a RAM.
type Opt func(r *RAM)

// WithCopier sets the primitive used for bulk transfers.
func WithCopier(c hw.Copier) Opt {
	return func(r *RAM) {
		r.copy = c
	}
}

// NewRAM returns a zeroed RAM of the given size.
func NewRAM(size int, opts ...Opt) *RAM {
	r := &RAM{
		data: make([]byte, size),
		copy: hw.CopyBulk,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *RAM) Len() int {
	return len(r.data)
}

// Store copies p to offset in one transfer.
func (r *RAM) Store(offset int, p []byte) error {
	if err := hw.CheckRange(len(r.data), offset, len(p)); err != nil {
		return err
	}
	r.copy(r.data[offset:], p)
	return nil
}

// Load copies len(p) bytes from offset into p.
func (r *RAM) Load(offset int, p []byte) error {
	if err := hw.CheckRange(len(r.data), offset, len(p)); err != nil {
		return err
	}
	copy(p, r.data[offset:])
	return nil
}

// Bytes exposes the backing memory.
func (r *RAM) Bytes() []byte {
	return r.data
}

var _ hw.Region = (*RAM)(nil)
