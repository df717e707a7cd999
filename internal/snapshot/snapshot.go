// Package snapshot saves and restores a shadow sprite table together
// with its active entry count.
//
// A snapshot is a brotli stream wrapping:
//
//	"AGBS" magic
//	version (1 byte)
//	active count (uint16 LE)
//	every slot of the table, 4 halfwords LE each
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/thelolagemann/agbsprite/internal/oam"
	"github.com/thelolagemann/agbsprite/internal/types"
)

const (
	magic   = "AGBS"
	version = 1
)

var (
	ErrBadMagic   = errors.New("snapshot: not a sprite table snapshot")
	ErrBadVersion = errors.New("snapshot: unsupported version")
	// ErrTruncated is the state codec's truncation error, returned when a
	// snapshot ends before every slot was read.
	ErrTruncated = types.ErrStateTruncated
)

// Quality is the brotli quality used when writing.
var Quality = 7

// Frame is a shadow table together with its active entry count.
type Frame struct {
	Table oam.Table
	Count int
}

var _ types.Stater = (*Frame)(nil)

// Save serializes the frame into s. The count is clamped to the slot
// count before it is stored.
func (f *Frame) Save(s *types.State) {
	count := f.Count
	if count < 0 {
		count = 0
	}
	if count > types.Slots {
		count = types.Slots
	}

	s.WriteData([]byte(magic))
	s.Write8(version)
	s.Write16(uint16(count))
	for _, e := range f.Table {
		for _, w := range e {
			s.Write16(w)
		}
	}
}

// Load restores a frame previously written by Save.
func (f *Frame) Load(s *types.State) error {
	m := make([]byte, len(magic))
	if err := s.ReadData(m); err != nil || string(m) != magic {
		return ErrBadMagic
	}
	v, err := s.Read8()
	if err != nil {
		return err
	}
	if v != version {
		return fmt.Errorf("%w: %d", ErrBadVersion, v)
	}
	count, err := s.Read16()
	if err != nil {
		return err
	}

	var table oam.Table
	for i := range table {
		for j := range table[i] {
			if table[i][j], err = s.Read16(); err != nil {
				return fmt.Errorf("snapshot: slot %d: %w", i, err)
			}
		}
	}
	if int(count) > types.Slots {
		count = types.Slots
	}
	f.Table, f.Count = table, int(count)
	return nil
}

// Write compresses a snapshot of table to w.
func Write(w io.Writer, table *oam.Table, count int) error {
	f := &Frame{Table: *table, Count: count}
	s := types.NewState()
	f.Save(s)

	bw := brotli.NewWriterLevel(w, Quality)
	if _, err := bw.Write(s.Bytes()); err != nil {
		return err
	}
	return bw.Close()
}

// Read decompresses a snapshot from r.
func Read(r io.Reader) (*oam.Table, int, error) {
	raw, err := io.ReadAll(brotli.NewReader(r))
	if err != nil {
		return nil, 0, fmt.Errorf("snapshot: decompressing: %w", err)
	}
	f := &Frame{}
	if err := f.Load(types.StateFromBytes(raw)); err != nil {
		return nil, 0, err
	}
	return &f.Table, f.Count, nil
}

// Decode is Read over an in-memory snapshot.
func Decode(b []byte) (*oam.Table, int, error) {
	return Read(bytes.NewReader(b))
}
