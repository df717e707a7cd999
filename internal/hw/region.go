// Package hw provides the destinations a sprite table can be committed
// to: a shared memory mapping and a websocket link to a remote display.
// Plain memory is provided by package ram.
package hw

import (
	"errors"
	"fmt"
)

// Region is a fixed-size, byte addressed view of object attribute
// memory.
//
// Store must apply p as a single transfer: an observer of the region
// never sees part of p written.
type Region interface {
	Len() int
	Store(offset int, p []byte) error
	Load(offset int, p []byte) error
}

// ErrOutOfRange is returned when a transfer does not fit the region.
var ErrOutOfRange = errors.New("hw: transfer outside region")

// CheckRange validates a transfer of n bytes at offset against a region
// of the given size.
func CheckRange(size, offset, n int) error {
	if offset < 0 || n < 0 || offset+n > size {
		return fmt.Errorf("%w: %d bytes at offset %d of %d", ErrOutOfRange, n, offset, size)
	}
	return nil
}
