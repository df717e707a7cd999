// Package digest fingerprints object attribute memory so that commit
// streams can be compared between runs.
package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/agbsprite/internal/hw"
)

// Sum returns the xxhash of the entire region.
func Sum(r hw.Region) (uint64, error) {
	p := make([]byte, r.Len())
	if err := r.Load(0, p); err != nil {
		return 0, err
	}
	return xxhash.Sum64(p), nil
}

// Chain is a commit observer that folds every commit into a running
// digest. Each frame's hash covers the previous hash followed by the
// committed bytes, so two runs only match if every commit matched in
// order.
type Chain struct {
	sum    uint64
	frames uint64
	prev   [8]byte
}

// Committed implements commit.Observer.
func (c *Chain) Committed(frame uint64, p []byte) {
	d := xxhash.New()
	binary.LittleEndian.PutUint64(c.prev[:], c.sum)
	d.Write(c.prev[:])
	d.Write(p)
	c.sum = d.Sum64()
	c.frames = frame
}

// Sum64 returns the current digest.
func (c *Chain) Sum64() uint64 {
	return c.sum
}

// Frames returns the frame number of the last folded commit.
func (c *Chain) Frames() uint64 {
	return c.frames
}

// Hash returns the digest formatted as a hex string.
func (c *Chain) Hash() string {
	return fmt.Sprintf("%016x", c.sum)
}

func (c *Chain) Reset() {
	c.sum = 0
	c.frames = 0
}
