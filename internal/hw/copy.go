package hw

import "encoding/binary"

// Copier is a bulk memory-copy primitive. It copies min(len(dst),
// len(src)) bytes and returns the number copied.
type Copier func(dst, src []byte) int

// CopyBulk copies with the runtime's memmove.
func CopyBulk(dst, src []byte) int {
	return copy(dst, src)
}

// CopyWords copies 32-bit words in a loop, falling back to single bytes
// for a trailing remainder. It mirrors the CPU word copy used on the
// hardware when no DMA channel is spare.
func CopyWords(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	i := 0
	for ; i+4 <= n; i += 4 {
		binary.LittleEndian.PutUint32(dst[i:], binary.LittleEndian.Uint32(src[i:]))
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}
