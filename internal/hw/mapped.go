//go:build unix

package hw

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Mapped is a region backed by a shared file mapping. Any process that
// maps the same file, such as an emulator exposing its object attribute
// memory, observes stores directly.
type Mapped struct {
	f    *os.File
	data []byte
	copy Copier
}

// OpenMapped maps size bytes of the named file, creating and growing it
// as needed.
func OpenMapped(name string, size int, copier Copier) (*Mapped, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() < int64(size) {
		if err := f.Truncate(int64(size)); err != nil {
			f.Close()
			return nil, fmt.Errorf("hw: growing %s: %w", name, err)
		}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("hw: mapping %s: %w", name, err)
	}

	if copier == nil {
		copier = CopyBulk
	}
	return &Mapped{f: f, data: data, copy: copier}, nil
}

func (m *Mapped) Len() int {
	return len(m.data)
}

func (m *Mapped) Store(offset int, p []byte) error {
	if err := CheckRange(len(m.data), offset, len(p)); err != nil {
		return err
	}
	m.copy(m.data[offset:], p)
	return nil
}

func (m *Mapped) Load(offset int, p []byte) error {
	if err := CheckRange(len(m.data), offset, len(p)); err != nil {
		return err
	}
	copy(p, m.data[offset:])
	return nil
}

// Sync flushes the mapping to the backing file.
func (m *Mapped) Sync() error {
	return unix.Msync(m.data, unix.MS_SYNC)
}

// Close unmaps the region and closes the file.
func (m *Mapped) Close() error {
	if err := unix.Munmap(m.data); err != nil {
		return err
	}
	m.data = nil
	return m.f.Close()
}
