package types

import "errors"

// ErrStateTruncated is returned when a read runs past the end of a State.
var ErrStateTruncated = errors.New("state: read past end of data")

// State is a little-endian byte buffer used to serialize sprite
// tables. Writes append, reads advance an independent cursor.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) error // Load the state of the object
	Save(*State)       // Save the state of the object
}

// NewState creates a new, empty state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read cursor to the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
}

// Remaining returns the number of unread bytes.
func (s *State) Remaining() int {
	return len(s.raw) - s.readPosition
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) Write32(value uint32) {
	s.raw = append(s.raw, byte(value), byte(value>>8), byte(value>>16), byte(value>>24))
}

func (s *State) WriteData(data []byte) {
	s.raw = append(s.raw, data...)
}

func (s *State) Read8() (uint8, error) {
	if s.Remaining() < 1 {
		return 0, ErrStateTruncated
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value, nil
}

func (s *State) Read16() (uint16, error) {
	if s.Remaining() < 2 {
		return 0, ErrStateTruncated
	}
	value := uint16(s.raw[s.readPosition]) | uint16(s.raw[s.readPosition+1])<<8
	s.readPosition += 2
	return value, nil
}

func (s *State) Read32() (uint32, error) {
	if s.Remaining() < 4 {
		return 0, ErrStateTruncated
	}
	value := uint32(s.raw[s.readPosition]) | uint32(s.raw[s.readPosition+1])<<8 | uint32(s.raw[s.readPosition+2])<<16 | uint32(s.raw[s.readPosition+3])<<24
	s.readPosition += 4
	return value, nil
}

// ReadData fills p from the state.
func (s *State) ReadData(p []byte) error {
	if s.Remaining() < len(p) {
		return ErrStateTruncated
	}
	copy(p, s.raw[s.readPosition:])
	s.readPosition += len(p)
	return nil
}

func (s *State) Bytes() []byte {
	return s.raw
}
