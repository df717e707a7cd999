// Package commit publishes a shadow sprite table to object attribute
// memory.
//
// A commit is the only point at which sprite state becomes visible to
// the display: the codec in package oam only ever touches the shadow
// table. Commits are expected to run during vertical blank; this
// package neither checks nor enforces that.
package commit

import (
	"fmt"

	"github.com/thelolagemann/agbsprite/internal/hw"
	"github.com/thelolagemann/agbsprite/internal/oam"
	"github.com/thelolagemann/agbsprite/internal/types"
	"github.com/thelolagemann/agbsprite/pkg/log"
)

// Observer is notified after every successful commit with the frame
// number and the bytes stored. The slice is reused between commits.
type Observer interface {
	Committed(frame uint64, p []byte)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(frame uint64, p []byte)

func (f ObserverFunc) Committed(frame uint64, p []byte) { f(frame, p) }

// Pipeline owns the staging buffer used to publish a table to a region.
// It is not safe for concurrent use.
type Pipeline struct {
	region    hw.Region
	staging   []byte
	slots     int
	frame     uint64
	log       log.Logger
	observers []Observer
}

// Opt configures a Pipeline.
type Opt func(p *Pipeline)

func WithLogger(l log.Logger) Opt {
	return func(p *Pipeline) {
		p.log = l
	}
}

func WithObserver(o Observer) Opt {
	return func(p *Pipeline) {
		p.observers = append(p.observers, o)
	}
}

// New returns a pipeline committing to region. The number of slots is
// the number of whole entries the region holds, at most types.Slots.
func New(region hw.Region, opts ...Opt) *Pipeline {
	slots := region.Len() / types.EntrySize
	if slots > types.Slots {
		slots = types.Slots
	}
	p := &Pipeline{
		region:  region,
		slots:   slots,
		staging: make([]byte, slots*types.EntrySize),
		log:     log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Slots returns the number of entries the pipeline can publish.
func (p *Pipeline) Slots() int {
	return p.slots
}

// Frame returns the number of commits performed since Init.
func (p *Pipeline) Frame() uint64 {
	return p.frame
}

// Init drives every slot of the region to the hidden state. Memory is
// not guaranteed to be safe at power on, so this must run before the
// first frame is displayed.
func (p *Pipeline) Init() error {
	hidden := oam.HiddenEntry()
	for i := 0; i < p.slots; i++ {
		hidden.Put(p.staging[i*types.EntrySize:])
	}
	if err := p.region.Store(0, p.staging); err != nil {
		return fmt.Errorf("commit: init: %w", err)
	}
	p.frame = 0
	p.log.Debugf("commit: initialised %d slots", p.slots)
	return nil
}

// Commit copies the first count entries of table to the start of the
// region in one store. Slots at or past count keep whatever was last
// committed to them.
func (p *Pipeline) Commit(table *oam.Table, count int) error {
	if count > p.slots {
		count = p.slots
	}
	n := table.Encode(p.staging, count)
	if err := p.region.Store(0, p.staging[:n]); err != nil {
		return fmt.Errorf("commit: frame %d: %w", p.frame, err)
	}
	p.frame++
	for _, o := range p.observers {
		o.Committed(p.frame, p.staging[:n])
	}
	return nil
}
