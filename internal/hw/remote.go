package hw

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/thelolagemann/agbsprite/pkg/log"
)

// A store travels as one binary websocket message: the offset as a
// little-endian halfword followed by the bytes to write. The receiver
// applies a message whole, so a remote display never shows a torn
// commit.
const headerSize = 2

// ErrBadMessage is returned for a message too short to carry a store.
var ErrBadMessage = errors.New("hw: malformed store message")

// Remote is a region living on the far side of a websocket, usually an
// emulator or a debugging display. Loads are served from a local mirror
// of everything stored.
type Remote struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	mirror []byte
}

// Dial connects to a Sink at url. size must match the remote region.
func Dial(ctx context.Context, url string, size int) (*Remote, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("hw: dialing %s: %w", url, err)
	}
	return &Remote{
		conn:   conn,
		mirror: make([]byte, size),
	}, nil
}

func (r *Remote) Len() int {
	return len(r.mirror)
}

func (r *Remote) Store(offset int, p []byte) error {
	if err := CheckRange(len(r.mirror), offset, len(p)); err != nil {
		return err
	}

	msg := make([]byte, headerSize+len(p))
	binary.LittleEndian.PutUint16(msg, uint16(offset))
	copy(msg[headerSize:], p)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
		return fmt.Errorf("hw: remote store: %w", err)
	}
	copy(r.mirror[offset:], p)
	return nil
}

func (r *Remote) Load(offset int, p []byte) error {
	if err := CheckRange(len(r.mirror), offset, len(p)); err != nil {
		return err
	}
	r.mu.Lock()
	copy(p, r.mirror[offset:])
	r.mu.Unlock()
	return nil
}

// Close sends a close frame and drops the connection.
func (r *Remote) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return r.conn.Close()
}

// Sink accepts websocket connections from Remote regions and applies
// their stores to a local region.
type Sink struct {
	mu       sync.Mutex
	region   Region
	onStore  func(offset int, p []byte)
	log      log.Logger
	upgrader websocket.Upgrader
}

// SinkOpt configures a Sink.
type SinkOpt func(s *Sink)

// OnStore registers fn to be called after every applied store. fn runs
// with the sink locked and must not retain p.
func OnStore(fn func(offset int, p []byte)) SinkOpt {
	return func(s *Sink) {
		s.onStore = fn
	}
}

// SinkLogger sets the logger used to report rejected messages.
func SinkLogger(l log.Logger) SinkOpt {
	return func(s *Sink) {
		s.log = l
	}
}

func NewSink(region Region, opts ...SinkOpt) *Sink {
	s := &Sink{
		region: region,
		log:    log.NewNullLogger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sink) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Errorf("sink: upgrade from %s: %v", r.RemoteAddr, err)
		return
	}
	defer conn.Close()

	s.log.Infof("sink: %s connected", r.RemoteAddr)
	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			s.log.Debugf("sink: %s disconnected: %v", r.RemoteAddr, err)
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}
		if err := s.apply(msg); err != nil {
			s.log.Errorf("sink: %s: %v", r.RemoteAddr, err)
		}
	}
}

func (s *Sink) apply(msg []byte) error {
	if len(msg) < headerSize {
		return ErrBadMessage
	}
	offset := int(binary.LittleEndian.Uint16(msg))
	p := msg[headerSize:]

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.region.Store(offset, p); err != nil {
		return err
	}
	if s.onStore != nil {
		s.onStore(offset, p)
	}
	return nil
}
