// Package client implements the session client: one relay connection
// per room context, translating canvas events into relay frames and
// remote frames back into controller calls.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

var ErrSessionClosed = errors.New("session closed")

// Event type names mirror the server protocol.
const (
	typeDrawJoin     = "draw:join"
	typeDrawJoined   = "draw:joined"
	typeDrawSegment  = "draw:segment"
	typeDrawFull     = "draw:full"
	typeDrawClear    = "draw:clear"
	typeMetaJoin     = "meta:join"
	typeMetaJoined   = "meta:joined"
	typeMetaTimer    = "meta:timer"
	typeMetaProgress = "meta:progress"
)

// Session is one live relay connection for one room id. It carries two
// capability channels over the same transport: a draw channel and a
// session-meta channel, joined under separate server-side namespaces.
//
// There is no automatic reconnection: a dropped transport ends the
// session and reconnection policy belongs to the caller.
type Session struct {
	roomID domain.RoomID
	conn   *websocket.Conn

	writeMu sync.Mutex

	drawJoined chan domain.RoomID
	metaJoined chan domain.RoomID
	strokes    chan domain.Stroke
	clears     chan struct{}
	timers     chan int64
	progress   chan json.RawMessage

	closeOnce sync.Once
	done      chan struct{}
}

// Dial connects to the relay at baseURL (http/https or ws/wss) and
// immediately joins both namespaces for roomID, returning after both
// joins are acknowledged.
func Dial(ctx context.Context, baseURL string, roomID domain.RoomID) (*Session, error) {
	wsURL := toWSURL(baseURL) + "/api/ws"
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial relay: %w", err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	s := &Session{
		roomID:     roomID,
		conn:       conn,
		drawJoined: make(chan domain.RoomID, 1),
		metaJoined: make(chan domain.RoomID, 1),
		strokes:    make(chan domain.Stroke, 64),
		clears:     make(chan struct{}, 8),
		timers:     make(chan int64, 8),
		progress:   make(chan json.RawMessage, 8),
		done:       make(chan struct{}),
	}
	go s.readLoop()

	if err := s.join(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func toWSURL(base string) string {
	base = strings.TrimSuffix(base, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	default:
		return base
	}
}

// join issues both namespace joins and waits for the acks, so callers
// can gate first paint on confirmed membership.
func (s *Session) join(ctx context.Context) error {
	if err := s.write(map[string]any{"type": typeDrawJoin, "room": s.roomID}); err != nil {
		return err
	}
	if err := s.write(map[string]any{"type": typeMetaJoin, "room": s.roomID}); err != nil {
		return err
	}
	for _, ack := range []chan domain.RoomID{s.drawJoined, s.metaJoined} {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return ErrSessionClosed
		case <-ack:
		}
	}
	return nil
}

func (s *Session) write(v any) error {
	select {
	case <-s.done:
		return ErrSessionClosed
	default:
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(v)
}

// SendSegment broadcasts a two-point incremental segment.
func (s *Session) SendSegment(stroke domain.Stroke) error {
	if err := stroke.ValidateSegment(); err != nil {
		return err
	}
	return s.write(map[string]any{"type": typeDrawSegment, "room": s.roomID, "stroke": stroke})
}

// SendStroke broadcasts a finalized full stroke.
func (s *Session) SendStroke(stroke domain.Stroke) error {
	if err := stroke.Validate(); err != nil {
		return err
	}
	return s.write(map[string]any{"type": typeDrawFull, "room": s.roomID, "stroke": stroke})
}

func (s *Session) SendClear() error {
	return s.write(map[string]any{"type": typeDrawClear, "room": s.roomID})
}

func (s *Session) SendTimer(remainingMs int64) error {
	if remainingMs < 0 {
		return fmt.Errorf("negative remainingMs: %d", remainingMs)
	}
	return s.write(map[string]any{"type": typeMetaTimer, "room": s.roomID, "remainingMs": remainingMs})
}

func (s *Session) SendProgress(progress any) error {
	return s.write(map[string]any{"type": typeMetaProgress, "room": s.roomID, "progress": progress})
}

// Strokes yields remote segments and full strokes; both render the
// same way, directly from the received point sequence.
func (s *Session) Strokes() <-chan domain.Stroke { return s.strokes }

func (s *Session) Clears() <-chan struct{} { return s.clears }

// Timers yields last-write-wins remaining-time broadcasts, the
// sender's own included.
func (s *Session) Timers() <-chan int64 { return s.timers }

func (s *Session) Progress() <-chan json.RawMessage { return s.progress }

// Done is closed when the transport drops or Close is called.
func (s *Session) Done() <-chan struct{} { return s.done }

// Close tears the session down immediately; the server detaches the
// handle and implicitly leaves every joined room.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

func (s *Session) readLoop() {
	defer s.Close()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("module", "client").Str("room", string(s.roomID)).Msg("read loop ended")
			return
		}
		s.dispatch(data)
	}
}

type inbound struct {
	Type        string          `json:"type"`
	Room        domain.RoomID   `json:"room"`
	Stroke      domain.Stroke   `json:"stroke"`
	RemainingMs int64           `json:"remainingMs"`
	Progress    json.RawMessage `json:"progress"`
}

func (s *Session) dispatch(data []byte) {
	var ev inbound
	if err := json.Unmarshal(data, &ev); err != nil {
		log.Warn().Err(err).Str("module", "client").Msg("bad frame from relay")
		return
	}
	switch ev.Type {
	case typeDrawJoined:
		trySendRoom(s.drawJoined, ev.Room)
	case typeMetaJoined:
		trySendRoom(s.metaJoined, ev.Room)
	case typeDrawSegment, typeDrawFull:
		trySend(s.strokes, ev.Stroke)
	case typeDrawClear:
		trySend(s.clears, struct{}{})
	case typeMetaTimer:
		trySend(s.timers, ev.RemainingMs)
	case typeMetaProgress:
		trySend(s.progress, ev.Progress)
	default:
		// pong and future event types are ignored
	}
}

// trySend never blocks the read loop; a consumer too slow to drain its
// channel loses best-effort events, matching the relay's own policy.
func trySend[T any](ch chan T, v T) {
	select {
	case ch <- v:
	default:
		log.Warn().Str("module", "client").Msg("inbound channel full, dropping event")
	}
}

func trySendRoom(ch chan domain.RoomID, room domain.RoomID) {
	select {
	case ch <- room:
	default:
	}
}
