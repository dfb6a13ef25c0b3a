package signal

import (
	"encoding/json"
	"errors"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

// Wire protocol: every frame is a JSON envelope carrying "type" plus an
// event-specific payload. Room ids travel unqualified; the server maps
// them onto namespaced room keys.
const (
	TypeDrawJoin     = "draw:join"
	TypeDrawJoined   = "draw:joined"
	TypeDrawSegment  = "draw:segment"
	TypeDrawFull     = "draw:full"
	TypeDrawClear    = "draw:clear"
	TypeMetaJoin     = "meta:join"
	TypeMetaJoined   = "meta:joined"
	TypeMetaTimer    = "meta:timer"
	TypeMetaProgress = "meta:progress"
	TypePing         = "ping"
	TypePong         = "pong"
)

var errMalformed = errors.New("malformed event")

// Envelope is the type-discriminating header of every frame.
type Envelope struct {
	Type string `json:"type"`
}

// RoomEvent covers join and clear, which carry only the room id.
type RoomEvent struct {
	Type string        `json:"type"`
	Room domain.RoomID `json:"room"`
}

// StrokeEvent covers draw:segment and draw:full.
type StrokeEvent struct {
	Type   string        `json:"type"`
	Room   domain.RoomID `json:"room"`
	Stroke domain.Stroke `json:"stroke"`
}

// TimerEvent broadcasts the remaining practice time. Last write wins.
type TimerEvent struct {
	Type        string        `json:"type"`
	Room        domain.RoomID `json:"room"`
	RemainingMs int64         `json:"remainingMs"`
}

// ProgressEvent broadcasts an opaque practice-completion payload.
type ProgressEvent struct {
	Type     string          `json:"type"`
	Room     domain.RoomID   `json:"room"`
	Progress json.RawMessage `json:"progress"`
}

func decodeRoomEvent(data []byte) (RoomEvent, error) {
	var ev RoomEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, err
	}
	if ev.Room == "" {
		return ev, errMalformed
	}
	return ev, nil
}

func decodeStrokeEvent(data []byte, segment bool) (StrokeEvent, error) {
	var ev StrokeEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, err
	}
	if ev.Room == "" {
		return ev, errMalformed
	}
	if segment {
		if err := ev.Stroke.ValidateSegment(); err != nil {
			return ev, err
		}
	} else if err := ev.Stroke.Validate(); err != nil {
		return ev, err
	}
	return ev, nil
}

func decodeTimerEvent(data []byte) (TimerEvent, error) {
	var ev TimerEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, err
	}
	if ev.Room == "" || ev.RemainingMs < 0 {
		return ev, errMalformed
	}
	return ev, nil
}

func decodeProgressEvent(data []byte) (ProgressEvent, error) {
	var ev ProgressEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, err
	}
	if ev.Room == "" || len(ev.Progress) == 0 {
		return ev, errMalformed
	}
	return ev, nil
}
