package core

import "github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"

// Frame is a raw JSON event payload fanned out to room members.
type Frame []byte

// SessionID identifies one live participant connection.
type SessionID string

// Sender abstracts the outbound half of a session's transport.
// Owned by the adapter; the adapter must Close() it.
type Sender interface {
	TrySend(Frame) error
	Close()
}

// Fanout selects the recipients of a relayed event relative to its origin.
type Fanout int

const (
	// ExcludeSender delivers to every member except the origin handle.
	// Used for strokes and incremental draw segments: the origin has
	// already rendered locally.
	ExcludeSender Fanout = iota
	// IncludeSender delivers to every member, origin included. Used for
	// clear, timer and progress, so a second tab of the same user stays
	// in sync too.
	IncludeSender
)

// PublishResult reports delivery stats and backpressure to the caller.
type PublishResult struct {
	Sent    int
	Dropped []SessionID
}

// RoomInfo is a read-only view for APIs (no transport fields).
type RoomInfo struct {
	Key         domain.RoomKey `json:"key"`
	MemberCount int            `json:"member_count"`
}
