// Package domain contains entity types without logic, just meta-data
// and validation helpers shared by server and client packages.
package domain

// RoomID is the human-facing, client-generated room identifier.
// Collisions are tolerated: two clients picking the same id simply
// end up sharing a room.
type RoomID string

// RoomKey is a namespace-qualified room identifier as stored by the
// registry. Whiteboard traffic and practice-metadata traffic derived
// from the same RoomID live in different rooms, so a clear-canvas
// event can never reach a timer subscriber.
type RoomKey string

const (
	drawPrefix = "draw:"
	metaPrefix = "meta:"
)

// DrawRoom returns the whiteboard room key for id.
func DrawRoom(id RoomID) RoomKey { return RoomKey(drawPrefix + string(id)) }

// MetaRoom returns the practice-metadata room key for id.
func MetaRoom(id RoomID) RoomKey { return RoomKey(metaPrefix + string(id)) }
