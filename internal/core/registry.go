package core

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

type sessionEntry struct {
	sender Sender
	rooms  map[domain.RoomKey]struct{}
}

// Registry owns the room map and session handles. Rooms are created
// implicitly on first join and garbage-collected the moment their
// member set empties; no explicit teardown exists.
//
// Locking order is registry -> room; the registry lock is never taken
// while a room lock is held.
type Registry struct {
	mu       sync.RWMutex
	rooms    map[domain.RoomKey]*room
	sessions map[SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:    make(map[domain.RoomKey]*room),
		sessions: make(map[SessionID]*sessionEntry),
	}
}

// Attach binds a freshly connected transport to a session handle.
func (g *Registry) Attach(sid SessionID, s Sender) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions[sid] = &sessionEntry{
		sender: s,
		rooms:  make(map[domain.RoomKey]struct{}),
	}
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Msg("session attached")
}

// Join adds the session to the room, creating the room if needed.
// Joining twice is a no-op. Returns false for unknown sessions.
// The add happens under the registry lock: once Join returns true the
// room is in the map with the member inside, so a concurrent collect
// of the last other member can never strand the joiner in an orphaned
// room object.
func (g *Registry) Join(sid SessionID, key domain.RoomKey) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	entry, ok := g.sessions[sid]
	if !ok {
		return false
	}
	r, exists := g.rooms[key]
	if !exists {
		r = newRoom(key)
		g.rooms[key] = r
		log.Info().Str("module", "core.registry").Str("room", string(key)).Msg("room created")
	}
	entry.rooms[key] = struct{}{}
	r.add(sid, entry.sender)
	return true
}

// Leave removes the session from one room. Leaving a room it never
// joined is a no-op.
func (g *Registry) Leave(sid SessionID, key domain.RoomKey) {
	g.mu.Lock()
	if entry, ok := g.sessions[sid]; ok {
		delete(entry.rooms, key)
	}
	r, ok := g.rooms[key]
	g.mu.Unlock()
	if !ok {
		return
	}
	r.remove(sid)
	g.collect(key)
}

// Detach removes the session from every room it is a member of and
// forgets the handle. Invoked on transport disconnect; no in-flight
// delivery is awaited.
func (g *Registry) Detach(sid SessionID) {
	g.mu.Lock()
	entry, ok := g.sessions[sid]
	if !ok {
		g.mu.Unlock()
		return
	}
	delete(g.sessions, sid)
	keys := make([]domain.RoomKey, 0, len(entry.rooms))
	rooms := make([]*room, 0, len(entry.rooms))
	for key := range entry.rooms {
		if r, ok := g.rooms[key]; ok {
			keys = append(keys, key)
			rooms = append(rooms, r)
		}
	}
	g.mu.Unlock()

	for i, r := range rooms {
		r.remove(sid)
		g.collect(keys[i])
	}
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Msg("session detached")
}

// Relay delivers the frame to the room per the fan-out mode. Critical
// frames carry state the receiver cannot recover without (clear, full
// stroke): a member too slow to take one is kicked so it can never hold
// a silently stale view. Non-critical frames are simply dropped for
// that member.
func (g *Registry) Relay(key domain.RoomKey, from SessionID, data Frame, mode Fanout, critical bool) PublishResult {
	g.mu.RLock()
	r, ok := g.rooms[key]
	g.mu.RUnlock()
	if !ok {
		return PublishResult{}
	}

	res := r.broadcast(from, data, mode)
	if critical {
		for _, sid := range res.Dropped {
			log.Warn().Str("module", "core.registry").Str("room", string(key)).Str("sid", string(sid)).
				Msg("kicking slow member on critical frame")
			g.Kick(sid)
		}
	}
	return res
}

// Kick closes a session's transport and detaches it. The adapter's
// read loop observes the close and performs no further work.
func (g *Registry) Kick(sid SessionID) {
	g.mu.RLock()
	entry, ok := g.sessions[sid]
	g.mu.RUnlock()
	if !ok {
		return
	}
	entry.sender.Close()
	g.Detach(sid)
}

// MemberCount reports the live member count of a room, 0 if absent.
func (g *Registry) MemberCount(key domain.RoomKey) int {
	g.mu.RLock()
	r, ok := g.rooms[key]
	g.mu.RUnlock()
	if !ok {
		return 0
	}
	return r.count()
}

// List snapshots all live rooms, ordered by key for stable output.
func (g *Registry) List() []RoomInfo {
	g.mu.RLock()
	out := make([]RoomInfo, 0, len(g.rooms))
	for key, r := range g.rooms {
		out = append(out, RoomInfo{Key: key, MemberCount: r.count()})
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// collect drops the room if its member set has emptied. Double-checked
// under the registry lock: a concurrent join may have revived it.
func (g *Registry) collect(key domain.RoomKey) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.rooms[key]; ok && r.count() == 0 {
		delete(g.rooms, key)
		log.Info().Str("module", "core.registry").Str("room", string(key)).Msg("room collected")
	}
}
