package core

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

// room is a threadsafe in-memory member set.
// It never closes adapter-owned resources.
type room struct {
	key     domain.RoomKey
	mu      sync.RWMutex
	members map[SessionID]Sender
}

func newRoom(key domain.RoomKey) *room {
	return &room{
		key:     key,
		members: make(map[SessionID]Sender),
	}
}

func (r *room) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.members)
}

// add registers the member. Joining twice is a no-op.
func (r *room) add(sid SessionID, s Sender) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[sid]; ok {
		return false
	}
	r.members[sid] = s
	log.Debug().Str("module", "core.room").Str("room", string(r.key)).Str("sid", string(sid)).Msg("member added")
	return true
}

func (r *room) remove(sid SessionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[sid]; !ok {
		return false
	}
	delete(r.members, sid)
	log.Debug().Str("module", "core.room").Str("room", string(r.key)).Str("sid", string(sid)).Msg("member removed")
	return true
}

// broadcast fans data out to members according to mode. Delivery is
// best-effort: a member whose send buffer is full is reported in
// Dropped and skipped, never waited on.
func (r *room) broadcast(from SessionID, data Frame, mode Fanout) PublishResult {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := PublishResult{}
	for sid, s := range r.members {
		if mode == ExcludeSender && sid == from {
			continue
		}
		if err := s.TrySend(data); err != nil {
			res.Dropped = append(res.Dropped, sid)
			continue
		}
		res.Sent++
	}
	log.Debug().Str("module", "core.room").Str("room", string(r.key)).Str("from", string(from)).
		Int("sent_to", res.Sent).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}
