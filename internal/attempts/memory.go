package attempts

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

const sweepInterval = time.Minute

// MemoryStore keeps attempts in a map. With a non-zero TTL a sweeper
// goroutine evicts expired entries until Close is called.
type MemoryStore struct {
	mu       sync.RWMutex
	items    map[string]domain.Attempt
	ttl      time.Duration
	clock    clockwork.Clock
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore builds a store with the real clock.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return NewMemoryStoreWithClock(ttl, clockwork.NewRealClock())
}

// NewMemoryStoreWithClock allows tests to control time.
func NewMemoryStoreWithClock(ttl time.Duration, clock clockwork.Clock) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]domain.Attempt),
		ttl:   ttl,
		clock: clock,
		stop:  make(chan struct{}),
	}
	if ttl > 0 {
		go s.sweep()
	}
	return s
}

func (s *MemoryStore) Save(_ context.Context, payload []byte) (domain.Attempt, error) {
	attempt := domain.Attempt{
		ID:        uuid.NewString(),
		Payload:   append([]byte(nil), payload...),
		CreatedAt: s.clock.Now().UnixMilli(),
	}

	s.mu.Lock()
	s.items[attempt.ID] = attempt
	s.mu.Unlock()
	return attempt, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (domain.Attempt, error) {
	s.mu.RLock()
	attempt, ok := s.items[id]
	s.mu.RUnlock()

	if !ok || s.expired(attempt) {
		return domain.Attempt{}, ErrNotFound
	}
	return attempt, nil
}

func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) expired(attempt domain.Attempt) bool {
	if s.ttl <= 0 {
		return false
	}
	created := time.UnixMilli(attempt.CreatedAt)
	return s.clock.Now().Sub(created) >= s.ttl
}

func (s *MemoryStore) sweep() {
	ticker := s.clock.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.Chan():
			s.mu.Lock()
			for id, attempt := range s.items {
				if s.expired(attempt) {
					delete(s.items, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
