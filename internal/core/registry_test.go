package core

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

type fakeSender struct {
	mu     sync.Mutex
	frames []Frame
	full   bool
	closed bool
}

func (f *fakeSender) TrySend(fr Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.full || f.closed {
		return errors.New("backpressure")
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeSender) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeSender) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeSender) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func attach(t *testing.T, g *Registry, sid SessionID, key domain.RoomKey) *fakeSender {
	t.Helper()
	s := &fakeSender{}
	g.Attach(sid, s)
	require.True(t, g.Join(sid, key))
	return s
}

func TestJoinIsIdempotent(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("r1")
	attach(t, g, "a", key)
	require.True(t, g.Join("a", key))

	assert.Equal(t, 1, g.MemberCount(key))
}

func TestJoinUnknownSession(t *testing.T) {
	g := NewRegistry()
	assert.False(t, g.Join("ghost", domain.DrawRoom("r1")))
}

func TestEmptyRoomIsCollected(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("r1")
	attach(t, g, "a", key)
	g.Leave("a", key)

	assert.Equal(t, 0, g.MemberCount(key))
	assert.Empty(t, g.List())

	// Relaying against a collected room is a silent no-op.
	res := g.Relay(key, "a", Frame(`{}`), IncludeSender, false)
	assert.Equal(t, PublishResult{}, res)
}

func TestDetachLeavesAllRooms(t *testing.T) {
	g := NewRegistry()
	draw := domain.DrawRoom("r1")
	meta := domain.MetaRoom("r1")
	attach(t, g, "a", draw)
	require.True(t, g.Join("a", meta))
	attach(t, g, "b", draw)

	g.Detach("a")

	assert.Equal(t, 1, g.MemberCount(draw))
	assert.Equal(t, 0, g.MemberCount(meta))
	// Detaching twice is harmless.
	g.Detach("a")
}

func TestRelayExcludeSender(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("r1")
	a := attach(t, g, "a", key)
	b := attach(t, g, "b", key)
	c := attach(t, g, "c", key)

	res := g.Relay(key, "c", Frame(`{"type":"draw:segment"}`), ExcludeSender, false)

	assert.Equal(t, 2, res.Sent)
	assert.Equal(t, 1, a.received())
	assert.Equal(t, 1, b.received())
	assert.Equal(t, 0, c.received())
}

func TestRelayIncludeSender(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("r1")
	a := attach(t, g, "a", key)
	b := attach(t, g, "b", key)
	c := attach(t, g, "c", key)

	res := g.Relay(key, "c", Frame(`{"type":"draw:clear"}`), IncludeSender, true)

	assert.Equal(t, 3, res.Sent)
	assert.Equal(t, 1, a.received())
	assert.Equal(t, 1, b.received())
	assert.Equal(t, 1, c.received())
}

func TestNamespacesDoNotCollide(t *testing.T) {
	g := NewRegistry()
	draw := domain.DrawRoom("room")
	meta := domain.MetaRoom("room")
	a := attach(t, g, "a", draw)
	b := attach(t, g, "b", meta)

	g.Relay(draw, "x", Frame(`{"type":"draw:clear"}`), IncludeSender, true)

	assert.Equal(t, 1, a.received())
	assert.Equal(t, 0, b.received())
}

func TestBackpressureDropsNonCritical(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("r1")
	a := attach(t, g, "a", key)
	b := attach(t, g, "b", key)
	b.full = true

	res := g.Relay(key, "a", Frame(`{"type":"draw:segment"}`), ExcludeSender, false)

	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, []SessionID{"b"}, res.Dropped)
	// Slow member stays: segments are disposable.
	assert.Equal(t, 2, g.MemberCount(key))
	assert.False(t, b.isClosed())
	assert.Equal(t, 0, a.received())
}

func TestBackpressureKicksOnCriticalFrame(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("r1")
	attach(t, g, "a", key)
	b := attach(t, g, "b", key)
	b.full = true

	res := g.Relay(key, "a", Frame(`{"type":"draw:clear"}`), IncludeSender, true)

	assert.Equal(t, []SessionID{"b"}, res.Dropped)
	assert.True(t, b.isClosed())
	assert.Equal(t, 1, g.MemberCount(key))
}

func TestListSnapshot(t *testing.T) {
	g := NewRegistry()
	attach(t, g, "a", domain.DrawRoom("beta"))
	attach(t, g, "b", domain.DrawRoom("alpha"))
	require.True(t, g.Join("b", domain.MetaRoom("alpha")))

	infos := g.List()
	require.Len(t, infos, 3)
	assert.Equal(t, domain.DrawRoom("alpha"), infos[0].Key)
	assert.Equal(t, domain.DrawRoom("beta"), infos[1].Key)
	assert.Equal(t, domain.MetaRoom("alpha"), infos[2].Key)
	assert.Equal(t, 1, infos[0].MemberCount)
}

func TestConcurrentJoinLeave(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("stress")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		sid := SessionID(rune('a' + i))
		g.Attach(sid, &fakeSender{})
		wg.Add(1)
		go func(sid SessionID) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				g.Join(sid, key)
				g.Relay(key, sid, Frame(`{}`), ExcludeSender, false)
				g.Leave(sid, key)
			}
		}(sid)
	}
	wg.Wait()

	assert.Equal(t, 0, g.MemberCount(key))
	assert.Empty(t, g.List())
}

// A join racing the collect of the room's last other member must land
// in the live room: once Join returns true, relays to the key reach
// the joiner.
func TestJoinRacingCollectKeepsMemberReachable(t *testing.T) {
	g := NewRegistry()
	key := domain.DrawRoom("handoff")
	a := &fakeSender{}
	b := &fakeSender{}
	g.Attach("a", a)
	g.Attach("b", b)

	for i := 0; i < 20000; i++ {
		require.True(t, g.Join("b", key))

		left := make(chan struct{})
		go func() {
			g.Leave("b", key)
			close(left)
		}()
		require.True(t, g.Join("a", key))
		<-left

		require.GreaterOrEqual(t, g.MemberCount(key), 1,
			"iteration %d: joined member lost to room collection", i)
		res := g.Relay(key, "b", Frame(`{}`), IncludeSender, false)
		require.NotZero(t, res.Sent, "iteration %d: relay found nobody after ack'd join", i)

		g.Leave("a", key)
	}
}
