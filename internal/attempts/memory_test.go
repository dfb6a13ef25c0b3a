package attempts

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySaveAndGet(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	saved, err := store.Save(context.Background(), []byte(`{"answer":"42"}`))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotZero(t, saved.CreatedAt)

	got, err := store.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestMemoryGetUnknownID(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySaveCopiesPayload(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	payload := []byte(`{"a":1}`)
	saved, err := store.Save(context.Background(), payload)
	require.NoError(t, err)

	payload[2] = 'z'

	got, err := store.Get(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got.Payload))
}

func TestMemoryTTLExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	store := NewMemoryStoreWithClock(time.Hour, clock)
	defer store.Close()

	saved, err := store.Save(context.Background(), []byte(`{}`))
	require.NoError(t, err)

	clock.Advance(30 * time.Minute)
	_, err = store.Get(context.Background(), saved.ID)
	assert.NoError(t, err)

	clock.Advance(31 * time.Minute)
	_, err = store.Get(context.Background(), saved.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
