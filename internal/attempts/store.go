// Package attempts persists practice attempts. Two backends are
// provided: an in-process map for single-node deployments and Redis
// when attempts must survive restarts or be shared across instances.
package attempts

import (
	"context"
	"errors"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/domain"
)

// ErrNotFound is returned when no attempt exists for the given id.
var ErrNotFound = errors.New("attempt not found")

// Store saves and retrieves attempts by id.
type Store interface {
	// Save assigns an id and creation time to the payload and
	// persists it, returning the stored attempt.
	Save(ctx context.Context, payload []byte) (domain.Attempt, error)
	// Get returns the attempt for id, or ErrNotFound.
	Get(ctx context.Context, id string) (domain.Attempt, error)
	// Close releases backend resources.
	Close() error
}
