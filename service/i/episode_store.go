package i

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrEpisodeNotFound is returned when an episode is absent from the store.
var ErrEpisodeNotFound = errors.New("episode not found")

// EpisodeStore keeps serialized episode state between actions. Update must
// hold a lock on the episode for the whole read-modify-write so that
// concurrent actions on the same episode never interleave.
type EpisodeStore interface {
	// Create stores the initial state of a new episode.
	Create(ctx context.Context, id uuid.UUID, state []byte) error

	// Get returns the current state of an episode.
	Get(ctx context.Context, id uuid.UUID) ([]byte, error)

	// Update atomically replaces the state of an episode with the result of fn.
	Update(ctx context.Context, id uuid.UUID, fn func(state []byte) ([]byte, error)) error

	// Delete removes an episode from the store.
	Delete(ctx context.Context, id uuid.UUID) error
}
