package ports

import (
	"context"

	"github.com/aretw0/dpda/pkg/domain"
)

// RunStore persists the run-phase state of sessions. Topology is never
// stored; every session of a process runs against the same automaton.
type RunStore interface {
	// Save persists the run state for a given session ID.
	Save(ctx context.Context, sessionID string, state *domain.RunState) error

	// Load retrieves the run state for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.RunState, error)

	// Delete removes the run state for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of stored sessions.
	List(ctx context.Context) ([]string, error)
}
