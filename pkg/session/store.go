package session

import (
	"context"
)

// Store persists sessions and applies transitions with serializable,
// optimistic-concurrency semantics.
//
// Update reads the current snapshot, applies fn to a private copy, and
// commits only if no other update landed in between; on a conflict the whole
// thing is retried from a fresh read. A failed fn leaves no observable trace.
// Conflicts are never surfaced to the caller.
type Store interface {
	// Create stores a brand new session. Returns ErrSessionExists if the
	// code is already taken.
	Create(ctx context.Context, s *Session) error

	// Get returns the latest committed snapshot
	Get(ctx context.Context, code string) (*Session, error)

	// Update atomically applies fn and returns the committed snapshot
	Update(ctx context.Context, code string, fn func(*Session) error) (*Session, error)
}
