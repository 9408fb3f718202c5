package session

import (
	"context"
	"sync"
)

type memoryRecord struct {
	snapshot *Session
	revision int64
}

// MemoryStore is an in-process Store for tests and single-node deployments
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memoryRecord
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*memoryRecord),
	}
}

// Create stores a brand new session
func (m *MemoryStore) Create(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[s.Code]; ok {
		return ErrSessionExists
	}

	m.sessions[s.Code] = &memoryRecord{
		snapshot: s.Clone(),
		revision: 1,
	}

	return nil
}

// Get returns the latest committed snapshot
func (m *MemoryStore) Get(ctx context.Context, code string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.sessions[code]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return record.snapshot.Clone(), nil
}

// Update applies fn under compare-and-swap semantics. fn runs on a private
// copy outside the lock; the result is committed only if the revision is
// unchanged, otherwise the update is retried from a fresh read.
func (m *MemoryStore) Update(ctx context.Context, code string, fn func(*Session) error) (*Session, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m.mu.Lock()
		record, ok := m.sessions[code]
		if !ok {
			m.mu.Unlock()
			return nil, ErrSessionNotFound
		}

		snapshot := record.snapshot.Clone()
		revision := record.revision
		m.mu.Unlock()

		if err := fn(snapshot); err != nil {
			return nil, err
		}

		m.mu.Lock()
		if record.revision != revision {
			// somebody else committed first; retry from a fresh read
			m.mu.Unlock()
			continue
		}

		record.snapshot = snapshot
		record.revision++
		m.mu.Unlock()

		return snapshot.Clone(), nil
	}
}
