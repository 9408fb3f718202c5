package session

import (
	"context"
	"database/sql"
	"encoding/json"

	"liarspoker-server/pkg/db"

	"github.com/lib/pq"
)

// PostgresStore keeps each session as a jsonb document guarded by a revision
// counter, giving Update its compare-and-swap semantics across processes
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a Store backed by the database
func NewPostgresStore(database *sql.DB) *PostgresStore {
	return &PostgresStore{db: database}
}

const uniqueViolation = "23505"

// Create stores a brand new session
func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	const query = `
INSERT INTO sessions (code, revision, state, created, updated)
VALUES ($1, 1, $2, (NOW() AT TIME ZONE 'utc'), (NOW() AT TIME ZONE 'utc'))`

	state, err := json.Marshal(s)
	if err != nil {
		return err
	}

	if _, err := p.db.ExecContext(ctx, query, s.Code, state); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return ErrSessionExists
		}

		return err
	}

	return nil
}

// Get returns the latest committed snapshot
func (p *PostgresStore) Get(ctx context.Context, code string) (*Session, error) {
	const query = `SELECT revision, state FROM sessions WHERE code = $1`

	s, _, err := scanSession(p.db.QueryRowContext(ctx, query, code))
	return s, err
}

// Update applies fn under compare-and-swap semantics: the write only lands if
// the revision read is still current, otherwise the update retries from a
// fresh read. Conflicts never escape this method.
func (p *PostgresStore) Update(ctx context.Context, code string, fn func(*Session) error) (*Session, error) {
	const selectQuery = `SELECT revision, state FROM sessions WHERE code = $1`
	const updateQuery = `
UPDATE sessions
SET revision = revision + 1, state = $1, updated = (NOW() AT TIME ZONE 'utc')
WHERE code = $2 AND revision = $3`

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		snapshot, revision, err := scanSession(p.db.QueryRowContext(ctx, selectQuery, code))
		if err != nil {
			return nil, err
		}

		if err := fn(snapshot); err != nil {
			return nil, err
		}

		state, err := json.Marshal(snapshot)
		if err != nil {
			return nil, err
		}

		result, err := p.db.ExecContext(ctx, updateQuery, state, code, revision)
		if err != nil {
			return nil, err
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}

		if rows == 0 {
			// somebody else committed first; retry from a fresh read
			continue
		}

		return snapshot, nil
	}
}

func scanSession(scanner db.Scanner) (*Session, int64, error) {
	var revision int64
	var state []byte

	if err := scanner.Scan(&revision, &state); err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, ErrSessionNotFound
		}

		return nil, 0, err
	}

	var s Session
	if err := json.Unmarshal(state, &s); err != nil {
		return nil, 0, err
	}

	return &s, revision, nil
}
