// Package store defines the session persistence interface and implementations.
//
// TTL semantics live in the session manager; backends persist whatever session
// state they are handed. The badger backend additionally uses native entry TTL
// so expired entries vanish without a sweep.
package store

import (
	"context"
	"time"

	"github.com/scribelabs/marketscribe/domain"
)

// Store is the persistence contract for sessions.
type Store interface {
	// Put inserts or replaces a session.
	Put(ctx context.Context, session *domain.Session) error

	// Get returns a session by id, or nil when the id is unknown.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, sessionID string) error

	// Lifecycle
	Close() error
}

// sweepInterval is how often the memory and sqlite backends reclaim expired
// entries. Reclamation timing is best-effort; the manager never returns an
// expired session regardless.
const sweepInterval = 5 * time.Minute
