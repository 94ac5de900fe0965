// Package session implements the conversation session manager: opaque id
// generation, sliding TTL enforcement, and message history updates over a
// pluggable storage backend.
package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/scribelabs/marketscribe/domain"
	"github.com/scribelabs/marketscribe/store"
)

// DefaultTTL is the reference session lifetime.
const DefaultTTL = time.Hour

// Manager owns the lifecycle of every session. Other components hold session
// ids only; all reads and writes go through here.
type Manager struct {
	store store.Store
	ttl   time.Duration
	now   func() time.Time
}

// New creates a Manager with the given backing store and sliding TTL.
func New(st store.Store, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{store: st, ttl: ttl, now: time.Now}
}

// Create stores a new session seeded with the given messages and returns its
// id. Ids are v4 UUIDs, so collisions with live ids are not a practical
// concern.
func (m *Manager) Create(ctx context.Context, model string, messages []domain.Message) (string, error) {
	now := m.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Model:     model,
		Messages:  messages,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Put(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return session.ID, nil
}

// Get returns the session when it exists and is within its TTL. Unknown and
// expired ids are indistinguishable: both return ErrSessionNotFound. Expired
// entries are deleted lazily on read.
func (m *Manager) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := m.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	if session.Expired(m.now()) {
		if err := m.store.Delete(ctx, sessionID); err != nil {
			log.Printf("WARN: failed to delete expired session %s: %v", sessionID, err)
		}
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// Append adds messages to an existing session and refreshes its expiry.
// A non-empty model replaces the stored one. Concurrent appends against the
// same id are last-write-wins; a conversational user issues one request at a
// time.
func (m *Manager) Append(ctx context.Context, sessionID, model string, messages []domain.Message) (*domain.Session, error) {
	session, err := m.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Messages = append(session.Messages, messages...)
	if model != "" {
		session.Model = model
	}
	session.ExpiresAt = m.now().Add(m.ttl)

	if err := m.store.Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return session, nil
}
