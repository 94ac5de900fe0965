package store

import (
	"context"
	"sync"
	"time"

	"github.com/scribelabs/marketscribe/domain"
)

// MemoryStore keeps sessions in process memory. Suitable for single-instance
// deployments; a background sweep reclaims expired entries.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryStore creates an in-memory store and starts its sweep goroutine.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*domain.Session),
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Put inserts or replaces a session.
func (s *MemoryStore) Put(ctx context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

// Get returns a session by id, or nil when the id is unknown.
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	return cloneSession(session), nil
}

// Delete removes a session.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Close stops the sweep goroutine.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, session := range s.sessions {
				if session.Expired(now) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// cloneSession copies a session so callers never share message slices with
// the map's entry.
func cloneSession(session *domain.Session) *domain.Session {
	cp := *session
	cp.Messages = append([]domain.Message(nil), session.Messages...)
	return &cp
}
