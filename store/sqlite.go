package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/scribelabs/marketscribe/domain"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	stop     chan struct{}
	stopOnce sync.Once
}

// NewSQLiteStore creates a new SQLite store.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db, stop: make(chan struct{})}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	go store.sweep()
	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			model TEXT NOT NULL,
			messages TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			expires_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_expires ON sessions(expires_at)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close stops the sweep goroutine and closes the database connection.
func (s *SQLiteStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return s.db.Close()
}

// Put inserts or replaces a session.
func (s *SQLiteStore) Put(ctx context.Context, session *domain.Session) error {
	messages, err := json.Marshal(session.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, model, messages, created_at, expires_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET model = excluded.model, messages = excluded.messages, expires_at = excluded.expires_at`,
		session.ID, session.Model, string(messages), session.CreatedAt, session.ExpiresAt)
	return err
}

// Get retrieves a session by id, or nil when the id is unknown.
func (s *SQLiteStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	var session domain.Session
	var messages string
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, model, messages, created_at, expires_at FROM sessions WHERE session_id = ?`,
		sessionID).Scan(&session.ID, &session.Model, &messages, &session.CreatedAt, &session.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(messages), &session.Messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *SQLiteStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, sessionID)
	return err
}

func (s *SQLiteStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-ticker.C:
			if _, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at < ?`, now); err != nil {
				// Expired rows stay unreachable through the manager either way.
				continue
			}
		}
	}
}
