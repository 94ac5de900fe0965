package domain

import "time"

// Session is a server-held conversation thread identified by an opaque token.
// The session manager owns every Session; other components hold only the id.
type Session struct {
	ID        string    `json:"session_id"`
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session TTL has elapsed at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
