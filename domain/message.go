// Package domain defines the core domain models for the content service.
package domain

// Message roles. A session's history always starts with a system message
// followed by alternating user/assistant turns.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn in a conversation. Messages are ordered and
// immutable once appended to a session.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
