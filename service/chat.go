package service

import (
	"context"
	"strings"

	"github.com/scribelabs/marketscribe/domain"
	"github.com/scribelabs/marketscribe/llm"
)

// Continue runs one follow-up turn against an existing session: the full
// prior transcript plus the new user message is resent, and the stored
// history gains the user/assistant pair on success.
func (s *Service) Continue(ctx context.Context, req *domain.ChatRequest) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", &domain.ValidationError{Message: "Missing user message."}
	}

	sess, err := s.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return "", err
	}

	model := req.Model
	if model == "" {
		model = sess.Model
	}

	history := append(append([]domain.Message(nil), sess.Messages...), domain.Message{Role: domain.RoleUser, Content: req.Message})

	reply, err := s.llmClient.Complete(ctx, &llm.CompletionRequest{
		Model:       model,
		Messages:    history,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	turn := []domain.Message{
		{Role: domain.RoleUser, Content: req.Message},
		{Role: domain.RoleAssistant, Content: reply},
	}
	if _, err := s.sessions.Append(ctx, req.SessionID, model, turn); err != nil {
		return "", err
	}

	return reply, nil
}
