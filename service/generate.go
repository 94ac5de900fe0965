package service

import (
	"context"
	"fmt"
	"log"

	"github.com/scribelabs/marketscribe/domain"
	"github.com/scribelabs/marketscribe/guidelines"
	"github.com/scribelabs/marketscribe/llm"
	"github.com/scribelabs/marketscribe/policy"
)

// GenerateResult is what a successful generation returns to the endpoint.
type GenerateResult struct {
	Text      string
	SessionID string
}

// Generate runs the full pipeline: admission policy, background fetch, prompt
// construction, the LLM call, and session creation. No partial session is
// created on any failure.
func (s *Service) Generate(ctx context.Context, req *domain.ProcessRequest) (*GenerateResult, error) {
	market := req.Market
	if market == "" {
		market = guidelines.DefaultMarket
	}
	lang := req.Lang
	if lang == "" {
		lang = guidelines.DefaultLang
	}
	model := req.Model
	if model == "" {
		model = s.cfg.LLMModel
	}

	if s.policy != nil {
		decision, reason, err := s.policy.Evaluate(ctx, policy.Input{
			Topic:         req.InputContent,
			Market:        market,
			DeniedPhrases: s.guidelines.ProhibitedClaims,
		})
		if err != nil {
			log.Printf("WARN: content policy evaluation failed: %v", err)
		} else if decision == policy.DecisionBlock {
			if reason == "" {
				reason = "blocked by content policy"
			}
			return nil, &domain.ValidationError{Message: "This topic cannot be processed: " + reason}
		}
	}

	background, err := s.fetcher.Fetch(ctx, req.InputType, req.InputContent, market, lang)
	if err != nil {
		return nil, err
	}

	messages := []domain.Message{
		{Role: domain.RoleSystem, Content: s.guidelines.BuildSystemPrompt(lang, market)},
		{Role: domain.RoleUser, Content: buildUserMessage(lang, market, domain.WordTarget(req.ArticleLength), req.InputContent, background)},
	}

	reply, err := s.llmClient.Complete(ctx, &llm.CompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	history := append(messages, domain.Message{Role: domain.RoleAssistant, Content: reply})
	sessionID, err := s.sessions.Create(ctx, model, history)
	if err != nil {
		return nil, err
	}

	return &GenerateResult{Text: reply, SessionID: sessionID}, nil
}

// buildUserMessage assembles the user turn. The word-count target lives here,
// not in the system prompt.
func buildUserMessage(lang, market, wordTarget, topic, background string) string {
	return fmt.Sprintf(`LANGUAGE: %[1]s
TARGET MARKET: %[2]s
ARTICLE LENGTH: %[3]s

Write a complete article about: %[4]q

CRITICAL INSTRUCTIONS:
- Write the ENTIRE article in %[1]s
- All headings, subheadings, and content must be in %[1]s
- Target readers in %[2]s
- Do not mention this is based on provided content
- Use natural, engaging %[1]s that residents of %[2]s would understand

Research content for reference:
%[5]s`, lang, market, wordTarget, topic, background)
}
