// Package service orchestrates content generation and follow-up chat.
package service

import (
	"github.com/scribelabs/marketscribe/config"
	"github.com/scribelabs/marketscribe/fetch"
	"github.com/scribelabs/marketscribe/guidelines"
	"github.com/scribelabs/marketscribe/llm"
	"github.com/scribelabs/marketscribe/policy"
	"github.com/scribelabs/marketscribe/session"
)

// Service ties the fetcher, prompt builder, policy engine, LLM client and
// session manager together behind the two endpoint operations.
type Service struct {
	cfg        *config.Config
	fetcher    *fetch.Fetcher
	llmClient  llm.ChatClient
	sessions   *session.Manager
	guidelines *guidelines.Set
	policy     *policy.Engine
}

// New creates the service.
func New(cfg *config.Config, fetcher *fetch.Fetcher, llmClient llm.ChatClient, sessions *session.Manager, gs *guidelines.Set, engine *policy.Engine) *Service {
	return &Service{
		cfg:        cfg,
		fetcher:    fetcher,
		llmClient:  llmClient,
		sessions:   sessions,
		guidelines: gs,
		policy:     engine,
	}
}
