// Package llm provides a client for an OpenAI-compatible chat completion API.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/scribelabs/marketscribe/domain"
)

// CompletionRequest is the provider-agnostic request the orchestration layer
// builds: a role-tagged message list plus sampling parameters.
type CompletionRequest struct {
	Model       string
	Messages    []domain.Message
	Temperature *float64
	MaxTokens   *int
}

// ChatClient is the contract the orchestration layer depends on: send the
// message list, get the assistant's reply text back.
type ChatClient interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

// Client is the OpenAI-compatible HTTP client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Ensure Client implements ChatClient.
var _ ChatClient = (*Client)(nil)

// NewClient creates a new client for the given provider base URL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// chatCompletionRequest is the wire request for /v1/chat/completions.
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse is the wire response for /v1/chat/completions.
type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   *usage   `json:"usage,omitempty"`
}

type choice struct {
	Index        int          `json:"index"`
	Message      *chatMessage `json:"message,omitempty"`
	FinishReason string       `json:"finish_reason,omitempty"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type errorResponse struct {
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
}

// Complete sends a chat completion request and returns the assistant reply
// text. Any provider failure surfaces as an UpstreamError with the provider
// message passed through.
func (c *Client) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	if c.apiKey == "" {
		return "", &domain.ConfigError{Message: "LLM API key is not configured"}
	}

	wire := chatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	wire.Messages = make([]chatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		wire.Messages = append(wire.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	body, err := json.Marshal(wire)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &domain.UpstreamError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domain.UpstreamError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return "", &domain.UpstreamError{Err: fmt.Errorf("LLM API error [%d]: %s (type: %s)", resp.StatusCode, errResp.Error.Message, errResp.Error.Type)}
		}
		return "", &domain.UpstreamError{Err: fmt.Errorf("LLM API error [%d]: %s", resp.StatusCode, string(respBody))}
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &domain.UpstreamError{Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	if len(result.Choices) == 0 || result.Choices[0].Message == nil {
		return "", &domain.UpstreamError{Err: fmt.Errorf("LLM returned no choices")}
	}

	return result.Choices[0].Message.Content, nil
}

// Model represents a model from the models list.
type Model struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

type modelsResponse struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// ListModels retrieves the list of available models.
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("LLM API error [%d]: %s", resp.StatusCode, string(respBody))
	}

	var result modelsResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return result.Data, nil
}

// setHeaders sets common request headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
