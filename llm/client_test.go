package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/scribelabs/marketscribe/domain"
)

func TestCompleteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %s", auth)
		}

		var wire chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if wire.Model != "gpt-4o-mini" {
			t.Fatalf("unexpected model: %s", wire.Model)
		}
		if len(wire.Messages) != 2 || wire.Messages[1].Role != "user" {
			t.Fatalf("unexpected messages: %+v", wire.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"Here is your article."},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	reply, err := client.Complete(context.Background(), &CompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: "You are a writer."},
			{Role: domain.RoleUser, Content: "Write something."},
		},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if reply != "Here is your article." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{Model: "gpt-4o-mini"})

	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %T: %v", err, err)
	}
}

func TestCompleteProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key", time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{Model: "gpt-4o-mini"})

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Fatalf("provider message not passed through: %v", err)
	}
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id":"chatcmpl-2","object":"chat.completion","choices":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	_, err := client.Complete(context.Background(), &CompletionRequest{Model: "gpt-4o-mini"})

	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T: %v", err, err)
	}
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"object":"list","data":[{"id":"gpt-4o-mini","object":"model","owned_by":"openai"}]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)
	models, err := client.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}
	if len(models) != 1 || models[0].ID != "gpt-4o-mini" {
		t.Fatalf("unexpected models: %+v", models)
	}
}
