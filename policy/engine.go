// Package policy provides rego-based admission checks for inbound topics.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decisions returned by Evaluate.
const (
	DecisionAllow = "allow"
	DecisionBlock = "block"
)

// Input is the document the content policy evaluates.
type Input struct {
	Topic         string   `json:"topic"`
	Market        string   `json:"market"`
	DeniedPhrases []string `json:"denied_phrases"`
}

// Engine is the OPA policy engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new policy engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.content_policy"),
		rego.Module("content_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the content policy for a generation request.
// Returns: decision (allow, block), reason (optional), error.
func (e *Engine) Evaluate(ctx context.Context, input Input) (string, string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		// The policy defines a default, so an empty result means allow.
		return DecisionAllow, "", nil
	}

	doc, ok := results[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return DecisionAllow, "", nil
	}

	decision := DecisionAllow
	if d, ok := doc["decision"].(string); ok {
		decision = d
	}

	var reason string
	if violations, ok := doc["violations"].([]interface{}); ok && len(violations) > 0 {
		if phrase, ok := violations[0].(string); ok {
			reason = fmt.Sprintf("topic contains prohibited phrase %q", phrase)
		}
	}

	return decision, reason, nil
}

// DefaultPolicy is the default content policy. Topics that themselves ask for
// prohibited claims are blocked before any upstream call is made.
const DefaultPolicy = `
package content_policy

import rego.v1

violations contains phrase if {
	some phrase in input.denied_phrases
	contains(lower(input.topic), lower(phrase))
}

default decision := "allow"

decision := "block" if count(violations) > 0
`
