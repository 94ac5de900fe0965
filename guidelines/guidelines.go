// Package guidelines holds the compliance ruleset and the system prompt builder.
//
// The ruleset is a typed, read-only structure loaded once at process start.
// Keeping it explicitly typed means a missing field is a zero value the prompt
// builder can skip, not a silently stringified blob.
package guidelines

import (
	"encoding/json"
	"fmt"
	"os"
)

// ToneRules constrain the overall register of generated articles.
type ToneRules struct {
	Voice             string `json:"voice"`
	Perspective       string `json:"perspective"`
	MaxSentenceLength int    `json:"max_sentence_length"`
}

// StyleRules constrain sentence-level writing mechanics.
type StyleRules struct {
	Contractions    string `json:"contractions"`
	Jargon          string `json:"jargon"`
	SentenceVariety string `json:"sentence_variety"`
	Structure       string `json:"structure"`
}

// Principle is a named writing principle appended near the end of the prompt.
type Principle struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Jurisdiction holds the compliance overrides for one regulatory region.
type Jurisdiction struct {
	Code             string   `json:"code"`
	Regulator        string   `json:"regulator"`
	MinimumAge       int      `json:"minimum_age"`
	Helpline         string   `json:"helpline"`
	LegalMethods     []string `json:"legal_methods"`
	MonopolyOperator string   `json:"monopoly_operator,omitempty"`
	Disclosures      []string `json:"disclosures,omitempty"`
}

// Set is the full guideline ruleset. Read-only for the process lifetime.
type Set struct {
	Tone             ToneRules               `json:"tone"`
	Style            StyleRules              `json:"style"`
	MinimumAge       int                     `json:"minimum_age"`
	ProhibitedClaims []string                `json:"prohibited_claims"`
	CorePrinciples   []Principle             `json:"core_principles"`
	Jurisdictions    map[string]Jurisdiction `json:"jurisdictions"`
}

// Default returns the compiled-in guideline set.
func Default() *Set {
	return &Set{
		Tone: ToneRules{
			Voice:             "informative yet accessible",
			Perspective:       "second person",
			MaxSentenceLength: 20,
		},
		Style: StyleRules{
			Contractions:    "use them naturally",
			Jargon:          "explain industry terms on first use",
			SentenceVariety: "mix short and medium sentences",
			Structure:       "short paragraphs with descriptive headings",
		},
		MinimumAge: 18,
		ProhibitedClaims: []string{
			"guaranteed win",
			"risk-free",
			"100% safe",
			"beat the house",
			"easy money",
			"get rich quick",
			"sure thing",
			"can't lose",
		},
		CorePrinciples: []Principle{
			{
				Name:        "authentic_tone",
				Description: "Maintain balance between entertainment value and honest risk awareness",
			},
			{
				Name:        "compliance_first",
				Description: "Regulatory compliance takes precedence over marketing impact",
			},
			{
				Name:        "contextual_awareness",
				Description: "Adapt terminology and examples to the target market's conventions",
			},
		},
		Jurisdictions: map[string]Jurisdiction{
			"US_NJ": {
				Code:         "US_NJ",
				Regulator:    "New Jersey Division of Gaming Enforcement",
				MinimumAge:   21,
				Helpline:     "1-800-GAMBLER",
				LegalMethods: []string{"licensed online casinos", "online sports betting", "online poker"},
				Disclosures: []string{
					"If you or someone you know has a gambling problem, call 1-800-GAMBLER.",
				},
			},
			"US_OR": {
				Code:             "US_OR",
				Regulator:        "Oregon Lottery Commission",
				MinimumAge:       21,
				Helpline:         "1-877-MY-LIMIT",
				LegalMethods:     []string{"state lottery", "sports betting through the state lottery"},
				MonopolyOperator: "Oregon Lottery",
			},
			"CA_ON": {
				Code:         "CA_ON",
				Regulator:    "Alcohol and Gaming Commission of Ontario (AGCO)",
				MinimumAge:   19,
				Helpline:     "ConnexOntario 1-866-531-2600",
				LegalMethods: []string{"AGCO-licensed online casinos", "online sports betting"},
				Disclosures: []string{
					"Please play responsibly. Gambling can be addictive.",
				},
			},
		},
	}
}

// Load reads a guideline set from a JSON file, falling back to the compiled-in
// default when path is empty.
func Load(path string) (*Set, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read guidelines: %w", err)
	}
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse guidelines: %w", err)
	}
	return &set, nil
}
