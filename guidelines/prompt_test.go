package guidelines

import (
	"strings"
	"testing"
)

func TestBuildSystemPromptDeterministic(t *testing.T) {
	set := Default()

	first := set.BuildSystemPrompt("fr", "Paris, France")
	second := set.BuildSystemPrompt("fr", "Paris, France")
	if first != second {
		t.Fatalf("same inputs produced different prompts")
	}
}

func TestBuildSystemPromptContainsProhibitedList(t *testing.T) {
	set := Default()

	prompt := set.BuildSystemPrompt("en", "United States")
	want := strings.Join(set.ProhibitedClaims, ", ")
	if !strings.Contains(prompt, want) {
		t.Fatalf("prompt is missing the prohibited phrase list")
	}
}

func TestBuildSystemPromptLanguageDirective(t *testing.T) {
	set := Default()

	prompt := set.BuildSystemPrompt("fr", "Paris, France")
	if !strings.Contains(prompt, "Write primarily in fr") {
		t.Fatalf("prompt is missing the language directive: %s", prompt)
	}

	prompt = set.BuildSystemPrompt("en", "United States")
	if !strings.Contains(prompt, "Default to English") {
		t.Fatalf("prompt is missing the English default directive")
	}
}

func TestBuildSystemPromptDefaultsBlankInputs(t *testing.T) {
	set := Default()

	prompt := set.BuildSystemPrompt("", "")
	if !strings.Contains(prompt, DefaultMarket) {
		t.Fatalf("blank market did not default to %q", DefaultMarket)
	}
	if !strings.Contains(prompt, "Default to English") {
		t.Fatalf("blank lang did not default to English")
	}
}

func TestBuildSystemPromptJurisdictionBlock(t *testing.T) {
	set := Default()

	prompt := set.BuildSystemPrompt("en", "Ontario, Canada")
	if !strings.Contains(prompt, "JURISDICTION RULES (CA_ON)") {
		t.Fatalf("expected the Ontario block, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Alcohol and Gaming Commission of Ontario") {
		t.Fatalf("Ontario block is missing the regulator")
	}

	prompt = set.BuildSystemPrompt("en", "Reykjavik, Iceland")
	if strings.Contains(prompt, "JURISDICTION RULES") {
		t.Fatalf("unrecognized market produced a jurisdiction block")
	}
}

func TestBuildSystemPromptMonopolyRestriction(t *testing.T) {
	set := Default()

	prompt := set.BuildSystemPrompt("en", "Portland, Oregon")
	if !strings.Contains(prompt, "Oregon Lottery is the only licensed operator") {
		t.Fatalf("Oregon block is missing the monopoly restriction")
	}
}

func TestMatchJurisdiction(t *testing.T) {
	set := Default()

	tests := []struct {
		market string
		code   string
		ok     bool
	}{
		{"New Jersey, United States", "US_NJ", true},
		{"Atlantic City, NJ", "US_NJ", true},
		{"Ontario, Canada", "CA_ON", true},
		{"Toronto, Ontario", "CA_ON", true},
		{"Portland, Oregon", "US_OR", true},
		{"Reykjavik, Iceland", "", false},
	}

	for _, tt := range tests {
		j, ok := set.MatchJurisdiction(tt.market)
		if ok != tt.ok {
			t.Fatalf("MatchJurisdiction(%q): ok = %v, want %v", tt.market, ok, tt.ok)
		}
		if ok && j.Code != tt.code {
			t.Fatalf("MatchJurisdiction(%q) = %s, want %s", tt.market, j.Code, tt.code)
		}
	}
}

func TestBuildSystemPromptOmitsMissingFields(t *testing.T) {
	set := &Set{
		ProhibitedClaims: []string{"guaranteed win"},
	}

	prompt := set.BuildSystemPrompt("en", "United States")
	if strings.Contains(prompt, "Write in a  tone") {
		t.Fatalf("empty tone voice was not omitted")
	}
	if !strings.Contains(prompt, "guaranteed win") {
		t.Fatalf("prohibited phrase missing from sparse set prompt")
	}
}
