package guidelines

import (
	"fmt"
	"strings"
)

const (
	// DefaultMarket is used when the request leaves the market blank.
	DefaultMarket = "United States"
	// DefaultLang is used when the request leaves the language blank.
	DefaultLang = "en"
)

// MatchJurisdiction resolves a free-text market string to a jurisdiction from
// the set. Matching is permissive substring matching because the market field
// is free text from an autocomplete input, not a controlled enum. The second
// return is false when no known jurisdiction matches; generic rules apply then.
func (s *Set) MatchJurisdiction(market string) (Jurisdiction, bool) {
	m := strings.ToLower(market)

	// The bare "or" check is last: city names like Toronto contain it.
	var code string
	switch {
	case strings.Contains(m, "new jersey") || strings.Contains(m, "nj"):
		code = "US_NJ"
	case strings.Contains(m, "ontario") || strings.Contains(m, "canada"):
		code = "CA_ON"
	case strings.Contains(m, "oregon") || strings.Contains(m, "or"):
		code = "US_OR"
	default:
		return Jurisdiction{}, false
	}

	j, ok := s.Jurisdictions[code]
	return j, ok
}

// BuildSystemPrompt renders the guideline set plus the run-time market and
// language into the single system message sent ahead of every generation.
// Pure and deterministic: same inputs, same string. Missing guideline fields
// are omitted, never an error.
func (s *Set) BuildSystemPrompt(lang, market string) string {
	if market == "" {
		market = DefaultMarket
	}
	if lang == "" {
		lang = DefaultLang
	}

	var b strings.Builder

	b.WriteString("You are an expert iGaming content writer with comprehensive knowledge of global gambling regulations and compliance requirements.\n\n")

	fmt.Fprintf(&b, `CRITICAL COMPLIANCE RESEARCH TASK:
Before writing any content, you must research and apply the specific gambling/iGaming compliance requirements for %[1]s. This includes:

REQUIRED RESEARCH FOR %[1]s:
1. Legal gambling age (varies by jurisdiction - research current requirements)
2. Licensed/authorized gambling operators (avoid unlicensed offshore platforms)
3. Local responsible gambling helplines and support resources
4. Regulatory authority names and contact information
5. Required legal disclaimers and warnings
6. Market-specific prohibited language or claims
7. Advertising standards and restrictions
8. Any recent regulatory changes or updates

COMPLIANCE APPLICATION:
- Use the researched information throughout your content naturally
- Include appropriate responsible gambling resources for %[1]s
- Mention only licensed operators where applicable
- Apply age restrictions correctly for the jurisdiction
- Avoid prohibited language or misleading claims
- Do NOT explicitly mention this research process in your content`, market)

	b.WriteString("\n\nCONTENT GUIDELINES:")
	if s.Tone.Voice != "" {
		fmt.Fprintf(&b, "\n- Write in a %s tone", s.Tone.Voice)
	}
	if s.Tone.Perspective != "" {
		fmt.Fprintf(&b, "\n- Use %s perspective", s.Tone.Perspective)
	}
	if s.Tone.MaxSentenceLength > 0 {
		fmt.Fprintf(&b, "\n- Maximum %d words per sentence", s.Tone.MaxSentenceLength)
	}
	if s.MinimumAge > 0 {
		fmt.Fprintf(&b, "\n- Never target or depict anyone under %d", s.MinimumAge)
	}
	b.WriteString("\n- Maintain balance between entertainment and risk awareness")

	if len(s.ProhibitedClaims) > 0 {
		fmt.Fprintf(&b, "\n\nGLOBALLY PROHIBITED LANGUAGE:\nNever use these phrases: %s", strings.Join(s.ProhibitedClaims, ", "))
	}

	b.WriteString("\n\nSTYLE REQUIREMENTS:")
	if s.Style.Contractions != "" {
		fmt.Fprintf(&b, "\n- Contractions: %s", s.Style.Contractions)
	}
	if s.Style.Jargon != "" {
		fmt.Fprintf(&b, "\n- Jargon: %s", s.Style.Jargon)
	}
	if s.Style.SentenceVariety != "" {
		fmt.Fprintf(&b, "\n- Sentence variety: %s", s.Style.SentenceVariety)
	}
	if s.Style.Structure != "" {
		fmt.Fprintf(&b, "\n- Structure: %s", s.Style.Structure)
	}

	if j, ok := s.MatchJurisdiction(market); ok {
		fmt.Fprintf(&b, "\n\nJURISDICTION RULES (%s):", j.Code)
		if j.Regulator != "" {
			fmt.Fprintf(&b, "\n- Regulator: %s", j.Regulator)
		}
		if j.MinimumAge > 0 {
			fmt.Fprintf(&b, "\n- Minimum gambling age: %d", j.MinimumAge)
		}
		if j.Helpline != "" {
			fmt.Fprintf(&b, "\n- Responsible gambling helpline: %s", j.Helpline)
		}
		if len(j.LegalMethods) > 0 {
			fmt.Fprintf(&b, "\n- Legal gambling methods: %s", strings.Join(j.LegalMethods, ", "))
		}
		if j.MonopolyOperator != "" {
			fmt.Fprintf(&b, "\n- %s is the only licensed operator in this market; do not promote any other operator", j.MonopolyOperator)
		}
		for _, d := range j.Disclosures {
			fmt.Fprintf(&b, "\n- Required disclosure: %s", d)
		}
	}

	if lang == DefaultLang {
		b.WriteString("\n\nLANGUAGE: Default to English, but you can write in other languages if specifically requested by the user.")
	} else {
		fmt.Fprintf(&b, "\n\nLANGUAGE: Write primarily in %s, but you can use other languages if specifically requested by the user.", lang)
	}

	if len(s.CorePrinciples) > 0 {
		b.WriteString("\n\nCORE PRINCIPLES:")
		for _, p := range s.CorePrinciples {
			fmt.Fprintf(&b, "\n- %s", p.Description)
		}
	}

	fmt.Fprintf(&b, "\n\nFINAL REMINDER: All content must comply with %s gambling regulations. Research and apply current compliance requirements without explicitly mentioning the research process.", market)

	return b.String()
}
