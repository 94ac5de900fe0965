package domain

// Input modes for /process.
const (
	InputTypeURL    = "url"
	InputTypeSearch = "search"
)

// ProcessRequest is the body of POST /process.
type ProcessRequest struct {
	Model         string   `json:"model,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	MaxTokens     *int     `json:"max_tokens,omitempty"`
	Market        string   `json:"market,omitempty"`
	Lang          string   `json:"lang,omitempty"`
	InputType     string   `json:"input_type"`
	InputContent  string   `json:"input_content"`
	ArticleLength string   `json:"article_length,omitempty"`
}

// ChatRequest is the body of POST /continue_chat.
type ChatRequest struct {
	SessionID   string   `json:"session_id"`
	Message     string   `json:"message"`
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
}

// ProcessResponse is the success body of POST /process.
type ProcessResponse struct {
	Status    string `json:"status"`
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the success body of POST /continue_chat.
type ChatResponse struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// LocationSuggestion is one entry of GET /location_suggest.
type LocationSuggestion struct {
	CanonicalName string `json:"canonical_name"`
}

// WordTarget maps an article length band to the word-count phrase embedded in
// the user message. Unknown bands fall back to medium.
func WordTarget(articleLength string) string {
	switch articleLength {
	case "short":
		return "approximately 500 words"
	case "long":
		return "approximately 3000+ words"
	default:
		return "approximately 1500-2500 words"
	}
}
