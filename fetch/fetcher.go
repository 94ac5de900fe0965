// Package fetch gathers background material for article generation, either by
// scraping a single URL or by querying a search API.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/scribelabs/marketscribe/domain"
)

const (
	// maxTextChars is the character budget for background text.
	maxTextChars = 8000
	// maxBodyBytes caps how much of a page body is read.
	maxBodyBytes = 2 << 20

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Fetcher retrieves background text. One outbound call per request, no
// retries, no caching.
type Fetcher struct {
	httpClient *http.Client
	serpURL    string
	serpKey    string
}

// New creates a Fetcher. The timeout applies to every outbound call.
func New(serpURL, serpKey string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		serpURL:    strings.TrimSuffix(serpURL, "/"),
		serpKey:    serpKey,
	}
}

// Fetch returns plain-text background material for the given input mode.
// URL failures surface as a FetchError; search failures degrade to a labeled
// string so generation can still proceed.
func (f *Fetcher) Fetch(ctx context.Context, mode, content, market, lang string) (string, error) {
	switch mode {
	case domain.InputTypeURL:
		return f.fetchURL(ctx, content)
	case domain.InputTypeSearch:
		return f.search(ctx, content, market, lang), nil
	default:
		return "", &domain.ValidationError{Message: fmt.Sprintf("unknown input type %q", mode)}
	}
}

// fetchURL issues a single GET with a browser-like user agent and reduces the
// response to stripped, whitespace-collapsed text.
func (f *Fetcher) fetchURL(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &domain.FetchError{URL: rawURL, Err: err}
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", &domain.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.FetchError{URL: rawURL, Err: fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", &domain.FetchError{URL: rawURL, Err: err}
	}

	return ExtractText(string(body)), nil
}

// ExtractText strips script and style blocks and all remaining markup from an
// HTML document, collapses whitespace, and truncates to the text budget.
func ExtractText(doc string) string {
	z := html.NewTokenizer(strings.NewReader(doc))
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			return collapse(b.String())
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				skip++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "script", "style":
				if skip > 0 {
					skip--
				}
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func collapse(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > maxTextChars {
		text = text[:maxTextChars]
	}
	return text
}
