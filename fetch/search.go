package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// resultCount is how many top organic results are requested.
const resultCount = 3

type searchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type searchResponse struct {
	OrganicResults []searchResult `json:"organic_results"`
}

// search queries the search API and formats the top organic results as
// numbered blocks. A missing API key degrades to a labeled placeholder and a
// transport failure to a labeled error string; generation proceeds either way.
func (f *Fetcher) search(ctx context.Context, query, location, lang string) string {
	if f.serpKey == "" {
		return fmt.Sprintf("Search results for: %s\n\n[Note: SERPAPI_KEY not configured, using placeholder results]", query)
	}

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("location", location)
	params.Set("hl", lang)
	params.Set("num", strconv.Itoa(resultCount))
	params.Set("api_key", f.serpKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.serpURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Sprintf("Error fetching search results: %v", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Sprintf("Error fetching search results: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Sprintf("Error fetching search results: HTTP %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return fmt.Sprintf("Error fetching search results: %v", err)
	}

	blocks := make([]string, 0, len(data.OrganicResults))
	for i, r := range data.OrganicResults {
		blocks = append(blocks, fmt.Sprintf("RESULT %d:\nTitle: %s\nSnippet: %s\nLink: %s\n", i+1, r.Title, r.Snippet, r.Link))
	}
	return strings.Join(blocks, "\n\n")
}
