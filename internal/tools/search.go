// Package tools holds the outbound API clients the planning pipeline
// depends on: web search and weather lookup.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tmc/langchaingo/tools/duckduckgo"
)

// Result is one web-search hit.
type Result struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

// Searcher issues one web search and returns results in rank order.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// SerpSearcher queries the SerpAPI Google-search endpoint.
type SerpSearcher struct {
	APIKey     string
	BaseURL    string
	MaxResults int
	Client     *http.Client
}

func NewSerpSearcher(apiKey string, maxResults int, timeout time.Duration) *SerpSearcher {
	return &SerpSearcher{
		APIKey:     apiKey,
		BaseURL:    "https://serpapi.com/search.json",
		MaxResults: maxResults,
		Client:     &http.Client{Timeout: timeout},
	}
}

func (s *SerpSearcher) Search(ctx context.Context, query string) ([]Result, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("api_key", s.APIKey)
	q.Set("num", fmt.Sprintf("%d", s.MaxResults))

	req, err := http.NewRequestWithContext(ctx, "GET", s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request failed: status code %d", resp.StatusCode)
	}

	var body struct {
		OrganicResults []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
		} `json:"organic_results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	results := make([]Result, 0, len(body.OrganicResults))
	for _, r := range body.OrganicResults {
		results = append(results, Result{Title: r.Title, Snippet: r.Snippet, Link: r.Link})
	}
	return results, nil
}

// DuckDuckGoSearcher wraps the langchaingo DuckDuckGo tool. It is the
// keyless fallback backend when no SerpAPI key is configured.
type DuckDuckGoSearcher struct {
	client *duckduckgo.Tool
}

func NewDuckDuckGoSearcher(maxResults int) (*DuckDuckGoSearcher, error) {
	ddg, err := duckduckgo.New(maxResults, duckduckgo.DefaultUserAgent)
	if err != nil {
		return nil, err
	}
	return &DuckDuckGoSearcher{client: ddg}, nil
}

func (s *DuckDuckGoSearcher) Search(ctx context.Context, query string) ([]Result, error) {
	raw, err := s.client.Call(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return parseDuckDuckGo(raw), nil
}

// parseDuckDuckGo turns the tool's formatted text output back into
// structured results. Blocks are separated by blank lines; labeled
// lines are picked up when present, otherwise the whole block becomes
// the snippet.
func parseDuckDuckGo(raw string) []Result {
	var results []Result
	for _, block := range strings.Split(strings.TrimSpace(raw), "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		var r Result
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, "Title: "):
				r.Title = strings.TrimPrefix(line, "Title: ")
			case strings.HasPrefix(line, "Description: "):
				r.Snippet = strings.TrimPrefix(line, "Description: ")
			case strings.HasPrefix(line, "URL: "):
				r.Link = strings.TrimPrefix(line, "URL: ")
			}
		}
		if r.Title == "" && r.Snippet == "" {
			r.Snippet = block
		}
		results = append(results, r)
	}
	return results
}
