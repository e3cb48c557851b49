// Package search provides a web search client for the Tavily API.
//
// Results are normalized to a fixed shape with empty-string defaults so
// callers never deal with the provider's inconsistent optional fields.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// tavilySearchBase is the Tavily search endpoint. Declared as a var so
// tests can substitute an httptest server.
var tavilySearchBase = "https://api.tavily.com/search"

// Result is one normalized web search result. URL is always non-empty for
// a valid result; every other field may be empty when the provider omits it.
type Result struct {
	Title       string
	URL         string
	Snippet     string
	PublishedAt string
	Source      string
}

// Client queries the Tavily search API.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
}

// NewClient creates a Tavily client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		HTTPClient: http.DefaultClient,
		APIKey:     apiKey,
	}
}

type tavilyRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type tavilyResult struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	Snippet       string `json:"snippet"`
	PublishedDate string `json:"published_date"`
	PublishedAt   string `json:"published_at"`
	Source        string `json:"source"`
}

type tavilyResponse struct {
	Results []tavilyResult `json:"results"`
}

// Search executes one query and returns up to maxResults normalized results.
// Results without a URL are dropped. An empty result set is not an error.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Result, error) {
	if query == "" {
		return nil, fmt.Errorf("search: empty query")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	body, err := json.Marshal(tavilyRequest{
		APIKey:     c.APIKey,
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("search: encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tavilySearchBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("search: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: tavily request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search: tavily returned HTTP %d", resp.StatusCode)
	}

	var tr tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("search: parsing tavily response: %w", err)
	}

	var results []Result
	for _, raw := range tr.Results {
		if raw.URL == "" {
			continue
		}
		r := Result{
			Title:       raw.Title,
			URL:         raw.URL,
			Snippet:     raw.Content,
			PublishedAt: raw.PublishedDate,
			Source:      raw.Source,
		}
		// Providers are inconsistent about field names; fall back to the
		// alternate spellings before giving up.
		if r.Snippet == "" {
			r.Snippet = raw.Snippet
		}
		if r.PublishedAt == "" {
			r.PublishedAt = raw.PublishedAt
		}
		results = append(results, r)
		if len(results) >= maxResults {
			break
		}
	}

	return results, nil
}
