package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DuckDuckGoClient queries the DuckDuckGo instant-answer API.
type DuckDuckGoClient struct {
	baseURL    string
	maxResults int
	client     *http.Client
}

func NewDuckDuckGoClient(baseURL string, timeout time.Duration, maxResults int) *DuckDuckGoClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://api.duckduckgo.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxResults <= 0 {
		maxResults = 5
	}
	return &DuckDuckGoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		client:     &http.Client{Timeout: timeout},
	}
}

type ddgTopic struct {
	Text     string `json:"Text"`
	FirstURL string `json:"FirstURL"`
}

type ddgResponse struct {
	Heading       string     `json:"Heading"`
	AbstractText  string     `json:"AbstractText"`
	AbstractURL   string     `json:"AbstractURL"`
	Answer        string     `json:"Answer"`
	RelatedTopics []ddgTopic `json:"RelatedTopics"`
}

func (c *DuckDuckGoClient) Search(ctx context.Context, query string) ([]Result, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("no_html", "1")
	q.Set("skip_disambig", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo http status %d", res.StatusCode)
	}

	var out ddgResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	results := collectDDGResults(out, c.maxResults)
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return results, nil
}

func collectDDGResults(out ddgResponse, max int) []Result {
	var results []Result
	if s := strings.TrimSpace(out.Answer); s != "" {
		results = append(results, Result{Title: out.Heading, Snippet: s, Source: "duckduckgo"})
	}
	if s := strings.TrimSpace(out.AbstractText); s != "" {
		results = append(results, Result{
			Title:   out.Heading,
			Snippet: s,
			URL:     out.AbstractURL,
			Source:  "duckduckgo",
		})
	}
	for _, topic := range out.RelatedTopics {
		if len(results) >= max {
			break
		}
		if s := strings.TrimSpace(topic.Text); s != "" {
			results = append(results, Result{Snippet: s, URL: topic.FirstURL, Source: "duckduckgo"})
		}
	}
	if len(results) > max {
		results = results[:max]
	}
	return results
}
