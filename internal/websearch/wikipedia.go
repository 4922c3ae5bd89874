package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vanihq/vani/internal/language"
)

// WikipediaClient fetches article summaries from the REST API of the
// per-language Wikipedia edition.
type WikipediaClient struct {
	// endpointFormat takes the language subdomain, e.g. "en".
	endpointFormat string
	client         *http.Client
}

func NewWikipediaClient(endpointFormat string, timeout time.Duration) *WikipediaClient {
	if strings.TrimSpace(endpointFormat) == "" {
		endpointFormat = "https://%s.wikipedia.org/api/rest_v1/page/summary"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &WikipediaClient{
		endpointFormat: endpointFormat,
		client:         &http.Client{Timeout: timeout},
	}
}

type wikiSummary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Content struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

func (c *WikipediaClient) Lookup(ctx context.Context, query string, lang language.Language) (Result, error) {
	title := CleanQuery(query)
	if title == "" {
		return Result{}, ErrNotFound
	}

	sub := "en"
	switch lang {
	case language.Hindi:
		sub = "hi"
	case language.Gujarati:
		sub = "gu"
	}

	endpoint := fmt.Sprintf(c.endpointFormat, sub) + "/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Vani-Assistant/1.0")

	res, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return Result{}, ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("wikipedia http status %d", res.StatusCode)
	}

	var out wikiSummary
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if strings.TrimSpace(out.Extract) == "" {
		return Result{}, ErrNotFound
	}

	return Result{
		Title:   out.Title,
		Snippet: shortenSummary(out.Extract, 4),
		URL:     out.Content.Desktop.Page,
		Source:  "wikipedia",
	}, nil
}

// shortenSummary keeps the first n sentences so replies stay speakable.
func shortenSummary(summary string, n int) string {
	parts := strings.Split(summary, ". ")
	if len(parts) <= n {
		return strings.TrimSpace(summary)
	}
	out := strings.Join(parts[:n], ". ")
	if !strings.HasSuffix(out, ".") {
		out += "."
	}
	return out
}
