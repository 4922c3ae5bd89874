package websearch

import (
	"fmt"
	"strings"
	"time"
)

// Config controls search client construction.
type Config struct {
	Mode       string
	Timeout    time.Duration
	MaxResults int

	// Test seams; empty means the public endpoints.
	DuckDuckGoBaseURL       string
	WikipediaEndpointFormat string
}

// New builds the configured search pair: "http" queries the live endpoints,
// "mock" answers deterministically, "auto" behaves like http.
func New(cfg Config) (WebSearcher, KnowledgeSource, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "auto", "http":
		return NewDuckDuckGoClient(cfg.DuckDuckGoBaseURL, cfg.Timeout, cfg.MaxResults),
			NewWikipediaClient(cfg.WikipediaEndpointFormat, cfg.Timeout), nil
	case "mock":
		return NewMockSearcher(), NewMockKnowledge(), nil
	default:
		return nil, nil, fmt.Errorf("unsupported search mode %q", cfg.Mode)
	}
}
