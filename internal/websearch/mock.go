package websearch

import (
	"context"

	"github.com/vanihq/vani/internal/language"
)

// MockSearcher returns canned snippets, recording the queries asked.
type MockSearcher struct {
	Results []Result
	Err     error
	Queries []string
}

func NewMockSearcher() *MockSearcher {
	return &MockSearcher{
		Results: []Result{{Title: "Result", Snippet: "a deterministic search snippet", Source: "mock"}},
	}
}

func (m *MockSearcher) Search(_ context.Context, query string) ([]Result, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Results, nil
}

// MockKnowledge returns a canned factual snippet.
type MockKnowledge struct {
	Result  Result
	Err     error
	Queries []string
}

func NewMockKnowledge() *MockKnowledge {
	return &MockKnowledge{
		Result: Result{Title: "Fact", Snippet: "a deterministic factual snippet", Source: "mock"},
	}
}

func (m *MockKnowledge) Lookup(_ context.Context, query string, _ language.Language) (Result, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return Result{}, m.Err
	}
	return m.Result, nil
}
