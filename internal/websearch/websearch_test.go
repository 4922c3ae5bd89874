package websearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vanihq/vani/internal/language"
)

func TestCleanQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"what is mount abu?", "mount abu"},
		{"tell me about the taj mahal", "the taj mahal"},
		{"क्या है हिमालय", "हिमालय"},
		{"monsoon", "monsoon"},
	}
	for _, tc := range cases {
		if got := CleanQuery(tc.in); got != tc.want {
			t.Fatalf("CleanQuery(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDuckDuckGoSearchParsesResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "chai" {
			t.Fatalf("query = %q", r.URL.Query().Get("q"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"Heading": "Chai",
			"AbstractText": "Chai is a spiced milk tea.",
			"AbstractURL": "https://example.org/chai",
			"RelatedTopics": [{"Text": "Masala chai - a variant", "FirstURL": "https://example.org/masala"}]
		}`))
	}))
	defer srv.Close()

	c := NewDuckDuckGoClient(srv.URL, time.Second, 5)
	results, err := c.Search(context.Background(), "chai")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Snippet != "Chai is a spiced milk tea." || results[0].Source != "duckduckgo" {
		t.Fatalf("unexpected first result: %+v", results[0])
	}
}

func TestDuckDuckGoSearchEmptyIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewDuckDuckGoClient(srv.URL, time.Second, 5)
	if _, err := c.Search(context.Background(), "xyzzy"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Search() error = %v, want ErrNotFound", err)
	}
}

func TestWikipediaLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mount_abu" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"title": "Mount Abu", "extract": "Mount Abu is a hill station. It sits in Rajasthan. It is popular. It has lakes. It has temples."}`))
	}))
	defer srv.Close()

	c := NewWikipediaClient(srv.URL+"%.0s", time.Second)
	got, err := c.Lookup(context.Background(), "what is mount abu?", language.English)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if got.Title != "Mount Abu" || got.Source != "wikipedia" {
		t.Fatalf("unexpected result: %+v", got)
	}
	// Summary trimmed to four sentences.
	if got.Snippet != "Mount Abu is a hill station. It sits in Rajasthan. It is popular. It has lakes." {
		t.Fatalf("snippet = %q", got.Snippet)
	}

	if _, err := c.Lookup(context.Background(), "what is atlantis", language.English); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing page error = %v, want ErrNotFound", err)
	}
}

func TestIsTimeout(t *testing.T) {
	if !IsTimeout(context.DeadlineExceeded) {
		t.Fatalf("DeadlineExceeded should classify as timeout")
	}
	if IsTimeout(errors.New("boom")) {
		t.Fatalf("generic error is not a timeout")
	}
	if IsTimeout(nil) {
		t.Fatalf("nil is not a timeout")
	}
}

func TestFormatResults(t *testing.T) {
	out := FormatResults([]Result{
		{Title: "A", Snippet: "first"},
		{Snippet: "second"},
	})
	if out != "A: first\nsecond" {
		t.Fatalf("FormatResults = %q", out)
	}
	if FormatResults(nil) != "" {
		t.Fatalf("empty results should format empty")
	}
}
