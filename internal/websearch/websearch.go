package websearch

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/vanihq/vani/internal/language"
)

// Result is one short snippet returned by a search collaborator.
type Result struct {
	Title   string
	Snippet string
	URL     string
	Source  string
}

// ErrNotFound reports a query with no usable answer, distinguishable from a
// transport failure.
var ErrNotFound = errors.New("no results found")

// WebSearcher answers free-form queries with ordered snippets. A nil error
// means at least one result; a query with no usable answer is ErrNotFound.
type WebSearcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// KnowledgeSource answers factual queries with a single short snippet, under
// the same results-or-error contract as WebSearcher.
type KnowledgeSource interface {
	Lookup(ctx context.Context, query string, lang language.Language) (Result, error)
}

// IsTimeout classifies transport timeouts so the dispatcher can apply its
// one-shot fallback policy.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// questionLeadIns are stripped before a query is used as an article title.
var questionLeadIns = []string{
	"what is ", "what are ", "who is ", "who are ",
	"tell me about ", "explain ", "describe ",
	"definition of ", "meaning of ", "history of ",
	"क्या है ", "कौन है ", "बताओ ", "के बारे में ",
	"શું છે ", "કોણ છે ", "વિશે જણાવો ",
}

// CleanQuery strips question lead-ins and terminal punctuation so "what is
// mount abu" becomes the lookup title "mount abu".
func CleanQuery(query string) string {
	out := strings.ToLower(strings.TrimSpace(query))
	for _, lead := range questionLeadIns {
		out = strings.ReplaceAll(out, lead, "")
	}
	out = strings.Trim(out, " ?")
	return strings.Join(strings.Fields(out), " ")
}

// FormatResults renders snippets into a context block for the conversational
// model prompt.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return ""
	}
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		if r.Title != "" {
			b.WriteString(r.Title)
			b.WriteString(": ")
		}
		b.WriteString(r.Snippet)
	}
	return b.String()
}
