package brain

import (
	"context"
	"fmt"
	"strings"

	"github.com/vanihq/vani/internal/language"
)

// MockAdapter provides deterministic local replies when no model is
// configured.
type MockAdapter struct{}

func NewMockAdapter() *MockAdapter { return &MockAdapter{} }

func (a *MockAdapter) Respond(ctx context.Context, req Request) (Response, error) {
	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	default:
	}

	base := strings.TrimSpace(req.Input)
	if base == "" {
		base = "I am listening."
	}
	if len(req.History) == 0 {
		return Response{Text: fmt.Sprintf("I heard you: %s", base)}, nil
	}
	last := strings.TrimSpace(req.History[len(req.History)-1].Content)
	if last == "" {
		return Response{Text: fmt.Sprintf("I heard you: %s", base)}, nil
	}
	return Response{Text: fmt.Sprintf("I heard you: %s. Earlier you said: %s", base, last)}, nil
}

func (a *MockAdapter) Translate(_ context.Context, text string, _ language.Language) (string, error) {
	return text, nil
}
