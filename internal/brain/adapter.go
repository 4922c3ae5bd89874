package brain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vanihq/vani/internal/language"
)

// Exchange is one prior user/assistant message replayed into the prompt.
type Exchange struct {
	Role    string
	Content string
}

// Request carries everything the conversational model needs for one reply.
type Request struct {
	TurnID     string
	Input      string
	Language   language.Language
	History    []Exchange
	VisionNote string
	SearchNote string
}

// Response is the model's reply text.
type Response struct {
	Text string
}

// Adapter bridges the assistant runtime with the conversational model.
type Adapter interface {
	Respond(ctx context.Context, req Request) (Response, error)
	// Translate renders English text into the target language, returning the
	// input unchanged for English targets.
	Translate(ctx context.Context, text string, target language.Language) (string, error)
}

// Config controls adapter construction.
type Config struct {
	Mode          string
	BaseURL       string
	Model         string
	AssistantName map[language.Language]string
}

// NewAdapter builds the configured adapter: "http" talks to an Ollama
// endpoint, "mock" answers deterministically, "auto" prefers http when a base
// URL is configured and keeps the mock behind it so a dead model endpoint
// still produces a reply.
func NewAdapter(cfg Config) (Adapter, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "auto":
		if strings.TrimSpace(cfg.BaseURL) != "" {
			return NewFallbackAdapter(NewOllamaAdapter(cfg), NewMockAdapter()), nil
		}
		return NewMockAdapter(), nil
	case "http":
		if strings.TrimSpace(cfg.BaseURL) == "" {
			return nil, errors.New("brain base URL is required for http mode")
		}
		return NewOllamaAdapter(cfg), nil
	case "mock":
		return NewMockAdapter(), nil
	default:
		return nil, fmt.Errorf("unsupported brain adapter mode %q", cfg.Mode)
	}
}
