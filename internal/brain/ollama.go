package brain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vanihq/vani/internal/language"
)

// OllamaAdapter talks to an Ollama-compatible /api/generate endpoint.
type OllamaAdapter struct {
	baseURL string
	model   string
	names   map[language.Language]string
	client  *http.Client
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func NewOllamaAdapter(cfg Config) *OllamaAdapter {
	return &OllamaAdapter{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		model:   cfg.Model,
		names:   cfg.AssistantName,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (a *OllamaAdapter) Respond(ctx context.Context, req Request) (Response, error) {
	prompt := BuildPrompt(a.name(req.Language), req)
	text, err := a.generate(ctx, prompt, map[string]any{
		"temperature": 0.7,
		"top_p":       0.9,
		"num_predict": 500,
	})
	if err != nil {
		return Response{}, err
	}
	return Response{Text: text}, nil
}

func (a *OllamaAdapter) Translate(ctx context.Context, text string, target language.Language) (string, error) {
	prompt := buildTranslationPrompt(text, target)
	if prompt == "" {
		return text, nil
	}
	out, err := a.generate(ctx, prompt, map[string]any{
		"temperature": 0.3,
		"num_predict": 300,
	})
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return text, nil
	}
	return out, nil
}

func (a *OllamaAdapter) generate(ctx context.Context, prompt string, options map[string]any) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:   a.model,
		Prompt:  prompt,
		Stream:  false,
		Options: options,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := a.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return "", fmt.Errorf("ollama http status %d: %s", res.StatusCode, string(body))
	}

	var out generateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return strings.TrimSpace(out.Response), nil
}

func (a *OllamaAdapter) name(lang language.Language) string {
	if n, ok := a.names[lang]; ok && n != "" {
		return n
	}
	if n, ok := a.names[language.English]; ok && n != "" {
		return n
	}
	return "Vani"
}
