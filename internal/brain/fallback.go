package brain

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanihq/vani/internal/language"
)

// FallbackAdapter tries a primary adapter and falls back on error, except for
// caller cancellation.
type FallbackAdapter struct {
	primary  Adapter
	fallback Adapter
}

func NewFallbackAdapter(primary, fallback Adapter) *FallbackAdapter {
	return &FallbackAdapter{primary: primary, fallback: fallback}
}

func (a *FallbackAdapter) Respond(ctx context.Context, req Request) (Response, error) {
	resp, err := a.primary.Respond(ctx, req)
	if err == nil {
		return resp, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Response{}, err
	}
	if a.fallback == nil {
		return Response{}, err
	}
	fallbackResp, fallbackErr := a.fallback.Respond(ctx, req)
	if fallbackErr != nil {
		return Response{}, fmt.Errorf("primary brain error: %w; fallback brain error: %v", err, fallbackErr)
	}
	return fallbackResp, nil
}

func (a *FallbackAdapter) Translate(ctx context.Context, text string, target language.Language) (string, error) {
	out, err := a.primary.Translate(ctx, text, target)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || a.fallback == nil {
		return "", err
	}
	return a.fallback.Translate(ctx, text, target)
}
