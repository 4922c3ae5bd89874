package brain

import (
	"context"
	"errors"
	"testing"

	"github.com/vanihq/vani/internal/language"
)

type failingAdapter struct {
	err   error
	calls int
}

func (f *failingAdapter) Respond(context.Context, Request) (Response, error) {
	f.calls++
	return Response{}, f.err
}

func (f *failingAdapter) Translate(context.Context, string, language.Language) (string, error) {
	return "", f.err
}

func TestFallbackAdapterUsesSecondaryOnError(t *testing.T) {
	primary := &failingAdapter{err: errors.New("connection refused")}
	fb := NewFallbackAdapter(primary, NewMockAdapter())

	resp, err := fb.Respond(context.Background(), Request{Input: "hello"})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if resp.Text == "" {
		t.Fatalf("fallback should produce a reply")
	}
	if primary.calls != 1 {
		t.Fatalf("primary calls = %d, want 1", primary.calls)
	}
}

func TestFallbackAdapterPropagatesCancellation(t *testing.T) {
	primary := &failingAdapter{err: context.Canceled}
	fb := NewFallbackAdapter(primary, NewMockAdapter())

	_, err := fb.Respond(context.Background(), Request{Input: "hello"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Respond() error = %v, want context.Canceled", err)
	}
}

func TestNewAdapterModes(t *testing.T) {
	if _, err := NewAdapter(Config{Mode: "http"}); err == nil {
		t.Fatalf("http mode without base URL should fail")
	}
	a, err := NewAdapter(Config{Mode: "auto"})
	if err != nil {
		t.Fatalf("NewAdapter(auto) error = %v", err)
	}
	if _, ok := a.(*MockAdapter); !ok {
		t.Fatalf("auto without base URL should build the mock adapter")
	}
	if _, err := NewAdapter(Config{Mode: "banana"}); err == nil {
		t.Fatalf("unknown mode should fail")
	}
}
