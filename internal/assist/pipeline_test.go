package assist

import (
	"context"
	"strings"
	"testing"

	"github.com/vanihq/vani/internal/intent"
	"github.com/vanihq/vani/internal/language"
	"github.com/vanihq/vani/internal/memory"
)

func newPipeline(f *fixture, transcript memory.Store) *Pipeline {
	return NewPipeline(f.dispatcher, transcript, nil, nil)
}

func TestHandleTurnEndToEnd(t *testing.T) {
	f := newFixture()
	transcript := memory.NewInMemoryStore()
	p := newPipeline(f, transcript)

	res := p.HandleTurn(context.Background(), "s1", "close firefox", "")
	if res.Intent != intent.CloseApp {
		t.Fatalf("intent = %s", res.Intent)
	}
	if res.Language != language.English {
		t.Fatalf("language = %s", res.Language)
	}
	if res.Response != "Closed firefox" {
		t.Fatalf("response = %q", res.Response)
	}
	if res.TurnID == "" {
		t.Fatalf("missing turn id")
	}

	records, err := transcript.RecentTranscript(context.Background(), "s1", 10)
	if err != nil {
		t.Fatalf("RecentTranscript: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("transcript records = %d, want 2", len(records))
	}
	if records[0].Speaker != "user" || records[1].Speaker != "assistant" {
		t.Fatalf("speakers = %s, %s", records[0].Speaker, records[1].Speaker)
	}
	if records[0].Intent != string(intent.CloseApp) {
		t.Fatalf("record intent = %q", records[0].Intent)
	}
}

func TestHandleTurnEmptyUtterance(t *testing.T) {
	f := newFixture()
	p := newPipeline(f, nil)

	res := p.HandleTurn(context.Background(), "s1", "   ", language.Hindi)
	if res.Response != emptyPromptMsg[language.Hindi] {
		t.Fatalf("response = %q", res.Response)
	}
	if res.EndSession {
		t.Fatalf("empty utterance must not end the session")
	}
	if f.store.Len() != 0 {
		t.Fatalf("empty utterance must not touch the store")
	}
}

func TestHandleTurnClarifiesMissingDirection(t *testing.T) {
	f := newFixture()
	p := newPipeline(f, nil)

	res := p.HandleTurn(context.Background(), "s1", "change the volume", "")
	if res.Intent != intent.VolumeControl {
		t.Fatalf("intent = %s", res.Intent)
	}
	if !strings.Contains(res.SideEffect, "clarify") {
		t.Fatalf("side effect = %q", res.SideEffect)
	}
	if len(f.desktop.Calls) != 0 {
		t.Fatalf("clarify must not touch the desktop: %v", f.desktop.Calls)
	}
}

func TestHandleTurnGujaratiVision(t *testing.T) {
	f := newFixture()
	p := newPipeline(f, nil)

	res := p.HandleTurn(context.Background(), "s1", "તમે શું જુઓ છો", "")
	if res.Intent != intent.Vision {
		t.Fatalf("intent = %s", res.Intent)
	}
	if res.Language != language.Gujarati {
		t.Fatalf("language = %s", res.Language)
	}
	if !strings.HasPrefix(res.Response, "હું જોઈ રહ્યો છું: ") {
		t.Fatalf("response = %q", res.Response)
	}
}

func TestHandleTurnHintAppliesToLatinOnly(t *testing.T) {
	f := newFixture()
	p := newPipeline(f, nil)

	res := p.HandleTurn(context.Background(), "s1", "hello", language.Hindi)
	if res.Language != language.Hindi {
		t.Fatalf("latin text should honor the hint, got %s", res.Language)
	}

	res = p.HandleTurn(context.Background(), "s1", "ઘડિયાળ જુઓ", language.Hindi)
	if res.Language != language.Gujarati {
		t.Fatalf("script detection should override the hint, got %s", res.Language)
	}
}

func TestHandleTurnSurvivesTranscriptFailure(t *testing.T) {
	f := newFixture()
	p := newPipeline(f, failingStore{})

	res := p.HandleTurn(context.Background(), "s1", "hello there", "")
	if res.Response == "" {
		t.Fatalf("turn must succeed even when the transcript store fails")
	}
}

type failingStore struct{}

func (failingStore) SaveTurn(context.Context, memory.TurnRecord) error {
	return context.DeadlineExceeded
}

func (failingStore) RecentTranscript(context.Context, string, int) ([]memory.TurnRecord, error) {
	return nil, context.DeadlineExceeded
}

func (failingStore) Close() error { return nil }
