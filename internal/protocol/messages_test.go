package protocol

import (
	"errors"
	"testing"
)

func TestParseClientMessageTranscript(t *testing.T) {
	raw := []byte(`{"type":"client_transcript","session_id":"s1","text":"close firefox","language_hint":"en","ts_ms":123}`)
	msg, err := ParseClientMessage(raw)
	if err != nil {
		t.Fatalf("ParseClientMessage() error = %v", err)
	}

	transcript, ok := msg.(ClientTranscript)
	if !ok {
		t.Fatalf("message type = %T, want ClientTranscript", msg)
	}
	if transcript.SessionID != "s1" || transcript.Text != "close firefox" {
		t.Fatalf("unexpected transcript: %+v", transcript)
	}
	if transcript.LanguageHint != "en" {
		t.Fatalf("LanguageHint = %q, want en", transcript.LanguageHint)
	}
}

func TestParseClientMessageControl(t *testing.T) {
	raw := []byte(`{"type":"client_control","session_id":"s1","action":"reset"}`)
	msg, err := ParseClientMessage(raw)
	if err != nil {
		t.Fatalf("ParseClientMessage() error = %v", err)
	}

	control, ok := msg.(ClientControl)
	if !ok {
		t.Fatalf("message type = %T, want ClientControl", msg)
	}
	if control.SessionID != "s1" || control.Action != "reset" {
		t.Fatalf("unexpected client control: %+v", control)
	}
}

func TestParseClientMessageRejectsUnknownType(t *testing.T) {
	_, err := ParseClientMessage([]byte(`{"type":"wat"}`))
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}
}

func TestParseClientMessageRejectsEmptyTranscript(t *testing.T) {
	_, err := ParseClientMessage([]byte(`{"type":"client_transcript","session_id":"","text":""}`))
	if err == nil {
		t.Fatalf("expected validation error")
	}
}
