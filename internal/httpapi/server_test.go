package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/vanihq/vani/internal/assist"
	"github.com/vanihq/vani/internal/config"
	"github.com/vanihq/vani/internal/intent"
	"github.com/vanihq/vani/internal/language"
	"github.com/vanihq/vani/internal/protocol"
)

type stubHandler struct {
	lastText string
	lastHint language.Language
}

func (h *stubHandler) HandleTurn(_ context.Context, sessionID, raw string, hint language.Language) assist.TurnResult {
	h.lastText = raw
	h.lastHint = hint
	in := intent.Conversation
	if raw == "reset" {
		in = intent.Reset
	}
	return assist.TurnResult{
		TurnID:    "t1",
		SessionID: sessionID,
		Intent:    in,
		Language:  language.English,
		Response:  "ok: " + raw,
	}
}

func newTestServer(t *testing.T) (*httptest.Server, *stubHandler) {
	t.Helper()
	handler := &stubHandler{}
	srv := New(config.Config{}, handler, nil)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts, handler
}

func TestTurnEndpoint(t *testing.T) {
	ts, handler := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"session_id":    "s1",
		"text":          "close firefox",
		"language_hint": "hi",
	})
	res, err := http.Post(ts.URL+"/v1/assistant/turn", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("turn request error = %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	var result assist.TurnResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.Response != "ok: close firefox" {
		t.Fatalf("response = %q", result.Response)
	}
	if handler.lastHint != language.Hindi {
		t.Fatalf("hint = %q, want hi", handler.lastHint)
	}
}

func TestTurnEndpointRejectsEmptyText(t *testing.T) {
	ts, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]string{"session_id": "s1", "text": "  "})
	res, err := http.Post(ts.URL+"/v1/assistant/turn", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("turn request error = %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestResetEndpoint(t *testing.T) {
	ts, handler := newTestServer(t)

	res, err := http.Post(ts.URL+"/v1/assistant/reset", "application/json", bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("reset request error = %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}
	if handler.lastText != "reset" {
		t.Fatalf("handler received %q, want reset", handler.lastText)
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts, _ := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status = %d", path, res.StatusCode)
		}
	}
}

func TestWebsocketTurnRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/assistant/ws?session_id=s1"
	conn, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial error = %v", err)
	}
	defer conn.Close()
	defer res.Body.Close()

	err = conn.WriteJSON(protocol.ClientTranscript{
		Type:      protocol.TypeClientTranscript,
		SessionID: "s1",
		Text:      "hello",
	})
	if err != nil {
		t.Fatalf("write error = %v", err)
	}

	var turn protocol.AssistantTurn
	if err := conn.ReadJSON(&turn); err != nil {
		t.Fatalf("read error = %v", err)
	}
	if turn.Type != protocol.TypeAssistantTurn || turn.Text != "ok: hello" {
		t.Fatalf("unexpected turn: %+v", turn)
	}
}

func TestWebsocketRejectsInvalidMessage(t *testing.T) {
	ts, _ := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/v1/assistant/ws"
	conn, res, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial error = %v", err)
	}
	defer conn.Close()
	defer res.Body.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"wat"}`)); err != nil {
		t.Fatalf("write error = %v", err)
	}

	var event protocol.ErrorEvent
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read error = %v", err)
	}
	if event.Code != "invalid_client_message" {
		t.Fatalf("code = %q", event.Code)
	}
}
