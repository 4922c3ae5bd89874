package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vanihq/vani/internal/assist"
	"github.com/vanihq/vani/internal/config"
	"github.com/vanihq/vani/internal/language"
	"github.com/vanihq/vani/internal/observability"
	"github.com/vanihq/vani/internal/protocol"
)

// TurnHandler processes one utterance; satisfied by assist.Pipeline.
type TurnHandler interface {
	HandleTurn(ctx context.Context, sessionID, raw string, hint language.Language) assist.TurnResult
}

type Server struct {
	cfg      config.Config
	turns    TurnHandler
	metrics  *observability.Metrics
	upgrader websocket.Upgrader
}

func New(cfg config.Config, turns TurnHandler, metrics *observability.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		turns:   turns,
		metrics: metrics,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				// Only same-origin browser connections unless explicitly opened
				// up; other websites must not be able to drive the assistant.
				if cfg.AllowAnyOrigin {
					return true
				}
				origin := strings.TrimSpace(r.Header.Get("Origin"))
				if origin == "" {
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				if u.Scheme != "http" && u.Scheme != "https" {
					return false
				}
				return strings.EqualFold(u.Host, r.Host)
			},
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		observability.MetricsHandler().ServeHTTP(w, r)
	})

	r.Post("/v1/assistant/turn", s.handleTurn)
	r.Post("/v1/assistant/reset", s.handleReset)
	r.Get("/v1/assistant/ws", s.handleWS)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

type turnRequest struct {
	SessionID    string `json:"session_id"`
	Text         string `json:"text"`
	LanguageHint string `json:"language_hint,omitempty"`
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "missing_text", "text is required")
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.NewString()
	}

	hint, _ := language.Parse(req.LanguageHint)
	result := s.turns.HandleTurn(r.Context(), req.SessionID, req.Text, hint)
	respondJSON(w, http.StatusOK, result)
}

type resetRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = uuid.NewString()
	}

	// A reset is an ordinary turn: it routes through the resolver so the
	// transcript and metrics see it like any spoken "reset".
	result := s.turns.HandleTurn(r.Context(), req.SessionID, "reset", "")
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	if s.metrics != nil {
		s.metrics.ActiveSessions.Inc()
		defer s.metrics.ActiveSessions.Dec()
	}

	conn.SetReadLimit(1 << 20)
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Minute))
		return nil
	})

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		parsed, err := protocol.ParseClientMessage(data)
		if err != nil {
			s.writeWS(conn, protocol.TypeErrorEvent, protocol.ErrorEvent{
				Type:      protocol.TypeErrorEvent,
				SessionID: sessionID,
				Code:      "invalid_client_message",
				Source:    "gateway",
				Retryable: false,
				Detail:    err.Error(),
			})
			continue
		}

		switch msg := parsed.(type) {
		case protocol.ClientTranscript:
			s.countWS("inbound", protocol.TypeClientTranscript)
			hint, _ := language.Parse(msg.LanguageHint)
			result := s.turns.HandleTurn(r.Context(), sessionID, msg.Text, hint)
			s.writeWS(conn, protocol.TypeAssistantTurn, protocol.AssistantTurn{
				Type:       protocol.TypeAssistantTurn,
				SessionID:  sessionID,
				TurnID:     result.TurnID,
				Intent:     string(result.Intent),
				Language:   string(result.Language),
				Text:       result.Response,
				SideEffect: result.SideEffect,
				EndSession: result.EndSession,
			})
			if result.EndSession {
				return
			}
		case protocol.ClientControl:
			s.countWS("inbound", protocol.TypeClientControl)
			if msg.Action != "reset" {
				s.writeWS(conn, protocol.TypeErrorEvent, protocol.ErrorEvent{
					Type:      protocol.TypeErrorEvent,
					SessionID: sessionID,
					Code:      "unsupported_action",
					Source:    "gateway",
					Retryable: false,
					Detail:    msg.Action,
				})
				continue
			}
			result := s.turns.HandleTurn(r.Context(), sessionID, "reset", "")
			s.writeWS(conn, protocol.TypeSystemEvent, protocol.SystemEvent{
				Type:      protocol.TypeSystemEvent,
				SessionID: sessionID,
				Code:      "context_reset",
				Detail:    result.Response,
			})
		}
	}
}

func (s *Server) writeWS(conn *websocket.Conn, t protocol.MessageType, msg any) {
	_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteJSON(msg); err != nil {
		return
	}
	s.countWS("outbound", t)
}

func (s *Server) countWS(direction string, t protocol.MessageType) {
	if s.metrics != nil {
		s.metrics.WSMessages.WithLabelValues(direction, string(t)).Inc()
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errEmptyBody = errors.New("empty body")

func decodeJSON(r *http.Request, out any) error {
	if r.Body == nil {
		return errEmptyBody
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "eof") {
			return errEmptyBody
		}
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
