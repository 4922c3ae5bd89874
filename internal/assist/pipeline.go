package assist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vanihq/vani/internal/intent"
	"github.com/vanihq/vani/internal/language"
	"github.com/vanihq/vani/internal/memory"
	"github.com/vanihq/vani/internal/observability"
)

// TurnResult is everything the transport layer needs to answer one turn.
type TurnResult struct {
	TurnID     string            `json:"turn_id"`
	SessionID  string            `json:"session_id"`
	Intent     intent.Intent     `json:"intent"`
	Language   language.Language `json:"language"`
	Response   string            `json:"response"`
	SideEffect string            `json:"side_effect,omitempty"`
	EndSession bool              `json:"end_session,omitempty"`
}

// Pipeline runs the full turn: normalize, resolve, extract, dispatch, then
// write-behind transcript logging and metrics.
type Pipeline struct {
	dispatcher *Dispatcher
	transcript memory.Store
	metrics    *observability.Metrics
	log        *zap.Logger
}

func NewPipeline(dispatcher *Dispatcher, transcript memory.Store, metrics *observability.Metrics, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{dispatcher: dispatcher, transcript: transcript, metrics: metrics, log: log}
}

// HandleTurn processes one utterance end to end. It never returns an error:
// every failure resolves to a response string and the pipeline stays ready
// for the next utterance.
func (p *Pipeline) HandleTurn(ctx context.Context, sessionID, raw string, hint language.Language) TurnResult {
	start := time.Now()
	turnID := uuid.NewString()

	utt, err := language.Normalize(raw, hint)
	if err != nil {
		lang := hint
		if !lang.Valid() {
			lang = language.English
		}
		return TurnResult{
			TurnID:    turnID,
			SessionID: sessionID,
			Language:  lang,
			Response:  localize(emptyPromptMsg, lang),
		}
	}

	resolved := intent.Resolve(utt.Text, utt.Language)

	var out Outcome
	cmd, err := intent.Extract(resolved, utt.Text)
	var missing *intent.MissingParameterError
	if errors.As(err, &missing) {
		out = p.dispatcher.Clarify(missing, utt)
	} else {
		out = p.dispatcher.Dispatch(ctx, cmd, utt)
	}

	p.observe(resolved, utt.Language, out, time.Since(start))
	p.logTranscript(ctx, sessionID, resolved, utt, out.Response)

	p.log.Info("turn handled",
		zap.String("turn_id", turnID),
		zap.String("session_id", sessionID),
		zap.String("intent", string(resolved)),
		zap.String("language", string(utt.Language)),
		zap.String("side_effect", out.SideEffect),
		zap.Duration("elapsed", time.Since(start)))

	return TurnResult{
		TurnID:     turnID,
		SessionID:  sessionID,
		Intent:     resolved,
		Language:   utt.Language,
		Response:   out.Response,
		SideEffect: out.SideEffect,
		EndSession: out.EndSession,
	}
}

func (p *Pipeline) observe(in intent.Intent, lang language.Language, out Outcome, elapsed time.Duration) {
	if p.metrics == nil {
		return
	}
	p.metrics.TurnsTotal.WithLabelValues(string(in), string(lang)).Inc()
	p.metrics.ObserveTurnLatency(elapsed)
	if out.FellBack {
		p.metrics.SearchFallbacks.Inc()
	}
	if out.Failure != nil {
		p.metrics.CollaboratorErrors.WithLabelValues(out.Failure.Collaborator, out.Failure.Code()).Inc()
	}
}

// logTranscript persists the exchange. Store failures are logged and
// swallowed: the transcript is a write-behind log, never on the turn's
// critical path.
func (p *Pipeline) logTranscript(ctx context.Context, sessionID string, in intent.Intent, utt language.Utterance, response string) {
	if p.transcript == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	records := []memory.TurnRecord{
		{SessionID: sessionID, Speaker: "user", Text: utt.Text, Language: utt.Language, Intent: string(in)},
		{SessionID: sessionID, Speaker: "assistant", Text: response, Language: utt.Language, Intent: string(in)},
	}
	for _, r := range records {
		if err := p.transcript.SaveTurn(ctx, r); err != nil {
			p.log.Warn("transcript save failed", zap.Error(err))
			return
		}
	}
}
