package assist

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/vanihq/vani/internal/brain"
	"github.com/vanihq/vani/internal/contextstore"
	"github.com/vanihq/vani/internal/desktop"
	"github.com/vanihq/vani/internal/intent"
	"github.com/vanihq/vani/internal/language"
	"github.com/vanihq/vani/internal/visionmodel"
	"github.com/vanihq/vani/internal/websearch"
)

// Config tunes dispatch behavior.
type Config struct {
	AssistantName  map[language.Language]string
	DefaultBrowser string
	HistoryReplay  int
}

// Outcome is the result of dispatching one parsed command.
type Outcome struct {
	Response   string
	SideEffect string
	EndSession bool
	FellBack   bool
	// Failure is set when a collaborator failed and the store was left
	// untouched. Response still carries the user-visible message.
	Failure *CollaboratorError

	skipHistory bool
}

// Dispatcher routes a parsed command to exactly one collaborator and owns
// every write to the context store. A turn commits its history, vision and
// search updates together or not at all.
type Dispatcher struct {
	brain     brain.Adapter
	describer visionmodel.Describer
	camera    visionmodel.FrameSource
	searcher  websearch.WebSearcher
	knowledge websearch.KnowledgeSource
	desktop   desktop.Controller
	store     *contextstore.Store
	cfg       Config
	log       *zap.Logger
}

func NewDispatcher(
	b brain.Adapter,
	describer visionmodel.Describer,
	camera visionmodel.FrameSource,
	searcher websearch.WebSearcher,
	knowledge websearch.KnowledgeSource,
	dc desktop.Controller,
	store *contextstore.Store,
	cfg Config,
	log *zap.Logger,
) *Dispatcher {
	if cfg.HistoryReplay <= 0 {
		cfg.HistoryReplay = 6
	}
	if cfg.DefaultBrowser == "" {
		cfg.DefaultBrowser = "firefox"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Dispatcher{
		brain:     b,
		describer: describer,
		camera:    camera,
		searcher:  searcher,
		knowledge: knowledge,
		desktop:   dc,
		store:     store,
		cfg:       cfg,
		log:       log,
	}
}

// Dispatch executes the command and commits the turn to the context store on
// success.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd intent.ParsedCommand, utt language.Utterance) Outcome {
	out := d.dispatch(ctx, cmd, utt)
	if out.Failure == nil && !out.skipHistory {
		d.commitTurn(utt, out.Response)
	}
	return out
}

// Clarify answers a missing-parameter condition with a question, without
// calling any collaborator.
func (d *Dispatcher) Clarify(missing *intent.MissingParameterError, utt language.Utterance) Outcome {
	slot := ""
	if len(missing.Slots) > 0 {
		slot = missing.Slots[0]
	}
	out := Outcome{
		Response:   clarifyFor(slot, utt.Language),
		SideEffect: "clarify:" + slot,
	}
	d.commitTurn(utt, out.Response)
	return out
}

func (d *Dispatcher) dispatch(ctx context.Context, cmd intent.ParsedCommand, utt language.Utterance) Outcome {
	lang := utt.Language
	switch cmd.Intent {
	case intent.Exit:
		return Outcome{
			Response:    localizef(goodbyeMsg, lang, d.assistantName(lang)),
			SideEffect:  "session_end",
			EndSession:  true,
			skipHistory: true,
		}

	case intent.Reset:
		d.store.Reset()
		return Outcome{
			Response:    localize(resetMsg, lang),
			SideEffect:  "context_reset",
			skipHistory: true,
		}

	case intent.Identity:
		return Outcome{Response: localizef(identityMsg, lang, d.assistantName(lang))}

	case intent.Vision:
		return d.handleVision(ctx, utt)

	case intent.OpenApp:
		return d.handleDesktop(ctx, utt, "app_opened:"+cmd.Slot(intent.SlotApp),
			localizef(openingAppMsg, lang, cmd.Slot(intent.SlotApp)),
			func() error { return d.desktop.OpenApp(ctx, cmd.Slot(intent.SlotApp)) })

	case intent.CloseApp:
		return d.handleDesktop(ctx, utt, "app_closed:"+cmd.Slot(intent.SlotApp),
			localizef(closedAppMsg, lang, cmd.Slot(intent.SlotApp)),
			func() error { return d.desktop.CloseApp(ctx, cmd.Slot(intent.SlotApp)) })

	case intent.OpenWebsite:
		site := cmd.Slot(intent.SlotSite)
		browser := cmd.Slot(intent.SlotBrowser)
		if browser == "" {
			browser = d.cfg.DefaultBrowser
		}
		return d.handleDesktop(ctx, utt, "website_opened:"+site+":"+browser,
			localizef(openingSiteMsg, lang, site),
			func() error { return d.desktop.OpenWebsite(ctx, site, browser) })

	case intent.Screenshot:
		path, err := d.desktop.Screenshot(ctx)
		if err != nil {
			return d.desktopFailure(err, lang)
		}
		return Outcome{
			Response:   localizef(screenshotMsg, lang, path),
			SideEffect: "screenshot:" + path,
		}

	case intent.SystemStatus:
		st, err := d.desktop.SystemStatus(ctx)
		if err != nil {
			return d.desktopFailure(err, lang)
		}
		return Outcome{Response: formatStatus(st, lang), SideEffect: "system_status"}

	case intent.VolumeControl:
		direction := cmd.Slot(intent.SlotDirection)
		if err := d.desktop.SetVolume(ctx, direction); err != nil {
			return d.desktopFailure(err, lang)
		}
		return Outcome{
			Response:   localize(volumeMsg[direction], lang),
			SideEffect: "volume:" + direction,
		}

	case intent.WebSearch:
		return d.handleSearch(ctx, cmd, utt, true)

	case intent.Knowledge:
		return d.handleSearch(ctx, cmd, utt, false)

	default:
		return d.handleConversation(ctx, utt)
	}
}

func (d *Dispatcher) assistantName(lang language.Language) string {
	if name, ok := d.cfg.AssistantName[lang]; ok {
		return name
	}
	if name, ok := d.cfg.AssistantName[language.English]; ok {
		return name
	}
	return "Vani"
}

func (d *Dispatcher) commitTurn(utt language.Utterance, response string) {
	d.store.AppendTurn(contextstore.Turn{Speaker: "user", Text: utt.Text, Language: utt.Language})
	d.store.AppendTurn(contextstore.Turn{Speaker: "assistant", Text: response, Language: utt.Language})
}

func (d *Dispatcher) history() []brain.Exchange {
	turns := d.store.RecentTurns(d.cfg.HistoryReplay)
	out := make([]brain.Exchange, 0, len(turns))
	for _, t := range turns {
		out = append(out, brain.Exchange{Role: t.Speaker, Content: t.Text})
	}
	return out
}

func (d *Dispatcher) failure(collaborator string, timeout bool, err error, lang language.Language) Outcome {
	cerr := &CollaboratorError{Collaborator: collaborator, Timeout: timeout, Err: err}
	d.log.Warn("collaborator failed",
		zap.String("collaborator", collaborator),
		zap.Bool("timeout", timeout),
		zap.Error(err))
	return Outcome{Response: localize(collaboratorDownMsg, lang), Failure: cerr}
}

func (d *Dispatcher) desktopFailure(err error, lang language.Language) Outcome {
	var ae *desktop.ActionError
	if errors.As(err, &ae) {
		// Presentable action failures surface verbatim and count as a
		// completed turn.
		return Outcome{Response: ae.Reason}
	}
	return d.failure(CollabDesktop, false, err, lang)
}

// handleDesktop runs one desktop action and translates its result.
func (d *Dispatcher) handleDesktop(_ context.Context, utt language.Utterance, sideEffect, success string, action func() error) Outcome {
	if err := action(); err != nil {
		return d.desktopFailure(err, utt.Language)
	}
	return Outcome{Response: success, SideEffect: sideEffect}
}

func (d *Dispatcher) handleConversation(ctx context.Context, utt language.Utterance) Outcome {
	req := brain.Request{
		Input:    utt.Text,
		Language: utt.Language,
		History:  d.history(),
	}
	if vc, ok := d.store.Vision(); ok {
		req.VisionNote = vc.Description
	}
	if sc, ok := d.store.Search(); ok {
		req.SearchNote = sc.Snippet
	}
	resp, err := d.brain.Respond(ctx, req)
	if err != nil {
		return d.failure(CollabBrain, errors.Is(err, context.DeadlineExceeded), err, utt.Language)
	}
	return Outcome{Response: resp.Text}
}

// visionFollowUpRefs mark utterances that point back at the last capture
// ("what color is it") rather than asking for a fresh one.
var visionFollowUpRefs = []string{"it", "that", "this", "उस", "इस", "वह", "यह", "તે", "આ"}

var visionCaptureWords = []string{
	"see", "look", "watch", "camera", "front of", "screen",
	"देख", "दिख", "कैमरा", "स्क्रीन",
	"જુઓ", "જોવ", "કેમેરા", "સ્ક્રીન",
}

func isVisionFollowUp(text string) bool {
	return hasToken(text, visionFollowUpRefs) && !hasToken(text, visionCaptureWords)
}

// hasToken matches ASCII words on exact tokens and Indic stems on substrings.
func hasToken(text string, words []string) bool {
	var fields []string
	for _, w := range words {
		if isASCIIWord(w) {
			if fields == nil {
				fields = strings.Fields(text)
			}
			for _, f := range fields {
				if f == w {
					return true
				}
			}
			continue
		}
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func isASCIIWord(w string) bool {
	for _, r := range w {
		if r > unicode.MaxASCII || r == ' ' {
			return false
		}
	}
	return true
}

func (d *Dispatcher) handleVision(ctx context.Context, utt language.Utterance) Outcome {
	lang := utt.Language

	if isVisionFollowUp(utt.Text) {
		vc, ok := d.store.Vision()
		if !ok {
			// Vision context expired; ask the user to look again instead
			// of answering from a stale frame.
			d.log.Debug("vision follow-up on stale context", zap.Error(ErrStaleContext))
			return Outcome{Response: localize(staleVisionMsg, lang), SideEffect: "vision_stale"}
		}
		resp, err := d.brain.Respond(ctx, brain.Request{
			Input:      utt.Text,
			Language:   lang,
			History:    d.history(),
			VisionNote: vc.Description,
		})
		if err != nil {
			return d.failure(CollabBrain, errors.Is(err, context.DeadlineExceeded), err, lang)
		}
		return Outcome{Response: resp.Text, SideEffect: "vision_followup"}
	}

	frame, err := d.camera.Capture(ctx)
	if err != nil {
		out := d.failure(CollabVision, false, err, lang)
		out.Response = localize(cameraUnavailableMsg, lang)
		return out
	}

	question := visionmodel.BuildQuestion(utt.Text)
	description, err := d.describer.Describe(ctx, frame, question)
	if err != nil {
		out := d.failure(CollabVision, errors.Is(err, context.DeadlineExceeded), err, lang)
		out.Response = localize(cameraUnavailableMsg, lang)
		return out
	}

	// The model answers in English; render the reply in the user's language
	// but keep the English description as the follow-up context.
	spoken := description
	if lang != language.English {
		if translated, terr := d.brain.Translate(ctx, description, lang); terr == nil {
			spoken = translated
		} else {
			d.log.Warn("vision translation failed", zap.Error(terr))
		}
	}

	d.store.SetVision(description)
	return Outcome{
		Response:   localize(visionPrefixMsg, lang) + spoken,
		SideEffect: "camera_capture",
	}
}

// handleSearch serves WebSearch and Knowledge with a single cross-fallback
// per turn: a timeout or empty result from the primary source tries the
// other source once, never more.
func (d *Dispatcher) handleSearch(ctx context.Context, cmd intent.ParsedCommand, utt language.Utterance, webFirst bool) Outcome {
	lang := utt.Language
	query := cmd.Slot(intent.SlotQuery)
	if query == "" {
		query = websearch.CleanQuery(utt.Text)
	}
	if query == "" {
		query = utt.Text
	}

	var (
		results  []websearch.Result
		err      error
		fellBack bool
	)

	if webFirst {
		results, err = d.searcher.Search(ctx, query)
		if shouldFallback(err) {
			fellBack = true
			var r websearch.Result
			if r, err = d.knowledge.Lookup(ctx, query, lang); err == nil {
				results = []websearch.Result{r}
			}
		}
	} else {
		var r websearch.Result
		if r, err = d.knowledge.Lookup(ctx, query, lang); err == nil {
			results = []websearch.Result{r}
		} else if shouldFallback(err) {
			fellBack = true
			results, err = d.searcher.Search(ctx, query)
		}
	}

	if err != nil {
		if errors.Is(err, websearch.ErrNotFound) {
			return Outcome{Response: localize(searchNotFoundMsg, lang), FellBack: fellBack}
		}
		out := d.failure(CollabSearch, websearch.IsTimeout(err), err, lang)
		out.Response = localize(searchNotFoundMsg, lang)
		out.FellBack = fellBack
		return out
	}
	if len(results) == 0 {
		// Sources contract to return results or an error; tolerate a source
		// that returns neither rather than trusting it.
		return Outcome{Response: localize(searchNotFoundMsg, lang), FellBack: fellBack}
	}

	snippet := websearch.FormatResults(results)
	d.store.SetSearch(query, snippet, results[0].Source)
	return Outcome{
		Response:   localize(searchHeaderMsg, lang) + "\n" + snippet,
		SideEffect: "search:" + results[0].Source,
		FellBack:   fellBack,
	}
}

func shouldFallback(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, websearch.ErrNotFound) || websearch.IsTimeout(err)
}
