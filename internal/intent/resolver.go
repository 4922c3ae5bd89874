package intent

import (
	"errors"

	"github.com/vanihq/vani/internal/language"
)

// ErrNoMatch is the internal no-trigger signal. Resolve never surfaces it
// because Conversation is the universal default; it exists so tests can probe
// resolver coverage directly.
var ErrNoMatch = errors.New("no trigger matched")

type match struct {
	intent Intent
	span   int
}

// Resolve scans every pattern for the language against normalized text and
// selects exactly one intent: the sole match, or the best match under the
// fixed priority order, or Conversation when nothing fires. Pure function;
// identical input always yields the identical intent.
func Resolve(text string, lang language.Language) Intent {
	in, err := ResolveStrict(text, lang)
	if err != nil {
		return Conversation
	}
	return in
}

// ResolveStrict is Resolve without the Conversation fallback.
func ResolveStrict(text string, lang language.Language) (Intent, error) {
	table, ok := triggers[lang]
	if !ok {
		return Conversation, ErrNoMatch
	}

	var matches []match
	for in, patterns := range table {
		best := 0
		for _, p := range patterns {
			if span, ok := p.Match(text); ok && span > best {
				best = span
			}
		}
		if best > 0 {
			matches = append(matches, match{intent: in, span: best})
		}
	}
	if len(matches) == 0 {
		return Conversation, ErrNoMatch
	}

	winner := matches[0]
	winnerTier, winnerPos := tierOf(winner.intent)
	for _, m := range matches[1:] {
		tier, pos := tierOf(m.intent)
		switch {
		case tier < winnerTier:
		case tier == winnerTier && m.span > winner.span:
		case tier == winnerTier && m.span == winner.span && pos < winnerPos:
		default:
			continue
		}
		winner, winnerTier, winnerPos = m, tier, pos
	}
	return winner.intent, nil
}
