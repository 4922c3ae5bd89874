package language

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Language identifies one of the supported utterance languages.
type Language string

const (
	English  Language = "en"
	Hindi    Language = "hi"
	Gujarati Language = "gu"
)

// ErrEmptyUtterance marks input with no speakable content; the caller should
// re-prompt instead of attempting an intent match.
var ErrEmptyUtterance = errors.New("empty utterance")

func (l Language) Valid() bool {
	switch l {
	case English, Hindi, Gujarati:
		return true
	default:
		return false
	}
}

// Parse maps an STT language hint to a supported Language.
func Parse(tag string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(tag))) {
	case English:
		return English, true
	case Hindi:
		return Hindi, true
	case Gujarati:
		return Gujarati, true
	default:
		return "", false
	}
}

// Utterance is a single normalized transcript, immutable once created.
type Utterance struct {
	Raw       string
	Text      string
	Language  Language
	Timestamp time.Time
}

// Detect picks the language by Unicode script majority: Devanagari wins Hindi,
// the Gujarati block wins Gujarati, anything else counts toward English.
// Ties break toward English.
func Detect(raw string) Language {
	var devanagari, gujarati, latin int
	for _, r := range raw {
		switch {
		case unicode.Is(unicode.Devanagari, r):
			devanagari++
		case unicode.Is(unicode.Gujarati, r):
			gujarati++
		case unicode.IsLetter(r):
			latin++
		}
	}
	if devanagari > latin && devanagari > gujarati {
		return Hindi
	}
	if gujarati > latin && gujarati > devanagari {
		return Gujarati
	}
	return English
}

// Normalize produces the canonical text form used by the resolver: detected
// language, case-folded text, collapsed whitespace, no terminal punctuation.
// A hint from the STT collaborator is honored only for Latin-script text,
// where script detection cannot distinguish romanized speech.
func Normalize(raw string, hint Language) (Utterance, error) {
	text := collapse(raw)
	if text == "" {
		return Utterance{}, ErrEmptyUtterance
	}

	lang := Detect(text)
	if lang == English && hint.Valid() {
		lang = hint
	}

	return Utterance{
		Raw:       raw,
		Text:      strings.ToLower(stripTerminalPunct(text)),
		Language:  lang,
		Timestamp: time.Now().UTC(),
	}, nil
}

func collapse(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	prevSpace := true
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsControl(r):
			continue
		default:
			b.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(b.String())
}

func stripTerminalPunct(text string) string {
	// The danda (। ॥) terminates Devanagari sentences.
	return strings.TrimRight(text, ".!?,;।॥")
}
