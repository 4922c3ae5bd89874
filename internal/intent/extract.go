package intent

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Slot names produced by Extract.
const (
	SlotApp       = "app"
	SlotSite      = "site"
	SlotBrowser   = "browser"
	SlotDirection = "direction"
	SlotQuery     = "query"
)

// Volume directions.
const (
	VolumeUp   = "up"
	VolumeDown = "down"
	VolumeMute = "mute"
)

// ParsedCommand is the winning intent plus its extracted slots. Slots are
// absent when not applicable.
type ParsedCommand struct {
	Intent Intent
	Slots  map[string]string
}

func (c ParsedCommand) Slot(name string) string { return c.Slots[name] }

// MissingParameterError reports schema-required slots that could not be
// extracted. It is a resolvable condition: the dispatcher substitutes a
// default or asks a clarifying question, never a crash.
type MissingParameterError struct {
	Intent Intent
	Slots  []string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("intent %s missing parameter(s): %s", e.Intent, strings.Join(e.Slots, ", "))
}

var domainPattern = regexp.MustCompile(`\b([a-z0-9-]+\.(?:com|org|net|io))\b`)

var browserNames = []string{"firefox", "chrome", "chromium"}

// queryLeadIns are trigger phrases stripped from the text before it is used
// verbatim as a search or knowledge query.
var queryLeadIns = []string{
	"search for", "search", "look up", "google",
	"tell me about", "what is", "what are", "who is", "who are",
	"explain", "define", "meaning of", "history of",
	"खोजें", "ढूंढें", "सर्च", "क्या है", "कौन है", "बताओ", "समझाओ", "के बारे में",
	"શોધો", "શોધ", "શું છે", "કોણ છે", "જણાવો", "સમજાવો",
}

var volumeKeywords = map[string][]string{
	VolumeUp:   {"up", "increase", "raise", "louder", "बढ़ा", "तेज़", "વધાર"},
	VolumeDown: {"down", "decrease", "lower", "quieter", "कम", "धीमा", "ઓછ", "ધીમ"},
	VolumeMute: {"mute", "unmute", "silence", "म्यूट", "મ્યૂટ", "ચૂપ"},
}

// Extract pulls the intent's schema slots from normalized text. It never
// fails on malformed input: required slots that cannot be found come back as
// a MissingParameterError for the dispatcher to resolve.
func Extract(in Intent, text string) (ParsedCommand, error) {
	cmd := ParsedCommand{Intent: in, Slots: map[string]string{}}

	switch in {
	case OpenApp, CloseApp:
		app := findApp(text)
		if app == "" {
			return cmd, &MissingParameterError{Intent: in, Slots: []string{SlotApp}}
		}
		cmd.Slots[SlotApp] = app

	case OpenWebsite:
		site := findWebsite(text)
		if site == "" {
			return cmd, &MissingParameterError{Intent: in, Slots: []string{SlotSite}}
		}
		cmd.Slots[SlotSite] = site
		if browser := findBrowser(text); browser != "" {
			cmd.Slots[SlotBrowser] = browser
		}

	case VolumeControl:
		dir := findVolumeDirection(text)
		if dir == "" {
			return cmd, &MissingParameterError{Intent: in, Slots: []string{SlotDirection}}
		}
		cmd.Slots[SlotDirection] = dir

	case WebSearch, Knowledge:
		query := stripLeadIns(text)
		if query == "" {
			return cmd, &MissingParameterError{Intent: in, Slots: []string{SlotQuery}}
		}
		cmd.Slots[SlotQuery] = query

	case Vision, Screenshot, SystemStatus, Identity, Reset, Exit, Conversation:
		// No required slots.
	}

	return cmd, nil
}

func findApp(text string) string {
	type hit struct {
		name string
		pos  int
	}
	var hits []hit
	for name, aliases := range appAliases {
		for _, alias := range aliases {
			if idx := phraseIndex(text, alias); idx >= 0 {
				hits = append(hits, hit{name: name, pos: idx})
			}
		}
	}
	if len(hits) == 0 {
		return ""
	}
	// The first recognized entity after the action verb wins; with a single
	// verb prefix that is simply the earliest alias in the text.
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return len(hits[i].name) > len(hits[j].name)
	})
	return hits[0].name
}

func findWebsite(text string) string {
	best := ""
	bestPos := len(text) + 1
	for alias, host := range websiteAliases {
		if idx := phraseIndex(text, alias); idx >= 0 && idx < bestPos {
			best, bestPos = host, idx
		}
	}
	if best != "" {
		return best
	}
	if m := domainPattern.FindString(text); m != "" {
		return m
	}
	return ""
}

func findBrowser(text string) string {
	// An "in <browser>" suffix wins; a bare browser mention counts only when
	// the browser is not itself the open/close target.
	for _, name := range browserNames {
		if phraseIndex(text, "in "+name) >= 0 {
			return name
		}
	}
	return ""
}

func findVolumeDirection(text string) string {
	for _, dir := range []string{VolumeMute, VolumeDown, VolumeUp} {
		for _, kw := range volumeKeywords[dir] {
			// ASCII keywords need word boundaries ("up" must not fire
			// inside "group"); the Indic entries are stems and match as
			// substrings.
			if asciiKeyword(kw) {
				if phraseIndex(text, kw) >= 0 {
					return dir
				}
				continue
			}
			if strings.Contains(text, kw) {
				return dir
			}
		}
	}
	return ""
}

func asciiKeyword(kw string) bool {
	for _, r := range kw {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func stripLeadIns(text string) string {
	out := text
	for _, lead := range queryLeadIns {
		out = strings.ReplaceAll(out, lead, " ")
	}
	out = strings.Join(strings.Fields(out), " ")
	return strings.TrimSpace(out)
}

func phraseIndex(text, phrase string) int {
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return -1
		}
		idx += start
		if boundaryOK(text, phrase, idx) {
			return idx
		}
		start = idx + 1
	}
}
