package intent

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vanihq/vani/internal/language"
)

// Pattern is a trigger phrase: a literal substring, an exact whole-utterance
// word, or a '*'-separated set of parts that must all appear in the text.
type Pattern struct {
	Text  string
	Exact bool
}

func lit(text string) Pattern   { return Pattern{Text: text} }
func exact(text string) Pattern { return Pattern{Text: text, Exact: true} }

// Match reports whether the pattern fires on normalized text and the total
// length of matched literal characters, used as the specificity span.
func (p Pattern) Match(text string) (span int, ok bool) {
	if p.Exact {
		if text == p.Text {
			return len(p.Text), true
		}
		return 0, false
	}
	total := 0
	for _, part := range strings.Split(p.Text, "*") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !containsPhrase(text, part) {
			return 0, false
		}
		total += len(part)
	}
	if total == 0 {
		return 0, false
	}
	return total, true
}

// containsPhrase is a word-boundary aware substring check. Boundaries are only
// enforced on sides of the phrase that begin or end with a letter or digit, so
// triggers like ".com" still match inside "youtube.com".
func containsPhrase(text, phrase string) bool {
	return phraseIndex(text, phrase) >= 0
}

func boundaryOK(text, phrase string, idx int) bool {
	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)
	if isWordRune(first) && idx > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:idx])
		if isWordRune(prev) {
			return false
		}
	}
	end := idx + len(phrase)
	if isWordRune(last) && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// appAliases maps canonical application names to their spoken forms per
// supported language. The canonical name doubles as the English alias.
var appAliases = map[string][]string{
	"firefox":     {"firefox", "फायरफॉक्स", "ફાયરફોક્સ"},
	"chrome":      {"chrome", "क्रोम", "ક્રોમ"},
	"chromium":    {"chromium"},
	"terminal":    {"terminal", "टर्मिनल", "ટર્મિનલ"},
	"files":       {"files", "file manager", "फाइल", "ફાઇલ"},
	"calculator":  {"calculator", "कैलकुलेटर", "કેલ્ક્યુલેટર"},
	"text editor": {"text editor", "editor"},
	"code":        {"code", "vs code"},
	"settings":    {"settings", "सेटिंग", "સેટિંગ"},
}

// websiteAliases maps spoken site names to canonical hosts. Transliterated
// forms let Hindi and Gujarati utterances name the same sites.
var websiteAliases = map[string]string{
	"youtube":  "youtube.com",
	"यूट्यूब":  "youtube.com",
	"યુટ્યુબ":  "youtube.com",
	"google":   "google.com",
	"गूगल":     "google.com",
	"ગૂગલ":     "google.com",
	"gmail":    "gmail.com",
	"जीमेल":    "gmail.com",
	"જીમેલ":    "gmail.com",
	"facebook": "facebook.com",
	"फेसबुक":   "facebook.com",
	"ફેસબુક":   "facebook.com",
	"twitter":  "twitter.com",
	"github":   "github.com",
}

var openVerbs = map[language.Language][]string{
	language.English:  {"open", "launch", "start"},
	language.Hindi:    {"खोलो", "खोलें", "चालू करो"},
	language.Gujarati: {"ખોલો", "ચાલુ કરો"},
}

var closeVerbs = map[language.Language][]string{
	language.English:  {"close", "quit", "kill", "stop"},
	language.Hindi:    {"बंद करो", "बंद करें"},
	language.Gujarati: {"બંધ કરો"},
}

// triggers is the static rule table: (language, intent) -> trigger patterns.
// It is the single source of truth for what text activates which domain and
// is read-only after init.
var triggers map[language.Language]map[Intent][]Pattern

func init() {
	triggers = map[language.Language]map[Intent][]Pattern{
		language.English: {
			Exit: {
				exact("exit"), exact("quit"), exact("goodbye"), exact("bye"),
				exact("stop"), lit("goodbye"), lit("see you later"),
			},
			Reset: {lit("reset"), lit("clear history"), lit("start over")},
			Identity: {
				lit("who are you"), lit("what is your name"), lit("your name"),
				lit("who made you"),
			},
			Vision: {
				lit("what do you see"), lit("what can you see"), lit("look at"),
				lit("describe what you see"), lit("take a look"), lit("camera"),
				lit("what is this"), lit("what is that"), lit("what color"),
				lit("what colour"), lit("how many people"), lit("how many objects"),
				lit("read this"), lit("what does it say"), lit("what * see"),
				lit("in front of"), lit("clock"), lit("on the screen"),
			},
			Screenshot:   {lit("screenshot"), lit("screen shot"), lit("capture the screen")},
			SystemStatus: {lit("battery"), lit("system status"), lit("cpu"), lit("memory usage")},
			VolumeControl: {
				lit("volume"), lit("mute"), lit("unmute"), lit("louder"), lit("quieter"),
			},
			WebSearch: {
				lit("search"), lit("look up"), lit("news"), lit("latest"),
				lit("recent"), lit("weather"), lit("temperature"), lit("price"),
				lit("stock"), lit("score"), lit("happening"), lit("today"),
			},
			Knowledge: {
				lit("what is"), lit("what are"), lit("who is"), lit("who are"),
				lit("tell me about"), lit("explain"), lit("define"),
				lit("meaning of"), lit("history of"),
			},
			OpenWebsite: {lit(".com"), lit("go to"), lit("visit"), lit("open * website")},
		},
		language.Hindi: {
			Exit:     {exact("बाहर निकलें"), exact("अलविदा"), exact("बाय"), lit("अलविदा")},
			Reset:    {lit("रीसेट"), lit("इतिहास साफ़ करें"), lit("इतिहास साफ करो")},
			Identity: {lit("तुम कौन हो"), lit("तुम्हारा नाम")},
			Vision: {
				lit("क्या दिख रहा है"), lit("क्या देख रहा है"), lit("देखो"),
				lit("दिखाओ"), lit("कैमरा"), lit("यह क्या है"), lit("ये क्या है"),
				lit("कितने लोग"), lit("क्या रंग"), lit("घड़ी"), lit("क्या समय"),
				lit("पढ़ो"), lit("क्या लिखा है"),
			},
			Screenshot:    {lit("स्क्रीनशॉट")},
			SystemStatus:  {lit("बैटरी"), lit("सिस्टम")},
			VolumeControl: {lit("आवाज़"), lit("आवाज"), lit("वॉल्यूम"), lit("म्यूट")},
			WebSearch: {
				lit("खोजें"), lit("ढूंढें"), lit("सर्च"), lit("समाचार"),
				lit("ख़बर"), lit("ताज़ा"), lit("मौसम"), lit("कीमत"),
			},
			Knowledge: {
				lit("क्या है"), lit("कौन है"), lit("बताओ"), lit("समझाओ"),
				lit("के बारे में"),
			},
			OpenWebsite: {lit(".com"), lit("वेबसाइट")},
		},
		language.Gujarati: {
			Exit:     {exact("બહાર નીકળો"), exact("અલવિદા"), exact("બાય"), lit("અલવિદા")},
			Reset:    {lit("રીસેટ"), lit("ઇતિહાસ સાફ કરો")},
			Identity: {lit("તમે કોણ છો"), lit("તમારું નામ")},
			Vision: {
				lit("તમે શું જુઓ છો"), lit("શું દેખાય છે"), lit("જુઓ"),
				lit("કેમેરા"), lit("આ શું છે"), lit("એ શું છે"),
				lit("કેટલા લોકો"), lit("કયો રંગ"), lit("ઘડિયાળ"), lit("શું સમય"),
				lit("વાંચો"), lit("શું લખ્યું છે"),
			},
			Screenshot:    {lit("સ્ક્રીનશોટ")},
			SystemStatus:  {lit("બેટરી"), lit("સિસ્ટમ")},
			VolumeControl: {lit("અવાજ"), lit("વોલ્યુમ"), lit("મ્યૂટ")},
			WebSearch: {
				lit("શોધો"), lit("શોધ"), lit("સમાચાર"), lit("તાજા"),
				lit("હવામાન"), lit("કિંમત"),
			},
			Knowledge: {
				lit("શું છે"), lit("કોણ છે"), lit("જણાવો"), lit("સમજાવો"),
			},
			OpenWebsite: {lit(".com"), lit("વેબસાઇટ")},
		},
	}

	// App control and website-by-name triggers are verb x target combos, so a
	// bare "open" never hijacks a search phrase like "open the latest news".
	for lang, verbs := range openVerbs {
		for _, verb := range verbs {
			for _, aliases := range appAliases {
				for _, alias := range aliases {
					triggers[lang][OpenApp] = append(triggers[lang][OpenApp], lit(verb+"*"+alias))
				}
			}
			for alias := range websiteAliases {
				triggers[lang][OpenWebsite] = append(triggers[lang][OpenWebsite], lit(verb+"*"+alias))
			}
		}
	}
	for lang, verbs := range closeVerbs {
		for _, verb := range verbs {
			for _, aliases := range appAliases {
				for _, alias := range aliases {
					triggers[lang][CloseApp] = append(triggers[lang][CloseApp], lit(verb+"*"+alias))
				}
			}
		}
	}
}

// ValidateTable asserts that every triggered intent has at least one pattern
// per supported language. Absence is a configuration defect, not a runtime one.
func ValidateTable() error {
	for _, lang := range []language.Language{language.English, language.Hindi, language.Gujarati} {
		table, ok := triggers[lang]
		if !ok {
			return fmt.Errorf("trigger table missing language %q", lang)
		}
		for _, in := range All() {
			if len(table[in]) == 0 {
				return fmt.Errorf("trigger table missing patterns for (%s, %s)", lang, in)
			}
		}
	}
	return nil
}

// CanonicalWebsite resolves a spoken site alias to its canonical host.
func CanonicalWebsite(name string) (string, bool) {
	host, ok := websiteAliases[name]
	return host, ok
}
