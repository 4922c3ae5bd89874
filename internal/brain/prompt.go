package brain

import (
	"fmt"
	"strings"

	"github.com/vanihq/vani/internal/language"
)

// systemInstruction keeps replies in the user's language and brief enough to
// be spoken aloud.
func systemInstruction(name string, lang language.Language) string {
	switch lang {
	case language.Hindi:
		return fmt.Sprintf("तुम %s हो, एक सहायक AI आवाज़ सहायक। केवल हिंदी में संक्षिप्त और स्पष्ट जवाब दो।", name)
	case language.Gujarati:
		return fmt.Sprintf("તમે %s છો, એક સહાયક AI વૉઇસ આસિસ્ટન્ટ. ફક્ત ગુજરાતીમાં સંક્ષિપ્ત અને સ્પષ્ટ જવાબ આપો.", name)
	default:
		return fmt.Sprintf("You are %s, a helpful AI voice assistant. Respond only in clear, natural English and keep replies brief and conversational.", name)
	}
}

func visionNoteLabel(lang language.Language) string {
	switch lang {
	case language.Hindi:
		return "दृश्य जानकारी (कैमरा)"
	case language.Gujarati:
		return "દ્રશ્ય માહિતી (કેમેરા)"
	default:
		return "Visual information (from camera)"
	}
}

func searchNoteLabel(lang language.Language) string {
	switch lang {
	case language.Hindi:
		return "इंटरनेट खोज परिणाम"
	case language.Gujarati:
		return "ઇન્ટરનેટ શોધ પરિણામો"
	default:
		return "Search results"
	}
}

// BuildPrompt assembles the system instruction, optional vision/search notes,
// bounded history replay and the current input into one generate prompt.
func BuildPrompt(name string, req Request) string {
	var b strings.Builder
	b.WriteString(systemInstruction(name, req.Language))
	b.WriteString("\n\n")

	if note := strings.TrimSpace(req.VisionNote); note != "" {
		fmt.Fprintf(&b, "%s: %s\n\n", visionNoteLabel(req.Language), note)
	}
	if note := strings.TrimSpace(req.SearchNote); note != "" {
		fmt.Fprintf(&b, "%s: %s\n\n", searchNoteLabel(req.Language), note)
	}

	for _, ex := range req.History {
		if ex.Role == "assistant" {
			fmt.Fprintf(&b, "Assistant: %s\n", ex.Content)
		} else {
			fmt.Fprintf(&b, "User: %s\n", ex.Content)
		}
	}

	fmt.Fprintf(&b, "User: %s\nAssistant: ", req.Input)
	return b.String()
}

// buildTranslationPrompt asks for a bare translation, nothing else.
func buildTranslationPrompt(text string, target language.Language) string {
	var langName string
	switch target {
	case language.Hindi:
		langName = "Hindi"
	case language.Gujarati:
		langName = "Gujarati"
	default:
		return ""
	}
	return fmt.Sprintf("Translate the following English text to %s. Only provide the %s translation, nothing else.\n\nEnglish: %s\n\n%s:", langName, langName, text, langName)
}
