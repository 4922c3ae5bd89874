package brain

import (
	"strings"
	"testing"

	"github.com/vanihq/vani/internal/language"
)

func TestBuildPromptOrdering(t *testing.T) {
	prompt := BuildPrompt("Vani", Request{
		Input:    "and what about tomorrow",
		Language: language.English,
		History: []Exchange{
			{Role: "user", Content: "what is the weather"},
			{Role: "assistant", Content: "It is sunny today."},
		},
		SearchNote: "Cloudy with light rain expected.",
	})

	for _, want := range []string{
		"You are Vani",
		"Search results: Cloudy with light rain expected.",
		"User: what is the weather",
		"Assistant: It is sunny today.",
		"User: and what about tomorrow",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.HasSuffix(prompt, "Assistant: ") {
		t.Fatalf("prompt should end with the assistant cue")
	}

	sys := strings.Index(prompt, "You are Vani")
	hist := strings.Index(prompt, "User: what is the weather")
	cur := strings.LastIndex(prompt, "User: and what about tomorrow")
	if !(sys < hist && hist < cur) {
		t.Fatalf("prompt sections out of order")
	}
}

func TestBuildPromptLocalizedInstructionAndVisionNote(t *testing.T) {
	prompt := BuildPrompt("वाणी", Request{
		Input:      "उसका रंग क्या है",
		Language:   language.Hindi,
		VisionNote: "a red clock on a white wall",
	})
	if !strings.Contains(prompt, "तुम वाणी हो") {
		t.Fatalf("missing Hindi system instruction:\n%s", prompt)
	}
	if !strings.Contains(prompt, "दृश्य जानकारी (कैमरा): a red clock on a white wall") {
		t.Fatalf("missing Hindi vision note label:\n%s", prompt)
	}
}

func TestBuildTranslationPrompt(t *testing.T) {
	if got := buildTranslationPrompt("a red clock", language.English); got != "" {
		t.Fatalf("English target should produce no prompt, got %q", got)
	}
	got := buildTranslationPrompt("a red clock", language.Gujarati)
	if !strings.Contains(got, "Gujarati") || !strings.Contains(got, "a red clock") {
		t.Fatalf("unexpected translation prompt: %q", got)
	}
}
