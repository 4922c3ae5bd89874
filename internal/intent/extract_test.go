package intent

import (
	"errors"
	"testing"
)

func TestExtractOpenWebsite(t *testing.T) {
	cmd, err := Extract(OpenWebsite, "open youtube in firefox")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotSite) != "youtube.com" {
		t.Fatalf("site = %q, want youtube.com", cmd.Slot(SlotSite))
	}
	if cmd.Slot(SlotBrowser) != "firefox" {
		t.Fatalf("browser = %q, want firefox", cmd.Slot(SlotBrowser))
	}
}

func TestExtractOpenWebsiteDefaultsBrowserAbsent(t *testing.T) {
	cmd, err := Extract(OpenWebsite, "open youtube")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if _, ok := cmd.Slots[SlotBrowser]; ok {
		t.Fatalf("browser slot should be absent, got %q", cmd.Slot(SlotBrowser))
	}
}

func TestExtractOpenWebsiteRawDomain(t *testing.T) {
	cmd, err := Extract(OpenWebsite, "go to example.org")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotSite) != "example.org" {
		t.Fatalf("site = %q, want example.org", cmd.Slot(SlotSite))
	}
}

func TestExtractOpenWebsiteTransliteratedAlias(t *testing.T) {
	cmd, err := Extract(OpenWebsite, "यूट्यूब खोलो")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotSite) != "youtube.com" {
		t.Fatalf("site = %q, want youtube.com", cmd.Slot(SlotSite))
	}
}

func TestExtractApps(t *testing.T) {
	cmd, err := Extract(CloseApp, "close firefox")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotApp) != "firefox" {
		t.Fatalf("app = %q, want firefox", cmd.Slot(SlotApp))
	}

	cmd, err = Extract(OpenApp, "open the text editor")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotApp) != "text editor" {
		t.Fatalf("app = %q, want text editor", cmd.Slot(SlotApp))
	}
}

func TestExtractAppMissing(t *testing.T) {
	_, err := Extract(OpenApp, "open something nobody installed")
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("Extract() error = %v, want MissingParameterError", err)
	}
	if len(missing.Slots) != 1 || missing.Slots[0] != SlotApp {
		t.Fatalf("missing slots = %v, want [app]", missing.Slots)
	}
}

func TestExtractVolume(t *testing.T) {
	cmd, err := Extract(VolumeControl, "mute volume")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotDirection) != VolumeMute {
		t.Fatalf("direction = %q, want %q", cmd.Slot(SlotDirection), VolumeMute)
	}

	cmd, err = Extract(VolumeControl, "turn the volume down a bit")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotDirection) != VolumeDown {
		t.Fatalf("direction = %q, want %q", cmd.Slot(SlotDirection), VolumeDown)
	}
}

func TestExtractVolumeAmbiguous(t *testing.T) {
	// Ambiguous volume language must not default to a direction.
	for _, text := range []string{
		"change volume",
		// "group" contains "up"; a keyword must match a whole word.
		"change the volume for the group",
		"adjust the volume setup",
	} {
		_, err := Extract(VolumeControl, text)
		var missing *MissingParameterError
		if !errors.As(err, &missing) {
			t.Fatalf("Extract(%q) error = %v, want MissingParameterError", text, err)
		}
		if missing.Slots[0] != SlotDirection {
			t.Fatalf("Extract(%q) missing slots = %v, want [direction]", text, missing.Slots)
		}
	}

	cmd, err := Extract(VolumeControl, "turn the volume up")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotDirection) != VolumeUp {
		t.Fatalf("direction = %q, want %q", cmd.Slot(SlotDirection), VolumeUp)
	}
}

func TestExtractQueryStripsTriggers(t *testing.T) {
	cmd, err := Extract(Knowledge, "what is quantum entanglement")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotQuery) != "quantum entanglement" {
		t.Fatalf("query = %q", cmd.Slot(SlotQuery))
	}

	cmd, err = Extract(WebSearch, "search for monsoon forecast in gujarat")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if cmd.Slot(SlotQuery) != "monsoon forecast in gujarat" {
		t.Fatalf("query = %q", cmd.Slot(SlotQuery))
	}
}

func TestExtractQueryMissing(t *testing.T) {
	_, err := Extract(WebSearch, "search")
	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("Extract() error = %v, want MissingParameterError", err)
	}
}

func TestExtractNoSlotIntents(t *testing.T) {
	for _, in := range []Intent{Vision, Screenshot, SystemStatus, Identity, Reset, Exit, Conversation} {
		cmd, err := Extract(in, "whatever was said")
		if err != nil {
			t.Fatalf("Extract(%s) error = %v", in, err)
		}
		if len(cmd.Slots) != 0 {
			t.Fatalf("Extract(%s) slots = %v, want none", in, cmd.Slots)
		}
	}
}
