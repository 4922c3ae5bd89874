package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	setCoreEnvEmpty(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BindAddr != ":8080" {
		t.Fatalf("BindAddr = %q, want :8080", cfg.BindAddr)
	}
	if cfg.MetricsNamespace != "vani" {
		t.Fatalf("MetricsNamespace = %q, want vani", cfg.MetricsNamespace)
	}
	if cfg.AssistantName != "Vani" || cfg.AssistantNameHI != "वाणी" || cfg.AssistantNameGU != "વાણી" {
		t.Fatalf("assistant names = %q %q %q", cfg.AssistantName, cfg.AssistantNameHI, cfg.AssistantNameGU)
	}
	if cfg.DefaultBrowser != "firefox" {
		t.Fatalf("DefaultBrowser = %q, want firefox", cfg.DefaultBrowser)
	}
	if cfg.HistoryCapacity != 20 || cfg.HistoryReplay != 6 || cfg.VisionStaleTurns != 5 {
		t.Fatalf("history settings = %d %d %d", cfg.HistoryCapacity, cfg.HistoryReplay, cfg.VisionStaleTurns)
	}
	if cfg.OllamaTextModel != "llama3.2:3b" || cfg.OllamaVisionModel != "moondream" {
		t.Fatalf("model defaults = %q %q", cfg.OllamaTextModel, cfg.OllamaVisionModel)
	}
}

func TestLoadExplicitValues(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("APP_BIND_ADDR", ":9090")
	t.Setenv("HISTORY_CAPACITY", "40")
	t.Setenv("HISTORY_REPLAY", "10")
	t.Setenv("VISION_STALE_TURNS", "3")
	t.Setenv("APP_ALLOW_ANY_ORIGIN", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BindAddr != ":9090" {
		t.Fatalf("BindAddr = %q", cfg.BindAddr)
	}
	if cfg.HistoryCapacity != 40 || cfg.HistoryReplay != 10 || cfg.VisionStaleTurns != 3 {
		t.Fatalf("history settings = %d %d %d", cfg.HistoryCapacity, cfg.HistoryReplay, cfg.VisionStaleTurns)
	}
	if !cfg.AllowAnyOrigin {
		t.Fatalf("AllowAnyOrigin should be true")
	}
}

func TestLoadRejectsReplayLargerThanCapacity(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("HISTORY_CAPACITY", "5")
	t.Setenv("HISTORY_REPLAY", "10")

	if _, err := Load(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	setCoreEnvEmpty(t)
	t.Setenv("SEARCH_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func setCoreEnvEmpty(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_BIND_ADDR",
		"APP_SHUTDOWN_TIMEOUT",
		"APP_METRICS_NAMESPACE",
		"APP_ALLOW_ANY_ORIGIN",
		"ASSISTANT_NAME",
		"ASSISTANT_NAME_HI",
		"ASSISTANT_NAME_GU",
		"DEFAULT_BROWSER",
		"HISTORY_CAPACITY",
		"HISTORY_REPLAY",
		"VISION_STALE_TURNS",
		"BRAIN_MODE",
		"OLLAMA_BASE_URL",
		"OLLAMA_TEXT_MODEL",
		"VISION_MODE",
		"OLLAMA_VISION_MODEL",
		"CAMERA_DEVICE",
		"SEARCH_MODE",
		"SEARCH_TIMEOUT",
		"SEARCH_MAX_RESULTS",
		"DESKTOP_MODE",
		"SCREENSHOT_DIR",
		"SCREENSHOT_TOOL",
		"DATABASE_URL",
		"REDIS_ADDR",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}
