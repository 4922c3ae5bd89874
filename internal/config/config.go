package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config contains all runtime settings for the assistant service.
type Config struct {
	BindAddr         string
	ShutdownTimeout  time.Duration
	MetricsNamespace string

	AllowAnyOrigin bool

	AssistantName   string
	AssistantNameHI string
	AssistantNameGU string

	DefaultBrowser   string
	HistoryCapacity  int
	HistoryReplay    int
	VisionStaleTurns int

	BrainMode       string
	OllamaBaseURL   string
	OllamaTextModel string

	VisionMode        string
	OllamaVisionModel string
	CameraDevice      string

	SearchMode       string
	SearchTimeout    time.Duration
	SearchMaxResults int

	DesktopMode    string
	ScreenshotDir  string
	ScreenshotTool string

	DatabaseURL string
	RedisAddr   string
}

// Load reads environment variables and applies safe defaults.
func Load() (Config, error) {
	cfg := Config{
		BindAddr:          envOrDefault("APP_BIND_ADDR", ":8080"),
		MetricsNamespace:  envOrDefault("APP_METRICS_NAMESPACE", "vani"),
		AllowAnyOrigin:    false,
		AssistantName:     envOrDefault("ASSISTANT_NAME", "Vani"),
		AssistantNameHI:   envOrDefault("ASSISTANT_NAME_HI", "वाणी"),
		AssistantNameGU:   envOrDefault("ASSISTANT_NAME_GU", "વાણી"),
		DefaultBrowser:    envOrDefault("DEFAULT_BROWSER", "firefox"),
		HistoryCapacity:   20,
		HistoryReplay:     6,
		VisionStaleTurns:  5,
		BrainMode:         envOrDefault("BRAIN_MODE", "auto"),
		OllamaBaseURL:     stringsTrimSpace("OLLAMA_BASE_URL"),
		OllamaTextModel:   envOrDefault("OLLAMA_TEXT_MODEL", "llama3.2:3b"),
		VisionMode:        envOrDefault("VISION_MODE", "auto"),
		OllamaVisionModel: envOrDefault("OLLAMA_VISION_MODEL", "moondream"),
		CameraDevice:      envOrDefault("CAMERA_DEVICE", "/dev/video0"),
		SearchMode:        envOrDefault("SEARCH_MODE", "auto"),
		SearchTimeout:     10 * time.Second,
		SearchMaxResults:  5,
		DesktopMode:       envOrDefault("DESKTOP_MODE", "auto"),
		ScreenshotDir:     envOrDefault("SCREENSHOT_DIR", ""),
		ScreenshotTool:    envOrDefault("SCREENSHOT_TOOL", "gnome-screenshot"),
		DatabaseURL:       stringsTrimSpace("DATABASE_URL"),
		RedisAddr:         stringsTrimSpace("REDIS_ADDR"),
		ShutdownTimeout:   15 * time.Second,
	}

	var err error
	cfg.ShutdownTimeout, err = durationFromEnv("APP_SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.AllowAnyOrigin, err = boolFromEnv("APP_ALLOW_ANY_ORIGIN", cfg.AllowAnyOrigin)
	if err != nil {
		return Config{}, err
	}
	cfg.HistoryCapacity, err = intFromEnv("HISTORY_CAPACITY", cfg.HistoryCapacity)
	if err != nil {
		return Config{}, err
	}
	cfg.HistoryReplay, err = intFromEnv("HISTORY_REPLAY", cfg.HistoryReplay)
	if err != nil {
		return Config{}, err
	}
	cfg.VisionStaleTurns, err = intFromEnv("VISION_STALE_TURNS", cfg.VisionStaleTurns)
	if err != nil {
		return Config{}, err
	}
	cfg.SearchTimeout, err = durationFromEnv("SEARCH_TIMEOUT", cfg.SearchTimeout)
	if err != nil {
		return Config{}, err
	}
	cfg.SearchMaxResults, err = intFromEnv("SEARCH_MAX_RESULTS", cfg.SearchMaxResults)
	if err != nil {
		return Config{}, err
	}

	if cfg.HistoryCapacity <= 0 {
		return Config{}, fmt.Errorf("HISTORY_CAPACITY must be positive")
	}
	if cfg.HistoryReplay <= 0 || cfg.HistoryReplay > cfg.HistoryCapacity {
		return Config{}, fmt.Errorf("HISTORY_REPLAY must be in 1..HISTORY_CAPACITY")
	}
	if cfg.VisionStaleTurns <= 0 {
		return Config{}, fmt.Errorf("VISION_STALE_TURNS must be positive")
	}
	if cfg.SearchTimeout < time.Second {
		return Config{}, fmt.Errorf("SEARCH_TIMEOUT must be at least 1s")
	}
	if cfg.SearchMaxResults <= 0 {
		return Config{}, fmt.Errorf("SEARCH_MAX_RESULTS must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func stringsTrimSpace(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := stringsTrimSpace(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return d, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	v := stringsTrimSpace(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s parse error: %w", key, err)
	}
	return n, nil
}

func boolFromEnv(key string, fallback bool) (bool, error) {
	v := strings.ToLower(stringsTrimSpace(key))
	if v == "" {
		return fallback, nil
	}
	switch v {
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%s parse error: expected bool", key)
	}
}
