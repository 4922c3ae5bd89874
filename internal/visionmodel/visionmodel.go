package visionmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FrameSource models the camera as an exclusive resource: Capture acquires it
// for the duration of a single call and releases it before returning, even on
// failure.
type FrameSource interface {
	Capture(ctx context.Context) ([]byte, error)
}

// Describer answers a question about one captured frame.
type Describer interface {
	Describe(ctx context.Context, frame []byte, question string) (string, error)
}

// Config controls vision collaborator construction.
type Config struct {
	Mode         string
	BaseURL      string
	Model        string
	CameraDevice string
	FFmpegPath   string
}

// New builds the configured describer and frame source pair. "http" pairs an
// Ollama vision model with an ffmpeg camera grab, "mock" is fully
// deterministic, "auto" prefers http when a base URL is configured.
func New(cfg Config) (Describer, FrameSource, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = "auto"
	}

	switch mode {
	case "auto":
		if strings.TrimSpace(cfg.BaseURL) != "" {
			return NewOllamaDescriber(cfg), NewCameraSource(cfg.CameraDevice, cfg.FFmpegPath), nil
		}
		return NewMockDescriber(""), NewMockFrameSource(), nil
	case "http":
		if strings.TrimSpace(cfg.BaseURL) == "" {
			return nil, nil, errors.New("vision base URL is required for http mode")
		}
		return NewOllamaDescriber(cfg), NewCameraSource(cfg.CameraDevice, cfg.FFmpegPath), nil
	case "mock":
		return NewMockDescriber(""), NewMockFrameSource(), nil
	default:
		return nil, nil, fmt.Errorf("unsupported vision mode %q", cfg.Mode)
	}
}
