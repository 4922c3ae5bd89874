package visionmodel

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// OllamaDescriber sends a frame plus question to an Ollama vision model
// (moondream by default).
type OllamaDescriber struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaDescriber(cfg Config) *OllamaDescriber {
	return &OllamaDescriber{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: 90 * time.Second},
	}
}

type visionRequest struct {
	Model  string   `json:"model"`
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
	Stream bool     `json:"stream"`
}

type visionResponse struct {
	Response string `json:"response"`
}

func (d *OllamaDescriber) Describe(ctx context.Context, frame []byte, question string) (string, error) {
	payload, err := json.Marshal(visionRequest{
		Model:  d.model,
		Prompt: question,
		Images: []string{base64.StdEncoding.EncodeToString(frame)},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := d.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return "", fmt.Errorf("vision http status %d: %s", res.StatusCode, string(body))
	}

	var out visionResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return strings.TrimSpace(out.Response), nil
}

// CameraSource grabs one JPEG frame from a V4L2 device via ffmpeg. A mutex
// keeps the device exclusively held for one capture at a time.
type CameraSource struct {
	mu     sync.Mutex
	device string
	ffmpeg string
}

func NewCameraSource(device, ffmpegPath string) *CameraSource {
	if strings.TrimSpace(device) == "" {
		device = "/dev/video0"
	}
	if strings.TrimSpace(ffmpegPath) == "" {
		ffmpegPath = "ffmpeg"
	}
	return &CameraSource{device: device, ffmpeg: ffmpegPath}
}

func (c *CameraSource) Capture(ctx context.Context) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cmd := exec.CommandContext(ctx, c.ffmpeg,
		"-f", "v4l2",
		"-i", c.device,
		"-frames:v", "1",
		"-f", "image2",
		"-vcodec", "mjpeg",
		"pipe:1",
	)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("camera capture: %w", err)
	}
	frame := stdout.Bytes()
	if len(frame) == 0 {
		return nil, fmt.Errorf("camera capture: empty frame from %s", c.device)
	}
	return frame, nil
}
