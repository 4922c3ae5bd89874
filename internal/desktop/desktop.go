package desktop

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Volume directions accepted by SetVolume.
const (
	VolumeUp   = "up"
	VolumeDown = "down"
	VolumeMute = "mute"
)

// Status is a coarse snapshot of the machine.
type Status struct {
	LoadAverage    string
	MemoryUsedPct  int
	BatteryPct     int
	BatteryState   string
	BatteryPresent bool
}

// ActionError carries a user-presentable failure reason ("firefox is not
// running"); the dispatcher surfaces it verbatim and never escalates it.
type ActionError struct {
	Reason string
}

func (e *ActionError) Error() string { return e.Reason }

// Controller executes desktop-level actions on behalf of the assistant.
type Controller interface {
	OpenApp(ctx context.Context, app string) error
	CloseApp(ctx context.Context, app string) error
	OpenWebsite(ctx context.Context, site, browser string) error
	Screenshot(ctx context.Context) (path string, err error)
	SystemStatus(ctx context.Context) (Status, error)
	SetVolume(ctx context.Context, direction string) error
}

// Config controls controller construction.
type Config struct {
	Mode           string
	ScreenshotDir  string
	ScreenshotTool string
}

// New builds the configured controller: "exec" drives the real desktop,
// "mock" records actions, "auto" behaves like exec.
func New(cfg Config) (Controller, error) {
	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	if mode == "" {
		mode = "auto"
	}
	switch mode {
	case "auto", "exec":
		return NewExecController(cfg), nil
	case "mock":
		return NewMockController(), nil
	default:
		return nil, fmt.Errorf("unsupported desktop mode %q", cfg.Mode)
	}
}

// appCommands maps the extractor's canonical app names to executables.
var appCommands = map[string]string{
	"firefox":     "firefox",
	"chrome":      "google-chrome",
	"chromium":    "chromium-browser",
	"terminal":    "gnome-terminal",
	"files":       "nautilus",
	"calculator":  "gnome-calculator",
	"text editor": "gedit",
	"code":        "code",
	"settings":    "gnome-control-center",
}

// ErrUnknownApp marks an app name outside the command table.
var ErrUnknownApp = errors.New("unknown application")

func commandFor(app string) (string, error) {
	cmd, ok := appCommands[app]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownApp, app)
	}
	return cmd, nil
}
