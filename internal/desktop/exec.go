package desktop

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ExecController drives the desktop through external commands, the same
// amixer/xdg-open surface the assistant has always used.
type ExecController struct {
	screenshotDir  string
	screenshotTool string
}

func NewExecController(cfg Config) *ExecController {
	dir := strings.TrimSpace(cfg.ScreenshotDir)
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, "Pictures")
		} else {
			dir = os.TempDir()
		}
	}
	tool := strings.TrimSpace(cfg.ScreenshotTool)
	if tool == "" {
		tool = "gnome-screenshot"
	}
	return &ExecController{screenshotDir: dir, screenshotTool: tool}
}

func (c *ExecController) OpenApp(ctx context.Context, app string) error {
	bin, err := commandFor(app)
	if err != nil {
		return &ActionError{Reason: fmt.Sprintf("I don't know how to open %s", app)}
	}
	if _, err := exec.LookPath(bin); err != nil {
		return &ActionError{Reason: fmt.Sprintf("%s is not installed", app)}
	}
	cmd := exec.CommandContext(ctx, bin)
	if err := cmd.Start(); err != nil {
		return &ActionError{Reason: fmt.Sprintf("could not start %s", app)}
	}
	// Detach: the assistant does not babysit launched applications.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (c *ExecController) CloseApp(ctx context.Context, app string) error {
	bin, err := commandFor(app)
	if err != nil {
		return &ActionError{Reason: fmt.Sprintf("I don't know how to close %s", app)}
	}
	if err := exec.CommandContext(ctx, "pgrep", "-f", bin).Run(); err != nil {
		return &ActionError{Reason: fmt.Sprintf("%s is not running", app)}
	}
	if err := exec.CommandContext(ctx, "pkill", "-f", bin).Run(); err != nil {
		return &ActionError{Reason: fmt.Sprintf("could not close %s", app)}
	}
	return nil
}

func (c *ExecController) OpenWebsite(ctx context.Context, site, browser string) error {
	target := site
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}

	bin := "xdg-open"
	if strings.TrimSpace(browser) != "" {
		b, err := commandFor(browser)
		if err != nil {
			return &ActionError{Reason: fmt.Sprintf("I don't know the browser %s", browser)}
		}
		bin = b
	}
	if _, err := exec.LookPath(bin); err != nil {
		return &ActionError{Reason: fmt.Sprintf("%s is not installed", bin)}
	}
	cmd := exec.CommandContext(ctx, bin, target)
	if err := cmd.Start(); err != nil {
		return &ActionError{Reason: fmt.Sprintf("could not open %s", site)}
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func (c *ExecController) Screenshot(ctx context.Context) (string, error) {
	path := filepath.Join(c.screenshotDir, fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405")))
	if err := exec.CommandContext(ctx, c.screenshotTool, "-f", path).Run(); err != nil {
		return "", &ActionError{Reason: "could not take a screenshot"}
	}
	return path, nil
}

func (c *ExecController) SystemStatus(_ context.Context) (Status, error) {
	status := Status{}

	if data, err := os.ReadFile("/proc/loadavg"); err == nil {
		status.LoadAverage = parseLoadAverage(string(data))
	}
	if data, err := os.ReadFile("/proc/meminfo"); err == nil {
		status.MemoryUsedPct = parseMemoryUsedPct(string(data))
	}
	if data, err := os.ReadFile("/sys/class/power_supply/BAT0/capacity"); err == nil {
		if pct, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			status.BatteryPct = pct
			status.BatteryPresent = true
		}
	}
	if data, err := os.ReadFile("/sys/class/power_supply/BAT0/status"); err == nil {
		status.BatteryState = strings.ToLower(strings.TrimSpace(string(data)))
	}

	if status.LoadAverage == "" && status.MemoryUsedPct == 0 && !status.BatteryPresent {
		return Status{}, &ActionError{Reason: "could not read system status"}
	}
	return status, nil
}

func (c *ExecController) SetVolume(ctx context.Context, direction string) error {
	var args []string
	switch direction {
	case VolumeUp:
		args = []string{"set", "Master", "5%+"}
	case VolumeDown:
		args = []string{"set", "Master", "5%-"}
	case VolumeMute:
		args = []string{"set", "Master", "toggle"}
	default:
		return &ActionError{Reason: fmt.Sprintf("unknown volume direction %q", direction)}
	}
	if err := exec.CommandContext(ctx, "amixer", args...).Run(); err != nil {
		return &ActionError{Reason: "could not change the volume"}
	}
	return nil
}

func parseLoadAverage(loadavg string) string {
	fields := strings.Fields(loadavg)
	if len(fields) < 3 {
		return ""
	}
	return strings.Join(fields[:3], " ")
}

// parseMemoryUsedPct derives used memory percent from /proc/meminfo's
// MemTotal and MemAvailable lines.
func parseMemoryUsedPct(meminfo string) int {
	var total, available int
	for _, line := range strings.Split(meminfo, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		switch {
		case strings.HasPrefix(fields[0], "MemTotal"):
			total = v
		case strings.HasPrefix(fields[0], "MemAvailable"):
			available = v
		}
	}
	if total <= 0 || available < 0 || available > total {
		return 0
	}
	return int(float64(total-available) / float64(total) * 100)
}
