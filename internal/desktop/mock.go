package desktop

import (
	"context"
	"fmt"
)

// MockController records every action and can be primed to fail.
type MockController struct {
	Calls  []string
	Err    error
	Stat   Status
	SSPath string
}

func NewMockController() *MockController {
	return &MockController{
		Stat:   Status{LoadAverage: "0.10 0.20 0.30", MemoryUsedPct: 42, BatteryPct: 80, BatteryState: "charging", BatteryPresent: true},
		SSPath: "/tmp/screenshot_test.png",
	}
}

func (m *MockController) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

func (m *MockController) OpenApp(_ context.Context, app string) error {
	m.record("open:%s", app)
	return m.Err
}

func (m *MockController) CloseApp(_ context.Context, app string) error {
	m.record("close:%s", app)
	return m.Err
}

func (m *MockController) OpenWebsite(_ context.Context, site, browser string) error {
	m.record("website:%s:%s", site, browser)
	return m.Err
}

func (m *MockController) Screenshot(context.Context) (string, error) {
	m.record("screenshot")
	if m.Err != nil {
		return "", m.Err
	}
	return m.SSPath, nil
}

func (m *MockController) SystemStatus(context.Context) (Status, error) {
	m.record("status")
	if m.Err != nil {
		return Status{}, m.Err
	}
	return m.Stat, nil
}

func (m *MockController) SetVolume(_ context.Context, direction string) error {
	m.record("volume:%s", direction)
	return m.Err
}
