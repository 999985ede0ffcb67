package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gwillem/rodi/pkg/behavior"
	"github.com/gwillem/rodi/pkg/robot"
)

func TestRobotConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rodi.json")
	saved := robot.Config{Host: "10.0.0.9", Port: 8080, Timeout: robot.Duration(2 * time.Second)}
	if err := saved.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	t.Setenv(robot.EnvHost, "")
	t.Setenv(robot.EnvPort, "")
	opts = Options{Config: path}
	defer func() { opts = Options{} }()

	cfg, err := robotConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != saved {
		t.Errorf("robotConfig() = %+v, want file values %+v", cfg, saved)
	}

	t.Setenv(robot.EnvPort, "9000")
	opts.Host = "rodi.local"
	cfg, err = robotConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "rodi.local" || cfg.Port != 9000 || cfg.Timeout.Duration() != 2*time.Second {
		t.Errorf("robotConfig() = %+v", cfg)
	}
}

func TestRobotConfig_MissingFile(t *testing.T) {
	t.Setenv(robot.EnvHost, "")
	t.Setenv(robot.EnvPort, "")
	opts = Options{Config: filepath.Join(t.TempDir(), "missing.json")}
	defer func() { opts = Options{} }()

	cfg, err := robotConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg != robot.DefaultConfig() {
		t.Errorf("robotConfig() = %+v, want defaults", cfg)
	}
}

type fakeLoop struct {
	states chan behavior.State
	logs   chan string
}

func (f *fakeLoop) Run(ctx context.Context) error  { return nil }
func (f *fakeLoop) States() <-chan behavior.State { return f.states }
func (f *fakeLoop) Logs() <-chan string           { return f.logs }
func (f *fakeLoop) RunID() string                 { return "0123456789abcdef" }

func TestDashboard_Update(t *testing.T) {
	l := &fakeLoop{states: make(chan behavior.State, 1), logs: make(chan string, 1)}
	m := newDashboard(l, dashboardConfig{
		title:  "RoDI Follow",
		addr:   "192.168.4.1:1234",
		series: []series{distanceSeries, lineSeries(0), lineSeries(1)},
		yMax:   1023,
	})

	state := behavior.State{
		Distance: robot.NewReading(json.RawMessage("12")),
		Line:     robot.NewReading(json.RawMessage("[950, 100]")),
		Action:   behavior.ActionTurnLeft,
	}
	next, cmd := m.Update(stateMsg(state))
	if cmd == nil {
		t.Error("expected the dashboard to keep waiting for states")
	}
	m = next.(dashboard)

	next, _ = m.Update(logMsg("[12:00:00] Line follow started"))
	m = next.(dashboard)

	view := m.View()
	for _, want := range []string{"RoDI Follow", "192.168.4.1:1234", "run 01234567", "turn left", "Line follow started", "line 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the dashboard")
	}
}

func TestSeries_Values(t *testing.T) {
	s := behavior.State{
		Distance: robot.NewReading(json.RawMessage("42")),
		Line:     robot.NewReading(json.RawMessage("[1, 2]")),
	}
	if v, ok := distanceSeries.value(s); !ok || v != 42 {
		t.Errorf("distance = %v, %v", v, ok)
	}
	if v, ok := lineSeries(1).value(s); !ok || v != 2 {
		t.Errorf("line 1 = %v, %v", v, ok)
	}
	if _, ok := distanceSeries.value(behavior.State{}); ok {
		t.Error("absent distance should not be charted")
	}
}
