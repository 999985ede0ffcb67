package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"

	"github.com/gwillem/rodi/pkg/behavior"
)

const (
	headerHeight = 2 // title + blank line
	legendHeight = 2 // legend row + blank
	footerHeight = 7 // log box height
	maxLogs      = 5 // number of log messages to show
	borderSize   = 2 // chart border

	maxDistance = 300 // cm, top of the distance chart
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	chartStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// series is one line on the chart, extracted from a loop state.
type series struct {
	name  string
	color string
	value func(behavior.State) (float64, bool)
}

var distanceSeries = series{
	name:  "distance",
	color: "196", // red
	value: func(s behavior.State) (float64, bool) {
		d, err := s.Distance.Int()
		return float64(d), err == nil
	},
}

func lineSeries(ch int) series {
	colors := []string{"46", "51"} // green, cyan
	return series{
		name:  fmt.Sprintf("line %d", ch),
		color: colors[ch],
		value: func(s behavior.State) (float64, bool) {
			pair, err := s.Line.Pair()
			return float64(pair[ch]), err == nil
		},
	}
}

// loopRunner is what the dashboard needs from a behavior.
type loopRunner interface {
	Run(ctx context.Context) error
	States() <-chan behavior.State
	Logs() <-chan string
	RunID() string
}

type dashboardConfig struct {
	title  string
	addr   string
	series []series
	yMax   float64
}

// runLoop runs l until interrupted, either printing to the terminal or
// behind the live dashboard.
func runLoop(l loopRunner, cfg dashboardConfig, tui bool) error {
	ctx, cancel := interruptContext()
	defer cancel()

	if !tui {
		return ignoreCanceled(l.Run(ctx))
	}

	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx)
	}()

	p := tea.NewProgram(newDashboard(l, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}

	// Let the loop run its cleanup before exiting.
	cancel()
	return ignoreCanceled(<-done)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type dashboard struct {
	loop       loopRunner
	cfg        dashboardConfig
	chart      *streamlinechart.Model
	width      int      // terminal width
	height     int      // terminal height
	logs       []string // last N log messages
	lastAction behavior.Action
	lastErr    error
	quitting   bool
}

func (m *dashboard) addLog(msg string) {
	m.logs = append(m.logs, msg)
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// Messages from the loop
type stateMsg behavior.State
type logMsg string

func waitForState(l loopRunner) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-l.States())
	}
}

func waitForLog(l loopRunner) tea.Cmd {
	return func() tea.Msg {
		return logMsg(<-l.Logs())
	}
}

// chartSize calculates the size of the chart based on terminal dimensions
func (m *dashboard) chartSize() (width, height int) {
	if m.width == 0 || m.height == 0 {
		return 80, 20 // default size before we know terminal size
	}
	width = m.width - borderSize - 2
	if width < 40 {
		width = 40
	}
	height = m.height - headerHeight - legendHeight - footerHeight - borderSize
	if height < 10 {
		height = 10
	}
	return width, height
}

func (m *dashboard) resizeChart() {
	w, h := m.chartSize()
	m.chart.Resize(w, h)
}

func newDashboard(l loopRunner, cfg dashboardConfig) dashboard {
	chart := streamlinechart.New(80, 20,
		streamlinechart.WithYRange(0, cfg.yMax),
	)

	for _, s := range cfg.series {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(s.color))
		chart.SetDataSetStyles(s.name, runes.ThinLineStyle, style)
	}

	return dashboard{
		loop:  l,
		cfg:   cfg,
		chart: &chart,
	}
}

func (m dashboard) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.loop),
		waitForLog(m.loop),
	)
}

func (m dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeChart()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case stateMsg:
		state := behavior.State(msg)
		m.lastErr = state.Error
		m.lastAction = state.Action
		pushed := false
		for _, s := range m.cfg.series {
			if v, ok := s.value(state); ok {
				m.chart.PushDataSet(s.name, v)
				pushed = true
			}
		}
		if pushed {
			m.chart.DrawAll()
		}
		return m, waitForState(m.loop)

	case logMsg:
		m.addLog(string(msg))
		return m, waitForLog(m.loop)
	}

	return m, nil
}

func (m dashboard) View() string {
	if m.quitting {
		return "Stopping robot...\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString(titleStyle.Render(m.cfg.title))
	sb.WriteString(fmt.Sprintf(" - %s", m.cfg.addr))
	sb.WriteString(statusStyle.Render(fmt.Sprintf("  run %.8s", m.loop.RunID())))
	if m.lastAction != behavior.ActionNone {
		sb.WriteString(statusStyle.Render("  action: " + m.lastAction.String()))
	}
	if m.lastErr != nil {
		sb.WriteString(errorStyle.Render("  " + m.lastErr.Error()))
	}
	sb.WriteString("\n\n")

	// Chart
	sb.WriteString(chartStyle.Render(m.chart.View()))
	sb.WriteString("\n")

	// Legend
	sb.WriteString(renderLegend(m.cfg.series))
	sb.WriteString("\n")

	// Log box
	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(m.width - 4)

	var logLines string
	if len(m.logs) == 0 {
		logLines = statusStyle.Render("Press 'q' to quit")
	} else {
		logLines = strings.Join(m.logs, "\n")
	}
	sb.WriteString(logStyle.Render(logLines))
	sb.WriteString("\n")

	return sb.String()
}

func renderLegend(all []series) string {
	var items []string
	for _, s := range all {
		colorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.color)).Bold(true)
		item := colorStyle.Render("━━") + " " + s.name
		items = append(items, item)
	}
	return strings.Join(items, "  ")
}
