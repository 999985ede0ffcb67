// Package behavior provides reactive control loops for the RoDI robot.
package behavior

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gwillem/rodi/pkg/robot"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// State is published after every loop iteration.
type State struct {
	RunID     string
	Distance  robot.Reading
	Line      robot.Reading
	Action    Action
	Timestamp time.Time
	Error     error
}

// Config holds settings shared by all behaviors. Zero values use defaults.
type Config struct {
	// Out receives sensor printouts. Nil discards them.
	Out io.Writer
	// Log receives log lines in addition to the Logs channel.
	Log io.Writer
	// Sleep is used for every pause. Defaults to robot.Sleep.
	Sleep SleepFunc

	Interval time.Duration // avoider poll interval
	Pause    time.Duration // follower wait after reading sensors
	Turn     time.Duration // follower left turn before resuming forward
	Backoff  time.Duration // follower reverse time before stopping
}

func (c Config) withDefaults() Config {
	if c.Out == nil {
		c.Out = io.Discard
	}
	if c.Sleep == nil {
		c.Sleep = robot.Sleep
	}
	if c.Interval <= 0 {
		c.Interval = 100 * time.Millisecond
	}
	if c.Pause <= 0 {
		c.Pause = time.Second
	}
	if c.Turn <= 0 {
		c.Turn = 500 * time.Millisecond
	}
	if c.Backoff <= 0 {
		c.Backoff = time.Second
	}
	return c
}

// loop carries the plumbing shared by Avoider and Follower: a run ID, state
// and log channels, and a guard against running twice.
type loop struct {
	robot robot.Robot
	cfg   Config
	runID string

	mu      sync.Mutex
	running bool
	stateCh chan State
	logCh   chan string
}

func (l *loop) init(r robot.Robot, cfg Config) {
	l.robot = r
	l.cfg = cfg.withDefaults()
	l.runID = uuid.NewString()
	l.stateCh = make(chan State, 1)
	l.logCh = make(chan string, 10)
}

// States returns a channel that receives state updates.
func (l *loop) States() <-chan State {
	return l.stateCh
}

// Logs returns a channel that receives log messages.
func (l *loop) Logs() <-chan string {
	return l.logCh
}

// RunID identifies this loop in logs and states.
func (l *loop) RunID() string {
	return l.runID
}

func (l *loop) log(format string, args ...any) {
	msg := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	if l.cfg.Log != nil {
		fmt.Fprintln(l.cfg.Log, msg)
	}
	select {
	case l.logCh <- msg:
	default:
		// Drop if channel full
	}
}

func (l *loop) begin() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return fmt.Errorf("already running")
	}
	l.running = true
	return nil
}

func (l *loop) end() {
	l.mu.Lock()
	l.running = false
	l.mu.Unlock()
}

func (l *loop) sendState(s State) {
	s.RunID = l.runID
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now()
	}
	select {
	case l.stateCh <- s:
	default:
		// Drop old state if channel full, replace with new
		select {
		case <-l.stateCh:
		default:
		}
		l.stateCh <- s
	}
}

// stopped runs the cleanup action once the loop's context is done. The
// cleanup request is sent even though ctx is cancelled.
func (l *loop) stopped(ctx context.Context, what string, cleanup func(context.Context) error) error {
	if err := cleanup(context.WithoutCancel(ctx)); err != nil {
		l.log("Warning: %s failed: %v", what, err)
		return fmt.Errorf("%s: %w", what, err)
	}
	l.log("Stopped (%s)", what)
	return ctx.Err()
}
