package behavior

import (
	"context"
	"fmt"

	"github.com/gwillem/rodi/pkg/robot"
)

// Thresholds used by Decide.
const (
	NearMin       = 5   // cm
	NearMax       = 20  // cm
	LineThreshold = 900 // channel 0 reflectance
)

// Action is the movement chosen for one follower iteration.
type Action int

const (
	// ActionNone issues no command; the robot keeps its last motion.
	ActionNone Action = iota
	// ActionTurnLeft turns left for Turn, then drives forward.
	ActionTurnLeft
	// ActionBackOff reverses for Backoff, then stops.
	ActionBackOff
)

func (a Action) String() string {
	switch a {
	case ActionTurnLeft:
		return "turn left"
	case ActionBackOff:
		return "back off"
	default:
		return "none"
	}
}

// Decide picks the action for a distance reading and line sensor pair.
//
// An obstacle between NearMin and NearMax and a bright channel 0 share one
// branch and both turn left. A true line follower would steer toward the
// channel that lost the line; this one does not.
func Decide(distance int, line robot.LinePair) Action {
	switch {
	case (distance >= NearMin && distance <= NearMax) || line[0] >= LineThreshold:
		return ActionTurnLeft
	case distance < NearMin:
		return ActionBackOff
	default:
		return ActionNone
	}
}

// Follower reads the line and distance sensors and steers the robot.
type Follower struct {
	loop
}

// NewFollower creates a line-follow loop for r.
func NewFollower(r robot.Robot, cfg Config) *Follower {
	f := &Follower{}
	f.init(r, cfg)
	return f
}

// Run executes follower iterations until ctx is done, then stops the motors.
func (f *Follower) Run(ctx context.Context) error {
	if err := f.begin(); err != nil {
		return err
	}
	defer f.end()

	f.log("Line follow started (run %s)", f.runID)
	req := context.WithoutCancel(ctx)

	for {
		if ctx.Err() != nil {
			return f.stop(ctx)
		}
		if err := f.step(ctx, req); err != nil {
			return f.stop(ctx)
		}
	}
}

// step runs one iteration. It only returns an error when ctx is done.
func (f *Follower) step(ctx, req context.Context) error {
	lineR, lineErr := f.robot.Sense(req)
	distR, distErr := f.robot.See(req)

	if err := f.cfg.Sleep(ctx, f.cfg.Pause); err != nil {
		return err
	}

	state := State{Distance: distR, Line: lineR}
	for _, err := range []error{lineErr, distErr} {
		if err != nil {
			f.log("Read error: %v", err)
			state.Error = err
		}
	}
	if state.Error != nil {
		f.sendState(state)
		return nil
	}

	line, err := lineR.Pair()
	if err != nil {
		f.log("Skipping: line sensors: %v", err)
		state.Error = err
		f.sendState(state)
		return nil
	}
	fmt.Fprintf(f.cfg.Out, "line sensor 0: %d\n", line[0])
	fmt.Fprintf(f.cfg.Out, "line sensor 1: %d\n", line[1])

	dist, err := distR.Int()
	if err != nil {
		f.log("Skipping: distance: %v", err)
		state.Error = err
		f.sendState(state)
		return nil
	}

	state.Action = Decide(dist, line)
	f.sendState(state)
	return f.act(ctx, req, state.Action)
}

func (f *Follower) act(ctx, req context.Context, action Action) error {
	var first, then func(context.Context) error
	hold := f.cfg.Turn

	switch action {
	case ActionTurnLeft:
		first, then = f.robot.MoveLeft, f.robot.MoveForward
	case ActionBackOff:
		first, then, hold = f.robot.MoveBackward, f.robot.MoveStop, f.cfg.Backoff
	default:
		return nil
	}

	f.log("Action: %s", action)
	if err := first(req); err != nil {
		f.log("Move error: %v", err)
	}
	if err := f.cfg.Sleep(ctx, hold); err != nil {
		return err
	}
	if err := then(req); err != nil {
		f.log("Move error: %v", err)
	}
	return nil
}

func (f *Follower) stop(ctx context.Context) error {
	return f.stopped(ctx, "stop motors", func(ctx context.Context) error {
		return f.robot.MoveStop(ctx)
	})
}
