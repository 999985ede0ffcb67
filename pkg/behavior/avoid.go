package behavior

import (
	"context"
	"fmt"

	"github.com/gwillem/rodi/pkg/robot"
)

// AlertColor is shown on the pixel when the avoider is interrupted.
var AlertColor = robot.RGB{R: 230, G: 20, B: 10}

// Avoider polls the distance sensor and reports what it sees until its
// context is cancelled.
type Avoider struct {
	loop
}

// NewAvoider creates a distance loop for r.
func NewAvoider(r robot.Robot, cfg Config) *Avoider {
	a := &Avoider{}
	a.init(r, cfg)
	return a
}

// Run polls see() every Interval until ctx is done, then sets the pixel to
// AlertColor. Requests in flight when ctx is cancelled are allowed to finish.
func (a *Avoider) Run(ctx context.Context) error {
	if err := a.begin(); err != nil {
		return err
	}
	defer a.end()

	a.log("Distance avoidance started (run %s)", a.runID)
	req := context.WithoutCancel(ctx)

	for {
		if ctx.Err() != nil {
			return a.stop(ctx)
		}
		a.step(req)
		if err := a.cfg.Sleep(ctx, a.cfg.Interval); err != nil {
			return a.stop(ctx)
		}
	}
}

func (a *Avoider) step(ctx context.Context) {
	dist, err := a.robot.See(ctx)
	if err != nil {
		a.log("Read error: %v", err)
		a.sendState(State{Error: err})
		return
	}
	fmt.Fprintf(a.cfg.Out, "I see something at %s cm\n", dist)
	a.sendState(State{Distance: dist})
}

func (a *Avoider) stop(ctx context.Context) error {
	return a.stopped(ctx, "set alert color", func(ctx context.Context) error {
		return a.robot.Pixel(ctx, AlertColor)
	})
}
