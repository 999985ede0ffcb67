package behavior

import (
	"context"
	"fmt"
	"time"

	"github.com/gwillem/rodi/pkg/robot"
)

// Demo runs through every capability of the robot once: LED, blink, each
// movement, a tone, a rainbow on the pixel and the three main sensors.
// It stops at the first error or when ctx is done.
func Demo(ctx context.Context, r robot.Robot, cfg Config) error {
	cfg = cfg.withDefaults()
	out := cfg.Out

	steps := []struct {
		title string
		run   func(context.Context) error
	}{
		{"turn led on", func(ctx context.Context) error { return r.LED(ctx, true) }},
		{"turn led off", func(ctx context.Context) error { return r.LED(ctx, false) }},
		{"blink", func(ctx context.Context) error { return r.Blink(ctx, 200) }},
		{"move forward", r.MoveForward},
		{"rotate left", r.MoveLeft},
		{"move forward", r.MoveForward},
		{"rotate right", r.MoveRight},
		{"move backward", r.MoveBackward},
		{"stop", r.MoveStop},
		{"sing", func(ctx context.Context) error { return r.Sing(ctx, 33, 1000) }},
	}

	for _, s := range steps {
		fmt.Fprintf(out, "RoDI %s\n", s.title)
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
		if err := cfg.Sleep(ctx, time.Second); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, "RoDI do a rainbow")
	for j := 0; j < 256; j++ {
		if err := r.Pixel(ctx, robot.Wheel(uint8(j))); err != nil {
			return fmt.Errorf("rainbow: %w", err)
		}
		if err := cfg.Sleep(ctx, 5*time.Millisecond); err != nil {
			return err
		}
	}
	if err := r.Pixel(ctx, robot.Off); err != nil {
		return fmt.Errorf("rainbow: %w", err)
	}

	queries := []struct {
		title  string
		format string
		read   func(context.Context) (robot.Reading, error)
	}{
		{"see", " - I see something at %s cm\n", r.See},
		{"sense", " - My sensors sense: %s\n", r.Sense},
		{"see light", " - My light sensor senses: %s\n", r.Light},
	}
	for i, q := range queries {
		fmt.Fprintf(out, "RoDI %s\n", q.title)
		reading, err := q.read(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", q.title, err)
		}
		fmt.Fprintf(out, q.format, reading)
		if i < len(queries)-1 {
			if err := cfg.Sleep(ctx, time.Second); err != nil {
				return err
			}
		}
	}

	return r.Blink(ctx, 0)
}
