// Package robot provides a client for the RoDI robot's HTTP control surface.
package robot

import "context"

// Robot is the set of capabilities exposed by the RoDI firmware.
// Client is the network implementation; the behaviors in pkg/behavior
// only depend on this interface.
type Robot interface {
	Blink(ctx context.Context, ms int) error
	Move(ctx context.Context, left, right int) error
	MoveLeft(ctx context.Context) error
	MoveRight(ctx context.Context) error
	MoveForward(ctx context.Context) error
	MoveBackward(ctx context.Context) error
	MoveStop(ctx context.Context) error
	Sing(ctx context.Context, note, ms int) error
	Pixel(ctx context.Context, c RGB) error
	LED(ctx context.Context, on bool) error

	See(ctx context.Context) (Reading, error)
	Sense(ctx context.Context) (Reading, error)
	Light(ctx context.Context) (Reading, error)
	IMU(ctx context.Context) (Reading, error)
}

var _ Robot = (*Client)(nil)
