package behavior

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/gwillem/rodi/pkg/robot"
)

type MockRobot struct {
	mock.Mock
}

var _ robot.Robot = (*MockRobot)(nil)

func (m *MockRobot) Blink(ctx context.Context, ms int) error {
	return m.Called(ctx, ms).Error(0)
}

func (m *MockRobot) Move(ctx context.Context, left, right int) error {
	return m.Called(ctx, left, right).Error(0)
}

func (m *MockRobot) MoveLeft(ctx context.Context) error     { return m.Called(ctx).Error(0) }
func (m *MockRobot) MoveRight(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockRobot) MoveForward(ctx context.Context) error  { return m.Called(ctx).Error(0) }
func (m *MockRobot) MoveBackward(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockRobot) MoveStop(ctx context.Context) error     { return m.Called(ctx).Error(0) }

func (m *MockRobot) Sing(ctx context.Context, note, ms int) error {
	return m.Called(ctx, note, ms).Error(0)
}

func (m *MockRobot) Pixel(ctx context.Context, c robot.RGB) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockRobot) LED(ctx context.Context, on bool) error {
	return m.Called(ctx, on).Error(0)
}

func (m *MockRobot) See(ctx context.Context) (robot.Reading, error) {
	args := m.Called(ctx)
	return args.Get(0).(robot.Reading), args.Error(1)
}

func (m *MockRobot) Sense(ctx context.Context) (robot.Reading, error) {
	args := m.Called(ctx)
	return args.Get(0).(robot.Reading), args.Error(1)
}

func (m *MockRobot) Light(ctx context.Context) (robot.Reading, error) {
	args := m.Called(ctx)
	return args.Get(0).(robot.Reading), args.Error(1)
}

func (m *MockRobot) IMU(ctx context.Context) (robot.Reading, error) {
	args := m.Called(ctx)
	return args.Get(0).(robot.Reading), args.Error(1)
}

// methods returns the names of the calls made on m, in order.
func (m *MockRobot) methods() []string {
	names := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		names = append(names, c.Method)
	}
	return names
}

func reading(raw string) robot.Reading {
	return robot.NewReading(json.RawMessage(raw))
}

// fakeSleep returns immediately. On call number cancelAt it cancels the loop's
// context, so the cancellation is seen at the loop's next check.
type fakeSleep struct {
	cancel   context.CancelFunc
	cancelAt int
	calls    []time.Duration
}

func (f *fakeSleep) sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.calls = append(f.calls, d)
	if len(f.calls) == f.cancelAt {
		f.cancel()
	}
	return nil
}
