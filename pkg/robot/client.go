package robot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// maxBody bounds how much of a response we read. Sensor payloads are tiny.
const maxBody = 64 << 10

var (
	// ErrUnknownMethod is returned when a request is built for a code the
	// firmware does not define.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrStatus is returned when a query gets a non-200 response.
	ErrStatus = errors.New("unexpected status code")
	// ErrMalformed is returned when a query response is not valid JSON.
	ErrMalformed = errors.New("malformed response body")
)

// Client talks to the web server embedded in a RoDI robot.
//
// Every call is a single GET with no retries. Timeouts are not errors: commands
// report success and queries return an absent Reading. Any other transport
// failure is returned to the caller.
type Client struct {
	host   string
	port   int
	client *http.Client
}

// NewClient creates a client for the robot described by cfg. Zero fields in
// cfg take their defaults. If client is nil, a client with cfg's timeout is
// used.
func NewClient(cfg Config, client *http.Client) *Client {
	cfg = cfg.WithDefaults()
	if client == nil {
		client = &http.Client{
			Timeout: cfg.Timeout.Duration(),
		}
	}
	return &Client{
		host:   cfg.Host,
		port:   cfg.Port,
		client: client,
	}
}

// Addr returns host:port of the robot.
func (c *Client) Addr() string {
	return net.JoinHostPort(c.host, strconv.Itoa(c.port))
}

// URL builds the request URL for m with args in call order:
//
//	http://{host}:{port}/{code}/{arg1}/.../{argN}
//
// With no args the trailing slash is kept.
func (c *Client) URL(m Method, args ...int) (string, error) {
	if !m.Valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("http://%s/%d/%s", c.Addr(), m.Code(), strings.Join(parts, "/")), nil
}

// Blink blinks the LED for ms milliseconds.
func (c *Client) Blink(ctx context.Context, ms int) error {
	return c.command(ctx, MethodBlink, ms)
}

// Move sets the wheel speeds. Speeds range from -100 to 100.
func (c *Client) Move(ctx context.Context, left, right int) error {
	return c.command(ctx, MethodMove, left, right)
}

// MoveLeft rotates the robot to the left.
func (c *Client) MoveLeft(ctx context.Context) error {
	return c.Move(ctx, -100, 100)
}

// MoveRight rotates the robot to the right.
func (c *Client) MoveRight(ctx context.Context) error {
	return c.Move(ctx, 100, -100)
}

// MoveForward drives straight ahead.
func (c *Client) MoveForward(ctx context.Context) error {
	return c.Move(ctx, 100, 100)
}

// MoveBackward drives straight back.
func (c *Client) MoveBackward(ctx context.Context) error {
	return c.Move(ctx, -100, -100)
}

// MoveStop stops both wheels.
func (c *Client) MoveStop(ctx context.Context) error {
	return c.Move(ctx, 0, 0)
}

// Sing plays a tone. Notes follow the Arduino tone() pitch table.
func (c *Client) Sing(ctx context.Context, note, ms int) error {
	return c.command(ctx, MethodSing, note, ms)
}

// Pixel sets the color of the RGB pixel.
func (c *Client) Pixel(ctx context.Context, color RGB) error {
	return c.command(ctx, MethodPixel, int(color.R), int(color.G), int(color.B))
}

// LED turns the LED on or off.
func (c *Client) LED(ctx context.Context, on bool) error {
	state := 0
	if on {
		state = 1
	}
	return c.command(ctx, MethodLED, state)
}

// See reads the distance in cm to the object in front of the robot.
func (c *Client) See(ctx context.Context) (Reading, error) {
	return c.query(ctx, MethodSee)
}

// Sense reads the two line follower sensors, each from 0 (black) to
// 1023 (white).
func (c *Client) Sense(ctx context.Context) (Reading, error) {
	return c.query(ctx, MethodSense)
}

// Light reads the ambient light sensor (0-1023).
func (c *Client) Light(ctx context.Context) (Reading, error) {
	return c.query(ctx, MethodLight)
}

// IMU reads accelerations, angular velocities and temperature from the
// MPU-6050.
func (c *Client) IMU(ctx context.Context) (Reading, error) {
	return c.query(ctx, MethodIMU)
}

// command sends a request whose response is ignored.
func (c *Client) command(ctx context.Context, m Method, args ...int) error {
	res, err := c.do(ctx, m, args...)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil
		}
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBody))
	return nil
}

// query sends a request and returns its JSON body.
func (c *Client) query(ctx context.Context, m Method) (Reading, error) {
	res, err := c.do(ctx, m)
	if err != nil {
		if isTimeout(ctx, err) {
			return Reading{}, nil
		}
		return Reading{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("%s: %w %d", m, ErrStatus, res.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		if isTimeout(ctx, err) {
			return Reading{}, nil
		}
		return Reading{}, fmt.Errorf("%s: read body: %w", m, err)
	}
	if !json.Valid(body) {
		return Reading{}, fmt.Errorf("%s: %w: %q", m, ErrMalformed, body)
	}
	return Reading{raw: body}, nil
}

func (c *Client) do(ctx context.Context, m Method, args ...int) (*http.Response, error) {
	u, err := c.URL(m, args...)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", m, err)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", m, err)
	}
	return res, nil
}

// isTimeout reports whether err is the client's own timeout. Cancellation or
// expiry of the caller's ctx is never treated as a timeout.
func isTimeout(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// Sleep pauses for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
