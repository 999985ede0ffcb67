// Package sim provides a simulated RoDI firmware. It serves the same HTTP
// protocol as the robot so the client and behaviors can be exercised without
// hardware.
package sim

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gwillem/rodi/pkg/robot"
)

// Limits of the simulated distance sensor, in cm.
const (
	MinDistance = 2
	MaxDistance = 300
)

// IMU mirrors the MPU-6050 readout.
type IMU struct {
	AX   int `json:"ax"`
	AY   int `json:"ay"`
	AZ   int `json:"az"`
	GX   int `json:"gx"`
	GY   int `json:"gy"`
	GZ   int `json:"gz"`
	Temp int `json:"temp"` // degrees C * 10
}

// State is everything the simulated robot knows.
type State struct {
	Left, Right int
	Pixel       robot.RGB
	LED         bool
	BlinkMs     int
	Note        int
	NoteMs      int

	Distance int
	Line     robot.LinePair
	Light    int
	IMU      IMU
}

// DefaultState is a robot sitting on a white table with a wall 50cm ahead.
func DefaultState() State {
	return State{
		Distance: 50,
		Line:     robot.LinePair{1000, 1000},
		Light:    512,
		IMU:      IMU{AZ: 16384, Temp: 250},
	}
}

// Firmware is a simulated robot.
type Firmware struct {
	app     *fiber.App
	latency time.Duration

	mu    sync.RWMutex
	state State
}

// New creates a simulated robot. Every request waits latency before it is
// answered; set it above the client timeout to simulate an unreachable robot.
func New(initial State, latency time.Duration) *Firmware {
	f := &Firmware{
		latency: latency,
		state:   initial,
	}

	app := fiber.New(fiber.Config{
		AppName:               "RoDI simulator",
		DisableStartupMessage: true,
	})
	app.Get("/:code/*", f.handle)
	app.Get("/:code", f.handle)

	f.app = app
	return f
}

// App returns the underlying fiber app.
func (f *Firmware) App() *fiber.App {
	return f.app
}

// Listen serves the protocol on addr until Shutdown is called.
func (f *Firmware) Listen(addr string) error {
	return f.app.Listen(addr)
}

// Shutdown stops the server.
func (f *Firmware) Shutdown() error {
	return f.app.Shutdown()
}

// State returns a copy of the current state.
func (f *Firmware) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// SetDistance places an obstacle cm ahead.
func (f *Firmware) SetDistance(cm int) {
	f.mu.Lock()
	f.state.Distance = clamp(cm, MinDistance, MaxDistance)
	f.mu.Unlock()
}

// SetLine sets the line sensor readings.
func (f *Firmware) SetLine(line robot.LinePair) {
	f.mu.Lock()
	f.state.Line = line
	f.mu.Unlock()
}

// SetLight sets the ambient light reading.
func (f *Firmware) SetLight(v int) {
	f.mu.Lock()
	f.state.Light = v
	f.mu.Unlock()
}

func (f *Firmware) handle(c *fiber.Ctx) error {
	if f.latency > 0 {
		time.Sleep(f.latency)
	}

	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "unknown method")
	}
	m, ok := robot.ParseMethod(code)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown method")
	}
	args, err := parseArgs(c.Params("*"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if want := arity[m]; len(args) < want {
		return fiber.NewError(fiber.StatusBadRequest, m.String()+" needs "+strconv.Itoa(want)+" arguments")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch m {
	case robot.MethodBlink:
		f.state.BlinkMs = args[0]
	case robot.MethodMove:
		f.state.Left = clamp(args[0], -100, 100)
		f.state.Right = clamp(args[1], -100, 100)
	case robot.MethodSing:
		f.state.Note, f.state.NoteMs = args[0], args[1]
	case robot.MethodPixel:
		f.state.Pixel = robot.RGB{
			R: uint8(clamp(args[0], 0, 255)),
			G: uint8(clamp(args[1], 0, 255)),
			B: uint8(clamp(args[2], 0, 255)),
		}
	case robot.MethodLED:
		f.state.LED = args[0] != 0
	case robot.MethodSee:
		f.advance()
		return c.JSON(f.state.Distance)
	case robot.MethodSense:
		return c.JSON(f.state.Line)
	case robot.MethodLight:
		return c.JSON(f.state.Light)
	case robot.MethodIMU:
		return c.JSON(f.state.IMU)
	}
	return c.SendString("OK")
}

// advance moves the simulated obstacle by the average wheel speed: 1cm per
// see() at full speed. Callers hold f.mu.
func (f *Firmware) advance() {
	speed := (f.state.Left + f.state.Right) / 2
	f.state.Distance = clamp(f.state.Distance-speed/100, MinDistance, MaxDistance)
}

var arity = map[robot.Method]int{
	robot.MethodBlink: 1,
	robot.MethodMove:  2,
	robot.MethodSing:  2,
	robot.MethodPixel: 3,
	robot.MethodLED:   1,
}

func parseArgs(path string) ([]int, error) {
	var args []int
	for _, p := range strings.Split(path, "/") {
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
