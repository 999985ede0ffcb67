package robot

import "fmt"

// RGB is a color for the robot's pixel. Each channel ranges 0-255.
type RGB struct {
	R, G, B uint8
}

// Off turns the pixel off.
var Off = RGB{}

func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// Wheel maps a position 0-255 onto a color wheel.
// The colors transition r - g - b - back to r, so Wheel(0) and Wheel(255)
// are both pure red.
func Wheel(pos uint8) RGB {
	p := 255 - int(pos)
	switch {
	case p < 85:
		return RGB{R: uint8(255 - p*3), B: uint8(p * 3)}
	case p < 170:
		p -= 85
		return RGB{G: uint8(p * 3), B: uint8(255 - p*3)}
	default:
		p -= 170
		return RGB{R: uint8(p * 3), G: uint8(255 - p*3)}
	}
}
