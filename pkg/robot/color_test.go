package robot

import "testing"

func TestWheel(t *testing.T) {
	tests := []struct {
		pos      uint8
		expected RGB
	}{
		{0, RGB{255, 0, 0}},   // red
		{85, RGB{0, 255, 0}},  // green
		{170, RGB{0, 0, 255}}, // blue
		{255, RGB{255, 0, 0}}, // back to red
		{128, RGB{0, 126, 129}},
		{200, RGB{90, 0, 165}},
	}

	for _, tt := range tests {
		got := Wheel(tt.pos)
		if got != tt.expected {
			t.Errorf("Wheel(%d) = %v, want %v", tt.pos, got, tt.expected)
		}
	}
}

func TestWheel_Smooth(t *testing.T) {
	abs := func(v int) int {
		if v < 0 {
			return -v
		}
		return v
	}

	prev := Wheel(0)
	for i := 1; i <= 255; i++ {
		c := Wheel(uint8(i))
		if abs(int(c.R)-int(prev.R)) > 3 || abs(int(c.G)-int(prev.G)) > 3 || abs(int(c.B)-int(prev.B)) > 3 {
			t.Errorf("Wheel(%d) = %v jumps from %v", i, c, prev)
		}
		if int(c.R)+int(c.G)+int(c.B) != 255 {
			t.Errorf("Wheel(%d) = %v, channels should sum to 255", i, c)
		}
		prev = c
	}
}
