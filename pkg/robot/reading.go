package robot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrAbsent is returned when decoding a Reading that holds no data.
var ErrAbsent = errors.New("no reading available")

// Reading is the result of a sensor query. Its shape is defined by the
// firmware. A zero Reading is absent: the robot did not answer in time.
type Reading struct {
	raw json.RawMessage
}

// NewReading wraps a raw JSON payload. A nil payload yields an absent Reading.
func NewReading(raw json.RawMessage) Reading {
	return Reading{raw: raw}
}

// Present reports whether the robot returned data. A JSON null counts as
// no data.
func (r Reading) Present() bool {
	return r.raw != nil && !bytes.Equal(bytes.TrimSpace(r.raw), []byte("null"))
}

// Raw returns the JSON body exactly as received, or nil if nothing was.
func (r Reading) Raw() json.RawMessage {
	return r.raw
}

// Decode unmarshals the reading into v.
func (r Reading) Decode(v any) error {
	if !r.Present() {
		return ErrAbsent
	}
	if err := json.Unmarshal(r.raw, v); err != nil {
		return fmt.Errorf("decode reading: %w", err)
	}
	return nil
}

// Int decodes a single numeric reading, as returned by see and light.
// Fractional values are rejected.
func (r Reading) Int() (int, error) {
	var f float64
	if err := r.Decode(&f); err != nil {
		return 0, err
	}
	return toInt(f)
}

func toInt(f float64) (int, error) {
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("decode reading: %v is not a sensor value", f)
	}
	return int(f), nil
}

// LinePair holds the two line follower channels (front-left, front-right).
type LinePair [2]int

// Pair decodes the two-element reading returned by sense.
func (r Reading) Pair() (LinePair, error) {
	var vals []float64
	if err := r.Decode(&vals); err != nil {
		return LinePair{}, err
	}
	if len(vals) < 2 {
		return LinePair{}, fmt.Errorf("decode reading: want 2 values, got %d", len(vals))
	}
	var pair LinePair
	for i := range pair {
		v, err := toInt(vals[i])
		if err != nil {
			return LinePair{}, err
		}
		pair[i] = v
	}
	return pair, nil
}

func (r Reading) String() string {
	if !r.Present() {
		return "none"
	}
	return string(r.raw)
}
