package elastic

import (
	"errors"
	"image/color"
	"math"
)

// Default domain bounds and stretch tuning.
const (
	DefaultMin = 0
	DefaultMax = 100

	MaxStretch    = 5.0 // stretch is capped to [-MaxStretch, MaxStretch]
	StretchFactor = 3.0 // overshoot percent per unit of stretch
)

var (
	// ErrInvalidRange is returned when a range does not satisfy Min < Max.
	ErrInvalidRange = errors.New("min must be less than max")
	// ErrNoCallback is returned when no change callback is configured.
	ErrNoCallback = errors.New("change callback is required")
	// ErrNoGeometry is returned when no track geometry query is configured.
	ErrNoGeometry = errors.New("geometry query is required")
	// ErrNoValue is returned when a slider has no value accessor.
	ErrNoValue = errors.New("value accessor is required")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Range is the integer domain a slider maps onto.
type Range struct {
	Min, Max int
}

// DefaultRange is the 0..100 domain used when none is configured.
var DefaultRange = Range{Min: DefaultMin, Max: DefaultMax}

// Validate returns ErrInvalidRange unless Min < Max.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return ErrInvalidRange
	}
	return nil
}

// Span returns Max - Min as a float.
func (r Range) Span() float64 {
	return float64(r.Max) - float64(r.Min)
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v int) int {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown   EventType = iota // fires when a pointer is pressed
	EventPointerMove                    // fires when a held pointer moves
	EventPointerUp                      // fires when a pointer is released
	EventPointerCancel                  // fires when the platform abandons a held pointer
)

func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "down"
	case EventPointerMove:
		return "move"
	case EventPointerUp:
		return "up"
	case EventPointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Origin selects the edge a stretched track scales away from.
type Origin uint8

const (
	OriginLeft  Origin = iota // grow toward the right edge
	OriginRight               // grow toward the left edge
)

// SessionPolicy decides what a press from a second pointer does while a drag
// session is already active.
type SessionPolicy uint8

const (
	SessionKeep    SessionPolicy = iota // ignore the new pointer until the session ends
	SessionReplace                      // end the session and start one for the new pointer
)
