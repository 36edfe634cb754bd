package elastic

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultSettleDuration matches a 0.3s ease-out transition.
const DefaultSettleDuration = 0.3

// Settler moves a displayed value toward a target one frame at a time.
// Each Settler animates a single channel and keeps its own state.
type Settler interface {
	Settle(current, target, dt float64) float64
}

// TweenSettler eases toward the target over a fixed duration. Changing the
// target, or feeding a current value it did not produce, restarts the tween
// from current.
type TweenSettler struct {
	Duration float32
	Ease     ease.TweenFunc

	tween *gween.Tween
	to    float64
	last  float64
}

// NewTweenSettler returns a settler using fn over duration seconds. A nil fn
// selects ease.OutQuad.
func NewTweenSettler(duration float32, fn ease.TweenFunc) *TweenSettler {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &TweenSettler{Duration: duration, Ease: fn}
}

// Settle advances the tween by dt seconds and returns the new value.
func (t *TweenSettler) Settle(current, target, dt float64) float64 {
	if t.tween == nil || target != t.to || current != t.last {
		if current == target {
			t.tween = nil
			t.last = target
			return target
		}
		t.tween = gween.New(float32(current), float32(target), t.Duration, t.Ease)
		t.to = target
	}
	v, done := t.tween.Update(float32(dt))
	if done {
		t.tween = nil
		t.last = target
		return target
	}
	t.last = float64(v)
	return t.last
}

// SpringSettler follows the target with a damped harmonic spring. The frame
// step is fixed at construction, so dt is ignored.
type SpringSettler struct {
	spring harmonica.Spring
	vel    float64
}

// springRest is how close position and velocity must be to the target before
// the spring snaps to rest.
const springRest = 1e-3

// NewSpringSettler creates a spring stepped at fps with the given angular
// frequency and damping ratio.
func NewSpringSettler(fps int, frequency, damping float64) *SpringSettler {
	return &SpringSettler{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Settle steps the spring once toward target.
func (s *SpringSettler) Settle(current, target, _ float64) float64 {
	p, v := s.spring.Update(current, s.vel, target)
	if math.Abs(p-target) < springRest && math.Abs(v) < springRest {
		s.vel = 0
		return target
	}
	s.vel = v
	return p
}

// TweenFactory returns a constructor for ease-out tween settlers, one per
// animated channel.
func TweenFactory(duration float32) func() Settler {
	return func() Settler { return NewTweenSettler(duration, ease.OutQuad) }
}

// SpringFactory returns a constructor for spring settlers.
func SpringFactory(fps int, frequency, damping float64) func() Settler {
	return func() Settler { return NewSpringSettler(fps, frequency, damping) }
}
