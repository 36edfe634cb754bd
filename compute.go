package elastic

import "math"

// Update is the result of mapping one pointer position onto a track.
type Update struct {
	Value      int     // rounded domain value, always within the range
	Stretch    float64 // signed overshoot signal in [-MaxStretch, MaxStretch]
	RawPercent float64 // pointer position as a percent of the track, unclamped
	Percent    float64 // RawPercent clamped to [0, 100]
}

// ComputeUpdate maps pointerX onto track and r. It reports false when the
// track has no usable width or the pointer coordinate is NaN.
func ComputeUpdate(pointerX float64, track Rect, r Range) (Update, bool) {
	raw, ok := RawPercent(pointerX, track)
	if !ok {
		return Update{}, false
	}
	pct := clamp(raw, 0, 100)
	return Update{
		Value:      ValueAt(pct, r),
		Stretch:    Stretch(raw),
		RawPercent: raw,
		Percent:    pct,
	}, true
}

// RawPercent returns where pointerX falls along track, in percent of its
// width. Positions left of the track are negative, right of it above 100.
func RawPercent(pointerX float64, track Rect) (float64, bool) {
	if math.IsNaN(pointerX) || !(track.Width > 0) || math.IsInf(track.Width, 0) {
		return 0, false
	}
	raw := (pointerX - track.X) / track.Width * 100
	if math.IsNaN(raw) {
		return 0, false
	}
	return raw, true
}

// Stretch converts a raw percent into the elastic overshoot signal. Pulling
// past the left edge is positive, past the right edge negative.
func Stretch(rawPercent float64) float64 {
	var s float64
	switch {
	case rawPercent > 100:
		s = math.Max((100-rawPercent)/StretchFactor, -MaxStretch)
	case rawPercent < 0:
		s = math.Min((0-rawPercent)/StretchFactor, MaxStretch)
	}
	return clamp(s, -MaxStretch, MaxStretch)
}

// ValueAt maps a percent in [0, 100] onto r, rounding half up.
func ValueAt(percent float64, r Range) int {
	p := clamp(percent, 0, 100)
	v := math.Floor(p/100*r.Span() + float64(r.Min) + 0.5)
	return r.Clamp(int(v))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
