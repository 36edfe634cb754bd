package elastic

import "math"

// Presentation is what a renderer needs to draw one slider frame.
type Presentation struct {
	FillPercent float64 // (value-min)/(max-min)*100, not clamped
	ScaleX      float64 // horizontal scale of the stretched track, >= 1
	Origin      Origin  // edge the scale is anchored to
	AnimateFill bool    // false while dragging so the fill tracks the pointer exactly
}

// Present derives the visual state for value and stretch. A positive stretch
// (pulled past the left edge) anchors the scale on the right so the track
// grows leftward, and vice versa.
func Present(value int, r Range, stretch float64, dragging bool) Presentation {
	p := Presentation{
		FillPercent: (float64(value) - float64(r.Min)) / r.Span() * 100,
		ScaleX:      1,
		Origin:      OriginLeft,
		AnimateFill: !dragging,
	}
	if stretch != 0 {
		p.ScaleX = 1 + math.Abs(stretch)/100
	}
	if stretch > 0 {
		p.Origin = OriginRight
	}
	return p
}

// ScaleAbout scales the horizontal span [left, right] by scale, anchored on
// the origin edge, and returns the new span.
func ScaleAbout(left, right, scale float64, origin Origin) (float64, float64) {
	w := (right - left) * scale
	if origin == OriginRight {
		return right - w, right
	}
	return left, left + w
}
