package elastic

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider layout, in pixels.
const (
	labelRowHeight = 20
	framePadY      = 8  // space above and below the frame
	frameMarginX   = 8  // inset of the frame from the slider bounds
	framePad       = 6  // frame padding around the track
	trackHeight    = 48 // height of the hit-testable track
	edgeLineWidth  = 2
	edgeLineHeight = 24
	edgeLineInset  = 8
	glyphWidth     = 6 // ebitenutil debug font advance
)

var (
	colorFrame = Color{R: 1, G: 1, B: 1, A: 0.1}
	colorTrack = Color{R: 0, G: 0, B: 0, A: 0.5}
	colorFill  = Color{R: 0.659, G: 0.333, B: 0.969, A: 1} // purple
	colorEdge  = Color{R: 1, G: 1, B: 1, A: 0.5}
)

// SliderOptions configures a Slider. Value and OnChange are required.
type SliderOptions struct {
	Value    func() int // host-owned current value
	OnChange func(int)
	Label    string
	Suffix   string
	// Min and Max bound the domain. Leaving both zero selects 0..100.
	Min, Max int

	Bounds Rect           // area the slider lays itself out in
	Settle func() Settler // animation for stretch and fill; defaults to a 0.3s ease-out tween
	Policy SessionPolicy
	Debug  bool
}

func (o SliderOptions) domain() Range {
	if o.Min == 0 && o.Max == 0 {
		return DefaultRange
	}
	return Range{Min: o.Min, Max: o.Max}
}

// SliderHeight returns the vertical space a slider needs.
func SliderHeight(hasLabel bool) float64 {
	h := float64(framePadY*2 + framePad*2 + trackHeight)
	if hasLabel {
		h += labelRowHeight
	}
	return h
}

// Slider is an elastic slider widget: an Engine bound to a laid-out track,
// plus the animated state used to draw it.
type Slider struct {
	opts   SliderOptions
	engine *Engine
	handle CallbackHandle
	bounds Rect

	fill     float64 // displayed fill percent
	stretch  float64 // displayed stretch
	fillS    Settler
	stretchS Settler
}

// NewSlider creates a slider and registers it as a press target on d.
func NewSlider(d *Dispatcher, opts SliderOptions) (*Slider, error) {
	if opts.Value == nil {
		return nil, fmt.Errorf("elastic: new slider %q: %w", opts.Label, ErrNoValue)
	}
	if opts.Settle == nil {
		opts.Settle = TweenFactory(DefaultSettleDuration)
	}
	s := &Slider{
		opts:     opts,
		bounds:   opts.Bounds,
		fillS:    opts.Settle(),
		stretchS: opts.Settle(),
	}
	eng, err := NewEngine(EngineConfig{
		Range:      opts.domain(),
		OnChange:   opts.OnChange,
		Geometry:   s.geometry,
		Dispatcher: d,
		Owner:      s,
		Policy:     opts.Policy,
		Debug:      opts.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: new slider %q: %w", opts.Label, err)
	}
	s.engine = eng
	s.fill = Present(opts.Value(), eng.Range(), 0, false).FillPercent
	if d != nil {
		s.handle = d.AddTarget(s)
	}
	return s, nil
}

// Engine returns the slider's interaction engine.
func (s *Slider) Engine() *Engine { return s.engine }

// Bounds returns the area the slider occupies.
func (s *Slider) Bounds() Rect { return s.bounds }

// SetBounds moves or resizes the slider. An active drag keeps working; the
// next pointer event reads the new track.
func (s *Slider) SetBounds(r Rect) { s.bounds = r }

// Track returns the track rectangle in screen coordinates, ignoring any
// stretch transform.
func (s *Slider) Track() Rect {
	y := s.bounds.Y + framePadY + framePad
	if s.opts.Label != "" {
		y += labelRowHeight
	}
	return Rect{
		X:      s.bounds.X + frameMarginX + framePad,
		Y:      y,
		Width:  s.bounds.Width - 2*(frameMarginX+framePad),
		Height: trackHeight,
	}
}

func (s *Slider) geometry() (Rect, bool) {
	t := s.Track()
	return t, t.Width > 0
}

// HitTest reports whether (x, y) is on the track.
func (s *Slider) HitTest(x, y float64) bool {
	t := s.Track()
	return t.Width > 0 && t.Contains(x, y)
}

// PointerDown starts a drag on the track.
func (s *Slider) PointerDown(ev PointerEvent) {
	s.engine.PointerDown(ev)
}

// Update advances the stretch and fill animations by dt seconds. The fill
// follows the value without animation while dragging.
func (s *Slider) Update(dt float64) {
	target := Present(s.opts.Value(), s.engine.Range(), 0, false).FillPercent
	if s.engine.Dragging() {
		s.fill = target
	} else {
		s.fill = s.fillS.Settle(s.fill, target, dt)
	}
	s.stretch = s.stretchS.Settle(s.stretch, s.engine.Stretch(), dt)
}

// Presentation returns the displayed state, including in-flight animation.
func (s *Slider) Presentation() Presentation {
	p := Present(s.opts.Value(), s.engine.Range(), s.stretch, s.engine.Dragging())
	p.FillPercent = s.fill
	return p
}

// Close cancels any drag and unregisters the slider from its dispatcher.
func (s *Slider) Close() {
	s.engine.Close()
	s.handle.Remove()
}

// Draw renders the label row, frame, track and fill.
func (s *Slider) Draw(dst *ebiten.Image) {
	b := s.bounds
	if b.Width <= 0 {
		return
	}
	p := s.Presentation()

	if s.opts.Label != "" {
		ebitenutil.DebugPrintAt(dst, s.opts.Label, int(b.X), int(b.Y))
		val := fmt.Sprintf("%d%s", s.opts.Value(), s.opts.Suffix)
		ebitenutil.DebugPrintAt(dst, val, int(b.Right())-len(val)*glyphWidth, int(b.Y))
	}

	// The whole frame scales horizontally about the origin edge.
	left, right := ScaleAbout(b.X, b.Right(), p.ScaleX, p.Origin)
	sx := func(x float64) float32 {
		return float32(left + (x-b.X)*(right-left)/b.Width)
	}

	t := s.Track()
	fy := t.Y - framePad
	fillRect(dst, sx(b.X+frameMarginX), float32(fy), sx(b.Right()-frameMarginX), float32(fy+trackHeight+2*framePad), colorFrame)
	fillRect(dst, sx(t.X), float32(t.Y), sx(t.Right()), float32(t.Y+t.Height), colorTrack)

	pct := clamp(p.FillPercent, 0, 100)
	if pct <= 0 {
		return
	}
	fillRight := t.X + t.Width*pct/100
	fillRect(dst, sx(t.X), float32(t.Y), sx(fillRight), float32(t.Y+t.Height), colorFill)
	if fillRight-t.X > 2*edgeLineInset {
		ex := fillRight - edgeLineInset - edgeLineWidth
		ey := t.Y + (t.Height-edgeLineHeight)/2
		fillRect(dst, sx(ex), float32(ey), sx(ex+edgeLineWidth), float32(ey+edgeLineHeight), colorEdge)
	}
}

// fillRect draws a solid rectangle from (x0, y0) to (x1, y1).
func fillRect(dst *ebiten.Image, x0, y0, x1, y1 float32, c Color) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	vector.DrawFilledRect(dst, x0, y0, x1-x0, y1-y0, c.toRGBA(), true)
}
