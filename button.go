package elastic

import "github.com/hajimehoshi/ebiten/v2"

var (
	colorButton       = Color{R: 1, G: 1, B: 1, A: 0.1}
	colorButtonActive = colorFill
)

// Button is a clickable rectangle. A click is a press and a release of the
// same pointer, both inside the button.
type Button struct {
	Label string

	bounds  Rect
	onClick func()
	active  func() bool
	d       *Dispatcher
	handle  CallbackHandle

	pressed   bool
	pointerID int
	up        CallbackHandle
	cancel    CallbackHandle
}

// NewButton creates a button and registers it as a press target on d.
// active, if non-nil, decides whether the button is drawn highlighted.
func NewButton(d *Dispatcher, label string, bounds Rect, onClick func(), active func() bool) *Button {
	b := &Button{
		Label:   label,
		bounds:  bounds,
		onClick: onClick,
		active:  active,
		d:       d,
	}
	b.handle = d.AddTarget(b)
	return b
}

// Bounds returns the button rectangle.
func (b *Button) Bounds() Rect { return b.bounds }

// Active reports whether the button is highlighted.
func (b *Button) Active() bool {
	return b.active != nil && b.active()
}

// HitTest reports whether (x, y) is on the button.
func (b *Button) HitTest(x, y float64) bool {
	return b.bounds.Contains(x, y)
}

// PointerDown arms the button and captures the pointer until release.
func (b *Button) PointerDown(ev PointerEvent) {
	if b.pressed {
		return
	}
	b.pressed = true
	b.pointerID = ev.PointerID
	b.d.CapturePointer(ev.PointerID, b)
	b.up = b.d.OnPointerUp(b, b.pointerUp)
	b.cancel = b.d.OnPointerCancel(b, b.pointerCancel)
}

func (b *Button) pointerUp(ev PointerEvent) {
	if !b.pressed || ev.PointerID != b.pointerID {
		return
	}
	b.disarm()
	if b.HitTest(ev.X, ev.Y) && b.onClick != nil {
		b.onClick()
	}
}

func (b *Button) pointerCancel(ev PointerEvent) {
	if !b.pressed || ev.PointerID != b.pointerID {
		return
	}
	b.disarm()
}

func (b *Button) disarm() {
	b.pressed = false
	if b.d.Captured(b.pointerID) == b {
		b.d.ReleasePointer(b.pointerID)
	}
	b.up.Remove()
	b.cancel.Remove()
}

// Close disarms the button and unregisters it.
func (b *Button) Close() {
	if b.pressed {
		b.disarm()
	}
	b.handle.Remove()
}

// Draw renders the button background and centered label.
func (b *Button) Draw(dst *ebiten.Image) {
	c := colorButton
	if b.Active() {
		c = colorButtonActive
	}
	r := b.bounds
	fillRect(dst, float32(r.X), float32(r.Y), float32(r.Right()), float32(r.Y+r.Height), c)
	drawCenteredText(dst, b.Label, r)
}
