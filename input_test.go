package elastic

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// rectTarget is a press target that records the presses it receives.
type rectTarget struct {
	rect    Rect
	presses []PointerEvent
}

func (r *rectTarget) HitTest(x, y float64) bool   { return r.rect.Contains(x, y) }
func (r *rectTarget) PointerDown(ev PointerEvent) { r.presses = append(r.presses, ev) }

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Rect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTest_TopmostTarget(t *testing.T) {
	d := NewDispatcher()
	bottom := &rectTarget{rect: Rect{Width: 100, Height: 100}}
	top := &rectTarget{rect: Rect{X: 50, Width: 100, Height: 100}}
	d.AddTarget(bottom)
	d.AddTarget(top)

	d.Down(PointerEvent{X: 75, Y: 10})
	if len(top.presses) != 1 || len(bottom.presses) != 0 {
		t.Errorf("overlap press: top=%d bottom=%d, want 1 and 0", len(top.presses), len(bottom.presses))
	}

	d.Up(PointerEvent{X: 75, Y: 10})
	d.Down(PointerEvent{X: 10, Y: 10})
	if len(bottom.presses) != 1 {
		t.Errorf("bottom presses = %d, want 1", len(bottom.presses))
	}
}

func TestHitTest_Miss(t *testing.T) {
	d := NewDispatcher()
	tgt := &rectTarget{rect: Rect{Width: 10, Height: 10}}
	d.AddTarget(tgt)

	d.Down(PointerEvent{X: 50, Y: 50})
	if len(tgt.presses) != 0 {
		t.Error("press outside every target should reach none")
	}
	if !d.IsDown(0) {
		t.Error("pointer should be held even when nothing was hit")
	}
}

func TestCallbackHandle_Remove(t *testing.T) {
	d := NewDispatcher()

	var count int
	h := d.OnPointerMove(nil, func(PointerEvent) { count++ })

	d.Move(PointerEvent{X: 1})
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	h.Remove()
	d.Move(PointerEvent{X: 2})
	if count != 1 {
		t.Errorf("count = %d after Remove, want 1", count)
	}

	// Removing twice, or a zero handle, is harmless.
	h.Remove()
	CallbackHandle{}.Remove()
	if got := d.HandlerCount(EventPointerMove); got != 0 {
		t.Errorf("HandlerCount = %d, want 0", got)
	}
}

func TestCallbackHandle_RemoveTarget(t *testing.T) {
	d := NewDispatcher()
	tgt := &rectTarget{rect: Rect{Width: 10, Height: 10}}
	h := d.AddTarget(tgt)
	h.Remove()

	d.Down(PointerEvent{X: 5, Y: 5})
	if len(tgt.presses) != 0 {
		t.Error("removed target should not receive presses")
	}
	if got := d.HandlerCount(EventPointerDown); got != 0 {
		t.Errorf("target count = %d, want 0", got)
	}
}

func TestCallbackHandle_RemoveKeepsOthers(t *testing.T) {
	d := NewDispatcher()
	var order []string
	a := d.OnPointerUp(nil, func(PointerEvent) { order = append(order, "a") })
	d.OnPointerUp(nil, func(PointerEvent) { order = append(order, "b") })
	d.OnPointerUp(nil, func(PointerEvent) { order = append(order, "c") })
	a.Remove()

	d.Up(PointerEvent{})
	if len(order) != 2 || order[0] != "b" || order[1] != "c" {
		t.Errorf("order = %v, want [b c]", order)
	}
}

func TestPointerCapture(t *testing.T) {
	d := NewDispatcher()
	ownerA, ownerB := new(int), new(int)

	var gotA, gotB int
	d.OnPointerMove(ownerA, func(PointerEvent) { gotA++ })
	d.OnPointerMove(ownerB, func(PointerEvent) { gotB++ })

	d.Move(PointerEvent{PointerID: 0})
	if gotA != 1 || gotB != 1 {
		t.Fatalf("uncaptured move: a=%d b=%d, want both 1", gotA, gotB)
	}

	d.CapturePointer(0, ownerA)
	d.Move(PointerEvent{PointerID: 0})
	if gotA != 2 || gotB != 1 {
		t.Errorf("captured move: a=%d b=%d, want 2 and 1", gotA, gotB)
	}

	// Capture is per pointer.
	d.Move(PointerEvent{PointerID: 1})
	if gotA != 3 || gotB != 2 {
		t.Errorf("other pointer: a=%d b=%d, want 3 and 2", gotA, gotB)
	}

	d.ReleasePointer(0)
	d.Move(PointerEvent{PointerID: 0})
	if gotB != 3 {
		t.Errorf("after release b=%d, want 3", gotB)
	}
}

func TestPointerCapture_RoutesPressToOwner(t *testing.T) {
	d := NewDispatcher()
	under := &rectTarget{rect: Rect{Width: 100, Height: 100}}
	owner := &rectTarget{rect: Rect{X: 500, Width: 10, Height: 10}}
	d.AddTarget(under)
	d.AddTarget(owner)

	d.CapturePointer(2, owner)
	d.Down(PointerEvent{PointerID: 2, X: 10, Y: 10})
	if len(owner.presses) != 1 || len(under.presses) != 0 {
		t.Errorf("captured press: owner=%d under=%d, want 1 and 0", len(owner.presses), len(under.presses))
	}
}

func TestAutoReleaseCapture(t *testing.T) {
	d := NewDispatcher()
	owner := new(int)

	d.Down(PointerEvent{PointerID: 4})
	d.CapturePointer(4, owner)
	d.Up(PointerEvent{PointerID: 4})
	if d.Captured(4) != nil {
		t.Error("up should release capture")
	}
	if d.IsDown(4) {
		t.Error("up should clear the held state")
	}

	d.Down(PointerEvent{PointerID: 4})
	d.CapturePointer(4, owner)
	d.Cancel(PointerEvent{PointerID: 4})
	if d.Captured(4) != nil {
		t.Error("cancel should release capture")
	}
}

func TestInvalidPointerIgnored(t *testing.T) {
	d := NewDispatcher()
	var fired bool
	d.OnPointerMove(nil, func(PointerEvent) { fired = true })

	for _, id := range []int{-1, maxPointers, 99} {
		d.CapturePointer(id, d)
		d.Down(PointerEvent{PointerID: id})
		d.Move(PointerEvent{PointerID: id})
		d.Up(PointerEvent{PointerID: id})
		if d.Captured(id) != nil || d.IsDown(id) {
			t.Errorf("pointer %d should be ignored", id)
		}
	}
	if fired {
		t.Error("out-of-range pointer fired a handler")
	}
}

func TestCancelAll(t *testing.T) {
	d := NewDispatcher()
	var cancelled []int
	d.OnPointerCancel(nil, func(ev PointerEvent) { cancelled = append(cancelled, ev.PointerID) })

	d.Down(PointerEvent{PointerID: 0, X: 3, Y: 4})
	d.Down(PointerEvent{PointerID: 5})
	d.Down(PointerEvent{PointerID: 6})
	d.Up(PointerEvent{PointerID: 6})

	d.CancelAll()
	if len(cancelled) != 2 || cancelled[0] != 0 || cancelled[1] != 5 {
		t.Errorf("cancelled = %v, want [0 5]", cancelled)
	}
	for _, id := range []int{0, 5} {
		if d.IsDown(id) {
			t.Errorf("pointer %d still held", id)
		}
	}
}

func TestCancelAll_LastPosition(t *testing.T) {
	d := NewDispatcher()
	var got PointerEvent
	d.OnPointerCancel(nil, func(ev PointerEvent) { got = ev })

	d.Down(PointerEvent{X: 1, Y: 1})
	d.Move(PointerEvent{X: 30, Y: 40})
	d.CancelAll()
	if got.X != 30 || got.Y != 40 {
		t.Errorf("cancel at (%v, %v), want last position (30, 40)", got.X, got.Y)
	}
}

func TestFire_SubscribeDuringDelivery(t *testing.T) {
	d := NewDispatcher()
	var inner int
	var h CallbackHandle
	h = d.OnPointerUp(nil, func(PointerEvent) {
		h.Remove()
		d.OnPointerUp(nil, func(PointerEvent) { inner++ })
	})

	d.Up(PointerEvent{})
	if inner != 0 {
		t.Errorf("handler added during delivery fired %d times, want 0", inner)
	}
	d.Up(PointerEvent{})
	if inner != 1 {
		t.Errorf("inner = %d after second up, want 1", inner)
	}
}

func TestFire_Nested(t *testing.T) {
	d := NewDispatcher()
	var moves, ups int
	d.OnPointerMove(nil, func(ev PointerEvent) {
		moves++
		if ev.PointerID == 0 {
			d.Up(PointerEvent{PointerID: 1})
		}
	})
	d.OnPointerUp(nil, func(PointerEvent) { ups++ })
	d.OnPointerMove(nil, func(PointerEvent) { moves++ })

	d.Move(PointerEvent{PointerID: 0})
	if moves != 2 || ups != 1 {
		t.Errorf("moves=%d ups=%d, want 2 and 1", moves, ups)
	}
}

func TestProcessPointer(t *testing.T) {
	d := NewDispatcher()
	tgt := &rectTarget{rect: Rect{Width: 100, Height: 100}}
	d.AddTarget(tgt)

	var events []string
	d.OnPointerMove(nil, func(PointerEvent) { events = append(events, "move") })
	d.OnPointerUp(nil, func(PointerEvent) { events = append(events, "up") })

	d.processPointer(0, 10, 10, true)
	d.processPointer(0, 10, 10, true) // no motion, no event
	d.processPointer(0, 20, 10, true)
	d.processPointer(0, 20, 10, false)
	d.processPointer(0, 30, 10, false) // idle, no event

	if len(tgt.presses) != 1 {
		t.Errorf("presses = %d, want 1", len(tgt.presses))
	}
	if len(events) != 2 || events[0] != "move" || events[1] != "up" {
		t.Errorf("events = %v, want [move up]", events)
	}
}

func TestTouchSlot(t *testing.T) {
	d := NewDispatcher()
	a := d.touchSlot(100)
	b := d.touchSlot(200)
	if a != 1 || b != 2 {
		t.Errorf("slots = %d, %d; want 1, 2", a, b)
	}
	if again := d.touchSlot(100); again != a {
		t.Errorf("same touch got slot %d, want %d", again, a)
	}
	for i := 0; i < maxPointers; i++ {
		d.touchSlot(ebiten.TouchID(300 + i))
	}
	if got := d.touchSlot(999); got != -1 {
		t.Errorf("slot when full = %d, want -1", got)
	}
}

func TestEventTypeString(t *testing.T) {
	want := map[EventType]string{
		EventPointerDown:   "down",
		EventPointerMove:   "move",
		EventPointerUp:     "up",
		EventPointerCancel: "cancel",
		EventType(42):      "unknown",
	}
	for e, s := range want {
		if e.String() != s {
			t.Errorf("EventType(%d).String() = %q, want %q", e, e.String(), s)
		}
	}
}
