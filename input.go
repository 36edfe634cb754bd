package elastic

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// PointerEvent carries one pointer sample in screen coordinates.
type PointerEvent struct {
	PointerID int
	X, Y      float64
}

// Target receives presses that land inside its hit area.
type Target interface {
	HitTest(x, y float64) bool
	PointerDown(ev PointerEvent)
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	injected bool // held by a synthetic press; real polling leaves it alone
	lastX    float64
	lastY    float64
}

// --- Handler registry ---

type pointerHandler struct {
	id    uint32
	owner any
	fn    func(PointerEvent)
}

type targetEntry struct {
	id     uint32
	target Target
}

type handlerRegistry struct {
	targets       []targetEntry
	pointerMove   []pointerHandler
	pointerUp     []pointerHandler
	pointerCancel []pointerHandler
	nextID        uint32
}

// CallbackHandle allows removing a registered callback or target.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing a zero handle, does nothing.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.targets = removeTarget(h.reg.targets, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventPointerCancel:
		h.reg.pointerCancel = removePointerHandler(h.reg.pointerCancel, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeTarget(s []targetEntry, id uint32) []targetEntry {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = targetEntry{}
			return s[:len(s)-1]
		}
	}
	return s
}

// Dispatcher routes pointer input to press targets and to global
// move/up/cancel subscribers. It is driven either by Update, which polls
// Ebitengine once per frame, or by a host calling Down, Move, Up and Cancel
// with events it already has.
//
// A Dispatcher is not safe for concurrent use; all calls happen on the game
// or program loop.
type Dispatcher struct {
	handlers handlerRegistry
	captured [maxPointers]any
	pointers [maxPointers]pointerState
	scratch  []pointerHandler
	firing   int

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []syntheticPointerEvent
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// --- Registration ---

// AddTarget registers a press target. Targets added later are treated as
// drawn on top and are hit-tested first.
func (d *Dispatcher) AddTarget(t Target) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.targets = append(d.handlers.targets, targetEntry{id: id, target: t})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventPointerDown}
}

// OnPointerMove registers a global callback for held-pointer moves. owner
// identifies the subscriber for pointer capture.
func (d *Dispatcher) OnPointerMove(owner any, fn func(PointerEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerMove = append(d.handlers.pointerMove, pointerHandler{id: id, owner: owner, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventPointerMove}
}

// OnPointerUp registers a global callback for pointer releases.
func (d *Dispatcher) OnPointerUp(owner any, fn func(PointerEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerUp = append(d.handlers.pointerUp, pointerHandler{id: id, owner: owner, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventPointerUp}
}

// OnPointerCancel registers a global callback for cancelled pointers.
func (d *Dispatcher) OnPointerCancel(owner any, fn func(PointerEvent)) CallbackHandle {
	d.handlers.nextID++
	id := d.handlers.nextID
	d.handlers.pointerCancel = append(d.handlers.pointerCancel, pointerHandler{id: id, owner: owner, fn: fn})
	return CallbackHandle{id: id, reg: &d.handlers, event: EventPointerCancel}
}

// HandlerCount reports how many callbacks are registered for an event type.
// EventPointerDown counts press targets.
func (d *Dispatcher) HandlerCount(event EventType) int {
	switch event {
	case EventPointerDown:
		return len(d.handlers.targets)
	case EventPointerMove:
		return len(d.handlers.pointerMove)
	case EventPointerUp:
		return len(d.handlers.pointerUp)
	case EventPointerCancel:
		return len(d.handlers.pointerCancel)
	}
	return 0
}

// --- Capture ---

func validPointer(id int) bool {
	return id >= 0 && id < maxPointers
}

// CapturePointer routes all further events for pointerID only to callbacks
// registered by owner, until released. Capture is released automatically on
// up and cancel.
func (d *Dispatcher) CapturePointer(pointerID int, owner any) {
	if validPointer(pointerID) {
		d.captured[pointerID] = owner
	}
}

// ReleasePointer stops routing events for pointerID to a capturing owner.
func (d *Dispatcher) ReleasePointer(pointerID int) {
	if validPointer(pointerID) {
		d.captured[pointerID] = nil
	}
}

// Captured returns the owner holding pointerID, or nil.
func (d *Dispatcher) Captured(pointerID int) any {
	if !validPointer(pointerID) {
		return nil
	}
	return d.captured[pointerID]
}

// IsDown reports whether the dispatcher considers pointerID held.
func (d *Dispatcher) IsDown(pointerID int) bool {
	return validPointer(pointerID) && d.pointers[pointerID].down
}

// --- Discrete events ---

// Down delivers a press. A captured pointer goes to its owner when the owner
// is a Target; otherwise the topmost target containing the point receives it.
func (d *Dispatcher) Down(ev PointerEvent) {
	if !validPointer(ev.PointerID) {
		return
	}
	ps := &d.pointers[ev.PointerID]
	ps.down = true
	ps.lastX, ps.lastY = ev.X, ev.Y

	var target Target
	if t, ok := d.captured[ev.PointerID].(Target); ok {
		target = t
	} else {
		target = d.hitTest(ev.X, ev.Y)
	}
	if target != nil {
		target.PointerDown(ev)
	}
}

// Move delivers a held-pointer move to global subscribers.
func (d *Dispatcher) Move(ev PointerEvent) {
	if !validPointer(ev.PointerID) {
		return
	}
	ps := &d.pointers[ev.PointerID]
	ps.lastX, ps.lastY = ev.X, ev.Y
	d.fire(d.handlers.pointerMove, ev)
}

// Up delivers a release and drops any capture on the pointer.
func (d *Dispatcher) Up(ev PointerEvent) {
	if !validPointer(ev.PointerID) {
		return
	}
	d.fire(d.handlers.pointerUp, ev)
	d.resetPointer(ev)
}

// Cancel delivers a cancellation and drops any capture on the pointer.
func (d *Dispatcher) Cancel(ev PointerEvent) {
	if !validPointer(ev.PointerID) {
		return
	}
	d.fire(d.handlers.pointerCancel, ev)
	d.resetPointer(ev)
}

func (d *Dispatcher) resetPointer(ev PointerEvent) {
	d.captured[ev.PointerID] = nil
	ps := &d.pointers[ev.PointerID]
	ps.down = false
	ps.injected = false
	ps.lastX, ps.lastY = ev.X, ev.Y
}

// CancelAll cancels every held pointer, e.g. when the window loses focus.
func (d *Dispatcher) CancelAll() {
	for i := range d.pointers {
		ps := &d.pointers[i]
		if ps.down {
			d.Cancel(PointerEvent{PointerID: i, X: ps.lastX, Y: ps.lastY})
		}
	}
}

// fire calls handlers from a snapshot so callbacks may subscribe or
// unsubscribe while the event is being delivered.
func (d *Dispatcher) fire(handlers []pointerHandler, ev PointerEvent) {
	owner := d.captured[ev.PointerID]
	var snapshot []pointerHandler
	if d.firing == 0 {
		d.scratch = append(d.scratch[:0], handlers...)
		snapshot = d.scratch
	} else {
		snapshot = append([]pointerHandler(nil), handlers...)
	}
	d.firing++
	defer func() { d.firing-- }()
	for i := range snapshot {
		h := snapshot[i]
		if owner != nil && h.owner != owner {
			continue
		}
		h.fn(ev)
	}
}

// hitTest finds the topmost target at (x, y). Returns nil if nothing is hit.
func (d *Dispatcher) hitTest(x, y float64) Target {
	for i := len(d.handlers.targets) - 1; i >= 0; i-- {
		t := d.handlers.targets[i].target
		if t.HitTest(x, y) {
			return t
		}
	}
	return nil
}

// --- Input processing ---

// Update polls Ebitengine for mouse and touch input and delivers the
// resulting events. Call it once per frame from ebiten.Game.Update. A queued
// synthetic event, if any, is consumed instead of real mouse input.
func (d *Dispatcher) Update() {
	if d.processInjectedInput() {
		return
	}
	if !ebiten.IsFocused() {
		d.CancelAll()
		return
	}
	d.processMousePointer()
	d.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (d *Dispatcher) processMousePointer() {
	if d.pointers[0].injected {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	d.processPointer(0, float64(mx), float64(my), pressed)
}

// processTouchPointers handles touch input (pointers 1-9).
func (d *Dispatcher) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(d.prevTouchIDs[:0])
	d.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := d.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		d.processPointer(slot, float64(tx), float64(ty), true)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && !activeSlots[i] {
			ps := &d.pointers[i]
			if ps.down {
				d.processPointer(i, ps.lastX, ps.lastY, false)
			}
			d.touchUsed[i] = false
			d.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (d *Dispatcher) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if d.touchUsed[i] && d.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !d.touchUsed[i] {
			d.touchUsed[i] = true
			d.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (d *Dispatcher) processPointer(pointerID int, x, y float64, pressed bool) {
	ps := &d.pointers[pointerID]
	ev := PointerEvent{PointerID: pointerID, X: x, Y: y}

	switch {
	case pressed && !ps.down:
		d.Down(ev)
	case !pressed && ps.down:
		d.Up(ev)
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			d.Move(ev)
		}
	}
}
