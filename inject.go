package elastic

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates.
type syntheticPointerEvent struct {
	kind      EventType
	pointerID int
	x, y      float64
}

// InjectPress queues a press of the mouse pointer at (x, y). The event is
// consumed on the next Update call.
func (d *Dispatcher) InjectPress(x, y float64) {
	d.InjectPressFor(0, x, y)
}

// InjectMove queues a move of the held mouse pointer. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (d *Dispatcher) InjectMove(x, y float64) {
	d.InjectMoveFor(0, x, y)
}

// InjectRelease queues a release of the mouse pointer.
func (d *Dispatcher) InjectRelease(x, y float64) {
	d.InjectReleaseFor(0, x, y)
}

// InjectCancel queues a cancellation of the mouse pointer.
func (d *Dispatcher) InjectCancel(x, y float64) {
	d.InjectCancelFor(0, x, y)
}

// InjectPressFor queues a press for an arbitrary pointer ID.
func (d *Dispatcher) InjectPressFor(pointerID int, x, y float64) {
	d.inject(EventPointerDown, pointerID, x, y)
}

// InjectMoveFor queues a move for an arbitrary pointer ID.
func (d *Dispatcher) InjectMoveFor(pointerID int, x, y float64) {
	d.inject(EventPointerMove, pointerID, x, y)
}

// InjectReleaseFor queues a release for an arbitrary pointer ID.
func (d *Dispatcher) InjectReleaseFor(pointerID int, x, y float64) {
	d.inject(EventPointerUp, pointerID, x, y)
}

// InjectCancelFor queues a cancellation for an arbitrary pointer ID.
func (d *Dispatcher) InjectCancelFor(pointerID int, x, y float64) {
	d.inject(EventPointerCancel, pointerID, x, y)
}

func (d *Dispatcher) inject(kind EventType, pointerID int, x, y float64) {
	d.injectQueue = append(d.injectQueue, syntheticPointerEvent{
		kind: kind, pointerID: pointerID, x: x, y: y,
	})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (d *Dispatcher) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	d.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		d.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	d.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (d *Dispatcher) Pending() int {
	return len(d.injectQueue)
}

// processInjectedInput pops one event from the inject queue and delivers it.
// Returns true if an event was consumed (real input should be skipped).
func (d *Dispatcher) processInjectedInput() bool {
	if len(d.injectQueue) == 0 {
		return false
	}
	evt := d.injectQueue[0]
	copy(d.injectQueue, d.injectQueue[1:])
	d.injectQueue = d.injectQueue[:len(d.injectQueue)-1]

	ev := PointerEvent{PointerID: evt.pointerID, X: evt.x, Y: evt.y}
	switch evt.kind {
	case EventPointerDown:
		d.Down(ev)
		if validPointer(ev.PointerID) {
			d.pointers[ev.PointerID].injected = true
		}
	case EventPointerMove:
		d.Move(ev)
	case EventPointerUp:
		d.Up(ev)
	case EventPointerCancel:
		d.Cancel(ev)
	}
	return true
}
