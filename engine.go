package elastic

import (
	"fmt"
	"os"
)

// GeometryFunc reports the track rectangle at the moment of a pointer event,
// in the same coordinate space as the events. It returns false when the track
// is not laid out.
type GeometryFunc func() (Rect, bool)

// EngineConfig configures an Engine.
type EngineConfig struct {
	Range    Range
	OnChange func(int)    // required; called on press and on every move of a drag
	Geometry GeometryFunc // required

	// Dispatcher, when set, is where the engine captures the pointer and
	// subscribes to move/up/cancel for the duration of a drag. Without one
	// the host must forward those events itself.
	Dispatcher *Dispatcher
	// Owner identifies the engine to the dispatcher's capture table.
	// Defaults to the engine itself.
	Owner any

	Policy SessionPolicy
	Debug  bool
}

// session is the state of one press..release cycle.
type session struct {
	active    bool
	pointerID int
	move      CallbackHandle
	up        CallbackHandle
	cancel    CallbackHandle
}

// Engine turns pointer events into domain values and an elastic stretch
// signal. It never stores the domain value: every computed value is handed
// to the OnChange callback and the host decides what to keep.
type Engine struct {
	rng        Range
	onChange   func(int)
	geometry   GeometryFunc
	dispatcher *Dispatcher
	owner      any
	policy     SessionPolicy
	debug      bool

	sess    session
	stretch float64
	last    Update
	hasLast bool
	closed  bool
}

// NewEngine validates cfg and returns an idle engine.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Range.Validate(); err != nil {
		return nil, fmt.Errorf("elastic: range [%d, %d]: %w", cfg.Range.Min, cfg.Range.Max, err)
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("elastic: new engine: %w", ErrNoCallback)
	}
	if cfg.Geometry == nil {
		return nil, fmt.Errorf("elastic: new engine: %w", ErrNoGeometry)
	}
	e := &Engine{
		rng:        cfg.Range,
		onChange:   cfg.OnChange,
		geometry:   cfg.Geometry,
		dispatcher: cfg.Dispatcher,
		owner:      cfg.Owner,
		policy:     cfg.Policy,
		debug:      cfg.Debug,
	}
	if e.owner == nil {
		e.owner = e
	}
	return e, nil
}

// Range returns the configured domain.
func (e *Engine) Range() Range { return e.rng }

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool { return e.sess.active }

// PointerID returns the pointer bound to the active session.
func (e *Engine) PointerID() (int, bool) {
	return e.sess.pointerID, e.sess.active
}

// Stretch returns the most recent stretch. It is 0 while idle.
func (e *Engine) Stretch() float64 { return e.stretch }

// Last returns the most recent computed update and whether one exists.
func (e *Engine) Last() (Update, bool) {
	return e.last, e.hasLast
}

// PointerDown starts a drag session for ev.PointerID and immediately maps
// ev.X, so the value jumps to the press location.
//
// While a session is active, a press from the same pointer only re-maps the
// position. A press from another pointer is ignored under SessionKeep and
// takes over the session under SessionReplace.
func (e *Engine) PointerDown(ev PointerEvent) {
	if e.closed {
		return
	}
	if e.sess.active {
		if ev.PointerID != e.sess.pointerID {
			if e.policy == SessionKeep {
				e.debugf("ignoring press from pointer %d, session held by %d", ev.PointerID, e.sess.pointerID)
				return
			}
			e.end("replaced")
			e.begin(ev.PointerID)
		}
	} else {
		e.begin(ev.PointerID)
	}
	e.track(ev.X)
}

// PointerMove re-maps the pointer while its session is active. Events from
// other pointers, or arriving while idle, are ignored.
func (e *Engine) PointerMove(ev PointerEvent) {
	if !e.owns(ev) {
		return
	}
	e.track(ev.X)
}

// PointerUp ends the session bound to ev.PointerID.
func (e *Engine) PointerUp(ev PointerEvent) {
	if !e.owns(ev) {
		return
	}
	e.end("up")
}

// PointerCancel ends the session exactly like PointerUp. The last reported
// value stands.
func (e *Engine) PointerCancel(ev PointerEvent) {
	if !e.owns(ev) {
		return
	}
	e.end("cancel")
}

// Close ends any active session and stops the engine from starting new ones.
// It is safe to call more than once.
func (e *Engine) Close() {
	if e.sess.active {
		e.end("closed")
	}
	e.closed = true
}

func (e *Engine) owns(ev PointerEvent) bool {
	return e.sess.active && ev.PointerID == e.sess.pointerID
}

func (e *Engine) begin(pointerID int) {
	e.sess = session{active: true, pointerID: pointerID}
	if d := e.dispatcher; d != nil {
		d.CapturePointer(pointerID, e.owner)
		e.sess.move = d.OnPointerMove(e.owner, e.PointerMove)
		e.sess.up = d.OnPointerUp(e.owner, e.PointerUp)
		e.sess.cancel = d.OnPointerCancel(e.owner, e.PointerCancel)
	}
	e.debugf("session start: pointer %d", pointerID)
}

func (e *Engine) end(reason string) {
	s := e.sess
	e.sess = session{}
	if d := e.dispatcher; d != nil {
		if d.Captured(s.pointerID) == e.owner {
			d.ReleasePointer(s.pointerID)
		}
	}
	s.move.Remove()
	s.up.Remove()
	s.cancel.Remove()
	e.stretch = 0
	e.debugf("session end (%s): pointer %d", reason, s.pointerID)
}

// track runs one mapping step. Missing or zero-width geometry skips it.
func (e *Engine) track(pointerX float64) {
	rect, ok := e.geometry()
	if !ok {
		return
	}
	u, ok := ComputeUpdate(pointerX, rect, e.rng)
	if !ok {
		return
	}
	e.stretch = u.Stretch
	e.last = u
	e.hasLast = true
	e.onChange(u.Value)
}

func (e *Engine) debugf(format string, args ...any) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[elastic] "+format+"\n", args...)
}
