package elastic

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Label   string  `json:"label,omitempty"`
}

// script is the top-level JSON structure for a pointer script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames, for demos
// and automated checks. Call Step once per frame before Dispatcher.Update.
type ScriptRunner struct {
	// Screenshot receives the label of each "screenshot" step. Panel.SetScript
	// points it at Panel.Screenshot; when nil the steps are skipped.
	Screenshot func(label string)

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON pointer script:
//
//	{"steps": [
//	  {"action": "press", "x": 50, "y": 40},
//	  {"action": "move", "x": 260, "y": 40},
//	  {"action": "release", "x": 260, "y": 40},
//	  {"action": "drag", "fromX": 10, "fromY": 40, "toX": 300, "toY": 40, "frames": 30},
//	  {"action": "wait", "frames": 20},
//	  {"action": "screenshot", "label": "stretched"}
//	]}
//
// press, move, release and cancel accept an optional "pointer" ID.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("elastic: parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("elastic: parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "press", "move", "release", "cancel", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("elastic: parse script: step %d: unknown action %q", i, st.Action)
		}
		if !validPointer(st.Pointer) {
			return nil, fmt.Errorf("elastic: parse script: step %d: pointer %d out of range", i, st.Pointer)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// Done reports whether all steps have been executed and their events consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, queueing events on d.
func (r *ScriptRunner) Step(d *Dispatcher) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if d.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		d.InjectPressFor(st.Pointer, st.X, st.Y)
	case "move":
		d.InjectMoveFor(st.Pointer, st.X, st.Y)
	case "release":
		d.InjectReleaseFor(st.Pointer, st.X, st.Y)
	case "cancel":
		d.InjectCancelFor(st.Pointer, st.X, st.Y)
	case "drag":
		d.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		if r.Screenshot != nil {
			r.Screenshot(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && d.Pending() == 0 {
		r.done = true
	}
}
