package cursor

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a pointer script.
type scriptStep struct {
	Action string   `json:"action"`
	Window WindowID `json:"window,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a pointer script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays pointer movement on a StaticHost, one step per frame.
//
// Steps:
//
//	{"action": "move", "window": 1, "x": 120, "y": 80}
//	{"action": "leave"}
//	{"action": "wait", "frames": 3}
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON pointer script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse pointer script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse pointer script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "move", "leave", "wait":
		default:
			return nil, fmt.Errorf("parse pointer script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step applies the next action to h. Call it once per frame before
// Tracker.Update.
func (r *ScriptRunner) Step(h *StaticHost) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "move":
		h.MovePointer(st.Window, st.X, st.Y)
	case "leave":
		h.LeavePointer()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
