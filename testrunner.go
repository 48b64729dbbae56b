package dropzone

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string  `json:"action"`
	Item    string  `json:"item,omitempty"`
	Input   string  `json:"input,omitempty"` // "pointer" (default) or "touch"
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var validActions = map[string]bool{
	"press": true, "move": true, "release": true, "cancel": true,
	"tap": true, "drag": true, "wait": true,
}

// TestRunner sequences injected input across frames for scripted gesture
// tests and replays. Attach to an Engine via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready to
// be attached to an Engine via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	return newTestRunner(script.Steps)
}

func newTestRunner(steps []testStep) (*TestRunner, error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range steps {
		if !validActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Input != "" && st.Input != "pointer" && st.Input != "touch" {
			return nil, fmt.Errorf("parse test script: step %d: unknown input %q", i, st.Input)
		}
	}
	return &TestRunner{steps: steps}, nil
}

// SetTestRunner attaches a TestRunner to the engine. The runner's step
// method is called from Engine.Update before input processing each frame.
func (e *Engine) SetTestRunner(runner *TestRunner) {
	e.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

func (st testStep) raw(action RawAction, x, y float64) RawInput {
	src := InputPointer
	if st.Input == "touch" {
		src = InputTouch
	}
	raw := RawInput{Source: src, Action: action, Position: Vec2{x, y}, PointerID: st.Pointer}
	if action == RawDown {
		raw.ItemID = st.Item
	}
	return raw
}

// step advances the test runner by one frame. Called from Engine.Update.
func (r *TestRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
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
		e.InjectInput(st.raw(RawDown, st.X, st.Y))
	case "move":
		e.InjectInput(st.raw(RawMove, st.X, st.Y))
	case "release":
		e.InjectInput(st.raw(RawUp, st.X, st.Y))
	case "cancel":
		e.InjectInput(st.raw(RawInterrupt, st.X, st.Y))
	case "tap":
		e.InjectInput(st.raw(RawDown, st.X, st.Y))
		e.InjectInput(st.raw(RawUp, st.X, st.Y))
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		e.InjectInput(st.raw(RawDown, st.FromX, st.FromY))
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			e.InjectInput(st.raw(RawMove, st.FromX+(st.ToX-st.FromX)*t, st.FromY+(st.ToY-st.FromY)*t))
		}
		e.InjectInput(st.raw(RawUp, st.ToX, st.ToY))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
