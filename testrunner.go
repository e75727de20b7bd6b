package joystick

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrEmptyScript is returned by LoadTestScript for a script without steps.
var ErrEmptyScript = errors.New("no steps")

const (
	actionPress   = "press"
	actionMove    = "move"
	actionRelease = "release"
	actionDrag    = "drag"
	actionWait    = "wait"
)

// testStep is one scripted action. Which fields matter depends on Action.
type testStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner replays a scripted pointer session on a Widget, one step per
// idle frame. A step starts only after the previous step's injected samples
// have all been consumed.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript decodes a script of the form
//
//	steps:
//	  - {action: press, x: 120, y: 360}
//	  - {action: drag, fromX: 120, fromY: 360, toX: 160, toY: 320, frames: 20}
//	  - {action: wait, frames: 30}
//
// press, move and release take x and y; drag takes both end points and a
// frame count; wait idles for frames updates. JSON, being a subset of YAML,
// is accepted as well.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case actionPress, actionMove, actionRelease, actionDrag, actionWait:
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether the script has finished and its input was consumed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step runs once per Widget.Update, before input is read.
func (r *TestRunner) step(w *Widget) {
	if r.done || w.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor < len(r.steps) {
		r.exec(w, r.steps[r.cursor])
		r.cursor++
	}
	r.done = r.cursor == len(r.steps) && r.waitCount == 0 && w.PendingInjections() == 0
}

func (r *TestRunner) exec(w *Widget, st testStep) {
	switch st.Action {
	case actionPress:
		w.InjectPress(st.X, st.Y)
	case actionMove:
		w.InjectMove(st.X, st.Y)
	case actionRelease:
		w.InjectRelease(st.X, st.Y)
	case actionDrag:
		w.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case actionWait:
		// The frame that runs the wait is the first one waited.
		r.waitCount = max(st.Frames-1, 0)
	}
}
