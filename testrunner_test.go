package joystick

import (
	"errors"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`
steps:
  - action: press
    x: 200
    y: 200
  - action: move
    x: 200
    y: 150
  - action: wait
    frames: 3
  - action: release
    x: 200
    y: 150
`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "move" || runner.steps[1].X != 200 || runner.steps[1].Y != 150 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScript_JSON(t *testing.T) {
	data := []byte(`{"steps": [{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 6}]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st := runner.steps[0]
	if st.FromX != 1 || st.FromY != 2 || st.ToX != 3 || st.ToY != 4 || st.Frames != 6 {
		t.Errorf("step = %+v", st)
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	if _, err := LoadTestScript([]byte(`not a script`)); err == nil {
		t.Error("expected error for invalid script")
	}
	if _, err := LoadTestScript([]byte(`{"steps": [{"action": "click"}]}`)); err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if !errors.Is(err, ErrEmptyScript) {
		t.Errorf("err = %v, want ErrEmptyScript", err)
	}
}

// runFrame mirrors Widget.Update without polling real devices.
func runFrame(w *Widget, r *TestRunner) {
	r.step(w)
	if w.PendingInjections() > 0 {
		w.processInput()
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	ends := 0
	var last ChangeEvent
	w := newTestWidget(t, Config{
		OnChange: func(ev ChangeEvent) { last = ev },
		OnEnd:    func() { ends++ },
	})

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 200, "fromY": 200, "toX": 140, "toY": 200, "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	w.SetTestRunner(runner)

	// First step queues press, one move and release.
	runner.step(w)
	if w.PendingInjections() != 3 {
		t.Fatalf("expected 3 queued events, got %d", w.PendingInjections())
	}
	if runner.Done() {
		t.Error("runner should not be done while inject queue has events")
	}

	for w.PendingInjections() > 0 {
		runFrame(w, runner)
	}
	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed and queue drained")
	}
	// Midpoint (170, 200): 30px along -X.
	if last.Direction != DirectionRight || last.Angle != 180 {
		t.Errorf("last change = %+v, want right at 180", last)
	}
	if ends != 1 {
		t.Errorf("ends = %d, want 1", ends)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	w := newTestWidget(t, Config{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}, {"action": "press", "x": 200, "y": 200}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1 executes wait, frames 2 and 3 count down.
	for i := 0; i < 3; i++ {
		runFrame(w, runner)
		if runner.Done() {
			t.Fatalf("done during wait at frame %d", i+1)
		}
		if w.Controller().Dragging() {
			t.Fatalf("press ran early at frame %d", i+1)
		}
	}

	// Frame 4 executes press.
	runFrame(w, runner)
	if !w.Controller().Dragging() {
		t.Error("press should have started a drag")
	}
	runner.step(w)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_WaitWithoutFrames(t *testing.T) {
	w := newTestWidget(t, Config{})
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait"}, {"action": "press", "x": 200, "y": 200}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// A wait with no frame count only occupies the frame it runs in.
	runFrame(w, runner)
	if w.Controller().Dragging() {
		t.Fatal("press ran in the same frame as wait")
	}
	runFrame(w, runner)
	if !w.Controller().Dragging() {
		t.Error("press should run on the frame after wait")
	}
}
