package joystick

// syntheticPointerEvent is one queued pointer sample in screen coordinates.
// down reports whether the button is held at that sample.
type syntheticPointerEvent struct {
	x, y float64
	down bool
}

func (w *Widget) queuePointer(x, y float64, down bool) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{x: x, y: y, down: down})
}

// InjectPress schedules a button-down at (x, y). Queued samples are replayed
// one per Update, ahead of mouse and touch.
func (w *Widget) InjectPress(x, y float64) { w.queuePointer(x, y, true) }

// InjectMove schedules a held-button sample at (x, y).
func (w *Widget) InjectMove(x, y float64) { w.queuePointer(x, y, true) }

// InjectRelease schedules a button-up at (x, y).
func (w *Widget) InjectRelease(x, y float64) { w.queuePointer(x, y, false) }

// InjectDrag schedules a straight-line drag lasting frames updates: a press
// at the start point, evenly spaced moves, and a release at the end point.
// frames below 2 is treated as 2, a press followed directly by a release.
func (w *Widget) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	span := float64(frames - 1)

	w.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		f := float64(i) / span
		w.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	w.InjectRelease(toX, toY)
}

// PendingInjections reports how many synthetic samples are still queued.
func (w *Widget) PendingInjections() int {
	return len(w.injectQueue)
}

// processInjectedInput replays the oldest queued sample through the pointer
// state machine. It reports false when the queue is empty.
func (w *Widget) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	next := w.injectQueue[0]
	w.injectQueue = append(w.injectQueue[:0], w.injectQueue[1:]...)

	w.processPointer(sourceInjected, next.x, next.y, next.down)
	return true
}
