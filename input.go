package joystick

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HitCircle is a circular hit area in coordinates local to the joystick center.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// pointerSource identifies which device currently owns the widget.
type pointerSource uint8

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
	sourceInjected
)

// pointerState tracks the single pointer driving a widget.
type pointerState struct {
	down     bool
	captured bool // press landed inside the hit area
	source   pointerSource
	touchID  ebiten.TouchID
	lastX    float64
	lastY    float64
}

// processInput is called from Widget.Update. Injected events take the whole
// frame; otherwise a captured touch, a new touch inside the hit area, or the
// mouse drives the pointer, in that order.
func (w *Widget) processInput() {
	if w.processInjectedInput() {
		return
	}
	if w.processTouchPointer() {
		return
	}
	w.processMousePointer()
}

// processMousePointer handles the left mouse button.
func (w *Widget) processMousePointer() {
	if w.pointer.down && w.pointer.source != sourceMouse {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	w.processPointer(sourceMouse, float64(mx), float64(my), pressed)
}

// processTouchPointer follows the captured touch, or captures the first new
// touch that lands inside the hit area. Returns true if touch input was
// consumed this frame.
func (w *Widget) processTouchPointer() bool {
	ps := &w.pointer
	if ps.down && ps.source == sourceTouch {
		w.touchIDs = ebiten.AppendTouchIDs(w.touchIDs[:0])
		for _, id := range w.touchIDs {
			if id == ps.touchID {
				tx, ty := ebiten.TouchPosition(id)
				w.processPointer(sourceTouch, float64(tx), float64(ty), true)
				return true
			}
		}
		w.processPointer(sourceTouch, ps.lastX, ps.lastY, false)
		return true
	}
	if ps.down {
		return false
	}

	w.touchIDs = inpututil.AppendJustPressedTouchIDs(w.touchIDs[:0])
	for _, id := range w.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		x, y := float64(tx), float64(ty)
		if w.HitArea().Contains(x-w.X, y-w.Y) {
			w.processPointer(sourceTouch, x, y, true)
			ps.touchID = id
			return true
		}
	}
	return false
}

// processPointer runs the pointer state machine and forwards press, move and
// release to the controller. Presses outside the hit area are tracked so that
// dragging into the joystick does not start a drag.
func (w *Widget) processPointer(src pointerSource, x, y float64, pressed bool) {
	ps := &w.pointer

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.source = src
		ps.lastX = x
		ps.lastY = y
		ps.captured = w.HitArea().Contains(x-w.X, y-w.Y)
		if ps.captured {
			origin := Vec2{x, y}
			if w.fixedOrigin {
				origin = Vec2{w.X, w.Y}
			}
			w.ctrl.Press(origin)
			if w.fixedOrigin {
				w.ctrl.Move(Vec2{x, y})
			}
		} else if w.debug {
			Logger().Debug("joystick: press outside hit area", "x", x, "y", y)
		}
	case !pressed && ps.down:
		if ps.captured {
			if w.HitArea().Contains(x-w.X, y-w.Y) {
				w.ctrl.Release()
			} else {
				w.ctrl.ReleaseOutside()
			}
		}
		*ps = pointerState{lastX: x, lastY: y}
	case pressed && ps.down:
		if ps.captured && (x != ps.lastX || y != ps.lastY) {
			w.ctrl.Move(Vec2{x, y})
		}
		ps.lastX = x
		ps.lastY = y
	}
}
