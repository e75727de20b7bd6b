package joystick

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Widget places a Controller on screen: it polls Ebitengine mouse and touch
// input, hit-tests presses against the outer visual and draws both visuals.
//
// Typical use inside an ebiten.Game:
//
//	func (g *Game) Update() error        { g.stick.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.stick.Draw(s) }
type Widget struct {
	// X and Y are the joystick center in screen coordinates.
	X, Y float64

	ctrl         *Controller
	outer, inner Visual
	fixedOrigin  bool

	pointer     pointerState
	touchIDs    []ebiten.TouchID
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	debug       bool
}

// NewWidget creates a widget at cfg.Position. Missing visuals are replaced
// by circle placeholders of radius DefaultOuterRadius and DefaultInnerRadius
// at DefaultPlaceholderAlpha.
func NewWidget(cfg Config) (*Widget, error) {
	if cfg.Outer == nil {
		outer := NewCircle("joystick_outer", DefaultOuterRadius, ColorWhite)
		outer.Alpha = DefaultPlaceholderAlpha
		cfg.Outer = outer
	}
	if cfg.Inner == nil {
		inner := NewCircle("joystick_inner", DefaultInnerRadius, ColorWhite)
		inner.Alpha = DefaultPlaceholderAlpha
		cfg.Inner = inner
	}
	ctrl, err := NewController(cfg)
	if err != nil {
		return nil, err
	}
	return &Widget{
		X:           cfg.Position.X,
		Y:           cfg.Position.Y,
		ctrl:        ctrl,
		outer:       cfg.Outer,
		inner:       cfg.Inner,
		fixedOrigin: cfg.FixedOrigin,
	}, nil
}

// Controller returns the widget's state machine.
func (w *Widget) Controller() *Controller {
	return w.ctrl
}

// SetPosition moves the joystick center. Takes effect for the next press.
func (w *Widget) SetPosition(x, y float64) {
	w.X = x
	w.Y = y
}

// Width returns the on-screen width of the outer visual.
func (w *Widget) Width() float64 {
	return w.outer.Width()
}

// Height returns the on-screen height of the outer visual, or its width when
// the visual does not report a height.
func (w *Widget) Height() float64 {
	if h, ok := w.outer.(interface{ Height() float64 }); ok {
		return h.Height()
	}
	return w.outer.Width()
}

// HitArea returns the circle, local to the center, in which presses start a drag.
func (w *Widget) HitArea() HitCircle {
	return HitCircle{Radius: w.outer.Width() / 2}
}

// SetEventSink forwards lifecycle events to sink.
func (w *Widget) SetEventSink(sink EventSink) {
	w.ctrl.SetEventSink(sink)
}

// SetDebugMode enables or disables debug diagnostics for the widget and its
// controller.
func (w *Widget) SetDebugMode(enabled bool) {
	w.debug = enabled
	w.ctrl.SetDebugMode(enabled)
}

// SetTestRunner attaches a TestRunner. Its step runs at the start of every
// Update, before input is processed.
func (w *Widget) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Update processes input and advances the alpha fade. Call once per tick.
func (w *Widget) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if w.testRunner != nil {
		w.testRunner.step(w)
	}
	w.processInput()
	w.ctrl.Update(dt)
}

// Draw renders the outer visual at the center and the inner visual at its
// current offset. Visuals that do not implement Drawer are skipped; the host
// renders them itself.
func (w *Widget) Draw(screen *ebiten.Image) {
	if d, ok := w.outer.(Drawer); ok {
		d.Draw(screen, w.X, w.Y)
	}
	if d, ok := w.inner.(Drawer); ok {
		d.Draw(screen, w.X, w.Y)
	}
}
