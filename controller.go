package joystick

import (
	"errors"
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// outerShrink narrows the draggable range relative to the base graphic.
const outerShrink = 2.5

var (
	// ErrInvalidGeometry is returned when the outer visual yields a
	// non-positive drag radius.
	ErrInvalidGeometry = errors.New("joystick: outer radius must be positive")

	// ErrMissingVisual is returned when NewController gets a nil visual.
	ErrMissingVisual = errors.New("joystick: outer and inner visuals are required")
)

// State is a snapshot of the controller's drag state.
type State struct {
	Dragging    bool
	Origin      Vec2
	InnerOffset Vec2
}

// Controller is the joystick state machine. It is driven by Press, Move and
// Release/ReleaseOutside from a single pointer and is not safe for
// concurrent use.
type Controller struct {
	outer, inner Visual

	outerRadius float64
	innerRadius float64

	state State

	activeAlpha  float64
	standbyAlpha float64
	alpha        float64
	fadeDuration float32
	fadeEase     ease.TweenFunc
	fade         *TweenGroup

	onStart  func()
	onEnd    func()
	onChange func(ChangeEvent)
	sink     EventSink
	debug    bool
}

// NewController applies the configured scales to the visuals, measures the
// radii and returns an idle controller. Radii are fixed for the controller's
// lifetime: outer = outer width / 2.5, inner = inner width / 2.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Outer == nil || cfg.Inner == nil {
		return nil, ErrMissingVisual
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("joystick: %w", err)
	}
	fn, err := EaseByName(cfg.FadeEase)
	if err != nil {
		return nil, fmt.Errorf("joystick: %w", err)
	}

	cfg.Outer.SetScale(cfg.OuterScale.X, cfg.OuterScale.Y)
	cfg.Inner.SetScale(cfg.InnerScale.X, cfg.InnerScale.Y)
	if a, ok := cfg.Outer.(Anchorer); ok {
		a.SetAnchor(0.5, 0.5)
	}
	if a, ok := cfg.Inner.(Anchorer); ok {
		a.SetAnchor(0.5, 0.5)
	}

	outerRadius := cfg.Outer.Width() / outerShrink
	if !(outerRadius > 0) || math.IsInf(outerRadius, 0) {
		return nil, fmt.Errorf("%w: got %v from outer width %v", ErrInvalidGeometry, outerRadius, cfg.Outer.Width())
	}

	c := &Controller{
		outer:        cfg.Outer,
		inner:        cfg.Inner,
		outerRadius:  outerRadius,
		innerRadius:  cfg.Inner.Width() / 2,
		activeAlpha:  *cfg.ActiveAlpha,
		standbyAlpha: *cfg.StandbyAlpha,
		alpha:        *cfg.StandbyAlpha,
		fadeDuration: cfg.FadeDuration,
		fadeEase:     fn,
		onStart:      cfg.OnStart,
		onEnd:        cfg.OnEnd,
		onChange:     cfg.OnChange,
	}
	c.inner.SetOffset(0, 0)
	c.inner.SetAlpha(c.standbyAlpha)
	debugCheckGeometry(c)
	return c, nil
}

// OuterRadius returns the maximum displacement of the inner visual.
func (c *Controller) OuterRadius() float64 { return c.outerRadius }

// InnerRadius returns the on-screen radius of the inner visual.
func (c *Controller) InnerRadius() float64 { return c.innerRadius }

// State returns a snapshot of the drag state.
func (c *Controller) State() State { return c.state }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.state.Dragging }

// Alpha returns the inner visual's current alpha as last applied.
func (c *Controller) Alpha() float64 { return c.alpha }

// SetEventSink sets an optional receiver for lifecycle events. Events are
// delivered after the matching Config callback.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// Press starts a drag at p. No-op while already dragging.
func (c *Controller) Press(p Vec2) {
	if c.state.Dragging {
		return
	}
	c.state.Dragging = true
	c.state.Origin = p
	c.state.InnerOffset = Vec2{}
	c.fadeTo(c.activeAlpha)

	if c.debug {
		Logger().Debug("joystick: drag start", "x", p.X, "y", p.Y)
	}
	if c.onStart != nil {
		c.onStart()
	}
	c.emit(EventStart, ChangeEvent{})
}

// Move reports the pointer at p. While dragging with a non-zero displacement
// from the origin it updates the inner offset, invokes OnChange and returns
// the event with ok set. Otherwise it does nothing.
func (c *Controller) Move(p Vec2) (ev ChangeEvent, ok bool) {
	if !c.state.Dragging {
		return ChangeEvent{}, false
	}
	center, ev, ok := Resolve(p.Sub(c.state.Origin), c.outerRadius)
	if !ok {
		return ChangeEvent{}, false
	}
	c.state.InnerOffset = center
	c.inner.SetOffset(center.X, center.Y)

	if c.debug {
		Logger().Debug("joystick: move",
			"angle", ev.Angle, "direction", ev.Direction.String(), "power", ev.Power)
	}
	if c.onChange != nil {
		c.onChange(ev)
	}
	c.emit(EventChange, ev)
	return ev, true
}

// Release ends the drag: the inner visual returns to the center and standby
// alpha, and OnEnd fires. No-op while idle.
func (c *Controller) Release() {
	if !c.state.Dragging {
		return
	}
	c.state.Dragging = false
	c.state.InnerOffset = Vec2{}
	c.inner.SetOffset(0, 0)
	c.fadeTo(c.standbyAlpha)

	if c.debug {
		Logger().Debug("joystick: drag end")
	}
	if c.onEnd != nil {
		c.onEnd()
	}
	c.emit(EventEnd, ChangeEvent{})
}

// ReleaseOutside is a release that happened outside the joystick's hit
// area. It behaves exactly like Release so a drag never sticks.
func (c *Controller) ReleaseOutside() {
	c.Release()
}

// Update advances the alpha fade by dt seconds.
func (c *Controller) Update(dt float32) {
	if c.fade == nil {
		return
	}
	c.fade.Update(dt)
	if c.fade.Done {
		c.fade = nil
	}
}

func (c *Controller) fadeTo(a float64) {
	if c.fadeDuration <= 0 {
		c.fade = nil
		c.alpha = a
		c.inner.SetAlpha(a)
		return
	}
	c.fade = TweenAlpha(c.inner, c.alpha, a, c.fadeDuration, c.fadeEase, func(v float64) {
		c.alpha = v
	})
}

func (c *Controller) emit(t EventType, ev ChangeEvent) {
	if c.sink == nil {
		return
	}
	c.sink.EmitEvent(Event{
		Type:   t,
		Change: ev,
		Origin: c.state.Origin,
		Offset: c.state.InnerOffset,
	})
}
