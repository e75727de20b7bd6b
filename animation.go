package joystick

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a single float64 property of a Visual through a setter.
// Call Update(dt) each frame; the controller does this for its fade.
type TweenGroup struct {
	tween *gween.Tween
	apply func(float64)
	Done  bool
}

// Update advances the tween by dt seconds and applies the new value.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	val, finished := g.tween.Update(dt)
	g.apply(float64(val))
	g.Done = finished
}

// TweenAlpha creates a TweenGroup that animates v's alpha from `from` to `to`
// over duration seconds. set is called with every intermediate value after
// it has been applied to v, so callers can track the current alpha.
func TweenAlpha(v Visual, from, to float64, duration float32, fn ease.TweenFunc, set func(float64)) *TweenGroup {
	return &TweenGroup{
		tween: gween.New(float32(from), float32(to), duration, fn),
		apply: func(a float64) {
			v.SetAlpha(a)
			if set != nil {
				set(a)
			}
		},
	}
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// EaseByName returns the gween easing function registered under name.
// An empty name selects ease.Linear.
func EaseByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easeFuncs[name]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return fn, nil
}
