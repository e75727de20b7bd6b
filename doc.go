// Package joystick is a virtual on-screen joystick for [Ebitengine].
//
// A joystick is a draggable stick (the inner visual) inside a base (the outer
// visual). While the stick is dragged, every pointer move is converted into a
// [ChangeEvent] carrying an angle in degrees, one of eight [Direction]
// sectors and a normalized power in [0, 1].
//
// # Quick start
//
// [Widget] handles mouse and touch input and draws circle placeholders when
// no visuals are supplied:
//
//	stick, err := joystick.NewWidget(joystick.Config{
//		Position: joystick.Vec2{X: 120, Y: 360},
//		OnChange: func(ev joystick.ChangeEvent) { player.Steer(ev.Angle, ev.Power) },
//	})
//
//	func (g *Game) Update() error        { g.stick.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.stick.Draw(s) }
//
// # Controller
//
// [Controller] is the state machine behind the widget. It has no Ebitengine
// dependency at runtime: feed it [Controller.Press], [Controller.Move] and
// [Controller.Release] from any input source and give it any [Visual].
//
// The drag range is the outer visual's on-screen width divided by 2.5. Moves
// are measured from the press position, clamped to that range and reported
// with a screen-space angle convention: rightward is 0° and
// [DirectionLeft], upward 90°, leftward 180° and [DirectionRight], downward
// 270°. The mapping is deliberate and stable.
//
// # Configuration
//
// [Config] tunables can be loaded from YAML with [LoadConfig]. Lifecycle
// events can be routed to an [EventSink]; the joystick/ecs module provides
// one backed by [Donburi].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package joystick
