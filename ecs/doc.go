// Package ecs provides ECS adapters for joystick events.
//
// [NewDonburiSink] bridges joystick lifecycle events (start, change, end)
// into a [Donburi] world as typed events. Subscribe to [EventType] in your
// ECS systems to receive them. [NewDonburiEntitySink] additionally mirrors
// the latest stick reading into an entity's [Stick] component so systems can
// poll it each tick.
//
// Usage:
//
//	player := world.Create(ecs.Stick)
//	stick.SetEventSink(ecs.NewDonburiEntitySink(world, player))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
