package ecs

import (
	"github.com/phanxgames/joystick"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EventType is the Donburi event type for joystick events.
var EventType = events.NewEventType[joystick.Event]()

// StickData is the latest reading of a joystick, kept on an entity.
type StickData struct {
	Dragging  bool
	Angle     float64
	Direction joystick.Direction
	Power     float64
}

// Stick is the component type holding StickData.
var Stick = donburi.NewComponentType[StickData]()

type donburiSink struct {
	world  donburi.World
	entity donburi.Entity
	mirror bool
}

// NewDonburiSink creates an EventSink that publishes every joystick event to
// EventType. Consume them with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) joystick.EventSink {
	return &donburiSink{world: world}
}

// NewDonburiEntitySink is NewDonburiSink that also writes each event into
// the entity's Stick component. The entity must have been created with
// Stick; events for an invalid entity are still published.
func NewDonburiEntitySink(world donburi.World, entity donburi.Entity) joystick.EventSink {
	return &donburiSink{world: world, entity: entity, mirror: true}
}

func (s *donburiSink) EmitEvent(event joystick.Event) {
	if s.mirror && s.world.Valid(s.entity) {
		entry := s.world.Entry(s.entity)
		if entry.HasComponent(Stick) {
			Stick.SetValue(entry, applyEvent(*Stick.Get(entry), event))
		}
	}
	EventType.Publish(s.world, event)
}

// applyEvent folds a joystick event into the previous stick reading.
func applyEvent(prev StickData, event joystick.Event) StickData {
	switch event.Type {
	case joystick.EventStart:
		return StickData{Dragging: true}
	case joystick.EventChange:
		return StickData{
			Dragging:  true,
			Angle:     event.Change.Angle,
			Direction: event.Change.Direction,
			Power:     event.Change.Power,
		}
	case joystick.EventEnd:
		return StickData{}
	}
	return prev
}
