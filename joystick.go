package joystick

import "fmt"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for pointer positions, origins and offsets.
// Screen convention: X grows to the right, Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Direction is one of the eight compass sectors a displacement falls into.
type Direction uint8

const (
	DirectionLeft        Direction = iota // sector around ±180°, and any +X axis-only move
	DirectionTop                          // sector around -90° (screen up)
	DirectionBottom                       // sector around +90° (screen down)
	DirectionRight                        // sector around 0°, and any -X axis-only move
	DirectionTopLeft                      // sector around -135°
	DirectionTopRight                     // sector around -45°
	DirectionBottomLeft                   // sector around +135°
	DirectionBottomRight                  // sector around +45°
)

var directionNames = [...]string{
	DirectionLeft:        "left",
	DirectionTop:         "top",
	DirectionBottom:      "bottom",
	DirectionRight:       "right",
	DirectionTopLeft:     "top_left",
	DirectionTopRight:    "top_right",
	DirectionBottomLeft:  "bottom_left",
	DirectionBottomRight: "bottom_right",
}

// String returns the lower snake case name of the direction.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if int(d) >= len(directionNames) {
		return nil, fmt.Errorf("joystick: invalid direction %d", uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	for i, name := range directionNames {
		if name == string(text) {
			*d = Direction(i)
			return nil
		}
	}
	return fmt.Errorf("joystick: unknown direction %q", text)
}

// ChangeEvent is reported for every effective stick move while dragging.
//
// Angle is in degrees in [0, 360). The convention is fixed: a purely
// rightward drag (+X) reports 0° and DirectionLeft, a purely leftward drag
// reports 180° and DirectionRight, up is 90° and down is 270°. Consumers
// depend on this mapping.
type ChangeEvent struct {
	Angle     float64
	Direction Direction
	Power     float64
}

// EventType identifies a kind of joystick event delivered to an EventSink.
type EventType uint8

const (
	EventStart  EventType = iota // fires when a drag begins
	EventChange                  // fires on each effective move while dragging
	EventEnd                     // fires when the drag is released (inside or outside)
)

// Event carries joystick lifecycle data for an EventSink.
type Event struct {
	Type   EventType
	Change ChangeEvent // valid for EventChange
	Origin Vec2        // pointer position recorded at drag start
	Offset Vec2        // inner visual offset after the event
}

// EventSink receives joystick events in addition to the Config callbacks.
// The ecs sub-package provides a Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event Event)
}
