package joystick

import "math"

// Sector boundaries for classifyDirection, at odd multiples of π/8.
const (
	sector1 = math.Pi / 8
	sector3 = 3 * math.Pi / 8
	sector5 = 5 * math.Pi / 8
	sector7 = 7 * math.Pi / 8
)

// Resolve converts a pointer displacement from the drag origin into the
// clamped inner offset and the matching ChangeEvent. outerRadius must be > 0.
// ok is false when side is (0, 0); nothing should be emitted in that case.
//
// Moves along a single axis take fixed angles (0, 90, 180, 270) because the
// general path divides by side.X. Everything else clamps onto the ring when
// the pointer is at or beyond outerRadius, and per axis otherwise, so the
// offset always stays within [-outerRadius, outerRadius] on each axis.
func Resolve(side Vec2, outerRadius float64) (center Vec2, ev ChangeEvent, ok bool) {
	sx, sy := side.X, side.Y
	if sx == 0 && sy == 0 {
		return Vec2{}, ChangeEvent{}, false
	}

	switch {
	case sx == 0:
		d := math.Min(math.Abs(sy), outerRadius)
		if sy > 0 {
			center = Vec2{0, d}
			ev = ChangeEvent{Angle: 270, Direction: DirectionBottom}
		} else {
			center = Vec2{0, -d}
			ev = ChangeEvent{Angle: 90, Direction: DirectionTop}
		}
	case sy == 0:
		// Positive X reports Left at 0°; see ChangeEvent.
		d := math.Min(math.Abs(sx), outerRadius)
		if sx > 0 {
			center = Vec2{d, 0}
			ev = ChangeEvent{Angle: 0, Direction: DirectionLeft}
		} else {
			center = Vec2{-d, 0}
			ev = ChangeEvent{Angle: 180, Direction: DirectionRight}
		}
	default:
		radian := math.Atan(math.Abs(sy / sx))
		angle := radian * 180 / math.Pi

		var cx, cy float64
		if sx*sx+sy*sy >= outerRadius*outerRadius {
			cx = outerRadius * math.Cos(radian)
			cy = outerRadius * math.Sin(radian)
		} else {
			cx = math.Min(math.Abs(sx), outerRadius)
			cy = math.Min(math.Abs(sy), outerRadius)
		}
		if sx < 0 {
			cx = -cx
		}
		if sy < 0 {
			cy = -cy
		}

		switch {
		case sx > 0 && sy < 0:
		case sx < 0 && sy < 0:
			angle = 180 - angle
		case sx < 0 && sy > 0:
			angle = angle + 180
		case sx > 0 && sy > 0:
			angle = 360 - angle
		}
		// 360 - angle rounds up to 360 when |sy/sx| is below float64 epsilon.
		if angle >= 360 {
			angle -= 360
		}

		center = Vec2{cx, cy}
		ev = ChangeEvent{Angle: angle, Direction: classifyDirection(center)}
	}

	ev.Power = math.Min(1, math.Hypot(center.X, center.Y)/outerRadius)
	return center, ev, true
}

// classifyDirection maps a clamped offset onto one of eight 45° sectors
// centered on the compass directions. Intervals are half-open [low, high);
// the seam at ±π belongs to DirectionLeft.
func classifyDirection(p Vec2) Direction {
	rad := math.Atan2(p.Y, p.X) // [-π, π]
	switch {
	case rad >= -sector1 && rad < sector1:
		return DirectionRight
	case rad >= sector1 && rad < sector3:
		return DirectionBottomRight
	case rad >= sector3 && rad < sector5:
		return DirectionBottom
	case rad >= sector5 && rad < sector7:
		return DirectionBottomLeft
	case rad >= sector7 || rad < -sector7:
		return DirectionLeft
	case rad >= -sector7 && rad < -sector5:
		return DirectionTopLeft
	case rad >= -sector5 && rad < -sector3:
		return DirectionTop
	default:
		return DirectionTopRight
	}
}
