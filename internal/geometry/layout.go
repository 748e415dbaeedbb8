package geometry

import "math"

// Point is an offset from the ring center. Y grows downwards, so positive
// angles turn clockwise starting from the 3 o'clock position.
type Point struct {
	X float64
	Y float64
}

// Placement is a positioned and rotated element.
type Placement struct {
	Offset   Point
	Rotation float64 // degrees
}

// AngleStep is the spacing between adjacent items. Empty rings have a step of 0.
func AngleStep(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// ItemRotation is the container rotation that places item i on the ring.
func ItemRotation(i int, step float64) float64 {
	return step * float64(i)
}

// IconRotation counter-rotates the item content so glyphs stay upright.
func IconRotation(i int, step float64) float64 {
	return -step * float64(i)
}

// ItemOffset rotates (radius, 0) by the item rotation.
func ItemOffset(i int, step, radius float64) Point {
	return Polar(ItemRotation(i, step), radius)
}

// ItemPlacement combines the ring position with the upright icon rotation.
// The container and content rotations cancel out, so the net rotation is 0.
func ItemPlacement(i int, step, radius float64) Placement {
	return Placement{
		Offset:   ItemOffset(i, step, radius),
		Rotation: ItemRotation(i, step) + IconRotation(i, step),
	}
}

// IndicatorPlacement tracks the animating selection value. The indicator
// orbits at radius and carries an extra tilt on its own shape.
func IndicatorPlacement(selection int, step, radius, tilt float64) Placement {
	angle := step * float64(selection)
	return Placement{
		Offset:   Polar(angle, radius),
		Rotation: angle + tilt,
	}
}

// Polar converts an angle in degrees and a distance into an offset.
func Polar(degrees, radius float64) Point {
	rad := degrees * math.Pi / 180
	return Point{
		X: roundTiny(radius * math.Cos(rad)),
		Y: roundTiny(radius * math.Sin(rad)),
	}
}

// roundTiny clears floating point residue such as cos(90°) = 6e-17.
func roundTiny(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}
