package internal

// Tolerances for the orientation test. Raw coordinates (taps, GPS fixes) are
// compared with DefaultEpsilon. Points derived from other points, e.g. by
// interpolating along a segment, pick up rounding error and need the much
// looser LooseEpsilon to still be treated as collinear.
const (
	DefaultEpsilon = 1e-12
	LooseEpsilon   = 1e-6
)

type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "invalid"
}

// Find the turn direction of the path a -> b -> c.
//
// This is the only place in the package that computes a cross product. Every
// "which side is it on" and "is it on the line" decision goes through here, so
// that they all agree about what epsilon means.
//
//	        c
//	       /        cross > 0: counterclockwise
//	a --- b
//	       \        cross < 0: clockwise
//	        c
func OrientationOf(a, b, c Point, epsilon float64) Orientation {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	switch {
	case cross > epsilon:
		return CounterClockwise
	case cross < -epsilon:
		return Clockwise
	default:
		return Collinear
	}
}
