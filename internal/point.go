package internal

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Points are plain values. Two points are the same point only when their
// coordinates are numerically identical; closure and adjacency both rely on
// this, so no tolerance is ever applied to point equality.
type Point struct {
	X float64
	Y float64
}

// Check whether the point lies inside the closed bounding box of the segment.
// This is only meaningful once the point is known to be collinear with the
// segment, at which point it tells us whether the point is on the finite
// segment rather than somewhere else on its infinite line.
func (p Point) Within(segment LineSegment) bool {
	return segment.bounds().ContainsPoint(p.r2())
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) r2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func pointFromR2(p r2.Point) Point {
	return Point{X: p.X, Y: p.Y}
}
