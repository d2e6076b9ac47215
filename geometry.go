// Self-intersection checks for hand drawn lines and polygons.
//
// A trace is the ordered list of points a user has drawn or walked. This
// package answers one question about it: does the path cross or overlap
// itself? Capture screens use it to refuse shapes that would make an invalid
// geotrace or geoshape.
package geometry

import (
	"fmt"

	"github.com/getodk/collect-sub007/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point
type LineSegment = internal.LineSegment
type Trace = internal.Trace
type Orientation = internal.Orientation
type Intersection = internal.Intersection

const (
	Collinear        = internal.Collinear
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise

	DefaultEpsilon = internal.DefaultEpsilon
	LooseEpsilon   = internal.LooseEpsilon
)

var ErrNonFiniteCoordinate = errors.New("coordinate is not finite")

// Returned by Validate when a trace crosses itself. The indexes refer to the
// trace's segments, not its points.
type SelfIntersectionError struct {
	internal.Intersection
}

func (e *SelfIntersectionError) Error() string {
	return fmt.Sprintf("trace intersects itself: segment %d %s meets segment %d %s",
		e.First, e.A, e.Second, e.B)
}

func NewTrace(points ...Point) Trace {
	return internal.NewTrace(points...)
}

func OrientationOf(a, b, c Point, epsilon float64) Orientation {
	return internal.OrientationOf(a, b, c, epsilon)
}

// Check a list of points for self-intersection using the default tolerance.
func Intersects(points ...Point) bool {
	return internal.NewTrace(points...).Intersects(DefaultEpsilon)
}

// Check a trace before it is accepted as an answer.
//
// The geometry itself trusts its input, so this is where coordinates that did
// not come from a real fix (NaN, infinities) get turned away. Those are reported
// as ErrNonFiniteCoordinate; a path that crosses itself is reported as a
// *SelfIntersectionError.
func Validate(points []Point, epsilon float64) error {
	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(ErrNonFiniteCoordinate, "point %d %s", i, p)
		}
	}
	if intersection, ok := internal.NewTrace(points...).FirstIntersection(epsilon); ok {
		return &SelfIntersectionError{intersection}
	}
	return nil
}
