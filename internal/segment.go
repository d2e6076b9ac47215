package internal

import (
	"fmt"

	"github.com/golang/geo/r2"
)

type LineSegment struct {
	Start Point
	End   Point
}

func (s LineSegment) IsZeroLength() bool {
	return s.Start == s.End
}

func (s LineSegment) Reverse() LineSegment {
	return LineSegment{Start: s.End, End: s.Start}
}

// Find the point a fraction t of the way from Start to End. t is expected to be
// in [0, 1], but this is not checked.
func (s LineSegment) Interpolate(t float64) Point {
	start := s.Start.r2()
	return pointFromR2(start.Add(s.End.r2().Sub(start).Mul(t)))
}

// Check whether two segments cross or touch.
//
// Two consecutive segments of a path always touch where one ends and the next
// begins. Passing allowConnection ignores that single point of contact, so
// that only a real defect is reported. A segment which doubles back along the
// previous one still intersects it, because they then touch at more than just
// the connecting point.
func (s LineSegment) Intersects(other LineSegment, allowConnection bool, epsilon float64) bool {
	a, b := s.Start, s.End
	c, d := other.Start, other.End

	o1 := OrientationOf(a, b, c, epsilon)
	o2 := OrientationOf(a, b, d, epsilon)
	o3 := OrientationOf(c, d, a, epsilon)
	o4 := OrientationOf(c, d, b, epsilon)

	// General case: no three of the points are collinear, so the segments cross
	// iff each one separates the endpoints of the other.
	if o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear {
		return o1 != o2 && o3 != o4
	}

	// Otherwise an endpoint lies on the other segment's line, and we need to know
	// whether it actually lies on the segment. Any overlap between collinear
	// segments always has one of the four endpoints at each of its ends, so
	// these are the only contact points we need to look at.
	var contacts [4]Point
	n := 0
	if o1 == Collinear && c.Within(s) {
		contacts[n] = c
		n++
	}
	if o2 == Collinear && d.Within(s) {
		contacts[n] = d
		n++
	}
	if o3 == Collinear && a.Within(other) {
		contacts[n] = a
		n++
	}
	if o4 == Collinear && b.Within(other) {
		contacts[n] = b
		n++
	}

	if n == 0 {
		return false
	}
	if !allowConnection {
		return true
	}

	connection, ok := s.connection(other)
	if !ok {
		return true
	}
	for _, contact := range contacts[:n] {
		if contact != connection {
			return true
		}
	}
	return false
}

// The point where one segment hands off to the other, if they are joined end
// to start in either order.
func (s LineSegment) connection(other LineSegment) (Point, bool) {
	switch {
	case s.End == other.Start:
		return s.End, true
	case s.Start == other.End:
		return s.Start, true
	}
	return Point{}, false
}

func (s LineSegment) bounds() r2.Rect {
	return r2.RectFromPoints(s.Start.r2(), s.End.r2())
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
