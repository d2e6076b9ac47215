package internal

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r2"
)

// A trace is the path a user has drawn, as an ordered list of points. It may
// contain repeated consecutive points (e.g. two identical GPS fixes), which are
// dropped when the trace is broken into segments.
//
// Traces are values. Nothing modifies a trace in place; Add and friends return
// a new trace.
type Trace struct {
	points []Point
}

func NewTrace(points ...Point) Trace {
	return Trace{points: append([]Point(nil), points...)}
}

// A pair of segments found to intersect during a scan. First and Second are
// indexes into Segments(), with First < Second.
type Intersection struct {
	First, Second int
	A, B          LineSegment
}

func (t Trace) Points() []Point {
	return append([]Point(nil), t.points...)
}

func (t Trace) Len() int {
	return len(t.points)
}

// Return a new trace with the point appended.
func (t Trace) Add(p Point) Trace {
	points := make([]Point, len(t.points), len(t.points)+1)
	copy(points, t.points)
	return Trace{points: append(points, p)}
}

func (t Trace) IsClosed() bool {
	if len(t.points) == 0 {
		return false
	}
	return t.points[0] == t.points[len(t.points)-1]
}

// Drop the repeated closing point from a closed trace. Open traces are
// returned unchanged.
func (t Trace) Open() Trace {
	if len(t.points) < 2 || !t.IsClosed() {
		return t
	}
	return NewTrace(t.points[:len(t.points)-1]...)
}

func (t Trace) Reverse() Trace {
	reversed := make([]Point, len(t.points))
	for i, p := range t.points {
		reversed[len(t.points)-1-i] = p
	}
	return Trace{points: reversed}
}

// Break the trace into segments between consecutive points, skipping any
// segment of zero length. This is the only place duplicate points are dealt
// with; everything downstream can assume segments have two distinct ends.
func (t Trace) Segments() []LineSegment {
	if len(t.points) < 2 {
		return nil
	}
	segments := make([]LineSegment, 0, len(t.points)-1)
	for i := 1; i < len(t.points); i++ {
		segment := LineSegment{Start: t.points[i-1], End: t.points[i]}
		if segment.IsZeroLength() {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// Check whether the trace crosses or overlaps itself anywhere.
func (t Trace) Intersects(epsilon float64) bool {
	_, ok := t.FirstIntersection(epsilon)
	return ok
}

// Scan every pair of segments and report the first pair that intersects.
//
// Segments that are next to each other in the segment list share their
// connecting point by construction, so that one point of contact is allowed.
// Note that adjacency is by position in the list, not by sharing a
// coordinate: in a closed trace the first and last segments meet at the
// closing point but are still checked as strangers, which is what catches a
// closing edge cutting back through the start of the path.
//
// This is quadratic, which is fine for hand drawn traces but not for bulk
// imported polygons.
func (t Trace) FirstIntersection(epsilon float64) (Intersection, bool) {
	segments := t.Segments()
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			adjacent := j == i+1
			if segments[i].Intersects(segments[j], adjacent, epsilon) {
				return Intersection{First: i, Second: j, A: segments[i], B: segments[j]}, true
			}
		}
	}
	return Intersection{}, false
}

func (t Trace) Bounds() r2.Rect {
	bounds := r2.EmptyRect()
	for _, p := range t.points {
		bounds = bounds.AddPoint(p.r2())
	}
	return bounds
}

func (t Trace) String() string {
	parts := make([]string, len(t.points))
	for i, p := range t.points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Trace[%s]", strings.Join(parts, " "))
}
