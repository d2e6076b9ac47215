package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
)

// Padding around the shape so that vertices on the edge stay visible
const drawPadding = 20

// Largest canvas side in pixels. Bigger shapes are scaled down to fit.
const maxDrawSize = 4096

// Render the trace for debugging. The first pair of intersecting segments, if
// any, is drawn in red on top of the rest of the path. Non-finite points are
// left out, along with any segment that touches one.
func (t Trace) Draw(scale float64, epsilon float64) *gg.Context {
	bounds := r2.EmptyRect()
	for _, p := range t.points {
		if p.IsFinite() {
			bounds = bounds.AddPoint(p.r2())
		}
	}
	minX, minY := bounds.X.Lo, bounds.Y.Lo
	if bounds.IsEmpty() {
		minX, minY = 0, 0
	}

	extent := math.Max(bounds.X.Length(), bounds.Y.Length())
	if !bounds.IsEmpty() && scale*extent > maxDrawSize-drawPadding*2 {
		scale = (maxDrawSize - drawPadding*2) / extent
	}

	width := int(scale*bounds.X.Length()) + drawPadding*2
	height := int(scale*bounds.Y.Length()) + drawPadding*2
	if bounds.IsEmpty() {
		width, height = drawPadding*2, drawPadding*2
	}
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Line widths are in user space, so undo the scale to keep them constant
	lineWidth := 2 / math.Max(scale, math.SmallestNonzeroFloat64)

	segments := t.Segments()
	c.SetLineWidth(lineWidth)
	c.SetRGB(0, 1, 1)
	for _, segment := range segments {
		if !segment.isFinite() {
			continue
		}
		c.MoveTo(segment.Start.X, segment.Start.Y)
		c.LineTo(segment.End.X, segment.End.Y)
	}
	c.Stroke()

	if intersection, ok := t.FirstIntersection(epsilon); ok {
		c.SetLineWidth(lineWidth * 2)
		c.SetRGB(1, 0, 0)
		for _, segment := range []LineSegment{intersection.A, intersection.B} {
			if !segment.isFinite() {
				continue
			}
			c.MoveTo(segment.Start.X, segment.Start.Y)
			c.LineTo(segment.End.X, segment.End.Y)
		}
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range t.points {
		if !p.IsFinite() {
			continue
		}
		c.DrawCircle(p.X, p.Y, lineWidth*1.5)
	}
	c.Fill()

	return c
}

func (t Trace) SavePNG(path string, scale float64, epsilon float64) error {
	return t.Draw(scale, epsilon).SavePNG(path)
}

func (t Trace) EncodePNG(w io.Writer, scale float64, epsilon float64) error {
	return t.Draw(scale, epsilon).EncodePNG(w)
}

func (s LineSegment) isFinite() bool {
	return s.Start.IsFinite() && s.End.IsFinite()
}
