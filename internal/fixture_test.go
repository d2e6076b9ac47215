package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs traces. This is not a full (or
// even correct) svg parser. It finds whatever the first polyline or polygon is
// and converts its points into a Trace. A polygon is closed by repeating its
// first point, a polyline is left open. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Trace {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	closed := false
	shapes := rootEl.FindAll("polyline")
	if len(shapes) == 0 {
		shapes = rootEl.FindAll("polygon")
		closed = true
	}
	if len(shapes) == 0 {
		log.Fatalf("No polylines or polygons found in fixture %q", name)
	}
	if len(shapes) > 1 {
		log.Fatalf("More than one shape found in fixture %q", name)
	}

	pointString := shapes[0].Attributes["points"]
	pointStrings := strings.Fields(pointString)
	points := make([]Point, 0, len(pointStrings)+1)
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}
	if closed && len(points) > 0 {
		points = append(points, points[0])
	}
	return NewTrace(points...)
}

// Some ad hoc code specified fixtures

// An open star outline, as if someone walked around a star shaped plot and
// stopped just before getting back to the start.
func SimpleStar() Trace {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewTrace(points...)
}

// A star drawn with a single stroke, the way children draw one. Every edge
// crosses two others.
func StrokedStar(radius float64) Trace {
	var points []Point
	for i := 0; i < 5; i++ {
		angle := math.Pi/2 + 2*math.Pi*float64(2*i)/5
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewTrace(points...)
}

// An open circle-like polygon with many vertices.
func Circle(n int, radius float64) Trace {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewTrace(points...)
}
