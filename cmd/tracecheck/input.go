package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	geometry "github.com/getodk/collect-sub007"
	"github.com/pkg/errors"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

const (
	formatPlain   = "plain"
	formatODK     = "odk"
	formatGeoJSON = "geojson"
)

func readTraces(in io.Reader, format string) ([]geometry.Trace, error) {
	switch format {
	case formatPlain:
		return readPlain(in)
	case formatODK:
		return readODK(in)
	case formatGeoJSON:
		return readGeoJSON(in)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

// Plain input is newline separated points in the form "x y", with each trace
// separated by an extra newline.
func readPlain(in io.Reader) ([]geometry.Trace, error) {
	var traces []geometry.Trace
	var points []geometry.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the trace
		if line == "" {
			if len(points) > 0 {
				traces = append(traces, geometry.NewTrace(points...))
				points = nil
			}
			continue
		}

		point, err := parsePoint(strings.Fields(line), false)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	// Handle trailing trace if any
	if len(points) > 0 {
		traces = append(traces, geometry.NewTrace(points...))
	}
	return traces, nil
}

// ODK input is one geotrace or geoshape answer per line, in the form
// "lat lon alt acc;lat lon alt acc;...". Altitude and accuracy are optional
// and ignored.
func readODK(in io.Reader) ([]geometry.Trace, error) {
	var traces []geometry.Trace
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var points []geometry.Point
		for i, part := range strings.Split(line, ";") {
			fields := strings.Fields(part)
			if len(fields) == 0 {
				continue
			}
			if len(fields) > 4 {
				return nil, errors.Errorf("line %d: point %d: expected at most 4 values, got %d", lineNumber, i+1, len(fields))
			}
			point, err := parsePoint(fields, true)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: point %d", lineNumber, i+1)
			}
			points = append(points, point)
		}
		traces = append(traces, geometry.NewTrace(points...))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return traces, nil
}

// Parse the first two fields as coordinates. When latLon is set the fields are
// latitude then longitude, and longitude is used as X.
func parsePoint(fields []string, latLon bool) (geometry.Point, error) {
	if len(fields) < 2 {
		return geometry.Point{}, errors.Errorf("expected two coordinates, got %q", strings.Join(fields, " "))
	}
	first, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid coordinate %q", fields[0])
	}
	second, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geometry.Point{}, errors.Wrapf(err, "invalid coordinate %q", fields[1])
	}
	if latLon {
		return geometry.Point{X: second, Y: first}, nil
	}
	return geometry.Point{X: first, Y: second}, nil
}

// GeoJSON input may be a FeatureCollection, a single Feature or a bare
// geometry. Every line string, and the exterior ring of every polygon, becomes
// a trace.
func readGeoJSON(in io.Reader) ([]geometry.Trace, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.Wrap(err, "parsing GeoJSON")
	}

	var geometries []geom.T
	switch header.Type {
	case "FeatureCollection":
		var collection geojson.FeatureCollection
		if err := json.Unmarshal(data, &collection); err != nil {
			return nil, errors.Wrap(err, "parsing GeoJSON feature collection")
		}
		for _, feature := range collection.Features {
			if feature != nil && feature.Geometry != nil {
				geometries = append(geometries, feature.Geometry)
			}
		}
	case "Feature":
		var feature geojson.Feature
		if err := json.Unmarshal(data, &feature); err != nil {
			return nil, errors.Wrap(err, "parsing GeoJSON feature")
		}
		if feature.Geometry != nil {
			geometries = append(geometries, feature.Geometry)
		}
	default:
		var g geom.T
		if err := geojson.Unmarshal(data, &g); err != nil {
			return nil, errors.Wrap(err, "parsing GeoJSON geometry")
		}
		geometries = append(geometries, g)
	}

	var traces []geometry.Trace
	for _, g := range geometries {
		more, err := tracesFromGeom(g)
		if err != nil {
			return nil, err
		}
		traces = append(traces, more...)
	}
	return traces, nil
}

func tracesFromGeom(g geom.T) ([]geometry.Trace, error) {
	switch g := g.(type) {
	case *geom.LineString:
		return []geometry.Trace{traceFromCoords(g.Coords())}, nil
	case *geom.Polygon:
		if g.NumLinearRings() == 0 {
			return nil, nil
		}
		return []geometry.Trace{traceFromCoords(g.LinearRing(0).Coords())}, nil
	case *geom.MultiLineString:
		var traces []geometry.Trace
		for i := 0; i < g.NumLineStrings(); i++ {
			traces = append(traces, traceFromCoords(g.LineString(i).Coords()))
		}
		return traces, nil
	case *geom.MultiPolygon:
		var traces []geometry.Trace
		for i := 0; i < g.NumPolygons(); i++ {
			more, err := tracesFromGeom(g.Polygon(i))
			if err != nil {
				return nil, err
			}
			traces = append(traces, more...)
		}
		return traces, nil
	}
	return nil, errors.Errorf("unsupported geometry type %T", g)
}

func traceFromCoords(coords []geom.Coord) geometry.Trace {
	points := make([]geometry.Point, len(coords))
	for i, c := range coords {
		points[i] = geometry.Point{X: c.X(), Y: c.Y()}
	}
	return geometry.NewTrace(points...)
}
