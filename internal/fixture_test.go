package internal

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs the moving and fixed polygons.
// This is not a full (or even correct) svg parser. It finds the polygons with
// the ids "moving" and "fixed" and keeps their points in document order. If
// anything goes wrong, it stops the test binary.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) (moving, fixed Polygon) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	found := map[string]Polygon{}
	for _, polygonEl := range rootEl.FindAll("polygon") {
		found[polygonEl.Attributes["id"]] = parsePolygonPoints(name, polygonEl.Attributes["points"])
	}
	var ok bool
	if moving, ok = found["moving"]; !ok {
		log.Fatalf("No moving polygon in fixture %q", name)
	}
	if fixed, ok = found["fixed"]; !ok {
		log.Fatalf("No fixed polygon in fixture %q", name)
	}
	return moving, fixed
}

func parsePolygonPoints(name, pointString string) Polygon {
	pointStrings := strings.Fields(pointString)
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
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
	return Polygon{Points: points}
}

// Some ad hoc fixtures

func Square(x, y, size float64) Polygon {
	return Polygon{[]Point{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}}
}
