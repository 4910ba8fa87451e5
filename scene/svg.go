package scene

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polycollide/internal"
	"github.com/pkg/errors"
)

// LoadSVG reads the moving and fixed polygons out of an SVG document. Polygons
// with the ids "moving" and "fixed" are preferred; otherwise the first two
// <polygon> elements are used, in document order. Vertex order is kept as
// written. SVG's downward y axis is not flipped.
func LoadSVG(r io.Reader) (*Scene, error) {
	// No validation: editors export plenty of elements the parser does not know
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "parse svg: %v", err)
	}

	polygonEls := rootEl.FindAll("polygon")
	byID := map[string]*svgparser.Element{}
	for _, el := range polygonEls {
		if id, ok := el.Attributes["id"]; ok {
			byID[id] = el
		}
	}

	movingEl, fixedEl := byID["moving"], byID["fixed"]
	if movingEl == nil || fixedEl == nil {
		if len(polygonEls) < 2 {
			return nil, errors.Wrapf(ErrMalformed, "found %d svg polygons, need 2", len(polygonEls))
		}
		movingEl, fixedEl = polygonEls[0], polygonEls[1]
	}

	moving, err := parseSVGPoints(movingEl.Attributes["points"])
	if err != nil {
		return nil, errors.Wrap(err, "moving polygon")
	}
	fixed, err := parseSVGPoints(fixedEl.Attributes["points"])
	if err != nil {
		return nil, errors.Wrap(err, "fixed polygon")
	}
	return New(moving, fixed), nil
}

// SVG allows both "x,y x,y" and "x y x y" in the points attribute, so commas
// are treated as whitespace.
func parseSVGPoints(attr string) (internal.Polygon, error) {
	fields := strings.Fields(strings.ReplaceAll(attr, ",", " "))
	if len(fields)%2 != 0 {
		return internal.Polygon{}, errors.Wrapf(ErrMalformed, "odd number of coordinates in %q", attr)
	}
	points := make([]internal.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return internal.Polygon{}, errors.Wrapf(ErrMalformed, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return internal.Polygon{}, errors.Wrapf(ErrMalformed, "invalid y value %q", fields[i+1])
		}
		points = append(points, internal.Point{X: x, Y: y})
	}
	return internal.Polygon{Points: points}, nil
}
