package scene

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polycollide/internal"
	"github.com/pkg/errors"
)

// ReadPoints reads the plain text format: newline separated points in the form
// "x y", with the two polygons separated by a blank line. The first polygon
// moves, the second is fixed. Lines starting with # are ignored.
func ReadPoints(in io.Reader) (*Scene, error) {
	polygons := []internal.Polygon{}
	points := []internal.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, internal.Polygon{Points: points})
				points = []internal.Point{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, internal.Polygon{Points: points})
	}
	if len(polygons) != 2 {
		return nil, errors.Wrapf(ErrMalformed, "read %d polygons, want 2", len(polygons))
	}
	return New(polygons[0], polygons[1]), nil
}

func parsePoint(line string) (internal.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return internal.Point{}, errors.Wrapf(ErrMalformed, "expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(ErrMalformed, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return internal.Point{}, errors.Wrapf(ErrMalformed, "invalid y value %q", parts[1])
	}
	return internal.Point{X: x, Y: y}, nil
}
