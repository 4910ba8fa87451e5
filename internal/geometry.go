package internal

import "github.com/pkg/errors"

// Check that the polygon can produce edges. The name is only used to make the
// error readable.
func (poly Polygon) Validate(name string) error {
	if len(poly.Points) < 3 {
		return errors.Wrapf(ErrInvalidPolygon, "%s polygon has %d vertices, need at least 3", name, len(poly.Points))
	}
	return nil
}

// Edge i runs from vertex i to vertex i+1, wrapping around at the end. A
// polygon with fewer than three vertices panics with ErrInvalidPolygon.
func Edges(poly Polygon) []Edge {
	n := len(poly.Points)
	if n < 3 {
		fatalf(ErrInvalidPolygon, "cannot extract edges from polygon with point count: %d", n)
	}
	edges := make([]Edge, n)
	for i, vertex := range poly.Points {
		edges[i] = Edge{vertex, poly.Points[CircularIndex(i+1, n)]}
	}
	return edges
}

// Copy of the polygon shifted by (dx, dy). The receiver is left untouched.
func (poly Polygon) Translate(dx, dy float64) Polygon {
	points := make([]Point, len(poly.Points))
	for i, p := range poly.Points {
		points[i] = Point{p.X + dx, p.Y + dy}
	}
	return Polygon{Points: points}
}

func (poly Polygon) Bounds() Bounds {
	bounds := EmptyBounds()
	for _, p := range poly.Points {
		bounds = bounds.Extend(p)
	}
	return bounds
}

func (e Edge) Bounds() Bounds {
	return EmptyBounds().Extend(e.Start).Extend(e.End)
}

// Is c strictly counterclockwise of the ray from a through b? Collinear points
// are not.
func CCW(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// Check whether segment p1-p2 crosses segment q1-q2. Each segment's endpoints
// must fall on different sides of the other segment's line, according to CCW.
//
// Because CCW is strict, any exactly collinear triple counts as "not
// counterclockwise". Collinear segments, including ones that overlap, are
// therefore never reported as intersecting, and some endpoint-touching
// configurations are reported while others are not. This is the detector's
// documented behavior and must not be made robust here.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	return CCW(p1, q1, q2) != CCW(p2, q1, q2) && CCW(p1, p2, q1) != CCW(p1, p2, q2)
}

func (e Edge) Intersects(other Edge) bool {
	return SegmentsIntersect(e.Start, e.End, other.Start, other.End)
}

// Point where the lines through the two edges meet. Returns false for
// parallel (or nearly parallel) lines. The point is not clamped to either
// segment.
func (e Edge) Crossing(other Edge) (Point, bool) {
	x1, y1 := e.Start.X, e.Start.Y
	x2, y2 := e.End.X, e.End.Y
	x3, y3 := other.Start.X, other.Start.Y
	x4, y4 := other.End.X, other.End.Y

	denom := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if Equal(denom, 0) {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / denom
	return Point{
		X: x1 + t*(x2-x1),
		Y: y1 + t*(y2-y1),
	}, true
}
