// Sampled collision detection between a polygon sliding along +x and a fixed
// polygon.
//
// The moving polygon is shifted by evenly spaced offsets over [0, R], and at
// each offset every one of its edges is tested against every edge of the fixed
// polygon. The first offset with a crossing edge pair is reported, along with
// the pair itself. Polygons may be non-convex; neither winding nor convexity is
// checked.
//
// Edge tests use a strict orientation predicate, so collinear edges never count
// as intersecting, even when they overlap.
package polycollide

import (
	"context"

	"github.com/osuushi/polycollide/internal"
)

type Point = internal.Point
type Edge = internal.Edge
type Polygon = internal.Polygon
type Collision = internal.Collision
type Detector = internal.Detector
type Sampler = internal.Sampler

const (
	DefaultRange   = internal.DefaultRange
	DefaultSamples = internal.DefaultSamples
)

var (
	ErrInvalidPolygon = internal.ErrInvalidPolygon
	ErrInvalidRange   = internal.ErrInvalidRange
)

// Find the first collision of moving with fixed over the default range and
// sample count. A nil collision and nil error means they never touch.
func Detect(moving, fixed []Point) (*Collision, error) {
	return DetectRange(moving, fixed, DefaultRange, DefaultSamples)
}

// Like Detect, with an explicit translation range and sample count. At least
// two samples are needed.
func DetectRange(moving, fixed []Point, translationRange float64, samples int) (*Collision, error) {
	return DetectContext(context.Background(), moving, fixed, translationRange, samples)
}

// Like DetectRange, but stops between samples once ctx is done.
func DetectContext(ctx context.Context, moving, fixed []Point, translationRange float64, samples int) (result *Collision, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	detector := &internal.Detector{
		Moving:  Polygon{Points: moving},
		Fixed:   Polygon{Points: fixed},
		Sampler: Sampler{Range: translationRange, Count: samples},
	}
	return detector.DetectContext(ctx)
}

// Edges of the polygon, edge i running from vertex i to the next one.
func Edges(points []Point) (edges []Edge, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			edges = nil
			err = recoveredErr
		}
	}()
	return internal.Edges(Polygon{Points: points}), nil
}

// Whether segment p1-p2 crosses segment q1-q2. Collinear and some touching
// configurations report false.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	return internal.SegmentsIntersect(p1, p2, q1, q2)
}
