package internal

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

const (
	DefaultRange   = 100.0
	DefaultSamples = 500
)

// The first sampled contact between the moving and fixed polygons.
type Collision struct {
	// Translation applied to the moving polygon, and the index of the sample
	// that produced it.
	Offset float64
	Sample int
	// The colliding edges. EdgeP belongs to the translated moving polygon, so
	// its coordinates already include Offset.
	EdgeP, EdgeQ Edge
	// Positions of those edges in their polygons' edge lists.
	IndexP, IndexQ int
}

// The point highlighted when drawing the collision: the start of the moving
// edge.
func (c *Collision) Point() Point {
	return c.EdgeP.Start
}

// Where the supporting lines of the two colliding edges cross.
func (c *Collision) Crossing() (Point, bool) {
	return c.EdgeP.Crossing(c.EdgeQ)
}

func (c *Collision) String() string {
	return fmt.Sprintf("collision at dx=%g (sample %d): P edge %d %v -> %v, Q edge %d %v -> %v",
		c.Offset, c.Sample,
		c.IndexP, c.EdgeP.Start, c.EdgeP.End,
		c.IndexQ, c.EdgeQ.Start, c.EdgeQ.End)
}

// Finds the first translation along +x at which Moving touches Fixed.
//
// The search is discrete: Moving is shifted by each of the sampler's offsets in
// increasing order, and for each shift every edge of the shifted polygon is
// tested against every edge of Fixed, in polygon order. The first hit wins, so
// the result is fully determined by the inputs.
type Detector struct {
	Moving  Polygon
	Fixed   Polygon
	Sampler Sampler
	// Skip samples and edge pairs whose bounding boxes are disjoint. This only
	// saves work; the reported collision is the same either way.
	Prune bool
}

func NewDetector(moving, fixed Polygon) *Detector {
	return &Detector{
		Moving:  moving,
		Fixed:   fixed,
		Sampler: Sampler{Range: DefaultRange, Count: DefaultSamples},
	}
}

func (d *Detector) Validate() error {
	if err := d.Moving.Validate("moving"); err != nil {
		return err
	}
	if err := d.Fixed.Validate("fixed"); err != nil {
		return err
	}
	return d.Sampler.Validate()
}

// Run the detection to completion. A nil collision with a nil error means the
// polygons never touched at any sample.
func (d *Detector) Detect() (*Collision, error) {
	return d.DetectContext(context.Background())
}

// Like Detect, but gives up between samples once ctx is done.
func (d *Detector) DetectContext(ctx context.Context) (*Collision, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// The fixed polygon never moves, so its edges are computed once
	fixedEdges := Edges(d.Fixed)
	fixedBounds := d.Fixed.Bounds()
	var fixedEdgeBounds []Bounds
	if d.Prune {
		fixedEdgeBounds = make([]Bounds, len(fixedEdges))
		for i, edge := range fixedEdges {
			fixedEdgeBounds[i] = edge.Bounds()
		}
	}

	for sample := 0; sample < d.Sampler.Count; sample++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "detection stopped before sample %d", sample)
		}

		dx := d.Sampler.Offset(sample)
		moved := d.Moving.Translate(dx, 0)
		if d.Prune && !moved.Bounds().Overlaps(fixedBounds) {
			continue
		}

		for i, edgeP := range Edges(moved) {
			var boundsP Bounds
			if d.Prune {
				boundsP = edgeP.Bounds()
			}
			for j, edgeQ := range fixedEdges {
				if d.Prune && !boundsP.Overlaps(fixedEdgeBounds[j]) {
					continue
				}
				if edgeP.Intersects(edgeQ) {
					return &Collision{
						Offset: dx,
						Sample: sample,
						EdgeP:  edgeP,
						EdgeQ:  edgeQ,
						IndexP: i,
						IndexQ: j,
					}, nil
				}
			}
		}
	}
	return nil, nil
}
