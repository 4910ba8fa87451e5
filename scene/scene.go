// Package scene loads the two polygons and sampling settings for a collision
// run from YAML, SVG, or the plain "x y" text format.
package scene

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/polycollide/internal"
	"github.com/pkg/errors"
)

// The input could not be turned into a scene at all. Geometry problems (too
// few vertices, bad sample counts) are reported later by the detector.
var ErrMalformed = errors.New("malformed scene")

type Scene struct {
	Moving  internal.Polygon
	Fixed   internal.Polygon
	Sampler internal.Sampler
	Prune   bool
}

func New(moving, fixed internal.Polygon) *Scene {
	return &Scene{
		Moving:  moving,
		Fixed:   fixed,
		Sampler: internal.Sampler{Range: internal.DefaultRange, Count: internal.DefaultSamples},
	}
}

// The example scene: a 10x10 square sliding into a pentagon.
func Default() *Scene {
	return New(
		internal.Polygon{Points: []internal.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}},
		internal.Polygon{Points: []internal.Point{{X: 30, Y: 5}, {X: 40, Y: 0}, {X: 40, Y: 10}, {X: 50, Y: 60}, {X: 40, Y: 65}}},
	)
}

func (s *Scene) Detector() *internal.Detector {
	return &internal.Detector{
		Moving:  s.Moving,
		Fixed:   s.Fixed,
		Sampler: s.Sampler,
		Prune:   s.Prune,
	}
}

// Load a scene file, picking the format from the extension. "-" reads the
// text format from stdin.
func Load(path string) (*Scene, error) {
	if path == "-" {
		return ReadPoints(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open scene")
	}
	defer f.Close()

	var s *Scene
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = LoadYAML(f)
	case ".svg":
		s, err = LoadSVG(f)
	default:
		s, err = ReadPoints(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return s, nil
}

// Save the scene as YAML. The file is always YAML, whatever its extension.
func (s *Scene) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create scene")
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()
	return s.WriteYAML(f)
}
