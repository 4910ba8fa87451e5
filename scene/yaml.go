package scene

import (
	"io"

	"github.com/osuushi/polycollide/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// On-disk shape of a YAML scene. Points are [x, y] pairs. Range and samples
// are pointers so an explicit zero is kept and rejected by validation rather
// than silently replaced by the default.
type document struct {
	Moving  [][]float64 `yaml:"moving"`
	Fixed   [][]float64 `yaml:"fixed"`
	Range   *float64    `yaml:"range,omitempty"`
	Samples *int        `yaml:"samples,omitempty"`
	Prune   bool        `yaml:"prune,omitempty"`
}

// LoadYAML loads a scene from a YAML reader:
//
//	moving: [[0, 0], [10, 0], [10, 10], [0, 10]]
//	fixed: [[20, 0], [21, 0], [21, 1], [20, 1]]
//	range: 100
//	samples: 500
func LoadYAML(r io.Reader) (*Scene, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "decode yaml: %v", err)
	}

	moving, err := pairsToPolygon("moving", doc.Moving)
	if err != nil {
		return nil, err
	}
	fixed, err := pairsToPolygon("fixed", doc.Fixed)
	if err != nil {
		return nil, err
	}

	s := New(moving, fixed)
	if doc.Range != nil {
		s.Sampler.Range = *doc.Range
	}
	if doc.Samples != nil {
		s.Sampler.Count = *doc.Samples
	}
	s.Prune = doc.Prune
	return s, nil
}

// Save the scene back out in the format LoadYAML reads.
func (s *Scene) WriteYAML(w io.Writer) error {
	doc := document{
		Moving:  polygonToPairs(s.Moving),
		Fixed:   polygonToPairs(s.Fixed),
		Range:   &s.Sampler.Range,
		Samples: &s.Sampler.Count,
		Prune:   s.Prune,
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}

func pairsToPolygon(name string, pairs [][]float64) (internal.Polygon, error) {
	points := make([]internal.Point, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return internal.Polygon{}, errors.Wrapf(ErrMalformed, "%s point %d has %d coordinates, want 2", name, i, len(pair))
		}
		points = append(points, internal.Point{X: pair[0], Y: pair[1]})
	}
	return internal.Polygon{Points: points}, nil
}

func polygonToPairs(poly internal.Polygon) [][]float64 {
	pairs := make([][]float64, len(poly.Points))
	for i, p := range poly.Points {
		pairs[i] = []float64{p.X, p.Y}
	}
	return pairs
}
