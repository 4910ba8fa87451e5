package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Uniform samples over [0, Range], with both endpoints included.
type Sampler struct {
	Range float64
	Count int
}

func (s Sampler) Validate() error {
	if s.Count < 2 {
		return errors.Wrapf(ErrInvalidRange, "sample count %d is below 2", s.Count)
	}
	if !(s.Range >= 0) || math.IsInf(s.Range, 0) {
		return errors.Wrapf(ErrInvalidRange, "translation range %v must be finite and non-negative", s.Range)
	}
	return nil
}

// Offset for sample i. Only meaningful when Count is at least 2.
func (s Sampler) Offset(i int) float64 {
	return s.Range * float64(i) / float64(s.Count-1)
}

func (s Sampler) Offsets() []float64 {
	if s.Count < 2 {
		return nil
	}
	offsets := make([]float64, s.Count)
	for i := range offsets {
		offsets[i] = s.Offset(i)
	}
	return offsets
}
