package internal

import "github.com/pkg/errors"

// Validation happens up front and returns errors, but the geometry helpers
// below it (edge extraction in particular) are called from tight loops where
// threading errors through would add a lot of noise. Those helpers panic with
// a CollideError instead, and the public API recovers to convert to an error.

var (
	// A polygon has fewer than three vertices.
	ErrInvalidPolygon = errors.New("invalid polygon")
	// The sample count is below two, or the translation range is negative or
	// not finite.
	ErrInvalidRange = errors.New("invalid range")
)

// Wrapper used to tell our own panics apart from real ones.
type CollideError struct {
	err error
}

func (e CollideError) Error() string {
	return e.err.Error()
}

func (e CollideError) Unwrap() error {
	return e.err
}

// Panic with a CollideError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(CollideError{errors.Wrapf(cause, format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if collideError, ok := r.(CollideError); ok {
			return collideError.err
		}
		panic(r)
	}
	return nil
}
