package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Bounds that contain nothing. Extending them with any point yields a box
// around that point.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1),
		MinY: math.Inf(1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}
}

func (b Bounds) Extend(p Point) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Check if two closed boxes share any point. The test is widened by Tolerance
// so that it can only ever err on the side of reporting an overlap.
func (b Bounds) Overlaps(other Bounds) bool {
	return b.MinX <= other.MaxX+Tolerance &&
		other.MinX <= b.MaxX+Tolerance &&
		b.MinY <= other.MaxY+Tolerance &&
		other.MinY <= b.MaxY+Tolerance
}
