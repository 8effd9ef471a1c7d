// Package geom holds the plane-geometry primitives the classifier is built on.
package geom

import "math"

// Square returns v*v.
func Square(v float64) float64 {
	return v * v
}

// Distance returns the Euclidean distance between (x1, y1) and (x2, y2).
// It is non-negative, symmetric, and zero when both points coincide.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(Square(math.Abs(x1-x2)) + Square(math.Abs(y1-y2)))
}
