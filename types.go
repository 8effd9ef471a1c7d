package dknn

import "math"

// Point is a location in the 2-D feature plane.
type Point struct {
	X, Y float64
}

// Sample is a labeled point. Class must fall in the classifier's class range
// for the sample to contribute to training; out-of-range labels are skipped
// silently.
type Sample struct {
	Point
	Class int
}

// Batch is the unit of training: an ordered sequence of sample references
// accepted or rejected as a whole. A nil entry marks a missing reading.
type Batch []*Sample

// DefaultBatchSize is the conventional number of samples per batch.
const DefaultBatchSize = 50

// Incomplete reports whether the batch must be rejected: an absent entry or a
// non-finite coordinate poisons the whole batch. There is no partial
// acceptance.
func (b Batch) Incomplete() bool {
	for _, s := range b {
		if s == nil {
			return true
		}
		if !finite(s.X) || !finite(s.Y) {
			return true
		}
	}
	return false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
