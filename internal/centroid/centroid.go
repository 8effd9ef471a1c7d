// Package centroid accumulates running-mean class centers without storing
// the points that produced them.
package centroid

// Center is one class's running centroid in the plane.
type Center struct {
	X, Y float64
}

// Set holds the centroids, running weights and point counters for a fixed
// number of classes. The zero-weight state places every center at the origin.
type Set struct {
	centers []Center
	weights []float64
	counts  []int
}

// NewSet returns a Set sized for the given class count, all centers at (0, 0).
func NewSet(classes int) *Set {
	return &Set{
		centers: make([]Center, classes),
		weights: make([]float64, classes),
		counts:  make([]int, classes),
	}
}

// Classes returns the number of classes the set was sized for.
func (s *Set) Classes() int { return len(s.centers) }

// Center returns the running centroid for class, or the zero value when the
// class is out of range.
func (s *Set) Center(class int) Center {
	if class < 0 || class >= len(s.centers) {
		return Center{}
	}
	return s.centers[class]
}

// Count returns how many points have been accumulated into class so far.
func (s *Set) Count(class int) int {
	if class < 0 || class >= len(s.counts) {
		return 0
	}
	return s.counts[class]
}

// Update folds one point into class's running mean with weight 1. After n
// unweighted updates the centroid equals the arithmetic mean of all n points.
func (s *Set) Update(class int, x, y float64) {
	s.UpdateWeighted(class, x, y, 1)
}

// UpdateWeighted folds one point into class's running mean with weight w.
// The first weighted point pins the centroid to its own coordinates;
// afterwards the centroid is the weighted average of the old centroid and the
// new point. A class outside the valid range, or a weight that is not
// positive, contributes to no centroid. The per-class counter grows by
// exactly one per accepted point regardless of its weight.
func (s *Set) UpdateWeighted(class int, x, y, w float64) {
	if class < 0 || class >= len(s.centers) || w <= 0 {
		return
	}
	prev := s.weights[class]
	if prev == 0 {
		s.centers[class] = Center{X: x, Y: y}
	} else {
		s.centers[class] = Center{
			X: (prev*s.centers[class].X + w*x) / (prev + w),
			Y: (prev*s.centers[class].Y + w*y) / (prev + w),
		}
	}
	s.weights[class] = prev + w
	s.counts[class]++
}

// Snapshot returns copies of the internal state, parallel by class index.
func (s *Set) Snapshot() (centers []Center, weights []float64, counts []int) {
	centers = make([]Center, len(s.centers))
	weights = make([]float64, len(s.weights))
	counts = make([]int, len(s.counts))
	copy(centers, s.centers)
	copy(weights, s.weights)
	copy(counts, s.counts)
	return
}

// Restore replaces the internal state with the given parallel slices. The
// caller is responsible for length validation.
func (s *Set) Restore(centers []Center, weights []float64, counts []int) {
	copy(s.centers, centers)
	copy(s.weights, weights)
	copy(s.counts, counts)
}

// Reset returns every class to the initial state: centers at the origin,
// weights and counters at zero.
func (s *Set) Reset() {
	for i := range s.centers {
		s.centers[i] = Center{}
		s.weights[i] = 0
		s.counts[i] = 0
	}
}
