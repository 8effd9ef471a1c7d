// Package dilution holds the per-class parameter pair shaping the soft
// decision boundary around a class centroid, the confidence scoring built on
// it, and the online rule that adapts the pair as same-class evidence arrives.
package dilution

import "math"

const (
	// DefaultSpread is 1/ln(2).
	DefaultSpread = 1.442
	// DefaultOverconfidence is the initial guaranteed-confidence radius.
	DefaultOverconfidence = 10.0

	// DefaultSpreadStep is the tuner increment applied to Spread when an
	// observed distance exceeds the overconfidence radius.
	DefaultSpreadStep = 0.01
	// DefaultOverconfidenceStep is the tuner increment applied to
	// Overconfidence when an observed distance falls under the radius.
	DefaultOverconfidenceStep = 0.05
)

// Params is one class's dilution-parameter pair. Spread controls how quickly
// confidence decays outside the overconfidence radius; Overconfidence is the
// radius within which confidence is clamped to 1.
type Params struct {
	Spread         float64
	Overconfidence float64
}

// Defaults returns a default-initialized parameter pair.
func Defaults() Params {
	return Params{Spread: DefaultSpread, Overconfidence: DefaultOverconfidence}
}

// Within reports whether distance falls inside the overconfidence circle.
func (p Params) Within(distance float64) bool {
	return distance <= p.Overconfidence
}

// Base is the exponential decay of confidence as a point moves away from the
// already-certain radius. The argument to exp is never positive, so the
// result is in (0, 1] for positive Spread. Spread must be positive; the
// classifier rejects non-positive values at construction.
func (p Params) Base(distance float64) float64 {
	return math.Exp(-math.Abs(distance-p.Overconfidence) / p.Spread)
}

// Confidence composes the overconfidence-circle test and the base function:
// exactly 1 inside the circle, the exponential decay outside it.
func (p Params) Confidence(distance float64) float64 {
	if p.Within(distance) {
		return 1
	}
	return p.Base(distance)
}

// Tuner adjusts one class's parameters from a distance observed between a
// point known to belong to that class and the class centroid.
type Tuner struct {
	SpreadStep         float64
	OverconfidenceStep float64
}

// NewTuner returns a Tuner with the default increments.
func NewTuner() Tuner {
	return Tuner{
		SpreadStep:         DefaultSpreadStep,
		OverconfidenceStep: DefaultOverconfidenceStep,
	}
}

// Tune widens class's decision region in place. A distance beyond the
// overconfidence radius slows the confidence decay (Spread grows); a distance
// under it grows the guaranteed-confidence radius. A distance exactly on the
// radius changes nothing. Neither parameter ever decreases, so the decision
// regions only grow as same-class evidence accumulates. An out-of-range class
// is a no-op.
func (t Tuner) Tune(params []Params, class int, distance float64) {
	if class < 0 || class >= len(params) {
		return
	}
	switch {
	case distance > params[class].Overconfidence:
		params[class].Spread += t.SpreadStep
	case distance < params[class].Overconfidence:
		params[class].Overconfidence += t.OverconfidenceStep
	}
}
