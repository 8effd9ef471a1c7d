// Package dknn implements a diluted nearest-centroid classifier for hosts
// with severe memory and compute limits. Instead of storing a training set
// and scanning it per query, it keeps one running centroid per class plus a
// pair of adaptive scalars shaping a soft decision boundary around that
// centroid, so classifying a point costs O(classes) distance computations and
// one exponential per class.
package dknn

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yyyoichi/dknn/internal/centroid"
	"github.com/yyyoichi/dknn/internal/dilution"
	"github.com/yyyoichi/dknn/internal/geom"
)

var (
	ErrInvalidClassCount = errors.New("class count must be positive")
	ErrNonPositiveSpread = errors.New("spread must be positive")
	ErrIncompleteBatch   = errors.New("incomplete batch")
)

// Observer receives the per-class confidence values and the final decision
// for one classified point. It replaces console tracing in the scoring path;
// the confidences slice is indexed by class and must not be retained.
type Observer func(p Point, confidences []float64, class int)

// WeightFunc assigns an aggregation weight to a labeled sample, generalizing
// the centroid update to recency- or quality-weighted variants. Samples with
// a non-positive weight move no centroid. The unweighted aggregator is the
// weight≡1 special case.
type WeightFunc func(s Sample) float64

// Classifier owns all mutable classification state: per-class centroids,
// point counters and dilution parameters. It is safe for one concurrent
// trainer and any number of concurrent readers; readers always observe
// fully-updated state.
type Classifier struct {
	mu      sync.RWMutex
	params  []dilution.Params
	centers *centroid.Set
	tuner   dilution.Tuner

	spread         float64
	overconfidence float64
	batchSize      int
	weight         WeightFunc
	observer       Observer
}

// New returns a classifier discriminating among the given number of classes.
// Every class starts with its centroid at the origin and default dilution
// parameters; both can be adjusted with options.
func New(classes int, opts ...Option) (*Classifier, error) {
	if classes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidClassCount, classes)
	}
	c := &Classifier{centers: centroid.NewSet(classes)}
	if err := c.init(classes, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Classifier) init(classes int, opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	if c.spread == 0 {
		c.spread = dilution.DefaultSpread
	}
	if c.overconfidence == 0 {
		c.overconfidence = dilution.DefaultOverconfidence
	}
	if c.tuner.SpreadStep == 0 {
		c.tuner.SpreadStep = dilution.DefaultSpreadStep
	}
	if c.tuner.OverconfidenceStep == 0 {
		c.tuner.OverconfidenceStep = dilution.DefaultOverconfidenceStep
	}
	if c.batchSize == 0 {
		c.batchSize = DefaultBatchSize
	}
	if c.spread < 0 {
		return fmt.Errorf("%w: %f", ErrNonPositiveSpread, c.spread)
	}
	c.params = make([]dilution.Params, classes)
	for i := range c.params {
		c.params[i] = dilution.Params{
			Spread:         c.spread,
			Overconfidence: c.overconfidence,
		}
	}
	return nil
}

// Classes returns the number of classes the classifier discriminates among.
func (c *Classifier) Classes() int {
	return len(c.params)
}

// BatchSize returns the configured number of samples per training batch.
func (c *Classifier) BatchSize() int {
	return c.batchSize
}

// Train folds one labeled batch into the model. A batch with a missing or
// unusable entry is rejected in full before any state changes. Every sample
// first moves its class's centroid; the per-class dilution parameters are
// then tuned from each sample's distance to the updated centroid. Samples
// labeled outside the class range are skipped silently.
func (c *Classifier) Train(batch Batch) error {
	if batch.Incomplete() {
		Logf("dknn: rejected incomplete batch of %d samples", len(batch))
		return ErrIncompleteBatch
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range batch {
		w := 1.0
		if c.weight != nil {
			w = c.weight(*s)
		}
		c.centers.UpdateWeighted(s.Class, s.X, s.Y, w)
	}
	for _, s := range batch {
		if s.Class < 0 || s.Class >= len(c.params) {
			continue
		}
		ctr := c.centers.Center(s.Class)
		c.tuner.Tune(c.params, s.Class, geom.Distance(s.X, s.Y, ctr.X, ctr.Y))
	}
	return nil
}

// Classify returns the index of the best-matching class for the query point.
// Class 0 initializes the running best unconditionally; a later class wins
// only with strictly greater confidence, so ties resolve to the lower index.
// The observer, if any, is invoked with the per-class confidences and the
// decision.
func (c *Classifier) Classify(p Point) int {
	class, confs := c.classify(p)
	if c.observer != nil {
		c.observer(p, confs, class)
	}
	return class
}

// Scores returns the per-class confidence values for the query point, indexed
// by class: exactly 1 inside a class's overconfidence circle, the exponential
// base-function value outside it.
func (c *Classifier) Scores(p Point) []float64 {
	_, confs := c.classify(p)
	return confs
}

func (c *Classifier) classify(p Point) (best int, confs []float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	confs = make([]float64, len(c.params))
	var maxConf float64
	for i := range c.params {
		ctr := c.centers.Center(i)
		confs[i] = c.params[i].Confidence(geom.Distance(p.X, p.Y, ctr.X, ctr.Y))
		if i == 0 || confs[i] > maxConf {
			best, maxConf = i, confs[i]
		}
	}
	return
}

// Center returns the running centroid for class and the number of points
// accumulated into it so far.
func (c *Classifier) Center(class int) (Point, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ctr := c.centers.Center(class)
	return Point{X: ctr.X, Y: ctr.Y}, c.centers.Count(class)
}

// Parameters returns the current dilution-parameter pair for class, or zeros
// when the class is out of range.
func (c *Classifier) Parameters(class int) (spread, overconfidence float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if class < 0 || class >= len(c.params) {
		return 0, 0
	}
	return c.params[class].Spread, c.params[class].Overconfidence
}

// Counts returns a copy of the per-class point counters. Hosts use them to
// know when enough data exists per class.
func (c *Classifier) Counts() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	counts := make([]int, len(c.params))
	for i := range counts {
		counts[i] = c.centers.Count(i)
	}
	return counts
}

// Reset returns every class to its initial state: centroid at the origin,
// counter at zero, dilution parameters back at their configured start values.
func (c *Classifier) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.centers.Reset()
	for i := range c.params {
		c.params[i] = dilution.Params{
			Spread:         c.spread,
			Overconfidence: c.overconfidence,
		}
	}
}
