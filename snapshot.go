package dknn

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/yyyoichi/dknn/internal/centroid"
	"github.com/yyyoichi/dknn/internal/dilution"
)

// Current schema version - increment when snapshotPayload format changes.
const snapshotSchemaVersion uint16 = 1

var (
	ErrSnapshotSchema   = errors.New("unsupported snapshot schema")
	ErrSnapshotMismatch = errors.New("snapshot does not match classifier shape")
)

// snapshotPayload is the flat, versioned form of the classifier state. All
// slices are parallel by class index. The host owns the bytes; where they go
// (flash, file, wire) is outside the library.
type snapshotPayload struct {
	Schema  uint16
	Classes int

	Spread         []float64
	Overconfidence []float64

	CenterX []float64
	CenterY []float64
	Weights []float64
	Counts  []int
}

// Snapshot serializes the classifier state into a compact byte payload that
// Restore accepts. It is the library side of parameter persistence across
// power cycles.
func (c *Classifier) Snapshot() ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	classes := len(c.params)
	p := snapshotPayload{
		Schema:         snapshotSchemaVersion,
		Classes:        classes,
		Spread:         make([]float64, classes),
		Overconfidence: make([]float64, classes),
		CenterX:        make([]float64, classes),
		CenterY:        make([]float64, classes),
	}
	for i, par := range c.params {
		p.Spread[i] = par.Spread
		p.Overconfidence[i] = par.Overconfidence
	}
	centers, weights, counts := c.centers.Snapshot()
	for i, ctr := range centers {
		p.CenterX[i] = ctr.X
		p.CenterY[i] = ctr.Y
	}
	p.Weights = weights
	p.Counts = counts

	data, err := msgpack.Marshal(&p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Restore replaces the classifier state with a previously taken snapshot.
// The payload must carry the current schema version, the same class count the
// classifier was constructed with, and positive spread values; anything else
// leaves the classifier untouched.
func (c *Classifier) Restore(data []byte) error {
	var p snapshotPayload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if p.Schema != snapshotSchemaVersion {
		return fmt.Errorf("%w: %d", ErrSnapshotSchema, p.Schema)
	}
	if p.Classes != len(c.params) {
		return fmt.Errorf("%w: snapshot has %d classes, classifier has %d",
			ErrSnapshotMismatch, p.Classes, len(c.params))
	}
	for _, s := range [][]float64{p.Spread, p.Overconfidence, p.CenterX, p.CenterY, p.Weights} {
		if len(s) != p.Classes {
			return fmt.Errorf("%w: inconsistent payload lengths", ErrSnapshotMismatch)
		}
	}
	if len(p.Counts) != p.Classes {
		return fmt.Errorf("%w: inconsistent payload lengths", ErrSnapshotMismatch)
	}
	for _, s := range p.Spread {
		if s <= 0 {
			return fmt.Errorf("%w: %f", ErrNonPositiveSpread, s)
		}
	}

	centers := make([]centroid.Center, p.Classes)
	for i := range centers {
		centers[i] = centroid.Center{X: p.CenterX[i], Y: p.CenterY[i]}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.params {
		c.params[i] = dilution.Params{
			Spread:         p.Spread[i],
			Overconfidence: p.Overconfidence[i],
		}
	}
	c.centers.Restore(centers, p.Weights, p.Counts)
	return nil
}
