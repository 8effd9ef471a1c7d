// Package pulse applies the dknn classifier to the heart-pulse monitoring
// domain the algorithm was designed around: a wearable sensor delivers
// labeled readings that the monitor groups into fixed-size batches before
// training, and unlabeled readings to classify into a pulse regime.
package pulse

import (
	"fmt"

	"github.com/yyyoichi/dknn"
)

// Class labels the pulse regimes the monitor discriminates among.
type Class int

const (
	Resting Class = iota
	Training
	Panic

	numClasses = 3
)

func (c Class) String() string {
	switch c {
	case Resting:
		return "resting"
	case Training:
		return "training"
	case Panic:
		return "panic"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Monitor buffers labeled pulse readings into batches and feeds them to an
// embedded classifier. It is not safe for concurrent use; the embedded
// classifier is.
type Monitor struct {
	clf *dknn.Classifier
	buf dknn.Batch
}

// NewMonitor returns a monitor over a classifier sized for the pulse regimes.
func NewMonitor(opts ...dknn.Option) (*Monitor, error) {
	clf, err := dknn.New(numClasses, opts...)
	if err != nil {
		return nil, err
	}
	return &Monitor{clf: clf}, nil
}

// Record buffers one labeled reading. Once a full batch accumulates it is
// trained as a unit; the training error, if any, is returned and the batch is
// dropped either way.
func (m *Monitor) Record(x, y float64, class Class) error {
	m.buf = append(m.buf, &dknn.Sample{
		Point: dknn.Point{X: x, Y: y},
		Class: int(class),
	})
	if len(m.buf) < m.clf.BatchSize() {
		return nil
	}
	return m.flush()
}

// Flush trains whatever partial batch is buffered, e.g. before taking a
// snapshot or powering down.
func (m *Monitor) Flush() error {
	if len(m.buf) == 0 {
		return nil
	}
	return m.flush()
}

func (m *Monitor) flush() error {
	batch := m.buf
	m.buf = nil
	return m.clf.Train(batch)
}

// Classify answers which pulse regime the reading belongs to.
func (m *Monitor) Classify(x, y float64) Class {
	return Class(m.clf.Classify(dknn.Point{X: x, Y: y}))
}

// Buffered returns how many readings await the next batch flush.
func (m *Monitor) Buffered() int {
	return len(m.buf)
}

// Classifier exposes the embedded model, e.g. for snapshots or score
// inspection.
func (m *Monitor) Classifier() *dknn.Classifier {
	return m.clf
}
