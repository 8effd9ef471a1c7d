package dknn

import "fmt"

type Option func(*Classifier) error

// WithInitialParameters overrides the dilution parameters every class starts
// from. Spread must be positive: it divides the exponent of the confidence
// decay. The overconfidence radius must not be negative.
func WithInitialParameters(spread, overconfidence float64) Option {
	return func(c *Classifier) error {
		if spread <= 0 {
			return fmt.Errorf("%w: %f", ErrNonPositiveSpread, spread)
		}
		if overconfidence < 0 {
			return fmt.Errorf("overconfidence must not be negative: %f", overconfidence)
		}
		c.spread = spread
		c.overconfidence = overconfidence
		return nil
	}
}

// WithTuningSteps overrides the increments the online tuner applies to spread
// and overconfidence. Both must be positive.
func WithTuningSteps(spreadStep, overconfidenceStep float64) Option {
	return func(c *Classifier) error {
		if spreadStep <= 0 || overconfidenceStep <= 0 {
			return fmt.Errorf("tuning steps must be positive: %f, %f", spreadStep, overconfidenceStep)
		}
		c.tuner.SpreadStep = spreadStep
		c.tuner.OverconfidenceStep = overconfidenceStep
		return nil
	}
}

// WithBatchSize sets the number of samples per training batch. Hosts that
// buffer readings (see the pulse package) use it as the flush threshold.
func WithBatchSize(n int) Option {
	return func(c *Classifier) error {
		if n <= 0 {
			return fmt.Errorf("batch size must be positive: %d", n)
		}
		c.batchSize = n
		return nil
	}
}

// WithObserver installs a callback invoked on every Classify call with the
// per-class confidence values and the final decision. The scoring path itself
// stays side-effect-free.
func WithObserver(f Observer) Option {
	return func(c *Classifier) error {
		c.observer = f
		return nil
	}
}

// WithWeightFunc installs a per-sample weight for centroid aggregation, e.g.
// to favor recent or high-quality readings.
func WithWeightFunc(f WeightFunc) Option {
	return func(c *Classifier) error {
		c.weight = f
		return nil
	}
}

// WithTuningConfig applies the values of a loaded tuning file. Fields omitted
// from the file keep their defaults.
func WithTuningConfig(cfg *TuningConfig) Option {
	return func(c *Classifier) error {
		if cfg == nil {
			return nil
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.spread = cfg.GetSpread()
		c.overconfidence = cfg.GetOverconfidence()
		c.tuner.SpreadStep = cfg.GetSpreadStep()
		c.tuner.OverconfidenceStep = cfg.GetOverconfidenceStep()
		c.batchSize = cfg.GetBatchSize()
		return nil
	}
}
