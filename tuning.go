package dknn

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yyyoichi/dknn/internal/dilution"
)

// TuningConfig carries the classifier's tunable constants as read from a JSON
// file. Pointer fields distinguish "omitted" from "explicitly zero", so
// partial configs are safe; the Get* methods fall back to the package
// defaults for omitted fields.
type TuningConfig struct {
	Spread             *float64 `json:"spread,omitempty"`
	Overconfidence     *float64 `json:"overconfidence,omitempty"`
	SpreadStep         *float64 `json:"spread_step,omitempty"`
	OverconfidenceStep *float64 `json:"overconfidence_step,omitempty"`
	BatchSize          *int     `json:"batch_size,omitempty"`
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The file must carry
// a .json extension and stay under the max file size.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &TuningConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable. A non-positive
// spread is rejected here, at configuration time, never at scoring time.
func (c *TuningConfig) Validate() error {
	if c.Spread != nil && *c.Spread <= 0 {
		return fmt.Errorf("%w: %f", ErrNonPositiveSpread, *c.Spread)
	}
	if c.Overconfidence != nil && *c.Overconfidence < 0 {
		return fmt.Errorf("overconfidence must not be negative, got %f", *c.Overconfidence)
	}
	if c.SpreadStep != nil && *c.SpreadStep <= 0 {
		return fmt.Errorf("spread_step must be positive, got %f", *c.SpreadStep)
	}
	if c.OverconfidenceStep != nil && *c.OverconfidenceStep <= 0 {
		return fmt.Errorf("overconfidence_step must be positive, got %f", *c.OverconfidenceStep)
	}
	if c.BatchSize != nil && *c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", *c.BatchSize)
	}
	return nil
}

// GetSpread returns the spread value or the default.
func (c *TuningConfig) GetSpread() float64 {
	if c.Spread == nil {
		return dilution.DefaultSpread
	}
	return *c.Spread
}

// GetOverconfidence returns the overconfidence value or the default.
func (c *TuningConfig) GetOverconfidence() float64 {
	if c.Overconfidence == nil {
		return dilution.DefaultOverconfidence
	}
	return *c.Overconfidence
}

// GetSpreadStep returns the spread_step value or the default.
func (c *TuningConfig) GetSpreadStep() float64 {
	if c.SpreadStep == nil {
		return dilution.DefaultSpreadStep
	}
	return *c.SpreadStep
}

// GetOverconfidenceStep returns the overconfidence_step value or the default.
func (c *TuningConfig) GetOverconfidenceStep() float64 {
	if c.OverconfidenceStep == nil {
		return dilution.DefaultOverconfidenceStep
	}
	return *c.OverconfidenceStep
}

// GetBatchSize returns the batch_size value or the default.
func (c *TuningConfig) GetBatchSize() int {
	if c.BatchSize == nil {
		return DefaultBatchSize
	}
	return *c.BatchSize
}
