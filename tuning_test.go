package dknn_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yyyoichi/dknn"
)

func writeTuningFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTuningConfig(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.json",
			`{"spread": 2.0, "overconfidence": 5.0, "spread_step": 0.02, "overconfidence_step": 0.1, "batch_size": 10}`)
		cfg, err := dknn.LoadTuningConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 2.0, cfg.GetSpread())
		assert.Equal(t, 5.0, cfg.GetOverconfidence())
		assert.Equal(t, 0.02, cfg.GetSpreadStep())
		assert.Equal(t, 0.1, cfg.GetOverconfidenceStep())
		assert.Equal(t, 10, cfg.GetBatchSize())
	})

	t.Run("partial_keeps_defaults", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.json", `{"batch_size": 25}`)
		cfg, err := dknn.LoadTuningConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 1.442, cfg.GetSpread())
		assert.Equal(t, 10.0, cfg.GetOverconfidence())
		assert.Equal(t, 0.01, cfg.GetSpreadStep())
		assert.Equal(t, 0.05, cfg.GetOverconfidenceStep())
		assert.Equal(t, 25, cfg.GetBatchSize())
	})

	t.Run("empty_object", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.json", `{}`)
		cfg, err := dknn.LoadTuningConfig(path)
		require.NoError(t, err)
		assert.Equal(t, dknn.DefaultBatchSize, cfg.GetBatchSize())
	})

	t.Run("wrong_extension", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.yaml", `{}`)
		_, err := dknn.LoadTuningConfig(path)
		assert.ErrorContains(t, err, ".json")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := dknn.LoadTuningConfig(filepath.Join(t.TempDir(), "absent.json"))
		assert.Error(t, err)
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.json", `{"spread": `)
		_, err := dknn.LoadTuningConfig(path)
		assert.Error(t, err)
	})

	t.Run("non_positive_spread", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.json", `{"spread": 0}`)
		_, err := dknn.LoadTuningConfig(path)
		assert.ErrorIs(t, err, dknn.ErrNonPositiveSpread)
	})

	t.Run("negative_batch_size", func(t *testing.T) {
		path := writeTuningFile(t, "tuning.json", `{"batch_size": -1}`)
		_, err := dknn.LoadTuningConfig(path)
		assert.Error(t, err)
	})
}

func TestWithTuningConfig(t *testing.T) {
	path := writeTuningFile(t, "tuning.json",
		`{"spread": 3.0, "overconfidence": 7.5, "batch_size": 20}`)
	cfg, err := dknn.LoadTuningConfig(path)
	require.NoError(t, err)

	clf, err := dknn.New(2, dknn.WithTuningConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, 20, clf.BatchSize())
	for class := 0; class < clf.Classes(); class++ {
		spread, overconfidence := clf.Parameters(class)
		assert.Equal(t, 3.0, spread)
		assert.Equal(t, 7.5, overconfidence)
	}
}
