package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExampleConfigs_LoadAndValidate verifies every shipped example parses
// under strict YAML and passes validation.
func TestExampleConfigs_LoadAndValidate(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg, err := LoadExperimentConfig(path)
			require.NoError(t, err)
			assert.NoError(t, cfg.Validate())
		})
	}
}

// TestExampleConfigs_RingCompare runs the deterministic ring example end to end.
func TestExampleConfigs_RingCompare(t *testing.T) {
	cfg, err := LoadExperimentConfig(filepath.Join("..", "examples", "ring-compare.yaml"))
	require.NoError(t, err)

	report, err := RunExperiment(cfg)
	require.NoError(t, err)
	require.NotNil(t, report.CrossCheck)
	assert.True(t, report.CrossCheck.SameSeeds)
	assert.Equal(t, 5.0, report.CrossCheck.FinalSpreadA)
	assert.Equal(t, 5.0, report.CrossCheck.FinalSpreadB)
}
