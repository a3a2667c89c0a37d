package sim

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/influence-sim/sim/internal/testutil"
	"github.com/inference-sim/influence-sim/sim/trace"
)

func TestNewSelector_KnownNames(t *testing.T) {
	for _, name := range []trace.Algorithm{trace.AlgorithmGreedy, trace.AlgorithmCELF} {
		s, err := NewSelector(string(name))
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())

		res, err := s.Select(testutil.Graph(4), 2, sizeOracle(), 0.1, 1)
		require.NoError(t, err)
		assert.Equal(t, name, res.Algorithm)
		assert.Equal(t, []int{0, 1}, res.Seeds)
	}
}

func TestNewSelector_Unknown(t *testing.T) {
	s, err := NewSelector("celf++")
	assert.Nil(t, s)
	assert.ErrorContains(t, err, "unknown selector")
}

func TestCrossCheck_DeterministicOracle_Agrees(t *testing.T) {
	g, err := Greedy(testutil.Graph(6), 3, coverageOracle(sampleCoverage()), 0.1, 1)
	require.NoError(t, err)
	c, err := CELF(testutil.Graph(6), 3, coverageOracle(sampleCoverage()), 0.1, 1)
	require.NoError(t, err)

	report := CrossCheck(c, g, 0)
	assert.True(t, report.SameSeeds)
	assert.True(t, report.WithinTolerance)
	assert.Equal(t, 0.0, report.SpreadDelta)
	assert.Equal(t, 8.0, report.FinalSpreadA)
	assert.Equal(t, 6+2+2, report.LookupsA)
	assert.Equal(t, 6+5+4, report.LookupsB)
}

func TestCrossCheck_Tolerance(t *testing.T) {
	a := &SelectionResult{Seeds: []int{1, 2}, Spread: []float64{5, 10}, Lookups: []int{4, 1}}
	b := &SelectionResult{Seeds: []int{2, 1}, Spread: []float64{5, 10.4}, Lookups: []int{4, 3}}

	loose := CrossCheck(a, b, 0.05)
	assert.False(t, loose.SameSeeds)
	assert.InDelta(t, 0.4, loose.SpreadDelta, 1e-12)
	assert.True(t, loose.WithinTolerance)

	strict := CrossCheck(a, b, 0.01)
	assert.False(t, strict.WithinTolerance)
}

func TestCrossCheck_NilResults(t *testing.T) {
	report := CrossCheck(nil, nil, 0)
	assert.False(t, report.SameSeeds)
	assert.True(t, report.WithinTolerance)
	assert.Equal(t, 0, report.LookupsA)
}

func TestSelectionResult_Helpers(t *testing.T) {
	var empty *SelectionResult
	assert.Equal(t, 0.0, empty.FinalSpread())
	assert.Equal(t, 0, empty.TotalLookups())
	assert.Nil(t, empty.TimelapseSeconds())

	res, err := CELF(testutil.Graph(6), 2, coverageOracle(sampleCoverage()), 0.1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, res.FinalSpread())
	secs := res.TimelapseSeconds()
	require.Len(t, secs, 2)
	assert.LessOrEqual(t, secs[0], secs[1])
}

func TestSelectionResult_MarshalJSON_AddsSeconds(t *testing.T) {
	res := &SelectionResult{
		Algorithm: trace.AlgorithmGreedy,
		Seeds:     []int{3},
		Spread:    []float64{2},
		Timelapse: []time.Duration{1500 * time.Millisecond},
		Lookups:   []int{4},
	}
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, []any{1.5}, fields["timelapse_s"])
	assert.Equal(t, []any{1.5e9}, fields["timelapse_ns"])
	assert.NotContains(t, fields, "Trace")

	// AND the extra field does not break decoding back into a result
	var decoded SelectionResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, res.Timelapse, decoded.Timelapse)
	assert.Equal(t, res.Seeds, decoded.Seeds)
}
