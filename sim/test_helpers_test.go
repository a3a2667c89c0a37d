package sim

import (
	"errors"

	"github.com/inference-sim/influence-sim/sim/internal/testutil"
)

var errOracleBoom = errors.New("oracle exploded")

// sizeOracle returns len(seeds): every unselected vertex has marginal gain exactly 1.
func sizeOracle() SpreadOracle {
	return OracleFunc(func(_ Graph, seeds []int, _ float64, _ int) (float64, error) {
		return float64(len(seeds)), nil
	})
}

// constantOracle returns v for every seed set.
func constantOracle(v float64) SpreadOracle {
	return OracleFunc(func(Graph, []int, float64, int) (float64, error) {
		return v, nil
	})
}

// coverageOracle adapts a testutil.CoverageOracle.
func coverageOracle(c *testutil.CoverageOracle) SpreadOracle {
	return OracleFunc(func(_ Graph, seeds []int, _ float64, _ int) (float64, error) {
		return c.Spread(seeds), nil
	})
}

// countingOracle counts calls and records copies of the seed sets it saw.
type countingOracle struct {
	inner SpreadOracle
	calls int
	seen  [][]int
}

func (c *countingOracle) EstimateSpread(g Graph, seeds []int, p float64, mc int) (float64, error) {
	c.calls++
	c.seen = append(c.seen, append([]int(nil), seeds...))
	return c.inner.EstimateSpread(g, seeds, p, mc)
}

// failingOracle returns errOracleBoom on call number failOn (1-based).
type failingOracle struct {
	failOn int
	calls  int
}

func (f *failingOracle) EstimateSpread(_ Graph, seeds []int, _ float64, _ int) (float64, error) {
	f.calls++
	if f.calls == f.failOn {
		return 0, errOracleBoom
	}
	return float64(len(seeds)), nil
}

// sampleCoverage is a 6-vertex coverage instance with a known selection order:
// Greedy picks [0, 2, 4, 1] with spreads [4, 7, 8, 8].
func sampleCoverage() *testutil.CoverageOracle {
	return &testutil.CoverageOracle{Covers: [][]int{
		{0, 1, 2, 3},
		{0, 1, 2},
		{4, 5, 6},
		{3, 4},
		{7},
		{},
	}}
}
