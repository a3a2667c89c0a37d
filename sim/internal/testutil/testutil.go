// Package testutil provides shared test infrastructure for seed selection:
// deterministic oracles with known optima and assertion helpers used across
// sim/ and sim/diffusion/ test packages.
package testutil

import (
	"math"
	"testing"
)

// Graph has a vertex count and nothing else; it satisfies sim.Graph but not
// any richer topology interface.
type Graph int

// VertexCount implements sim.Graph.
func (g Graph) VertexCount() int {
	return int(g)
}

// CoverageOracle is a deterministic monotone submodular oracle: vertex v
// covers Covers[v] and the spread of a seed set is the total weight of the
// union of what it covers.
type CoverageOracle struct {
	Covers  [][]int
	Weights map[int]float64 // item -> weight; missing items weigh 1
}

// Spread returns the weighted size of the union of Covers over seeds.
func (c *CoverageOracle) Spread(seeds []int) float64 {
	seen := make(map[int]bool)
	total := 0.0
	for _, s := range seeds {
		for _, item := range c.Covers[s] {
			if seen[item] {
				continue
			}
			seen[item] = true
			if w, ok := c.Weights[item]; ok {
				total += w
			} else {
				total++
			}
		}
	}
	return total
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertNonDecreasing fails if values ever decrease.
func AssertNonDecreasing(t *testing.T, name string, values []float64) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Errorf("%s: value %d (%v) < value %d (%v)", name, i, values[i], i-1, values[i-1])
		}
	}
}

// AssertDistinct fails if ids contains duplicates.
func AssertDistinct(t *testing.T, name string, ids []int) {
	t.Helper()
	seen := make(map[int]int, len(ids))
	for i, id := range ids {
		if j, ok := seen[id]; ok {
			t.Errorf("%s: id %d at positions %d and %d", name, id, j, i)
		}
		seen[id] = i
	}
}
