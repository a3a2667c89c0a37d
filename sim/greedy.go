package sim

import (
	"fmt"

	"github.com/inference-sim/influence-sim/sim/trace"
)

// Greedy selects k seeds by evaluating the spread of S ∪ {v} for every
// remaining vertex v in every round and keeping the best.
//
// Candidates are enumerated in ascending id order and compared with a strict
// '>', so the lowest id among equally good vertices wins. A round in which no
// candidate reaches a strictly positive spread fails with ErrNoImprovement.
// Oracle errors are returned unchanged. Costs Σ(n-i) for i in [0,k) oracle calls.
func Greedy(g Graph, k int, oracle SpreadOracle, p float64, mc int) (*SelectionResult, error) {
	n, err := validateRun(g, k, oracle, p, mc)
	if err != nil {
		return nil, err
	}

	rec := newRoundRecorder(trace.AlgorithmGreedy, k)
	selected := make([]bool, n)
	seeds := make([]int, 0, k+1)
	prevSpread := 0.0

	for round := 1; round <= k; round++ {
		bestNode, bestSpread, lookups := -1, 0.0, 0
		for v := 0; v < n; v++ {
			if selected[v] {
				continue
			}
			s, err := oracle.EstimateSpread(g, append(seeds, v), p, mc)
			if err != nil {
				return nil, err
			}
			lookups++
			if s > bestSpread {
				bestNode, bestSpread = v, s
			}
		}
		if bestNode < 0 {
			return nil, fmt.Errorf("%w: round %d of %d, %d candidates evaluated", ErrNoImprovement, round, k, lookups)
		}

		selected[bestNode] = true
		seeds = append(seeds, bestNode)
		rec.record(bestNode, bestSpread-prevSpread, bestSpread, lookups)
		prevSpread = bestSpread
	}
	return rec.result, nil
}
