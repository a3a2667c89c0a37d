package sim

import (
	"github.com/inference-sim/influence-sim/sim/trace"
)

// CELF selects k seeds with Cost-Effective Lazy Forward evaluation.
//
// The first round evaluates every single vertex. Later rounds only recompute
// the candidate at the front of a max-heap of stale gains: by submodularity a
// gain can only shrink as the seed set grows, so once a candidate recomputed
// in the current round is at the front no other candidate can beat it. Each
// candidate is evaluated at most once per round, so no round costs more
// oracle calls than the matching Greedy round. Ties are broken by lower
// vertex id, matching Greedy's enumeration order.
//
// Oracle errors are returned unchanged.
func CELF(g Graph, k int, oracle SpreadOracle, p float64, mc int) (*SelectionResult, error) {
	n, err := validateRun(g, k, oracle, p, mc)
	if err != nil {
		return nil, err
	}

	rec := newRoundRecorder(trace.AlgorithmCELF, k)

	entries := make([]candidate, n)
	for v := 0; v < n; v++ {
		s, err := oracle.EstimateSpread(g, []int{v}, p, mc)
		if err != nil {
			return nil, err
		}
		entries[v] = candidate{vertex: v, gain: s, round: 1}
	}
	q := newGainHeap(entries)

	first := q.popFront()
	seeds := make([]int, 0, k+1)
	seeds = append(seeds, first.vertex)
	spread := first.gain
	rec.record(first.vertex, first.gain, spread, n)

	for round := 2; round <= k; round++ {
		lookups := 0
		for q.front().round != round {
			current := q.front().vertex
			s, err := oracle.EstimateSpread(g, append(seeds, current), p, mc)
			if err != nil {
				return nil, err
			}
			lookups++
			q.updateFront(s-spread, round)
		}

		best := q.popFront()
		seeds = append(seeds, best.vertex)
		spread += best.gain
		rec.record(best.vertex, best.gain, spread, lookups)
	}
	return rec.result, nil
}
