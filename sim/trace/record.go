// Package trace provides per-round instrumentation records for seed selection runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "time"

// RoundRecord captures a single selection round.
type RoundRecord struct {
	Round            int           `json:"round"` // 1-based
	Vertex           int           `json:"vertex"`
	Gain             float64       `json:"gain"` // marginal gain of Vertex at selection time
	CumulativeSpread float64       `json:"cumulative_spread"`
	Elapsed          time.Duration `json:"elapsed_ns"` // since the start of the run
	Lookups          int           `json:"lookups"`    // oracle calls spent in this round
}
