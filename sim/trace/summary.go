package trace

import "time"

// TraceSummary aggregates statistics from a SelectionTrace.
type TraceSummary struct {
	Algorithm    Algorithm     `json:"algorithm"`
	Rounds       int           `json:"rounds"`
	TotalLookups int           `json:"total_lookups"`
	MeanLookups  float64       `json:"mean_lookups"`
	MaxLookups   int           `json:"max_lookups"`
	TotalElapsed time.Duration `json:"total_elapsed_ns"`
	FinalSpread  float64       `json:"final_spread"`
}

// Summarize computes aggregate statistics from a SelectionTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SelectionTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}
	summary.Algorithm = st.Algorithm
	summary.Rounds = len(st.Rounds)
	if len(st.Rounds) == 0 {
		return summary
	}

	for _, r := range st.Rounds {
		summary.TotalLookups += r.Lookups
		if r.Lookups > summary.MaxLookups {
			summary.MaxLookups = r.Lookups
		}
	}
	summary.MeanLookups = float64(summary.TotalLookups) / float64(len(st.Rounds))

	last := st.Rounds[len(st.Rounds)-1]
	summary.TotalElapsed = last.Elapsed
	summary.FinalSpread = last.CumulativeSpread

	return summary
}
