package sim

import (
	"math"
	"slices"
)

// CrossCheckReport compares two selection runs over the same inputs.
type CrossCheckReport struct {
	SameSeeds       bool    `json:"same_seeds"`
	FinalSpreadA    float64 `json:"final_spread_a"`
	FinalSpreadB    float64 `json:"final_spread_b"`
	SpreadDelta     float64 `json:"spread_delta"` // |A - B|
	WithinTolerance bool    `json:"within_tolerance"`
	LookupsA        int     `json:"lookups_a"`
	LookupsB        int     `json:"lookups_b"`
}

// CrossCheck compares the final cumulative spread of a and b.
// tolerance is relative to the larger of the two spreads; 0 requires exact
// agreement. Seed sets are compared in selection order.
func CrossCheck(a, b *SelectionResult, tolerance float64) CrossCheckReport {
	report := CrossCheckReport{
		FinalSpreadA: a.FinalSpread(),
		FinalSpreadB: b.FinalSpread(),
		LookupsA:     a.TotalLookups(),
		LookupsB:     b.TotalLookups(),
	}
	if a != nil && b != nil {
		report.SameSeeds = slices.Equal(a.Seeds, b.Seeds)
	}
	report.SpreadDelta = math.Abs(report.FinalSpreadA - report.FinalSpreadB)
	scale := math.Max(math.Abs(report.FinalSpreadA), math.Abs(report.FinalSpreadB))
	report.WithinTolerance = report.SpreadDelta <= tolerance*scale
	return report
}
