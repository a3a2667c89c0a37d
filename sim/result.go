package sim

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/influence-sim/sim/trace"
)

// SelectionResult is the output of one selection run. Seeds, Spread,
// Timelapse and Lookups are parallel: entry i describes round i+1.
type SelectionResult struct {
	Algorithm trace.Algorithm `json:"algorithm"`
	Seeds     []int           `json:"seeds"`
	Spread    []float64       `json:"spread"` // cumulative spread after each round
	Timelapse []time.Duration `json:"timelapse_ns"`
	Lookups   []int           `json:"lookups"` // oracle calls per round

	Trace *trace.SelectionTrace `json:"-"`
}

// FinalSpread returns the cumulative spread after the last round, or 0 for an empty result.
func (r *SelectionResult) FinalSpread() float64 {
	if r == nil || len(r.Spread) == 0 {
		return 0
	}
	return r.Spread[len(r.Spread)-1]
}

// TotalLookups returns the number of oracle calls made during the run.
func (r *SelectionResult) TotalLookups() int {
	if r == nil {
		return 0
	}
	total := 0
	for _, l := range r.Lookups {
		total += l
	}
	return total
}

// TimelapseSeconds returns Timelapse as float seconds.
func (r *SelectionResult) TimelapseSeconds() []float64 {
	if r == nil {
		return nil
	}
	out := make([]float64, len(r.Timelapse))
	for i, d := range r.Timelapse {
		out[i] = d.Seconds()
	}
	return out
}

// MarshalJSON adds timelapse_s, the elapsed time of each round in seconds.
func (r SelectionResult) MarshalJSON() ([]byte, error) {
	type plain SelectionResult
	return json.Marshal(struct {
		plain
		TimelapseS []float64 `json:"timelapse_s"`
	}{plain(r), r.TimelapseSeconds()})
}

// roundRecorder appends per-round instrumentation to a SelectionResult.
type roundRecorder struct {
	start  time.Time
	result *SelectionResult
}

func newRoundRecorder(algorithm trace.Algorithm, k int) *roundRecorder {
	return &roundRecorder{
		start: time.Now(),
		result: &SelectionResult{
			Algorithm: algorithm,
			Seeds:     make([]int, 0, k),
			Spread:    make([]float64, 0, k),
			Timelapse: make([]time.Duration, 0, k),
			Lookups:   make([]int, 0, k),
			Trace:     trace.NewSelectionTrace(algorithm),
		},
	}
}

func (r *roundRecorder) record(vertex int, gain, cumulative float64, lookups int) {
	elapsed := time.Since(r.start)
	res := r.result
	res.Seeds = append(res.Seeds, vertex)
	res.Spread = append(res.Spread, cumulative)
	res.Timelapse = append(res.Timelapse, elapsed)
	res.Lookups = append(res.Lookups, lookups)
	res.Trace.RecordRound(trace.RoundRecord{
		Round:            len(res.Seeds),
		Vertex:           vertex,
		Gain:             gain,
		CumulativeSpread: cumulative,
		Elapsed:          elapsed,
		Lookups:          lookups,
	})
	logrus.Debugf("[%s round %d] selected vertex %d gain=%.4f spread=%.4f lookups=%d elapsed=%v",
		res.Algorithm, len(res.Seeds), vertex, gain, cumulative, lookups, elapsed)
}
