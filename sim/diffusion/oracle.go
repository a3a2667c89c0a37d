package diffusion

import (
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/influence-sim/sim"
)

var (
	// ErrUnsupportedGraph is returned when the graph does not implement Topology.
	ErrUnsupportedGraph = errors.New("diffusion: graph does not expose topology")
	// ErrSeedOutOfRange is returned for seed ids outside [0, VertexCount()).
	ErrSeedOutOfRange = errors.New("diffusion: seed out of range")
	// ErrInvalidTrials is returned when mc is not positive.
	ErrInvalidTrials = errors.New("diffusion: trial count must be positive")
)

// Topology is the graph structure the diffusion models traverse.
// Neighbor slices must be sorted and must not change during a call.
type Topology interface {
	sim.Graph
	Successors(v int) []int
	InDegree(v int) int
}

// Model names a diffusion model.
type Model string

const (
	ModelIndependentCascade Model = "ic"
	ModelLinearThreshold    Model = "lt"
	ModelWeightedCascade    Model = "wc"
)

// ValidModels is the set of recognized model names.
var ValidModels = map[string]bool{
	string(ModelIndependentCascade): true,
	string(ModelLinearThreshold):    true,
	string(ModelWeightedCascade):    true,
}

// trialFunc runs one trial and returns the number of activated vertices.
type trialFunc func(topo Topology, seeds []int, p float64, rng *rand.Rand) int

// MonteCarlo estimates spread as the mean activation count over mc trials.
type MonteCarlo struct {
	model   Model
	key     sim.SimulationKey
	workers int
	trial   trialFunc
}

var _ sim.SpreadOracle = (*MonteCarlo)(nil)

// NewIndependentCascade creates an independent cascade oracle.
// workers ≤ 1 runs trials sequentially on the calling goroutine.
func NewIndependentCascade(key sim.SimulationKey, workers int) *MonteCarlo {
	return &MonteCarlo{model: ModelIndependentCascade, key: key, workers: workers, trial: independentCascadeTrial}
}

// NewWeightedCascade creates a weighted cascade oracle.
func NewWeightedCascade(key sim.SimulationKey, workers int) *MonteCarlo {
	return &MonteCarlo{model: ModelWeightedCascade, key: key, workers: workers, trial: weightedCascadeTrial}
}

// NewLinearThreshold creates a linear threshold oracle.
func NewLinearThreshold(key sim.SimulationKey, workers int) *MonteCarlo {
	return &MonteCarlo{model: ModelLinearThreshold, key: key, workers: workers, trial: linearThresholdTrial}
}

// NewOracle creates an oracle by model name.
// Valid names: "ic", "lt", "wc".
func NewOracle(name string, key sim.SimulationKey, workers int) (*MonteCarlo, error) {
	switch Model(name) {
	case ModelIndependentCascade:
		return NewIndependentCascade(key, workers), nil
	case ModelLinearThreshold:
		return NewLinearThreshold(key, workers), nil
	case ModelWeightedCascade:
		return NewWeightedCascade(key, workers), nil
	default:
		return nil, fmt.Errorf("unknown diffusion model %q; valid models: [ic, lt, wc]", name)
	}
}

// Model returns the diffusion model this oracle simulates.
func (m *MonteCarlo) Model() Model {
	return m.model
}

// EstimateSpread implements sim.SpreadOracle.
func (m *MonteCarlo) EstimateSpread(g sim.Graph, seeds []int, p float64, mc int) (float64, error) {
	topo, ok := g.(Topology)
	if !ok {
		return 0, fmt.Errorf("%s oracle on %T: %w", m.model, g, ErrUnsupportedGraph)
	}
	if mc <= 0 {
		return 0, fmt.Errorf("%s oracle: mc=%d: %w", m.model, mc, ErrInvalidTrials)
	}
	n := topo.VertexCount()
	for _, s := range seeds {
		if s < 0 || s >= n {
			return 0, fmt.Errorf("%s oracle: seed %d with %d vertices: %w", m.model, s, n, ErrSeedOutOfRange)
		}
	}

	counts := make([]float64, mc)
	run := func(t int) {
		rng := sim.NewTrialRNG(m.key, string(m.model), t)
		counts[t] = float64(m.trial(topo, seeds, p, rng))
	}

	if m.workers <= 1 {
		for t := 0; t < mc; t++ {
			run(t)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(m.workers)
		for t := 0; t < mc; t++ {
			t := t
			eg.Go(func() error {
				run(t)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return 0, err
		}
	}
	return stat.Mean(counts, nil), nil
}
