package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible selection run.
// Two runs with the same SimulationKey and identical configuration
// MUST select identical seed sets with identical spread estimates.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemGraph is the RNG subsystem for random graph generation.
	// Uses master seed directly so --seed reproduces the same graph.
	SubsystemGraph = "graph"

	// SubsystemDiffusion is the RNG subsystem for Monte Carlo trials.
	SubsystemDiffusion = "diffusion"
)

// SubsystemTrial returns the subsystem name for Monte Carlo trial N of a model.
func SubsystemTrial(model string, trial int) string {
	return fmt.Sprintf("%s_%s_trial_%d", SubsystemDiffusion, model, trial)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemGraph: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(DeriveSeed(p.key, name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// DeriveSeed returns the seed PartitionedRNG uses for the named subsystem.
func DeriveSeed(key SimulationKey, name string) int64 {
	if name == SubsystemGraph {
		return int64(key)
	}
	return int64(key) ^ fnv1a64(name)
}

// NewTrialRNG returns a fresh RNG for one Monte Carlo trial.
//
// Unlike ForSubsystem the result is never cached: every oracle call replays
// the same per-trial streams, so spread estimates for a fixed key are a
// deterministic function of the seed set. Safe for concurrent use since no
// state is shared between calls.
func NewTrialRNG(key SimulationKey, model string, trial int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(key, SubsystemTrial(model, trial))))
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
