// Package sim provides seed selection for influence maximization.
//
// # Reading Guide
//
//   - oracle.go: the Graph and SpreadOracle contracts every selector depends on
//   - greedy.go: exhaustive Greedy selection
//   - celf.go: Cost-Effective Lazy Forward selection over gain_heap.go
//   - result.go: SelectionResult and per-round instrumentation
//
// # Architecture
//
// The sim package defines interfaces; implementations live in sub-packages:
//   - sim/graph/: gonum-backed networks, generators and edge-list loading
//   - sim/diffusion/: Monte Carlo spread oracles (independent cascade,
//     linear threshold, weighted cascade)
//   - sim/trace/: per-round selection records and summaries
//
// Selectors are single-threaded. Oracles may run trials in parallel; all
// randomness is derived from a SimulationKey (rng.go) so runs are reproducible.
package sim
