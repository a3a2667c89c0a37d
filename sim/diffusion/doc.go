// Package diffusion provides Monte Carlo spread oracles for seed selection.
//
// Every oracle implements sim.SpreadOracle and runs on any sim.Graph that also
// implements Topology (graph.Network does). Models:
//   - IndependentCascade: each arc is live with probability p
//   - WeightedCascade: arc (u, v) is live with probability 1/indeg(v); p is ignored
//   - LinearThreshold: arc (u, v) has weight p/indeg(v); a vertex activates once
//     the weight of its active in-neighbors reaches a uniform random threshold
//
// Trial t of every EstimateSpread call draws from sim.NewTrialRNG(key, model, t),
// so with a fixed key the estimate is a deterministic function of the seed set
// and the number of workers never changes the result.
package diffusion
