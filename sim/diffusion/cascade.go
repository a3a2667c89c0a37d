package diffusion

import "math/rand"

// arcOffsets returns CSR offsets: arcs leaving u are numbered
// offsets[u] .. offsets[u+1]-1 in Successors(u) order.
func arcOffsets(topo Topology) []int {
	n := topo.VertexCount()
	offsets := make([]int, n+1)
	for u := 0; u < n; u++ {
		offsets[u+1] = offsets[u] + len(topo.Successors(u))
	}
	return offsets
}

// cascade runs a live-edge cascade. Liveness of every arc is drawn up front in
// arc order, independent of the seeds, so the activated set is the set of
// vertices reachable from seeds over live arcs.
func cascade(topo Topology, seeds []int, rng *rand.Rand, arcProb func(u, v int) float64) int {
	n := topo.VertexCount()
	offsets := arcOffsets(topo)
	live := make([]bool, offsets[n])
	for u := 0; u < n; u++ {
		for i, v := range topo.Successors(u) {
			live[offsets[u]+i] = rng.Float64() < arcProb(u, v)
		}
	}

	active := make([]bool, n)
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !active[s] {
			active[s] = true
			queue = append(queue, s)
		}
	}
	activated := len(queue)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for i, v := range topo.Successors(u) {
			if active[v] || !live[offsets[u]+i] {
				continue
			}
			active[v] = true
			activated++
			queue = append(queue, v)
		}
	}
	return activated
}

func independentCascadeTrial(topo Topology, seeds []int, p float64, rng *rand.Rand) int {
	return cascade(topo, seeds, rng, func(_, _ int) float64 { return p })
}

func weightedCascadeTrial(topo Topology, seeds []int, _ float64, rng *rand.Rand) int {
	return cascade(topo, seeds, rng, func(_, v int) float64 {
		return 1 / float64(topo.InDegree(v))
	})
}
