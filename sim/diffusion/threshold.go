package diffusion

import "math/rand"

// linearThresholdTrial draws a threshold in [0, 1) for every vertex in id
// order, then propagates from seeds. Arc (u, v) contributes p/indeg(v), so the
// incoming weights of any vertex sum to at most p ≤ 1.
func linearThresholdTrial(topo Topology, seeds []int, p float64, rng *rand.Rand) int {
	n := topo.VertexCount()
	threshold := make([]float64, n)
	for v := 0; v < n; v++ {
		threshold[v] = rng.Float64()
	}

	active := make([]bool, n)
	influence := make([]float64, n)
	queue := make([]int, 0, len(seeds))
	for _, s := range seeds {
		if !active[s] {
			active[s] = true
			queue = append(queue, s)
		}
	}
	activated := len(queue)
	if p == 0 {
		return activated
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range topo.Successors(u) {
			if active[v] {
				continue
			}
			influence[v] += p / float64(topo.InDegree(v))
			if influence[v] >= threshold[v] {
				active[v] = true
				activated++
				queue = append(queue, v)
			}
		}
	}
	return activated
}
