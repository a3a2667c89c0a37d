package sim

// Graph is the view of a network the selectors need. Implementations carry
// whatever additional structure their SpreadOracle requires; the selectors
// only enumerate vertex ids 0..VertexCount()-1 and never mutate the graph.
type Graph interface {
	VertexCount() int
}

// SpreadOracle estimates the expected number of vertices activated by a
// diffusion process started from seeds. Estimates are the sample mean over mc
// independent trials using activation probability p, and MUST depend only on
// the set of seeds, not on their order.
//
// seeds is only valid for the duration of the call: implementations must not
// modify or retain it. Selectors return any error produced by EstimateSpread
// unchanged.
type SpreadOracle interface {
	EstimateSpread(g Graph, seeds []int, p float64, mc int) (float64, error)
}

// OracleFunc adapts an ordinary function to the SpreadOracle interface.
type OracleFunc func(g Graph, seeds []int, p float64, mc int) (float64, error)

// EstimateSpread calls f(g, seeds, p, mc).
func (f OracleFunc) EstimateSpread(g Graph, seeds []int, p float64, mc int) (float64, error) {
	return f(g, seeds, p, mc)
}
