package graph

// DegreeStats summarizes a network's degree distribution.
type DegreeStats struct {
	MaxInDegree  int `json:"max_in_degree"`
	MaxOutDegree int `json:"max_out_degree"`
	Isolated     int `json:"isolated"` // vertices with no arcs in either direction
}

// Degrees computes DegreeStats. Like any adjacency read it freezes the network.
func (nw *Network) Degrees() DegreeStats {
	var st DegreeStats
	for v := 0; v < nw.n; v++ {
		in, out := len(nw.Predecessors(v)), nw.OutDegree(v)
		st.MaxInDegree = max(st.MaxInDegree, in)
		st.MaxOutDegree = max(st.MaxOutDegree, out)
		if in == 0 && out == 0 {
			st.Isolated++
		}
	}
	return st
}
