// Package graph provides the networks seed selection runs on: a gonum-backed
// directed graph with dense integer vertex ids, deterministic generators and
// an edge-list loader.
package graph

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	gonumgraph "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

var (
	// ErrVertexOutOfRange is returned for vertex ids outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")
	// ErrSelfLoop is returned when an edge connects a vertex to itself.
	ErrSelfLoop = errors.New("graph: self loop")
	// ErrFrozen is returned when edges are added after the adjacency has been read.
	ErrFrozen = errors.New("graph: network is frozen")
)

// Network is a simple graph over vertices 0..n-1. Undirected networks store
// every edge as two arcs, so diffusion code only ever sees arcs.
//
// Adding edges is not safe for concurrent use. The first read of the adjacency
// (Successors, Predecessors, InDegree) freezes the network; after that it is
// read-only and safe to share between goroutines.
type Network struct {
	g        *simple.DirectedGraph
	n        int
	directed bool

	freeze sync.Once
	frozen bool
	succ   [][]int
	pred   [][]int
}

// NewNetwork creates a network with n isolated vertices.
func NewNetwork(n int, directed bool) *Network {
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return &Network{g: g, n: n, directed: directed}
}

// VertexCount returns the number of vertices.
func (nw *Network) VertexCount() int {
	return nw.n
}

// Directed reports whether edges were added as single arcs.
func (nw *Network) Directed() bool {
	return nw.directed
}

// ArcCount returns the number of stored arcs (twice the edge count for undirected networks).
func (nw *Network) ArcCount() int {
	return nw.g.Edges().Len()
}

// AddEdge connects u and v. Duplicate edges are ignored.
func (nw *Network) AddEdge(u, v int) error {
	if nw.frozen {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrFrozen)
	}
	if u < 0 || u >= nw.n || v < 0 || v >= nw.n {
		return fmt.Errorf("AddEdge(%d, %d) with %d vertices: %w", u, v, nw.n, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrSelfLoop)
	}
	nw.setArc(u, v)
	if !nw.directed {
		nw.setArc(v, u)
	}
	return nil
}

func (nw *Network) setArc(u, v int) {
	if nw.g.HasEdgeFromTo(int64(u), int64(v)) {
		return
	}
	nw.g.SetEdge(simple.Edge{F: simple.Node(int64(u)), T: simple.Node(int64(v))})
}

// Successors returns the heads of arcs leaving v in ascending order.
// The returned slice is shared and must not be modified.
func (nw *Network) Successors(v int) []int {
	nw.buildAdjacency()
	return nw.succ[v]
}

// Predecessors returns the tails of arcs entering v in ascending order.
// The returned slice is shared and must not be modified.
func (nw *Network) Predecessors(v int) []int {
	nw.buildAdjacency()
	return nw.pred[v]
}

// InDegree returns the number of arcs entering v.
func (nw *Network) InDegree(v int) int {
	nw.buildAdjacency()
	return len(nw.pred[v])
}

// OutDegree returns the number of arcs leaving v.
func (nw *Network) OutDegree(v int) int {
	nw.buildAdjacency()
	return len(nw.succ[v])
}

// buildAdjacency snapshots gonum's adjacency into sorted int slices.
// gonum iterates neighbors in map order; sorting keeps traversal deterministic.
func (nw *Network) buildAdjacency() {
	nw.freeze.Do(func() {
		nw.succ = make([][]int, nw.n)
		nw.pred = make([][]int, nw.n)
		for v := 0; v < nw.n; v++ {
			nw.succ[v] = sortedIDs(nw.g.From(int64(v)))
			nw.pred[v] = sortedIDs(nw.g.To(int64(v)))
		}
		nw.frozen = true
	})
}

func sortedIDs(it gonumgraph.Nodes) []int {
	nodes := gonumgraph.NodesOf(it)
	ids := make([]int, len(nodes))
	for i, node := range nodes {
		ids[i] = int(node.ID())
	}
	slices.Sort(ids)
	return ids
}
