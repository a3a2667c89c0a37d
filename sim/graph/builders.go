package graph

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrTooFewVertices indicates a generator was asked for fewer vertices than it supports.
	ErrTooFewVertices = errors.New("graph: too few vertices")
	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("graph: probability out of range")
	// ErrNeedRandSource indicates a random generator was called with a nil *rand.Rand.
	ErrNeedRandSource = errors.New("graph: rng is required")
)

// Ring returns the cycle 0→1→…→n-1→0. Requires n ≥ 3.
func Ring(n int, directed bool) (*Network, error) {
	if n < 3 {
		return nil, fmt.Errorf("Ring: n=%d < 3: %w", n, ErrTooFewVertices)
	}
	nw := NewNetwork(n, directed)
	for i := 0; i < n; i++ {
		if err := nw.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Ring: %w", err)
		}
	}
	return nw, nil
}

// Path returns 0→1→…→n-1. Requires n ≥ 2.
func Path(n int, directed bool) (*Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d < 2: %w", n, ErrTooFewVertices)
	}
	nw := NewNetwork(n, directed)
	for i := 0; i+1 < n; i++ {
		if err := nw.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: %w", err)
		}
	}
	return nw, nil
}

// Star returns a hub at vertex 0 with arcs 0→i for every leaf i. Requires n ≥ 2.
func Star(n int, directed bool) (*Network, error) {
	if n < 2 {
		return nil, fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewVertices)
	}
	nw := NewNetwork(n, directed)
	for i := 1; i < n; i++ {
		if err := nw.AddEdge(0, i); err != nil {
			return nil, fmt.Errorf("Star: %w", err)
		}
	}
	return nw, nil
}

// Complete returns K_n. Directed networks get both arcs of every pair.
func Complete(n int, directed bool) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	nw := NewNetwork(n, directed)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (!directed && v < u) {
				continue
			}
			if err := nw.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("Complete: %w", err)
			}
		}
	}
	return nw, nil
}

// ErdosRenyi returns a G(n, prob) random graph. Candidate pairs are visited
// in ascending (u, v) order so a fixed rng seed reproduces the same graph.
func ErdosRenyi(n int, prob float64, directed bool, rng *rand.Rand) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("ErdosRenyi: n=%d < 1: %w", n, ErrTooFewVertices)
	}
	if prob < 0 || prob > 1 {
		return nil, fmt.Errorf("ErdosRenyi: prob=%v: %w", prob, ErrInvalidProbability)
	}
	if rng == nil {
		return nil, fmt.Errorf("ErdosRenyi: %w", ErrNeedRandSource)
	}
	nw := NewNetwork(n, directed)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (!directed && v < u) {
				continue
			}
			if rng.Float64() >= prob {
				continue
			}
			if err := nw.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("ErdosRenyi: %w", err)
			}
		}
	}
	return nw, nil
}
