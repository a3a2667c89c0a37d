package sim

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidParameter is returned before any oracle call when k, p, mc,
	// the graph or the oracle are unusable.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNoImprovement is returned by Greedy when no remaining candidate has a
	// strictly positive spread in a round.
	ErrNoImprovement = errors.New("no candidate improves spread")
)

// validateRun checks selector arguments. Returns the vertex count on success.
func validateRun(g Graph, k int, oracle SpreadOracle, p float64, mc int) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%w: graph is nil", ErrInvalidParameter)
	}
	if oracle == nil {
		return 0, fmt.Errorf("%w: oracle is nil", ErrInvalidParameter)
	}
	n := g.VertexCount()
	if k <= 0 {
		return 0, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidParameter, k)
	}
	if k > n {
		return 0, fmt.Errorf("%w: k=%d exceeds vertex count %d", ErrInvalidParameter, k, n)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: p must be in [0, 1], got %v", ErrInvalidParameter, p)
	}
	if mc <= 0 {
		return 0, fmt.Errorf("%w: mc must be positive, got %d", ErrInvalidParameter, mc)
	}
	return n, nil
}
