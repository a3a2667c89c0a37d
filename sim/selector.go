package sim

import (
	"fmt"

	"github.com/inference-sim/influence-sim/sim/trace"
)

// Selector picks a seed set of size k. Greedy and CELF are the two
// implementations; both honor the same argument validation and error contract.
type Selector interface {
	Select(g Graph, k int, oracle SpreadOracle, p float64, mc int) (*SelectionResult, error)
	Name() trace.Algorithm
}

// SelectorFunc adapts a selection function to the Selector interface.
type SelectorFunc struct {
	name trace.Algorithm
	fn   func(g Graph, k int, oracle SpreadOracle, p float64, mc int) (*SelectionResult, error)
}

// Select runs the wrapped selection function.
func (s SelectorFunc) Select(g Graph, k int, oracle SpreadOracle, p float64, mc int) (*SelectionResult, error) {
	return s.fn(g, k, oracle, p, mc)
}

// Name returns the algorithm name.
func (s SelectorFunc) Name() trace.Algorithm {
	return s.name
}

// NewSelector creates a selector by name.
// Valid names: "greedy", "celf".
func NewSelector(name string) (Selector, error) {
	switch trace.Algorithm(name) {
	case trace.AlgorithmGreedy:
		return SelectorFunc{name: trace.AlgorithmGreedy, fn: Greedy}, nil
	case trace.AlgorithmCELF:
		return SelectorFunc{name: trace.AlgorithmCELF, fn: CELF}, nil
	default:
		return nil, fmt.Errorf("unknown selector %q; valid selectors: [greedy, celf]", name)
	}
}
