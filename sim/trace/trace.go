package trace

// Algorithm names a seed selection algorithm.
type Algorithm string

const (
	// AlgorithmGreedy evaluates every remaining candidate each round.
	AlgorithmGreedy Algorithm = "greedy"
	// AlgorithmCELF evaluates candidates lazily.
	AlgorithmCELF Algorithm = "celf"
)

// validAlgorithms maps accepted algorithm strings.
var validAlgorithms = map[Algorithm]bool{
	AlgorithmGreedy: true,
	AlgorithmCELF:   true,
}

// IsValidAlgorithm returns true if the given string is a recognized algorithm.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[Algorithm(name)]
}

// SelectionTrace collects round records during a selection run.
type SelectionTrace struct {
	Algorithm Algorithm     `json:"algorithm"`
	Rounds    []RoundRecord `json:"rounds"`
}

// NewSelectionTrace creates a SelectionTrace ready for recording.
func NewSelectionTrace(algorithm Algorithm) *SelectionTrace {
	return &SelectionTrace{
		Algorithm: algorithm,
		Rounds:    make([]RoundRecord, 0),
	}
}

// RecordRound appends a round record.
func (st *SelectionTrace) RecordRound(record RoundRecord) {
	st.Rounds = append(st.Rounds, record)
}
