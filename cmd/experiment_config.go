package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/influence-sim/sim/diffusion"
	"github.com/inference-sim/influence-sim/sim/trace"
)

// AlgorithmBoth runs CELF then Greedy on the same inputs and cross-checks them.
const AlgorithmBoth = "both"

// GraphConfig selects the network to run on.
type GraphConfig struct {
	Type     string  `yaml:"type"` // ring, path, star, complete, random, file
	Nodes    int     `yaml:"nodes,omitempty"`
	EdgeProb float64 `yaml:"edge_prob,omitempty"` // random only
	Path     string  `yaml:"path,omitempty"`      // file only
	Directed bool    `yaml:"directed"`
}

// ExperimentConfig is the full experiment file structure.
// All top-level sections must be listed to satisfy KnownFields(true) strict parsing.
type ExperimentConfig struct {
	Graph     GraphConfig `yaml:"graph"`
	Model     string      `yaml:"model"`
	Algorithm string      `yaml:"algorithm"`
	K         int         `yaml:"k"`
	P         float64     `yaml:"p"`
	MC        int         `yaml:"mc"`
	Seed      int64       `yaml:"seed"`
	Workers   int         `yaml:"workers,omitempty"`
	Tolerance float64     `yaml:"tolerance,omitempty"` // relative, for cross-checks
}

var validGraphTypes = map[string]bool{
	"ring": true, "path": true, "star": true, "complete": true, "random": true, "file": true,
}

// DefaultExperimentConfig returns the configuration used when neither a file
// nor flags say otherwise.
func DefaultExperimentConfig() *ExperimentConfig {
	return &ExperimentConfig{
		Graph:     GraphConfig{Type: "random", Nodes: 100, EdgeProb: 0.05, Directed: true},
		Model:     string(diffusion.ModelIndependentCascade),
		Algorithm: string(trace.AlgorithmCELF),
		K:         5,
		P:         0.1,
		MC:        1000,
		Seed:      42,
		Workers:   1,
		Tolerance: 0.05,
	}
}

// LoadExperimentConfig reads a YAML experiment file on top of the defaults.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadExperimentConfig(path string) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment config: %w", err)
	}
	cfg := DefaultExperimentConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing experiment config: %w", err)
	}
	return cfg, nil
}

// Validate checks names and parameter ranges. k against the vertex count is
// left to the selectors, which know the graph.
func (c *ExperimentConfig) Validate() error {
	if !validGraphTypes[c.Graph.Type] {
		return fmt.Errorf("unknown graph type %q; valid: ring, path, star, complete, random, file", c.Graph.Type)
	}
	if c.Graph.Type == "file" && c.Graph.Path == "" {
		return fmt.Errorf("graph type file requires a path")
	}
	if c.Graph.Type != "file" && c.Graph.Nodes <= 0 {
		return fmt.Errorf("graph nodes must be positive, got %d", c.Graph.Nodes)
	}
	if c.Graph.Type == "random" && (c.Graph.EdgeProb < 0 || c.Graph.EdgeProb > 1) {
		return fmt.Errorf("graph edge_prob must be in [0, 1], got %f", c.Graph.EdgeProb)
	}
	if !diffusion.ValidModels[c.Model] {
		return fmt.Errorf("unknown model %q; valid: ic, lt, wc", c.Model)
	}
	if c.Algorithm != AlgorithmBoth && !trace.IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("unknown algorithm %q; valid: greedy, celf, both", c.Algorithm)
	}
	if c.K <= 0 {
		return fmt.Errorf("k must be positive, got %d", c.K)
	}
	if c.P < 0 || c.P > 1 {
		return fmt.Errorf("p must be in [0, 1], got %f", c.P)
	}
	if c.MC <= 0 {
		return fmt.Errorf("mc must be positive, got %d", c.MC)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative, got %f", c.Tolerance)
	}
	return nil
}

// algorithms returns the selectors to run, in order.
func (c *ExperimentConfig) algorithms() []string {
	if c.Algorithm == AlgorithmBoth {
		return []string{string(trace.AlgorithmCELF), string(trace.AlgorithmGreedy)}
	}
	return []string{c.Algorithm}
}
