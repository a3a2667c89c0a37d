package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// CLI flags for the experiment
	configPath  string  // YAML experiment file
	seed        int64   // Seed for graph generation and Monte Carlo trials
	logLevel    string  // Log verbosity level
	graphType   string  // ring, path, star, complete, random, file
	graphPath   string  // Edge-list path (implies --graph-type file)
	nodes       int     // Vertex count for generated graphs
	edgeProb    float64 // Edge probability for random graphs
	directed    bool    // Treat edges as arcs
	model       string  // Diffusion model: ic, lt, wc
	algorithm   string  // greedy, celf, both
	k           int     // Seed set size
	p           float64 // Activation probability
	mc          int     // Monte Carlo trials per spread estimate
	workers     int     // Parallel trial workers inside the oracle
	tolerance   float64 // Relative tolerance for cross-checks
	resultsPath string  // Optional JSON output file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "influence-sim",
	Short: "Seed selection for influence maximization (Greedy and CELF)",
}

// runCmd executes a selection experiment using a config file and/or CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Select a seed set and report spread, timing and oracle lookups",
	Run: func(cmd *cobra.Command, args []string) {
		runExperimentCommand(cmd, "")
	},
}

// compareCmd runs CELF and Greedy on the same inputs and cross-checks them
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run CELF and Greedy on the same inputs and cross-check their results",
	Run: func(cmd *cobra.Command, args []string) {
		runExperimentCommand(cmd, AlgorithmBoth)
	},
}

func runExperimentCommand(cmd *cobra.Command, forceAlgorithm string) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)

	cfg := DefaultExperimentConfig()
	if configPath != "" {
		cfg, err = LoadExperimentConfig(configPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
	}
	applyFlagOverrides(cfg, cmd.Flags().Changed)
	if forceAlgorithm != "" {
		cfg.Algorithm = forceAlgorithm
	}

	report, err := RunExperiment(cfg)
	if err != nil {
		logrus.Fatalf("Selection failed: %v", err)
	}
	if err := SaveReport(report, os.Stdout, resultsPath); err != nil {
		logrus.Fatalf("%v", err)
	}
	logrus.Info("Selection complete.")
}

// applyFlagOverrides copies flag values into cfg. Without a config file every
// flag applies (defaults match DefaultExperimentConfig); with one, only flags
// the user actually set override the file.
func applyFlagOverrides(cfg *ExperimentConfig, changed func(name string) bool) {
	set := func(name string) bool {
		return configPath == "" || changed(name)
	}
	if set("seed") {
		cfg.Seed = seed
	}
	if set("graph-type") {
		cfg.Graph.Type = graphType
	}
	if graphPath != "" && (configPath == "" || changed("graph")) {
		cfg.Graph.Type = "file"
		cfg.Graph.Path = graphPath
	}
	if set("nodes") {
		cfg.Graph.Nodes = nodes
	}
	if set("edge-prob") {
		cfg.Graph.EdgeProb = edgeProb
	}
	if set("directed") {
		cfg.Graph.Directed = directed
	}
	if set("model") {
		cfg.Model = model
	}
	if set("algorithm") {
		cfg.Algorithm = algorithm
	}
	if set("k") {
		cfg.K = k
	}
	if set("p") {
		cfg.P = p
	}
	if set("mc") {
		cfg.MC = mc
	}
	if set("workers") {
		cfg.Workers = workers
	}
	if set("tolerance") {
		cfg.Tolerance = tolerance
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := DefaultExperimentConfig()
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().StringVar(&configPath, "config", "", "YAML experiment file; explicitly set flags override it")
		c.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for graph generation and Monte Carlo trials")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&resultsPath, "results-path", "", "Also write the JSON report to this file")

		// Graph
		c.Flags().StringVar(&graphType, "graph-type", defaults.Graph.Type, "Graph type (ring, path, star, complete, random, file)")
		c.Flags().StringVar(&graphPath, "graph", "", "Edge-list file (\"u v\" per line); implies --graph-type file")
		c.Flags().IntVar(&nodes, "nodes", defaults.Graph.Nodes, "Vertex count for generated graphs")
		c.Flags().Float64Var(&edgeProb, "edge-prob", defaults.Graph.EdgeProb, "Edge probability for random graphs")
		c.Flags().BoolVar(&directed, "directed", defaults.Graph.Directed, "Treat edges as directed arcs")

		// Selection
		c.Flags().StringVar(&model, "model", defaults.Model, "Diffusion model (ic, lt, wc)")
		c.Flags().IntVar(&k, "k", defaults.K, "Number of seeds to select")
		c.Flags().Float64Var(&p, "p", defaults.P, "Activation probability")
		c.Flags().IntVar(&mc, "mc", defaults.MC, "Monte Carlo trials per spread estimate")
		c.Flags().IntVar(&workers, "workers", defaults.Workers, "Parallel trial workers inside the oracle")
		c.Flags().Float64Var(&tolerance, "tolerance", defaults.Tolerance, "Relative spread tolerance for cross-checks")
	}
	runCmd.Flags().StringVar(&algorithm, "algorithm", defaults.Algorithm, "Selection algorithm (greedy, celf, both)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
