package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/influence-sim/sim"
	"github.com/inference-sim/influence-sim/sim/diffusion"
	"github.com/inference-sim/influence-sim/sim/graph"
	"github.com/inference-sim/influence-sim/sim/trace"
)

// GraphSummary describes the network an experiment ran on.
type GraphSummary struct {
	Type     string `json:"type"`
	Vertices int    `json:"vertices"`
	Arcs     int    `json:"arcs"`
	Directed bool   `json:"directed"`

	graph.DegreeStats
}

// ExperimentReport is the JSON document written after a run.
type ExperimentReport struct {
	Graph      GraphSummary           `json:"graph"`
	Model      string                 `json:"model"`
	K          int                    `json:"k"`
	P          float64                `json:"p"`
	MC         int                    `json:"mc"`
	Seed       int64                  `json:"seed"`
	Results    []*sim.SelectionResult `json:"results"`
	Summaries  []*trace.TraceSummary  `json:"summaries"`
	CrossCheck *sim.CrossCheckReport  `json:"cross_check,omitempty"`
}

// buildGraph constructs the configured network. Random graphs draw from the
// graph subsystem of rng so --seed reproduces them.
func buildGraph(cfg GraphConfig, rng *sim.PartitionedRNG) (*graph.Network, error) {
	switch cfg.Type {
	case "ring":
		return graph.Ring(cfg.Nodes, cfg.Directed)
	case "path":
		return graph.Path(cfg.Nodes, cfg.Directed)
	case "star":
		return graph.Star(cfg.Nodes, cfg.Directed)
	case "complete":
		return graph.Complete(cfg.Nodes, cfg.Directed)
	case "random":
		return graph.ErdosRenyi(cfg.Nodes, cfg.EdgeProb, cfg.Directed, rng.ForSubsystem(sim.SubsystemGraph))
	case "file":
		return graph.LoadEdgeListFile(cfg.Path, cfg.Directed)
	default:
		return nil, fmt.Errorf("unknown graph type %q", cfg.Type)
	}
}

// RunExperiment builds the graph and oracle described by cfg and runs the
// configured selectors on them.
func RunExperiment(cfg *ExperimentConfig) (*ExperimentReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	key := sim.NewSimulationKey(cfg.Seed)
	nw, err := buildGraph(cfg.Graph, sim.NewPartitionedRNG(key))
	if err != nil {
		return nil, fmt.Errorf("building graph: %w", err)
	}
	oracle, err := diffusion.NewOracle(cfg.Model, key, cfg.Workers)
	if err != nil {
		return nil, err
	}

	report := &ExperimentReport{
		Graph: GraphSummary{
			Type:        cfg.Graph.Type,
			Vertices:    nw.VertexCount(),
			Arcs:        nw.ArcCount(),
			Directed:    nw.Directed(),
			DegreeStats: nw.Degrees(),
		},
		Model: cfg.Model,
		K:     cfg.K,
		P:     cfg.P,
		MC:    cfg.MC,
		Seed:  cfg.Seed,
	}
	logrus.Infof("Selecting %d seeds on %d vertices / %d arcs, model=%s p=%v mc=%d",
		cfg.K, nw.VertexCount(), nw.ArcCount(), cfg.Model, cfg.P, cfg.MC)

	for _, name := range cfg.algorithms() {
		selector, err := sim.NewSelector(name)
		if err != nil {
			return nil, err
		}
		res, err := selector.Select(nw, cfg.K, oracle, cfg.P, cfg.MC)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		summary := trace.Summarize(res.Trace)
		logrus.Infof("%s: seeds=%v spread=%.3f lookups=%d elapsed=%v",
			name, res.Seeds, summary.FinalSpread, summary.TotalLookups, summary.TotalElapsed)
		report.Results = append(report.Results, res)
		report.Summaries = append(report.Summaries, summary)
	}

	if len(report.Results) == 2 {
		cc := sim.CrossCheck(report.Results[0], report.Results[1], cfg.Tolerance)
		if !cc.WithinTolerance {
			logrus.Warnf("cross-check: final spreads %.3f and %.3f differ by more than %.1f%%",
				cc.FinalSpreadA, cc.FinalSpreadB, cfg.Tolerance*100)
		}
		report.CrossCheck = &cc
	}
	return report, nil
}

// SaveReport prints the report as JSON to w and, if path is non-empty, also
// writes it to path.
func SaveReport(report *ExperimentReport, w io.Writer, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "=== Selection Results ===\n%s\n", data); err != nil {
		return err
	}
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logrus.Infof("Results written to %s", path)
	return nil
}
