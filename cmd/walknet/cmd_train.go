package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/walknet/config"
	"github.com/katalvlaran/walknet/network"
)

type trainFlags struct {
	config        string
	trials        int
	pathLength    int
	reinforcement float64
	start         int
	goal          int
	seed          int64
	topology      string
	n             int
	p             float64
	verbose       bool
	trace         bool
	metricsOut    string
}

func newTrainCmd() *cobra.Command {
	var fl trainFlags
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Run a training session and print the learned weights",
		Long: `Train loads a configuration (or the built-in defaults), applies any
flag overrides, runs every trial and prints the final weight of each edge
together with per-node distribution statistics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrain(cmd, &fl)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.config, "config", "", "Path to a YAML configuration file")
	f.IntVar(&fl.trials, "trials", network.DefaultTrials, "Number of trials")
	f.IntVar(&fl.pathLength, "path-length", network.DefaultPathLength, "Maximum edges per walk")
	f.Float64Var(&fl.reinforcement, "reinforcement", network.DefaultReinforcement, "Weight change per edge per trial")
	f.IntVar(&fl.start, "start", network.DefaultStart, "Start node ID")
	f.IntVar(&fl.goal, "goal", 0, "Goal node ID (unset means no goal)")
	f.Int64Var(&fl.seed, "seed", 1, "Seed for the walk sampler and random topologies")
	f.StringVar(&fl.topology, "topology", "", "Built-in topology kind (see 'walknet topologies')")
	f.IntVar(&fl.n, "n", 0, "Node count for --topology")
	f.Float64Var(&fl.p, "p", 0, "Edge probability for --topology=random_sparse")
	f.BoolVarP(&fl.verbose, "verbose", "v", false, "Log every draw and weight update")
	f.BoolVar(&fl.trace, "trace", false, "Log one line per trial")
	f.StringVar(&fl.metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")
	return cmd
}

// resolveConfig loads the base configuration and applies the flags the
// user set explicitly.
func resolveConfig(cmd *cobra.Command, fl *trainFlags) (*config.Config, error) {
	cfg := config.Default()
	if fl.config != "" {
		var err error
		if cfg, err = config.Load(fl.config); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	if f.Changed("trials") {
		cfg.Trials = fl.trials
	}
	if f.Changed("path-length") {
		cfg.PathLength = fl.pathLength
	}
	if f.Changed("reinforcement") {
		cfg.Reinforcement = fl.reinforcement
	}
	if f.Changed("start") {
		cfg.Start = fl.start
	}
	if f.Changed("goal") {
		goal := fl.goal
		cfg.Goal = &goal
	}
	if f.Changed("seed") {
		cfg.Seed = fl.seed
	}
	if f.Changed("topology") {
		cfg.Topology = &config.Topology{Kind: fl.topology, N: fl.n, P: fl.p}
		cfg.Nodes = nil
	} else if cfg.Topology != nil && (f.Changed("n") || f.Changed("p")) {
		if f.Changed("n") {
			cfg.Topology.N = fl.n
		}
		if f.Changed("p") {
			cfg.Topology.P = fl.p
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runTrain(cmd *cobra.Command, fl *trainFlags) error {
	cfg, err := resolveConfig(cmd, fl)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if fl.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	logger.Debug("resolved configuration", slog.Any("config", cfg))

	reg := prometheus.NewRegistry()
	opts := []network.Option{
		network.WithLogger(logger),
		network.WithMetrics(network.NewMetrics(reg)),
	}
	if fl.trace {
		opts = append(opts, network.WithObserver(network.LogObserver(logger)))
	}

	net, err := cfg.Build(opts...)
	if err != nil {
		return err
	}
	rep, err := net.Train(cmd.Context())
	if err != nil {
		return err
	}

	if err := printReport(cmd.OutOrStdout(), rep); err != nil {
		return err
	}
	if fl.metricsOut != "" {
		if err := prometheus.WriteToTextfile(fl.metricsOut, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		logger.Info("metrics written", slog.String("path", fl.metricsOut))
	}
	return nil
}

func printReport(w io.Writer, rep *network.Report) error {
	fmt.Fprintf(w, "run %s: %d trials, %d reached the goal (%.1f%%)\n",
		rep.RunID, rep.Trials, rep.Successes, 100*rep.SuccessRate())

	stops := make([]string, 0, len(rep.Stops))
	for reason, n := range rep.Stops {
		stops = append(stops, fmt.Sprintf("%s=%d", reason, n))
	}
	sort.Strings(stops)
	fmt.Fprintf(w, "stops: %s\n\n", strings.Join(stops, " "))

	stats := make(map[int]network.NodeStats, len(rep.Stats))
	for _, st := range rep.Stats {
		stats[st.ID] = st
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NODE\tWEIGHTS\tSUM\tENTROPY")
	for _, v := range rep.Final.Nodes {
		parts := make([]string, len(v.Weights))
		for i, ew := range v.Weights {
			parts[i] = fmt.Sprintf("%d:%.3f", ew.To, ew.Weight)
		}
		st := stats[v.ID]
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\n", v.ID, strings.Join(parts, " "), st.Sum, st.Entropy)
	}
	return tw.Flush()
}
