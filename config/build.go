package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/walknet/builder"
	"github.com/katalvlaran/walknet/network"
)

// NetworkOptions translates the training parameters into network options.
func (c *Config) NetworkOptions() []network.Option {
	opts := []network.Option{
		network.WithTrials(c.Trials),
		network.WithPathLength(c.PathLength),
		network.WithReinforcement(c.Reinforcement),
		network.WithStart(c.Start),
		network.WithSeed(c.Seed),
	}
	if c.Goal != nil {
		opts = append(opts, network.WithGoal(*c.Goal))
	}
	return opts
}

// Constructor returns the builder constructor for the configured topology.
func (c *Config) Constructor() (builder.Constructor, error) {
	if c.Topology == nil {
		return c.explicit(), nil
	}

	t := c.Topology
	switch t.Kind {
	case KindWorkshop:
		return builder.Workshop(), nil
	case KindLadder:
		return builder.Ladder(t.N), nil
	case KindPath:
		return builder.Path(t.N), nil
	case KindCycle:
		return builder.Cycle(t.N), nil
	case KindStar:
		return builder.Star(t.N), nil
	case KindComplete:
		return builder.Complete(t.N), nil
	case KindRandomSparse:
		return builder.RandomSparse(t.N, t.P), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, t.Kind)
	}
}

// explicit adds the declared nodes in file order.
func (c *Config) explicit() builder.Constructor {
	nodes := c.Nodes
	return func(net *network.Network, _ builder.Config) error {
		for _, n := range nodes {
			if err := net.AddNode(n.ID, n.Neighbors); err != nil {
				return fmt.Errorf("config: nodes: %w", err)
			}
		}
		return nil
	}
}

// Build validates c and returns a wired network whose start and goal
// exist. extra options are
// applied after the configured ones (logger, observer, metrics).
func (c *Config) Build(extra ...network.Option) (*network.Network, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	con, err := c.Constructor()
	if err != nil {
		return nil, err
	}

	opts := append(c.NetworkOptions(), extra...)
	net, err := builder.BuildNetwork(opts, []builder.BuilderOption{builder.WithSeed(c.Seed)}, con)
	if err != nil {
		return nil, fmt.Errorf("config: build: %w", err)
	}
	if !net.Has(c.Start) {
		return nil, fmt.Errorf("config: build: start=%d: %w", c.Start, network.ErrStartNotFound)
	}
	if c.Goal != nil && !net.Has(*c.Goal) {
		return nil, fmt.Errorf("config: build: goal=%d: %w", *c.Goal, network.ErrGoalNotFound)
	}
	return net, nil
}

// LogValue implements slog.LogValuer.
func (c *Config) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("trials", c.Trials),
		slog.Int("path_length", c.PathLength),
		slog.Float64("reinforcement", c.Reinforcement),
		slog.Int("start", c.Start),
		slog.Int64("seed", c.Seed),
	}
	if c.Goal != nil {
		attrs = append(attrs, slog.Int("goal", *c.Goal))
	}
	if c.Topology != nil {
		attrs = append(attrs, slog.String("topology", c.Topology.Kind), slog.Int("n", c.Topology.N))
	} else {
		attrs = append(attrs, slog.Int("nodes", len(c.Nodes)))
	}
	return slog.GroupValue(attrs...)
}
