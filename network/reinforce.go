package network

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/walknet/core"
)

// VisitedNodes returns every node ID on path, deduplicated, in order of
// first appearance.
func (n *Network) VisitedNodes(path core.Path) []core.ID {
	return path.Visited()
}

// Reached reports whether the goal is among the nodes touched by path.
// An empty path never reaches the goal, even when the walk began on it.
func (n *Network) Reached(path core.Path) bool {
	if n.opts.Goal == NoGoal {
		return false
	}
	return path.Contains(n.opts.Goal)
}

// ApplyReinforcement rewards every edge of path by +Reinforcement when the
// goal was reached and penalises it by -Reinforcement otherwise. Edges are
// applied in path order, so a revisited node is adjusted once per visit.
// Returns whether the path counted as a success.
func (n *Network) ApplyReinforcement(path core.Path) (bool, error) {
	reached := n.Reached(path)
	delta := n.opts.Reinforcement
	if !reached {
		delta = -delta
	}
	n.log.Debug("reinforcing", slog.Bool("reached", reached), slog.Float64("delta", delta))

	for _, e := range path {
		slot, ok := n.index[e.From]
		if !ok {
			return reached, fmt.Errorf("network: ApplyReinforcement(%s): %w", e, ErrNodeNotFound)
		}
		node := n.nodes[slot]
		before := node.String()
		if err := node.Reinforce(e.To, delta); err != nil {
			return reached, fmt.Errorf("network: ApplyReinforcement(%s): %w", e, err)
		}
		n.log.Debug("probabilities updated",
			slog.Int("node", node.ID()),
			slog.String("before", before),
			slog.String("after", node.String()))
	}

	if n.opts.Metrics != nil {
		n.opts.Metrics.observeReinforcement(reached, len(path))
	}
	return reached, nil
}
