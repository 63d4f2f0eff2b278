package network

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/walknet/core"
)

// RunTrial performs one bounded walk from the start node and returns the
// path taken with its terminal state. The walk stops, in this order, when
// the budget is spent, the node is a dead end, or the node is the goal;
// a draw that matches no edge also ends it. None of those are errors.
//
// Errors: ErrStartNotFound, ErrGoalNotFound, or core.ErrUnwiredNeighbor
// when a sampled neighbor was never resolved by WireAll.
func (n *Network) RunTrial() (Trial, error) {
	if err := n.validate(); err != nil {
		return Trial{}, err
	}

	path := make(core.Path, 0, n.opts.PathLength)
	path, stop, err := n.walk(n.index[n.opts.Start], n.opts.PathLength, path)
	if err != nil {
		return Trial{Path: path, Stop: stop}, err
	}

	n.log.Debug("walk finished", slog.String("path", path.String()), slog.String("stop", stop.String()))
	return Trial{Path: path, Stop: stop}, nil
}

// walk visits the node at slot with budget steps left, appending each
// transition to path and recursing into the chosen neighbor.
func (n *Network) walk(slot, budget int, path core.Path) (core.Path, StopReason, error) {
	node := n.nodes[slot]

	switch {
	case budget < 1:
		return path, StoppedAtLimit, nil
	case node.DeadEnd():
		return path, StoppedAtDeadEnd, nil
	case node.ID() == n.opts.Goal:
		return path, StoppedAtGoal, nil
	}

	next, r, err := node.Sample(n.opts.Sampler)
	if errors.Is(err, core.ErrNoChoice) {
		n.log.Debug("no choice", slog.Int("node", node.ID()), slog.Float64("draw", r))
		return path, StoppedNoChoice, nil
	}
	if err != nil {
		return path, StoppedNoChoice, err
	}
	n.log.Debug("sampled",
		slog.Int("node", node.ID()),
		slog.Float64("draw", r),
		slog.Any("ranges", node.ChoiceRanges()),
		slog.Int("next", next))

	nextSlot, err := node.Neighbor(next)
	if err != nil {
		return path, StoppedNoChoice, fmt.Errorf("network: walk: %w", err)
	}

	path = append(path, core.Edge{From: node.ID(), To: next})
	return n.walk(nextSlot, budget-1, path)
}
