package network

import (
	"log/slog"

	"github.com/katalvlaran/walknet/core"
)

// NodeView is a read-only copy of one node's distribution.
type NodeView struct {
	ID      core.ID
	Weights []core.EdgeWeight
}

// Snapshot is everything a renderer needs to draw the network at one
// instant: nodes with their weights, the declared edges, the goal and the
// most recent path.
type Snapshot struct {
	Goal  core.ID
	Nodes []NodeView
	Edges []core.Edge
	Path  core.Path
}

// Snapshot copies the current state together with path.
// Complexity: O(V + E).
func (n *Network) Snapshot(path core.Path) Snapshot {
	views := make([]NodeView, len(n.nodes))
	for i, node := range n.nodes {
		views[i] = NodeView{ID: node.ID(), Weights: node.Weights()}
	}
	return Snapshot{
		Goal:  n.opts.Goal,
		Nodes: views,
		Edges: n.Edges(),
		Path:  append(core.Path(nil), path...),
	}
}

// TrialEvent is delivered to an Observer after a walk and before its
// reinforcement is applied.
type TrialEvent struct {
	// Index is the zero-based trial number.
	Index int
	Trial Trial
	// Reached reports whether the walk touched the goal.
	Reached bool
	// State is the network as the walk saw it.
	State Snapshot
}

// Observer watches training. Returning an error aborts Train.
type Observer interface {
	ObserveTrial(ev TrialEvent) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev TrialEvent) error

// ObserveTrial calls f.
func (f ObserverFunc) ObserveTrial(ev TrialEvent) error { return f(ev) }

// LogObserver returns an Observer that writes one Info record per trial.
func LogObserver(l *slog.Logger) Observer {
	return ObserverFunc(func(ev TrialEvent) error {
		l.Info("trial",
			slog.Int("index", ev.Index),
			slog.String("path", ev.Trial.Path.String()),
			slog.String("stop", ev.Trial.Stop.String()),
			slog.Bool("reached", ev.Reached))
		return nil
	})
}

// MultiObserver fans an event out to every non-nil observer in order,
// stopping at the first error.
func MultiObserver(obs ...Observer) Observer {
	return ObserverFunc(func(ev TrialEvent) error {
		for _, o := range obs {
			if o == nil {
				continue
			}
			if err := o.ObserveTrial(ev); err != nil {
				return err
			}
		}
		return nil
	})
}
