// Package network implements the reinforcement graph: it owns every
// core.Node, wires neighbor slots, runs bounded random walks from a start
// node and reinforces the edges each walk used according to whether the
// goal was reached.
package network

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/walknet/core"
)

// Network owns a population of nodes and the training parameters.
// It is not safe for concurrent use; trials are sequential by definition.
type Network struct {
	opts Options
	log  *slog.Logger

	// nodes is the sole owner of every Node; index maps ID → slot in nodes.
	nodes []*core.Node
	index map[core.ID]int

	// edges is the declared edge list in insertion order, for renderers.
	edges []core.Edge
}

// New creates an empty Network configured by opts.
// Returns ErrOptionViolation if any option was invalid.
func New(opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Network{
		opts:  o,
		log:   o.Logger.With(slog.String("component", "network")),
		index: make(map[core.ID]int),
	}, nil
}

// Options returns a copy of the resolved configuration.
func (n *Network) Options() Options { return n.opts }

// AddNode creates a node with an equal distribution over neighbors and
// appends it to the network. Neighbor IDs may refer to nodes added later.
// Returns ErrDuplicateNode if id already exists.
// Complexity: O(len(neighbors)).
func (n *Network) AddNode(id core.ID, neighbors []core.ID) error {
	if _, ok := n.index[id]; ok {
		return fmt.Errorf("network: AddNode(%d): %w", id, ErrDuplicateNode)
	}

	node := core.NewNode(id, neighbors)
	n.index[id] = len(n.nodes)
	n.nodes = append(n.nodes, node)
	n.edges = append(n.edges, node.Edges()...)

	n.log.Debug("node added", slog.Int("id", id), slog.String("node", node.String()))
	return nil
}

// WireAll resolves neighbor slots on every node. It must run after the last
// AddNode and before the first trial; running it again after more nodes are
// added picks them up. Repeated calls are idempotent.
// Complexity: O(V + E).
func (n *Network) WireAll() {
	for _, node := range n.nodes {
		node.WireNeighbors(n.index)
	}
	n.log.Debug("neighbors wired", slog.Int("nodes", len(n.nodes)), slog.Int("edges", len(n.edges)))
}

// Len returns the number of nodes.
func (n *Network) Len() int { return len(n.nodes) }

// Has reports whether a node with id exists.
func (n *Network) Has(id core.ID) bool {
	_, ok := n.index[id]
	return ok
}

// Node returns the node with id, or ErrNodeNotFound.
func (n *Network) Node(id core.ID) (*core.Node, error) {
	slot, ok := n.index[id]
	if !ok {
		return nil, fmt.Errorf("network: Node(%d): %w", id, ErrNodeNotFound)
	}
	return n.nodes[slot], nil
}

// IDs returns node IDs in insertion order.
func (n *Network) IDs() []core.ID {
	out := make([]core.ID, len(n.nodes))
	for i, node := range n.nodes {
		out[i] = node.ID()
	}
	return out
}

// Edges returns a copy of every declared edge in insertion order.
func (n *Network) Edges() []core.Edge {
	out := make([]core.Edge, len(n.edges))
	copy(out, n.edges)
	return out
}

// Start returns the start node ID.
func (n *Network) Start() core.ID { return n.opts.Start }

// Goal returns the goal node ID (NoGoal if none).
func (n *Network) Goal() core.ID { return n.opts.Goal }

// SetGoal changes the goal. id must be NoGoal or an existing node.
func (n *Network) SetGoal(id core.ID) error {
	if id != NoGoal && !n.Has(id) {
		return fmt.Errorf("network: SetGoal(%d): %w", id, ErrGoalNotFound)
	}
	n.opts.Goal = id
	return nil
}

// validate checks that start and goal refer to existing nodes.
func (n *Network) validate() error {
	if !n.Has(n.opts.Start) {
		return fmt.Errorf("network: start=%d: %w", n.opts.Start, ErrStartNotFound)
	}
	if n.opts.Goal != NoGoal && !n.Has(n.opts.Goal) {
		return fmt.Errorf("network: goal=%d: %w", n.opts.Goal, ErrGoalNotFound)
	}
	return nil
}
