// SPDX-License-Identifier: MIT
// Package: walknet/core
//
// node.go - WeightedNode lifecycle: edge initialisation, wiring, queries.
//
// Determinism:
//   - Edge order is the order neighbor IDs were first declared; every
//     enumeration (Weights, Edges, ChoiceRanges) follows it.
//
// Concurrency:
//   - None. The owning network drives nodes from a single goroutine.

package core

import "fmt"

// Weight bounds enforced by Reinforce.
const (
	minWeight = 0.0
	maxWeight = 1.0
)

// Node is a graph vertex holding a probability distribution over its
// outgoing edges.
type Node struct {
	id ID

	// order keeps neighbor IDs in declaration order; weights is keyed by the same IDs.
	order   []ID
	weights map[ID]float64

	// slots maps neighbor ID → index in the owning network; nil until wired.
	slots map[ID]int
}

// NewNode creates a node with an equal initial distribution over the
// distinct IDs in neighborIDs. An empty list yields a dead-end node.
// Complexity: O(len(neighborIDs)).
func NewNode(id ID, neighborIDs []ID) *Node {
	n := &Node{id: id}
	n.initializeEdges(neighborIDs)
	return n
}

// initializeEdges assigns 1/k to each of the k distinct neighbor IDs.
// Repeated IDs collapse into the first occurrence.
func (n *Node) initializeEdges(neighborIDs []ID) {
	n.order = make([]ID, 0, len(neighborIDs))
	n.weights = make(map[ID]float64, len(neighborIDs))
	for _, nb := range neighborIDs {
		if _, dup := n.weights[nb]; dup {
			continue
		}
		n.weights[nb] = 0
		n.order = append(n.order, nb)
	}
	if len(n.order) == 0 {
		return
	}

	initial := 1.0 / float64(len(n.order))
	for _, nb := range n.order {
		n.weights[nb] = initial
	}
}

// ID returns the node identifier.
func (n *Node) ID() ID { return n.id }

// Degree returns the number of outgoing edges.
func (n *Node) Degree() int { return len(n.order) }

// DeadEnd reports whether the node has no outgoing edges.
func (n *Node) DeadEnd() bool { return len(n.order) == 0 }

// HasEdge reports whether to is an outgoing edge of n.
func (n *Node) HasEdge(to ID) bool {
	_, ok := n.weights[to]
	return ok
}

// NeighborIDs returns a copy of the outgoing neighbor IDs in declaration order.
func (n *Node) NeighborIDs() []ID {
	out := make([]ID, len(n.order))
	copy(out, n.order)
	return out
}

// Weight returns the current probability of the edge n→to.
func (n *Node) Weight(to ID) (float64, error) {
	w, ok := n.weights[to]
	if !ok {
		return 0, fmt.Errorf("core: Weight(%d→%d): %w", n.id, to, ErrUnknownNeighbor)
	}
	return w, nil
}

// Weights returns a copy of the distribution in declaration order.
func (n *Node) Weights() []EdgeWeight {
	out := make([]EdgeWeight, len(n.order))
	for i, nb := range n.order {
		out[i] = EdgeWeight{To: nb, Weight: n.weights[nb]}
	}
	return out
}

// Edges returns the outgoing edges (n.ID, neighbor) in declaration order.
func (n *Node) Edges() []Edge {
	out := make([]Edge, len(n.order))
	for i, nb := range n.order {
		out[i] = Edge{From: n.id, To: nb}
	}
	return out
}

// WireNeighbors resolves every outgoing neighbor ID against index, which
// maps node IDs to their slot in the owning network. IDs missing from index
// stay unresolved. The slot table is rebuilt on every call, so repeated
// calls with the same index produce identical results.
// Complexity: O(Degree()).
func (n *Node) WireNeighbors(index map[ID]int) {
	slots := make(map[ID]int, len(n.order))
	for _, nb := range n.order {
		if slot, ok := index[nb]; ok {
			slots[nb] = slot
		}
	}
	n.slots = slots
}

// Wired reports whether WireNeighbors has run at least once.
func (n *Node) Wired() bool { return n.slots != nil }

// Neighbor returns the network slot of neighbor to.
// ErrUnknownNeighbor if to is not an edge; ErrUnwiredNeighbor if the node
// was never wired or to did not exist when it was.
func (n *Node) Neighbor(to ID) (int, error) {
	if !n.HasEdge(to) {
		return 0, fmt.Errorf("core: Neighbor(%d→%d): %w", n.id, to, ErrUnknownNeighbor)
	}
	slot, ok := n.slots[to]
	if !ok {
		return 0, fmt.Errorf("core: Neighbor(%d→%d): %w", n.id, to, ErrUnwiredNeighbor)
	}
	return slot, nil
}

// String renders the node like "Node 2: {3:0.5 4:0.5}".
func (n *Node) String() string {
	s := fmt.Sprintf("Node %d: {", n.id)
	for i, nb := range n.order {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%d:%g", nb, n.weights[nb])
	}
	return s + "}"
}
