package network

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/walknet/core"
)

// NodeStats summarises one node's distribution.
type NodeStats struct {
	ID     core.ID
	Degree int

	// Sum is Σ weights. Clamping without renormalisation lets it leave 1.
	Sum float64

	// Drift is Sum-1 for nodes with edges and 0 for dead ends.
	Drift float64

	// Entropy is the Shannon entropy (nats) of the weights; 0 once a
	// single edge has absorbed all probability.
	Entropy float64
}

// Stats returns NodeStats for every node in insertion order.
func (n *Network) Stats() []NodeStats {
	out := make([]NodeStats, len(n.nodes))
	for i, node := range n.nodes {
		out[i] = statsOf(node)
	}
	return out
}

func statsOf(node *core.Node) NodeStats {
	ws := node.Weights()
	st := NodeStats{ID: node.ID(), Degree: len(ws)}
	if len(ws) == 0 {
		return st
	}

	p := make([]float64, len(ws))
	for i, w := range ws {
		p[i] = w.Weight
	}
	st.Sum = floats.Sum(p)
	st.Drift = st.Sum - 1
	st.Entropy = stat.Entropy(p)
	return st
}
