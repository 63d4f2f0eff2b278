// SPDX-License-Identifier: MIT
// Package: walknet/builder
//
// impl_workshop.go - the six-node teaching graph and the ladder graph.
//
// Workshop edges, in sampling order:
//
//	0 → 1, 3
//	1 → 2
//	2 → 3, 4
//	3 → 2, 5
//	4 → 0
//	5 → (dead end)
//
// Ladder(n): every node i links to i+1 and i+2; once i+2 would fall
// outside the graph the node becomes a dead end, so the last two nodes
// have no outgoing edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walknet/network"
)

const (
	methodWorkshop = "Workshop"
	methodLadder   = "Ladder"
	minLadderNodes = 3
)

// workshopAdjacency is the fixed teaching topology.
var workshopAdjacency = [][]int{
	{1, 3},
	{2},
	{3, 4},
	{2, 5},
	{0},
	{},
}

// Workshop returns a Constructor for the fixed six-node teaching graph.
func Workshop() Constructor {
	return func(net *network.Network, cfg Config) error {
		return addNodes(net, cfg, methodWorkshop, workshopAdjacency)
	}
}

// Ladder returns a Constructor for the n-node skip ladder (n >= 3).
func Ladder(n int) Constructor {
	return func(net *network.Network, cfg Config) error {
		if n < minLadderNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minLadderNodes, ErrTooFewVertices)
		}

		adj := make([][]int, n)
		for i := 0; i < n; i++ {
			if i+2 > n-1 {
				adj[i] = []int{}
				continue
			}
			adj[i] = []int{i + 1, i + 2}
		}
		return addNodes(net, cfg, methodLadder, adj)
	}
}
