// SPDX-License-Identifier: MIT
// Package: walknet/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path:  n >= 2; edges i→i+1; the last node is a dead end.
//   - Cycle: n >= 3; edges i→(i+1) mod n; no dead ends.
//   - Every node has at most one edge, so reinforcement never changes them.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walknet/network"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor for the directed path 0→1→…→n-1.
func Path(n int) Constructor {
	return func(net *network.Network, cfg Config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		adj := make([][]int, n)
		for i := 0; i < n-1; i++ {
			adj[i] = []int{i + 1}
		}
		adj[n-1] = []int{}
		return addNodes(net, cfg, methodPath, adj)
	}
}

// Cycle returns a Constructor for the directed ring 0→1→…→n-1→0.
func Cycle(n int) Constructor {
	return func(net *network.Network, cfg Config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		adj := make([][]int, n)
		for i := 0; i < n; i++ {
			adj[i] = []int{(i + 1) % n}
		}
		return addNodes(net, cfg, methodCycle, adj)
	}
}
