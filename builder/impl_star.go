// SPDX-License-Identifier: MIT
// Package: walknet/builder
//
// impl_star.go - Star(n) and Complete(n).
//
// Contract:
//   - Star:     n >= 2; hub 0 → leaves 1..n-1 in ascending order; each leaf → 0.
//   - Complete: n >= 1; i → every j≠i in ascending order; no self-loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walknet/network"
)

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor for a hub with n-1 spokes, each spoke leading
// back to the hub.
func Star(n int) Constructor {
	return func(net *network.Network, cfg Config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		adj := make([][]int, n)
		adj[0] = make([]int, 0, n-1)
		for i := 1; i < n; i++ {
			adj[0] = append(adj[0], i)
			adj[i] = []int{0}
		}
		return addNodes(net, cfg, methodStar, adj)
	}
}

// Complete returns a Constructor for the complete directed graph on n nodes.
// Complexity: O(n²) edges.
func Complete(n int) Constructor {
	return func(net *network.Network, cfg Config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		adj := make([][]int, n)
		for i := 0; i < n; i++ {
			adj[i] = make([]int, 0, n-1)
			for j := 0; j < n; j++ {
				if j != i {
					adj[i] = append(adj[i], j)
				}
			}
		}
		return addNodes(net, cfg, methodComplete, adj)
	}
}
