// SPDX-License-Identifier: MIT
// Package: walknet/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: each ordered pair (i,j), i≠j, is
//     an edge independently with probability p.
//
// Contract:
//   - n >= 1 (else ErrTooFewVertices).
//   - 0 <= p <= 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Trials run for i asc, then j asc; a fixed seed fixes the edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walknet/network"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(net *network.Network, cfg Config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		adj := make([][]int, n)
		for i := 0; i < n; i++ {
			adj[i] = []int{}
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if include(cfg, p) {
					adj[i] = append(adj[i], j)
				}
			}
		}
		return addNodes(net, cfg, methodRandomSparse, adj)
	}
}

// include performs one Bernoulli(p) trial. p∈{0,1} needs no RNG.
func include(cfg Config, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}
	return cfg.rng.Float64() < p
}
