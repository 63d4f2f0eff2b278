// SPDX-License-Identifier: MIT
// Package: walknet/core
//
// choice.go - weighted sampling and reinforcement of a node's distribution.

package core

import "fmt"

// ChoiceRanges returns the cumulative (lower, upper] interval of every edge
// in declaration order. Edge i owns (Σw[0..i-1], Σw[0..i]].
// Complexity: O(Degree()).
func (n *Node) ChoiceRanges() []ChoiceRange {
	out := make([]ChoiceRange, len(n.order))
	cutoff := 0.0
	for i, nb := range n.order {
		w := n.weights[nb]
		out[i] = ChoiceRange{To: nb, Lower: cutoff, Upper: cutoff + w}
		cutoff += w
	}
	return out
}

// Pick maps a draw r to the first edge whose range holds it.
// Returns ErrNoChoice when no range does.
func (n *Node) Pick(r float64) (ID, error) {
	for _, c := range n.ChoiceRanges() {
		if c.Holds(r) {
			return c.To, nil
		}
	}
	return 0, fmt.Errorf("core: Pick(node=%d, r=%g): %w", n.id, r, ErrNoChoice)
}

// Sample draws one value from s and picks the matching neighbor.
// The draw is returned alongside the choice for tracing.
func (n *Node) Sample(s Sampler) (ID, float64, error) {
	if n.DeadEnd() {
		return 0, 0, fmt.Errorf("core: Sample(node=%d): dead end: %w", n.id, ErrNoChoice)
	}
	r := s.Float64()
	to, err := n.Pick(r)
	return to, r, err
}

// Reinforce shifts the distribution toward (delta>0) or away from
// (delta<0) the edge n→target. Every other edge moves by -delta/(k-1).
// Each weight is then clamped into [0,1] on its own; the sum is not
// renormalised. Nodes with fewer than two edges are left untouched.
// Complexity: O(Degree()).
func (n *Node) Reinforce(target ID, delta float64) error {
	if len(n.order) < 2 {
		return nil
	}
	if !n.HasEdge(target) {
		return fmt.Errorf("core: Reinforce(%d→%d): %w", n.id, target, ErrUnknownNeighbor)
	}

	share := delta / float64(len(n.order)-1)
	for _, nb := range n.order {
		w := n.weights[nb]
		if nb == target {
			w += delta
		} else {
			w -= share
		}
		n.weights[nb] = clamp(w)
	}
	return nil
}

// clamp bounds w into [minWeight, maxWeight].
func clamp(w float64) float64 {
	switch {
	case w < minWeight:
		return minWeight
	case w > maxWeight:
		return maxWeight
	default:
		return w
	}
}
