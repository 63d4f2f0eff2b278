// SPDX-License-Identifier: MIT
// Package: walknet/core
//
// types.go - identifiers, edges, paths and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for node operations.
var (
	// ErrNoChoice indicates that no outgoing edge range contains the random draw.
	ErrNoChoice = errors.New("core: no choice available")

	// ErrUnwiredNeighbor indicates a neighbor reference was requested before wiring resolved it.
	ErrUnwiredNeighbor = errors.New("core: neighbor reference not wired")

	// ErrUnknownNeighbor indicates an ID that is not an outgoing edge of the node.
	ErrUnknownNeighbor = errors.New("core: unknown neighbor")
)

// ID identifies a node within its network.
type ID = int

// Edge is one directed transition From→To.
type Edge struct {
	From ID
	To   ID
}

// String renders the edge as "(from,to)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.From, e.To)
}

// Path is the ordered sequence of edges taken during one trial.
// It is transient: produced by a walk and consumed by reinforcement.
type Path []Edge

// String renders the path as "[(0,1) (1,2)]".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, e := range p {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Visited returns every node ID touched by the path (both endpoints of
// every edge), deduplicated, in order of first appearance.
// Complexity: O(len(p)) time and space.
func (p Path) Visited() []ID {
	seen := make(map[ID]struct{}, len(p)+1)
	out := make([]ID, 0, len(p)+1)
	for _, e := range p {
		for _, id := range [2]ID{e.From, e.To} {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// Contains reports whether id appears as either endpoint of any edge.
func (p Path) Contains(id ID) bool {
	for _, e := range p {
		if e.From == id || e.To == id {
			return true
		}
	}
	return false
}

// EdgeWeight pairs a neighbor with its current transition probability.
type EdgeWeight struct {
	To     ID
	Weight float64
}

// ChoiceRange is the half-open interval (Lower, Upper] owned by one edge
// during sampling.
type ChoiceRange struct {
	To    ID
	Lower float64
	Upper float64
}

// Holds reports whether r falls inside (Lower, Upper].
func (c ChoiceRange) Holds(r float64) bool {
	return c.Lower < r && r <= c.Upper
}
