// Package core provides the WeightedNode: one vertex of a reinforcement
// network that owns a probability distribution over its outgoing edges.
//
// A Node knows three things:
//
//   - its ID, stable for the node's lifetime;
//   - its edge weights: neighbor ID → transition probability in [0,1],
//     kept in insertion order (the order neighbors were declared);
//   - its neighbor slots: neighbor ID → index of that node inside the owning
//     network, filled in by WireNeighbors once every node exists.
//
// Neighbor references are plain indices, never pointers to other nodes, so
// the owning network is the single owner of every Node and no reference
// cycles are created.
//
// Sampling
//
//	Sample draws r from a Sampler and walks the edges in insertion order,
//	accumulating a running cutoff. The first edge whose range (lower, upper]
//	contains r wins:
//
//	    edges {A: 0.5, B: 0.5}  →  A: (0, 0.5]   B: (0.5, 1.0]
//	    r = 0.5                 →  A
//
//	If no range contains r (zero edges, a draw of exactly 0, or weights that
//	sum to slightly less than r after rounding or clamping) Sample returns
//	ErrNoChoice. That is a defined stop, not a failure of the program.
//
// Reinforcement
//
//	Reinforce(target, δ) adds δ to target and subtracts δ/(k-1) from each of
//	the other k-1 edges, then clamps every weight into [0,1] independently.
//	The remaining weights are NOT renormalised, so after repeated boundary
//	hits the distribution may stop summing to 1. Nodes with fewer than two
//	edges ignore Reinforce entirely.
//
// Determinism
//
//	The Sampler is the only source of randomness. NewSampler(seed) returns a
//	reproducible stream; FixedSampler replays an exact list of draws.
//
// Concurrency
//
//	A Node is not safe for concurrent mutation. Trials are sequential by
//	definition: each trial learns from the weights left by the previous one.
//
// Errors:
//
//	ErrNoChoice          - no edge range contains the draw (dead end or rounding gap).
//	ErrUnwiredNeighbor   - neighbor slot requested before WireNeighbors resolved it.
//	ErrUnknownNeighbor   - Reinforce/Weight referenced an ID that is not an edge of this node.
package core
