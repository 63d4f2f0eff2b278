// Package builder provides deterministic topology constructors for
// network.Network. Each constructor adds a block of nodes with integer IDs
// and equal initial edge weights; BuildNetwork composes constructors and
// wires the result so it is ready for training.
//
// Topologies:
//
//	Workshop()         the six-node teaching graph: 0→{1,3} 1→{2} 2→{3,4} 3→{2,5} 4→{0} 5→{}
//	Ladder(n)          i→{i+1,i+2}; the last two nodes are dead ends
//	Path(n)            0→1→…→n-1; n-1 is a dead end
//	Cycle(n)           0→1→…→n-1→0
//	Star(n)            hub 0→{1..n-1}, every leaf→0
//	Complete(n)        i→every j≠i
//	RandomSparse(n,p)  i→j (j≠i) independently with probability p; needs WithSeed/WithRand
//
// IDs start at 0 unless WithOffset shifts them, which lets several
// constructors be combined in one network without collisions.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical networks.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on meaningless input.
//   - Neighbor lists are emitted in ascending order, which fixes the
//     sampling order of every node.
//
// Errors:
//
//	ErrTooFewVertices     - n below the constructor's minimum.
//	ErrInvalidProbability - p outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without an RNG.
//	ErrConstructFailed    - nil constructor or a network.AddNode failure.
package builder
