// SPDX-License-Identifier: MIT
// Package core_test verifies WeightedNode contracts: initial distribution,
// wiring, boundary-exact sampling and clamped reinforcement.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walknet/core"
)

const eps = 1e-9

func sum(ws []core.EdgeWeight) float64 {
	s := 0.0
	for _, w := range ws {
		s += w.Weight
	}
	return s
}

// TestNewNode_EqualWeights checks 1/k per edge and Σ=1 for several degrees.
func TestNewNode_EqualWeights(t *testing.T) {
	for k := 1; k <= 7; k++ {
		ids := make([]core.ID, k)
		for i := range ids {
			ids[i] = i + 10
		}
		n := core.NewNode(0, ids)
		require.Equal(t, k, n.Degree())
		for _, w := range n.Weights() {
			assert.InDelta(t, 1.0/float64(k), w.Weight, eps)
		}
		assert.InDelta(t, 1.0, sum(n.Weights()), eps)
	}
}

func TestNewNode_EmptyIsDeadEnd(t *testing.T) {
	n := core.NewNode(5, nil)
	assert.True(t, n.DeadEnd())
	assert.Empty(t, n.Weights())
	assert.Empty(t, n.ChoiceRanges())
}

func TestNewNode_DuplicateNeighborsCollapse(t *testing.T) {
	n := core.NewNode(0, []core.ID{3, 1, 3, 2})
	assert.Equal(t, []core.ID{3, 1, 2}, n.NeighborIDs())
	for _, w := range n.Weights() {
		assert.InDelta(t, 1.0/3.0, w.Weight, eps)
	}
}

func TestNode_EdgesInDeclarationOrder(t *testing.T) {
	n := core.NewNode(4, []core.ID{9, 2, 5})
	assert.Equal(t, []core.Edge{{From: 4, To: 9}, {From: 4, To: 2}, {From: 4, To: 5}}, n.Edges())
}

// TestSample_DeadEndAlwaysNoChoice covers zero-edge nodes for many draws.
func TestSample_DeadEndAlwaysNoChoice(t *testing.T) {
	n := core.NewNode(1, nil)
	s := core.NewSampler(7)
	for i := 0; i < 100; i++ {
		_, _, err := n.Sample(s)
		require.ErrorIs(t, err, core.ErrNoChoice)
	}
}

// TestSample_BoundaryInclusiveUpper pins the (lower, upper] convention.
func TestSample_BoundaryInclusiveUpper(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2})

	cases := []struct {
		draw float64
		want core.ID
	}{
		{0.5, 1},
		{0.25, 1},
		{0.5000001, 2},
		{1.0, 2},
	}
	for _, tc := range cases {
		got, r, err := n.Sample(core.FixedSampler(tc.draw))
		require.NoError(t, err)
		assert.Equal(t, tc.draw, r)
		assert.Equal(t, tc.want, got, "draw %v", tc.draw)
	}

	// A draw of exactly 0 lies outside (0, 0.5].
	_, _, err := n.Sample(core.FixedSampler(0))
	assert.True(t, errors.Is(err, core.ErrNoChoice))
}

func TestSample_RoundingGapIsNoChoice(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2})
	require.NoError(t, n.Reinforce(1, 0.7)) // {1:1, 2:0}
	require.NoError(t, n.Reinforce(2, 0.3)) // {1:0.7, 2:0.3}
	require.NoError(t, n.Reinforce(1, -0.9)) // {1:0, 2:1} after clamping both ends
	got, _, err := n.Sample(core.FixedSampler(0.99))
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	// Ten edges of 0.1 accumulate to 0.9999999999999999, leaving a gap below 1.
	ten := make([]core.ID, 10)
	for i := range ten {
		ten[i] = i + 1
	}
	m := core.NewNode(0, ten)
	_, _, err = m.Sample(core.FixedSampler(1.0))
	assert.ErrorIs(t, err, core.ErrNoChoice)
}

func TestSample_SingleEdgeAnyPositiveDraw(t *testing.T) {
	n := core.NewNode(0, []core.ID{1})
	s := core.NewSampler(42)
	for i := 0; i < 200; i++ {
		got, r, err := n.Sample(s)
		if r == 0 {
			assert.ErrorIs(t, err, core.ErrNoChoice)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	}
}

func TestReinforce_FewerThanTwoEdgesIsNoOp(t *testing.T) {
	for _, delta := range []float64{-5, -0.1, 0, 0.1, 5} {
		single := core.NewNode(0, []core.ID{1})
		require.NoError(t, single.Reinforce(1, delta))
		w, err := single.Weight(1)
		require.NoError(t, err)
		assert.Equal(t, 1.0, w)

		empty := core.NewNode(0, nil)
		require.NoError(t, empty.Reinforce(7, delta))
		assert.Empty(t, empty.Weights())
	}
}

func TestReinforce_TwoEdges(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2})
	require.NoError(t, n.Reinforce(1, 0.1))
	w1, _ := n.Weight(1)
	w2, _ := n.Weight(2)
	assert.InDelta(t, 0.6, w1, eps)
	assert.InDelta(t, 0.4, w2, eps)
}

func TestReinforce_UniformShareAcrossOthers(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2, 3, 4, 5})
	require.NoError(t, n.Reinforce(3, -0.2))
	for _, ew := range n.Weights() {
		if ew.To == 3 {
			assert.InDelta(t, 0.0, ew.Weight, eps)
			continue
		}
		assert.InDelta(t, 0.25, ew.Weight, eps)
	}
	assert.InDelta(t, 1.0, sum(n.Weights()), eps)
}

// TestReinforce_ClampWithoutRenormalising pins the drift quirk: once a weight
// is clamped the others are not rescaled.
func TestReinforce_ClampWithoutRenormalising(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2, 3})
	for i := 0; i < 10; i++ {
		require.NoError(t, n.Reinforce(1, 0.5))
	}
	w1, _ := n.Weight(1)
	w2, _ := n.Weight(2)
	w3, _ := n.Weight(3)
	assert.Equal(t, 1.0, w1)
	assert.Equal(t, 0.0, w2)
	assert.Equal(t, 0.0, w3)

	// Penalising the saturated edge hands the delta back evenly.
	require.NoError(t, n.Reinforce(1, -0.4))
	w1, _ = n.Weight(1)
	w2, _ = n.Weight(2)
	assert.InDelta(t, 0.6, w1, eps)
	assert.InDelta(t, 0.2, w2, eps)

	// Both ends clamp at once, then a raise leaves the sum above 1.
	d := core.NewNode(0, []core.ID{1, 2, 3})
	require.NoError(t, d.Reinforce(1, 0.9)) // {1:1, 2:0, 3:0} raw {1.233, -0.117, -0.117}
	require.NoError(t, d.Reinforce(2, 0.2)) // {1:0.9, 2:0.2, 3:0}
	assert.InDelta(t, 1.1, sum(d.Weights()), eps)
}

func TestReinforce_UnknownTarget(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2})
	assert.ErrorIs(t, n.Reinforce(9, 0.1), core.ErrUnknownNeighbor)
}

func TestWireNeighbors_IdempotentAndResolving(t *testing.T) {
	n := core.NewNode(0, []core.ID{1, 2, 3})
	_, err := n.Neighbor(1)
	require.ErrorIs(t, err, core.ErrUnwiredNeighbor)
	assert.False(t, n.Wired())

	index := map[core.ID]int{0: 0, 1: 1, 2: 2}
	n.WireNeighbors(index)
	first := make(map[core.ID]int)
	for _, id := range []core.ID{1, 2} {
		slot, err := n.Neighbor(id)
		require.NoError(t, err)
		first[id] = slot
	}
	_, err = n.Neighbor(3)
	assert.ErrorIs(t, err, core.ErrUnwiredNeighbor, "3 has no node yet")

	n.WireNeighbors(index)
	for id, slot := range first {
		again, err := n.Neighbor(id)
		require.NoError(t, err)
		assert.Equal(t, slot, again)
	}

	_, err = n.Neighbor(42)
	assert.ErrorIs(t, err, core.ErrUnknownNeighbor)
}

func TestPath_VisitedFirstAppearance(t *testing.T) {
	p := core.Path{{From: 0, To: 2}, {From: 2, To: 3}, {From: 3, To: 2}, {From: 2, To: 4}}
	assert.Equal(t, []core.ID{0, 2, 3, 4}, p.Visited())
	assert.True(t, p.Contains(4))
	assert.False(t, p.Contains(1))
	assert.Empty(t, core.Path{}.Visited())
	assert.Equal(t, "[(0,2) (2,3) (3,2) (2,4)]", p.String())
}

func TestFixedSampler_RepeatsLast(t *testing.T) {
	s := core.FixedSampler(0.1, 0.2)
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.2, s.Float64())
	assert.Equal(t, 0.0, core.FixedSampler().Float64())
}

func TestNewSampler_Deterministic(t *testing.T) {
	a, b := core.NewSampler(0), core.NewSampler(1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
