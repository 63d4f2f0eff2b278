// SPDX-License-Identifier: MIT
// Package builder_test verifies topology shapes, ID offsets, determinism
// and sentinel errors of every constructor.

package builder_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/walknet/builder"
	"github.com/katalvlaran/walknet/core"
	"github.com/katalvlaran/walknet/network"
)

// adjacency flattens a network into id → neighbor list.
func adjacency(t *testing.T, net *network.Network) map[core.ID][]core.ID {
	t.Helper()
	out := make(map[core.ID][]core.ID, net.Len())
	for _, id := range net.IDs() {
		node, err := net.Node(id)
		require.NoError(t, err)
		out[id] = node.NeighborIDs()
	}
	return out
}

func TestWorkshop(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Workshop())
	require.NoError(t, err)
	assert.Equal(t, map[core.ID][]core.ID{
		0: {1, 3},
		1: {2},
		2: {3, 4},
		3: {2, 5},
		4: {0},
		5: {},
	}, adjacency(t, net))
	assert.Len(t, net.Edges(), 8)
}

func TestLadder(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Ladder(6))
	require.NoError(t, err)
	assert.Equal(t, map[core.ID][]core.ID{
		0: {1, 2},
		1: {2, 3},
		2: {3, 4},
		3: {4, 5},
		4: {},
		5: {},
	}, adjacency(t, net))
}

func TestPathCycleStarComplete(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want map[core.ID][]core.ID
	}{
		{"path", builder.Path(3), map[core.ID][]core.ID{0: {1}, 1: {2}, 2: {}}},
		{"cycle", builder.Cycle(3), map[core.ID][]core.ID{0: {1}, 1: {2}, 2: {0}}},
		{"star", builder.Star(4), map[core.ID][]core.ID{0: {1, 2, 3}, 1: {0}, 2: {0}, 3: {0}}},
		{"complete", builder.Complete(3), map[core.ID][]core.ID{0: {1, 2}, 1: {0, 2}, 2: {0, 1}}},
		{"complete-1", builder.Complete(1), map[core.ID][]core.ID{0: {}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, err := builder.BuildNetwork(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.want, adjacency(t, net))
		})
	}
}

func TestTooFewVertices(t *testing.T) {
	for name, con := range map[string]builder.Constructor{
		"ladder":   builder.Ladder(2),
		"path":     builder.Path(1),
		"cycle":    builder.Cycle(2),
		"star":     builder.Star(1),
		"complete": builder.Complete(0),
		"random":   builder.RandomSparse(0, 0.5),
	} {
		_, err := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithSeed(1)}, con)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestRandomSparse_Validation(t *testing.T) {
	_, err := builder.BuildNetwork(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(4, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	// p ∈ {0,1} needs no RNG.
	net, err := builder.BuildNetwork(nil, nil, builder.RandomSparse(3, 1))
	require.NoError(t, err)
	assert.Equal(t, map[core.ID][]core.ID{0: {1, 2}, 1: {0, 2}, 2: {0, 1}}, adjacency(t, net))

	net, err = builder.BuildNetwork(nil, nil, builder.RandomSparse(3, 0))
	require.NoError(t, err)
	for _, nbs := range adjacency(t, net) {
		assert.Empty(t, nbs)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() map[core.ID][]core.ID {
		net, err := builder.BuildNetwork(nil,
			[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(99)))},
			builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return adjacency(t, net)
	}
	a, b := build(), build()
	assert.Equal(t, a, b)
	for id, nbs := range a {
		assert.NotContains(t, nbs, id, "no self-loops")
	}
}

func TestOffsetComposition(t *testing.T) {
	net, err := builder.BuildNetwork(nil, nil, builder.Path(2))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(net, []builder.BuilderOption{builder.WithOffset(10)}, builder.Cycle(3)))
	net.WireAll()

	assert.Equal(t, []core.ID{0, 1, 10, 11, 12}, net.IDs())
	node, err := net.Node(12)
	require.NoError(t, err)
	assert.Equal(t, []core.ID{10}, node.NeighborIDs())
	_, err = node.Neighbor(10)
	assert.NoError(t, err)
}

func TestCollisionIsConstructFailed(t *testing.T) {
	_, err := builder.BuildNetwork(nil, nil, builder.Path(2), builder.Path(2))
	require.Error(t, err)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
	assert.True(t, errors.Is(err, network.ErrDuplicateNode))
}

func TestNilConstructor(t *testing.T) {
	_, err := builder.BuildNetwork(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBadNetworkOption(t *testing.T) {
	_, err := builder.BuildNetwork([]network.Option{network.WithTrials(-1)}, nil, builder.Path(2))
	assert.ErrorIs(t, err, network.ErrOptionViolation)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithOffset(-1) })
}

func TestExternalConstructorSeesConfig(t *testing.T) {
	var gotOffset int
	var gotRand bool
	custom := func(net *network.Network, cfg builder.Config) error {
		gotOffset = cfg.Offset()
		gotRand = cfg.Rand() != nil
		return net.AddNode(cfg.Offset(), nil)
	}

	net, err := builder.BuildNetwork(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithOffset(7)},
		custom)
	require.NoError(t, err)
	assert.Equal(t, 7, gotOffset)
	assert.True(t, gotRand)
	assert.Equal(t, []core.ID{7}, net.IDs())

	_, err = builder.BuildNetwork(nil, nil, nil)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))
}
