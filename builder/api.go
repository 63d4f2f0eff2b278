// SPDX-License-Identifier: MIT
// Package: walknet/builder
//
// api.go - the BuildNetwork orchestrator and the Constructor type.
//
// Design contract:
//   - One orchestrator: BuildNetwork(nopts, bopts, cons...). Creates the
//     network, resolves cfg, runs cons in order, then wires neighbors.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical networks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/walknet/network"
)

// Constructor adds a block of nodes to net using the resolved config.
// Constructors validate parameters before adding anything and return
// sentinel errors; they never panic.
type Constructor func(net *network.Network, cfg Config) error

// BuildNetwork creates a network with nopts, applies every constructor in
// order with the config resolved from bopts, and wires all neighbors.
// Errors are wrapped as "BuildNetwork: %w"; no partial cleanup is attempted.
//
// Complexity: Σ cost of constructors + O(V+E) wiring.
func BuildNetwork(nopts []network.Option, bopts []BuilderOption, cons ...Constructor) (*network.Network, error) {
	net, err := network.New(nopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}
	if err := Apply(net, bopts, cons...); err != nil {
		return nil, err
	}
	net.WireAll()
	return net, nil
}

// Apply runs constructors against an existing network without wiring it.
// Use it to extend a network, then call net.WireAll.
func Apply(net *network.Network, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(net, cfg); err != nil {
			return fmt.Errorf("BuildNetwork: %w", err)
		}
	}
	return nil
}

// addNodes inserts adjacency (local indices) under method's name,
// translating every index through cfg.id.
func addNodes(net *network.Network, cfg Config, method string, adj [][]int) error {
	for i, local := range adj {
		nbs := make([]int, len(local))
		for j, v := range local {
			nbs[j] = cfg.id(v)
		}
		if err := net.AddNode(cfg.id(i), nbs); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w: %w", method, cfg.id(i), ErrConstructFailed, err)
		}
	}
	return nil
}
