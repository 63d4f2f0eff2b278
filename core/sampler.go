// SPDX-License-Identifier: MIT
// Package: walknet/core
//
// sampler.go - injectable uniform draws for Node.Sample.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks.
//   - Encapsulation: one factory; no time-based seeds anywhere in the library.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; neither are samplers built on it.

package core

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Sampler yields uniform draws in [0,1).
type Sampler interface {
	Float64() float64
}

// SamplerFunc adapts a plain function to Sampler.
type SamplerFunc func() float64

// Float64 calls f.
func (f SamplerFunc) Float64() float64 { return f() }

// NewSampler returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSampler(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// FixedSampler replays values in order and then repeats the last one.
// An empty list always yields 0.
func FixedSampler(values ...float64) Sampler {
	vals := append([]float64(nil), values...)
	i := 0
	return SamplerFunc(func() float64 {
		if len(vals) == 0 {
			return 0
		}
		v := vals[i]
		if i < len(vals)-1 {
			i++
		}
		return v
	})
}
