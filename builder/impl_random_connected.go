// SPDX-License-Identifier: MIT
// Package: bmst/builder
//
// impl_random_connected.go: implementation of RandomConnected(n, p) constructor.
//
// Model:
//   • A random recursive tree guarantees connectivity: vertex i (i ≥ 1) is
//     attached to a uniformly drawn earlier vertex.
//   • Every other unordered pair {i,j}, i<j, is then added independently
//     with probability p (an Erdős–Rényi overlay).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   • Time: O(n²) Bernoulli trials.
//
// Determinism:
//   • Tree edges are drawn and emitted first (i asc), then the overlay (i asc, j asc).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
)

// RandomConnected returns a Constructor that samples a connected graph over
// n vertices: a random spanning tree plus independent extra edges with
// probability p. The graph never has parallel edges.
func RandomConnected(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomConnectedVertices {
			return tooFew(methodRandomConnected, "n", n, minRandomConnectedVertices)
		}
		if p < 0 || p > 1 {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [0,1]", methodRandomConnected, p)
		}
		if cfg.rng == nil {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomConnected)
		}
		if err := addVertices(g, cfg, methodRandomConnected, n); err != nil {
			return err
		}

		linked := make(map[[2]int]bool, n)
		for i := 1; i < n; i++ {
			j := cfg.rng.Intn(i)
			linked[[2]int{j, i}] = true
			if err := addEdge(g, cfg, methodRandomConnected, cfg.idFn(j), cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if linked[[2]int{i, j}] || cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomConnected, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
