// SPDX-License-Identifier: MIT
// Package: bmst/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim C_{n-1} plus hub CenterVertexID.
//   • Emits the rim edges first (as Cycle), then spokes Center-i for i=0..n-2.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/core"
)

// CenterVertexID is the fixed ID of the hub vertex in Wheel.
const CenterVertexID = "Center"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return errors.Wrapf(err, "%s: rim C_%d", methodWheel, n-1)
		}
		if err := g.AddVertex(CenterVertexID); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", methodWheel, CenterVertexID)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
