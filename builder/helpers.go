// SPDX-License-Identifier: MIT
// Package: bmst/builder
//
// helpers.go: shared vertex/edge emission used by every constructor.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/bmst/core"
)

// addVertices inserts cfg.idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", method, id)
		}
	}

	return nil
}

// addEdge emits u–v with the next weight drawn from cfg.weightFn.
func addEdge(g *core.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng, g.Objectives())
	if _, err := g.AddEdge(u, v, w); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%s-%s, w=%v)", method, u, v, w)
	}

	return nil
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, name string, got, min int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, name, got, min)
}
