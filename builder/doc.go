// SPDX-License-Identifier: MIT
// Package: bmst/builder
//
// Package builder assembles deterministic biobjective graph fixtures for
// tests, benchmarks and examples.
//
// BuildGraph creates a core.Graph and applies Constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.IntVectorFn(1, 20))},
//	    builder.RandomConnected(12, 0.3))
//
// Components:
//   - Topologies: Complete, Cycle, Path, Wheel, Grid, RandomConnected.
//   - Vertex-ID schemes (IDFn): DefaultIDFn, ExcelColumnIDFn, SymbolNumberIDFn.
//   - Weight distributions (VectorFn): DefaultVectorFn, ConstantVectorFn,
//     UniformVectorFn, IntVectorFn, ConflictingVectorFn. A VectorFn receives
//     the objective dimension of the target graph.
//
// Determinism: the same options, seed and constructor order always produce
// identical graphs, edge IDs included. Option constructors panic on
// meaningless input; constructors return sentinel errors and never panic.
package builder
