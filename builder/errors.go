// SPDX-License-Identifier: MIT
// Package: bmst/builder
//
// errors.go: sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach context with errors.Wrapf.

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a graph mutation failure.
var ErrConstructFailed = errors.New("builder: construction failed")
