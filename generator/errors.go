// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach the archetype or method tag with %w.
//   • Option constructors (WithX) panic on meaningless values; generation
//     itself never panics.

package generator

import "errors"

// ErrUnsupportedLevel indicates a level outside Levels(). The caller violated
// the input contract; there is no recovery path.
var ErrUnsupportedLevel = errors.New("generator: unsupported level")

// ErrCountMismatch indicates the requested numChallenges differs from the
// number the level recipe produces.
var ErrCountMismatch = errors.New("generator: challenge count mismatch")

// ErrSamplingExhausted indicates a rejection-sampling loop reached its cap
// without an acceptable draw.
var ErrSamplingExhausted = errors.New("generator: rejection sampling exhausted")

// ErrEmptyRange indicates an integer range [lo,hi] with hi < lo, which only
// happens when the board is too small for an archetype.
var ErrEmptyRange = errors.New("generator: empty sampling range")

// ErrInvalidSolution indicates an example solution that does not match its
// BuildSpec.
var ErrInvalidSolution = errors.New("generator: invalid example solution")

// ErrOffBoard indicates a generated shape or solution outside the board.
var ErrOffBoard = errors.New("generator: shape does not fit the board")
