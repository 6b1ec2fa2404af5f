// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// options.go — functional options for New.
//
// Option constructors VALIDATE and PANIC on meaningless inputs; generation
// itself never panics.

package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Option customizes a Generator.
type Option func(*config)

// WithBoard sets the board geometry. Panics if the board is smaller than
// MinBoardWidth×MinBoardHeight or the unit length is not positive.
func WithBoard(b Board) Option {
	if b.Width < MinBoardWidth || b.Height < MinBoardHeight {
		panic("generator: WithBoard(board smaller than minimum)")
	}
	if !(b.UnitLength > 0) {
		panic("generator: WithBoard(unitLength<=0)")
	}
	return func(c *config) {
		c.board = b
	}
}

// WithSeed seeds a private math/rand source for reproducible sets.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects the randomness source. Panics on nil.
func WithRand(src Source) Option {
	if src == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithRetryLimit sets how many consecutive similar draws generateUnique
// tolerates before halving the history. Panics if n < 1.
func WithRetryLimit(n int) Option {
	if n < 1 {
		panic("generator: WithRetryLimit(n<1)")
	}
	return func(c *config) {
		c.retryLimit = n
	}
}

// WithMaxSamplingAttempts caps every rejection-sampling loop. Panics if n < 1.
func WithMaxSamplingAttempts(n int) Option {
	if n < 1 {
		panic("generator: WithMaxSamplingAttempts(n<1)")
	}
	return func(c *config) {
		c.maxSampling = n
	}
}

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) {
		c.log = l
	}
}
