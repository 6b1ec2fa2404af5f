// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// unique.go — repetition avoidance across the whole session.
//
// Algorithm:
//   1) Draw a candidate from the archetype.
//   2) Accept it if it is similar to nothing in the history.
//   3) Otherwise count a failure; after more than retryLimit consecutive
//      failures drop the oldest half of the history and reset the counter.
//
// Halving removes ⌈n/2⌉ entries, so a non-empty history always shrinks and
// an empty history accepts any candidate: the loop terminates.

package generator

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/areabuilder/challenge"
)

// archetype draws one candidate challenge.
type archetype func() (challenge.Challenge, error)

// generateUnique returns a candidate from fn that is not similar to any
// remembered challenge and appends it to the history. Archetype errors are
// returned unchanged.
func (g *Generator) generateUnique(fn archetype) (challenge.Challenge, error) {
	attempts := 0
	for {
		c, err := fn()
		if err != nil {
			return challenge.Challenge{}, err
		}
		if g.history.IsUniqueAgainst(c) {
			g.history.Append(c)
			return c, nil
		}

		attempts++
		if attempts > g.cfg.retryLimit {
			before := g.history.Len()
			g.history.Halve()
			g.log.WithFields(logrus.Fields{
				"attempts": attempts,
				"before":   before,
				"after":    g.history.Len(),
			}).Debug("history halved")
			attempts = 0
		}
	}
}
