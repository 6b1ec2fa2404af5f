// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// api.go — public entry points: New, GenerateChallengeSet, Levels,
// ChallengeCount and History.
//
// Contract:
//   • New wires the palette choosers to the configured Source; it fails only
//     if a palette catalogue is empty.
//   • GenerateChallengeSet either returns exactly numChallenges challenges or
//     a wrapped sentinel; on error the history keeps whatever was accepted
//     before the failure.

package generator

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/palette"
)

const (
	methodNew                  = "New"
	methodGenerateChallengeSet = "GenerateChallengeSet"
	methodChallengeCount       = "ChallengeCount"
)

// Generator produces challenge sets. Keep one per game session.
type Generator struct {
	cfg config
	src Source
	log logrus.FieldLogger

	findColors  *palette.Chooser[color.RGBA]
	buildColors *palette.Chooser[color.RGBA]
	pairs       *palette.Chooser[palette.Pair]

	history challenge.History
}

// New returns a Generator configured by opts.
func New(opts ...Option) (*Generator, error) {
	cfg := newConfig(opts...)
	g := &Generator{cfg: cfg, src: cfg.src, log: cfg.log}

	var err error
	if g.findColors, err = palette.NewFindAreaChooser(g.src); err != nil {
		return nil, fmt.Errorf("%s: find-area palette: %w", methodNew, err)
	}
	if g.buildColors, err = palette.NewBuildChooser(g.src); err != nil {
		return nil, fmt.Errorf("%s: build palette: %w", methodNew, err)
	}
	if g.pairs, err = palette.NewPairChooser(g.src); err != nil {
		return nil, fmt.Errorf("%s: colour pairs: %w", methodNew, err)
	}

	return g, nil
}

// Board returns the configured board geometry.
func (g *Generator) Board() Board { return g.cfg.board }

// History returns a copy of the remembered challenges, oldest first.
func (g *Generator) History() []challenge.Challenge { return g.history.Snapshot() }

// Levels lists the supported level numbers in play order.
func Levels() []int {
	out := make([]int, 0, len(levelRecipes))
	for level := range levelRecipes {
		out = append(out, level)
	}
	return out
}

// ChallengeCount returns how many challenges GenerateChallengeSet produces
// for level.
func ChallengeCount(level int) (int, error) {
	if level < 0 || level >= len(levelRecipes) {
		return 0, fmt.Errorf("%s: level %d: %w", methodChallengeCount, level, ErrUnsupportedLevel)
	}
	return levelRecipes[level].count, nil
}

// GenerateChallengeSet produces the challenge set for level. numChallenges
// must equal ChallengeCount(level).
//
// Complexity: O(n·h) similarity checks per set, h = history length.
func (g *Generator) GenerateChallengeSet(level, numChallenges int) ([]challenge.Challenge, error) {
	if level < 0 || level >= len(levelRecipes) {
		return nil, fmt.Errorf("%s: level %d: %w", methodGenerateChallengeSet, level, ErrUnsupportedLevel)
	}
	recipe := levelRecipes[level]

	out, err := recipe.assemble(g)
	if err != nil {
		return nil, fmt.Errorf("%s: level %d: %w", methodGenerateChallengeSet, level, err)
	}
	if len(out) != numChallenges {
		return nil, fmt.Errorf("%s: level %d produced %d, requested %d: %w",
			methodGenerateChallengeSet, level, len(out), numChallenges, ErrCountMismatch)
	}

	g.log.WithFields(logrus.Fields{
		"level":      level,
		"challenges": len(out),
		"history":    g.history.Len(),
	}).Debug("challenge set generated")

	return out, nil
}
