// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// impl_large_rect.go — near-board-sized rectangles with a small piece missing.
//
// The rectangle spans w ∈ [W−4, W−2] by h ∈ [H−3, H−2] cells. The missing
// piece is either a one-cell-deep chip along one side (U-shape) or a hole of
// at most 2×2 cells (O-shape). Both push the student toward computing the
// full rectangle and subtracting.

package generator

import (
	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/palette"
	"github.com/katalvlaran/areabuilder/perimeter"
	"github.com/katalvlaran/areabuilder/shapekit"
)

const (
	methodLargeRectWithChipMissing  = "largeRectWithChipMissing"
	methodLargeRectWithSmallHole    = "largeRectWithSmallHole"
	methodLargeRectWithPieceMissing = "largeRectWithPieceMissing"

	maxChipLength = 3
	maxHoleSide   = 2
)

func (g *Generator) largeRect(s *sampler) (w, h int) {
	b := g.cfg.board
	return s.intBetween(b.Width-4, b.Width-2), s.intBetween(b.Height-3, b.Height-2)
}

func (g *Generator) largeRectWithChipMissing() (challenge.Challenge, error) {
	s := g.newSampler(methodLargeRectWithChipMissing)
	w, h := g.largeRect(s)

	n := notch{side: pick(s, perimeter.Sides)}
	if n.side.Vertical() {
		n.cutW = 1
		n.cutH = s.intBetween(1, maxChipLength)
		n.offs = s.intBetween(1, h-n.cutH-1)
	} else {
		n.cutW = s.intBetween(1, maxChipLength)
		n.cutH = 1
		n.offs = s.intBetween(1, w-n.cutW-1)
	}
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	shape, err := g.uShape(w, h, n)
	if err != nil {
		return challenge.Challenge{}, err
	}

	return g.finishFindArea(methodLargeRectWithChipMissing, shape, shapekit.BasicRectangles(g.unit(), palette.KitColor))
}

func (g *Generator) largeRectWithSmallHole() (challenge.Challenge, error) {
	s := g.newSampler(methodLargeRectWithSmallHole)
	w, h := g.largeRect(s)

	o := hole{w: s.intBetween(1, maxHoleSide), h: s.intBetween(1, maxHoleSide)}
	o.x = s.intBetween(1, w-o.w-1)
	o.y = s.intBetween(1, h-o.h-1)
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	shape, err := g.oShape(w, h, o)
	if err != nil {
		return challenge.Challenge{}, err
	}

	return g.finishFindArea(methodLargeRectWithSmallHole, shape, shapekit.BasicRectangles(g.unit(), palette.KitColor))
}

func (g *Generator) largeRectWithPieceMissing() (challenge.Challenge, error) {
	if g.src.Intn(2) == 0 {
		return g.largeRectWithChipMissing()
	}
	return g.largeRectWithSmallHole()
}
