// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// impl_triangle.go — find-the-area archetypes over right isosceles triangles.
//
//   • slantedTriangleFindArea: even legs e ∈ [4, H−2]; area e²/2.
//   • levelTriangleFindArea:   even hypotenuse; Top/Bottom apexes need
//                              hyp ≤ W−2 and hyp/2 ≤ H−2, Left/Right the
//                              transpose; area hyp²/4.
//
// Both reject draws whose area falls outside [16,36], like every other
// find-area archetype. On the 12×8 board that leaves e = 6 and a Top/Bottom
// apex with hyp ∈ {8,10}.
//
// Even lengths keep every vertex on the grid and make the area tileable by
// unit squares and half-square triangles.

package generator

import (
	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/palette"
	"github.com/katalvlaran/areabuilder/perimeter"
	"github.com/katalvlaran/areabuilder/shapekit"
)

const (
	methodSlantedTriangleFindArea = "slantedTriangleFindArea"
	methodLevelTriangleFindArea   = "levelTriangleFindArea"

	minTriangleEdge = 4
)

func (g *Generator) slantedTriangleFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodSlantedTriangleFindArea)
	b := g.cfg.board

	var edge int
	s.retry(func() bool {
		edge = s.evenBetween(minTriangleEdge, min(b.Width, b.Height)-2)
		return within(edge*edge/2, minFindArea, maxFindArea)
	})
	corner := pick(s, perimeter.Corners)
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	x, y := g.originPx(edge, edge)
	shape, err := perimeter.SlantedHypotenuseTriangle(x, y, g.px(edge), corner, g.style(g.findColors.Next()))
	if err != nil {
		return challenge.Challenge{}, err
	}

	kit := shapekit.RectanglesAndTriangles(g.unit(), palette.KitColor)
	return g.finishFindArea(methodSlantedTriangleFindArea, shape, kit)
}

func (g *Generator) levelTriangleFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodLevelTriangleFindArea)
	b := g.cfg.board

	var apex perimeter.Side
	var hyp, w, h int
	s.retry(func() bool {
		apex = pick(s, perimeter.Sides)
		if apex.Vertical() {
			hyp = s.evenBetween(minTriangleEdge, min(b.Height-2, 2*(b.Width-2)))
			w, h = hyp/2, hyp
		} else {
			hyp = s.evenBetween(minTriangleEdge, min(b.Width-2, 2*(b.Height-2)))
			w, h = hyp, hyp/2
		}
		return within(hyp*hyp/4, minFindArea, maxFindArea)
	})
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	x, y := g.originPx(w, h)
	shape, err := perimeter.LevelHypotenuseTriangle(x, y, g.px(hyp), apex, g.style(g.findColors.Next()))
	if err != nil {
		return challenge.Challenge{}, err
	}

	kit := shapekit.RectanglesAndTriangles(g.unit(), palette.KitColor)
	return g.finishFindArea(methodLevelTriangleFindArea, shape, kit)
}
