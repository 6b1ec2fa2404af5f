// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// impl_build.go — build-a-shape archetypes without colour ratios.
//
// Archetypes:
//   • buildArea:                         one rectangle, area ∈ [8,36].
//   • buildAreaAndPerimeter:             one rectangle, sides ∈ [3,8]\{7},
//                                        area ∈ [12,36], perimeter required.
//   • twoRectangleBuildAreaAndPerimeter: two stacked rectangles sharing a
//                                        horizontal edge segment of length
//                                        overlap; P = 2(w1+h1+w2+h2) − 2·overlap.
//
// Every example solution is a monochrome colouring from the build palette.

package generator

import (
	"image/color"

	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/palette"
	"github.com/katalvlaran/areabuilder/shapekit"
)

const (
	methodBuildArea             = "buildArea"
	methodBuildAreaAndPerimeter = "buildAreaAndPerimeter"
	methodTwoRectangle          = "twoRectangleBuildAreaAndPerimeter"
)

func (g *Generator) buildArea() (challenge.Challenge, error) {
	s := g.newSampler(methodBuildArea)
	b := g.cfg.board

	var w, h int
	s.retry(func() bool {
		w = s.intBetween(1, b.Width-2)
		h = s.intBetween(1, b.Height-2)
		return within(w*h, minBuildArea, maxBuildArea)
	})
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	col, row := g.origin(w, h)
	solution := challenge.RectangularSolution(col, row, w, h, g.buildColors.Next())
	kit := shapekit.BasicRectangles(g.unit(), palette.KitColor)

	return g.finishBuild(methodBuildArea, challenge.BuildSpec{Area: w * h}, kit, solution)
}

func (g *Generator) buildAreaAndPerimeter() (challenge.Challenge, error) {
	s := g.newSampler(methodBuildAreaAndPerimeter)
	b := g.cfg.board

	var w, h int
	s.retry(func() bool {
		w = s.intBetween(minAreaAndPerimeterSide, min(maxAreaAndPerimeterSide, b.Width-2))
		h = s.intBetween(minAreaAndPerimeterSide, min(maxAreaAndPerimeterSide, b.Height-2))
		return w != skippedAreaPerimeterSide && h != skippedAreaPerimeterSide &&
			within(w*h, minAreaAndPerimeterArea, maxBuildArea)
	})
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	col, row := g.origin(w, h)
	solution := challenge.RectangularSolution(col, row, w, h, g.buildColors.Next())
	spec := challenge.BuildSpec{Area: w * h, Perimeter: 2*w + 2*h}
	kit := shapekit.BasicRectangles(g.unit(), palette.KitColor)

	return g.finishBuild(methodBuildAreaAndPerimeter, spec, kit, solution)
}

// twoRectangles is an upper rectangle w1×h1 whose bottom-right overlap
// columns sit directly above the left overlap columns of a lower w2×h2
// rectangle.
type twoRectangles struct {
	w1, h1, w2, h2, overlap int
}

func (t twoRectangles) area() int { return t.w1*t.h1 + t.w2*t.h2 }

func (t twoRectangles) perimeter() int {
	return 2*t.w1 + 2*t.h1 + 2*t.w2 + 2*t.h2 - 2*t.overlap
}

// footprint is the bounding box of the union in cells.
func (t twoRectangles) footprint() (w, h int) {
	return t.w1 + t.w2 - t.overlap, t.h1 + t.h2
}

func (t twoRectangles) solution(column, row int, c color.RGBA) challenge.SolutionSpec {
	upper := challenge.RectangularSolution(column, row, t.w1, t.h1, c)
	lower := challenge.RectangularSolution(column+t.w1-t.overlap, row+t.h1, t.w2, t.h2, c)
	return append(upper, lower...)
}

func (g *Generator) sampleTwoRectangles(s *sampler) twoRectangles {
	b := g.cfg.board

	var t twoRectangles
	s.retry(func() bool {
		t.w1 = s.intBetween(2, 6)
		t.h1 = s.intBetween(1, 4)
		t.w2 = s.intBetween(2, 6)
		t.h2 = s.intBetween(1, b.Height-2-t.h1)
		return differentParity(t.w1, t.h1) && differentParity(t.w2, t.h2) &&
			t.w1+t.w2-1 <= b.Width-2
	})
	t.overlap = s.intBetween(1, min(t.w1, t.w2)-1)
	return t
}

func (g *Generator) twoRectangleBuildAreaAndPerimeter() (challenge.Challenge, error) {
	s := g.newSampler(methodTwoRectangle)
	t := g.sampleTwoRectangles(s)
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	w, h := t.footprint()
	col, row := g.origin(w, h)
	solution := t.solution(col, row, g.buildColors.Next())
	spec := challenge.BuildSpec{Area: t.area(), Perimeter: t.perimeter()}
	kit := shapekit.BasicRectangles(g.unit(), palette.KitColor)

	return g.finishBuild(methodTwoRectangle, spec, kit, solution)
}
