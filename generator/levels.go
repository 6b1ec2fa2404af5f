// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// levels.go — the per-level recipe table.
//
// Level  Content (6 challenges each)
//   0    3 build-area, 2 rectangular find-area, 1 L-shaped find-area
//   1    3 build-area-and-perimeter, 3 two-rectangle builds
//   2    shuffled {U, O, diagonal-corner}, shuffled {slanted, level triangle},
//        then 1 large rectangle with a piece missing
//   3    large-rectangle and L find-area puzzles without a grid and with a
//        capped supply of unit squares; two of them offer no pieces at all;
//        the whole set is shuffled
//   4    3 easy + 3 harder colour-ratio builds
//   5    as level 4, with a perimeter target

package generator

import (
	"math"

	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/palette"
	"github.com/katalvlaran/areabuilder/shapekit"
)

const challengesPerLevel = 6

type levelRecipe struct {
	count    int
	assemble func(g *Generator) ([]challenge.Challenge, error)
}

var levelRecipes = []levelRecipe{
	{count: challengesPerLevel, assemble: (*Generator).level0},
	{count: challengesPerLevel, assemble: (*Generator).level1},
	{count: challengesPerLevel, assemble: (*Generator).level2},
	{count: challengesPerLevel, assemble: (*Generator).level3},
	{count: challengesPerLevel, assemble: (*Generator).level4},
	{count: challengesPerLevel, assemble: (*Generator).level5},
}

// postProcess rewrites an accepted challenge.
type postProcess func(challenge.Challenge) challenge.Challenge

// batch accumulates unique challenges; the first error is sticky.
type batch struct {
	g   *Generator
	out []challenge.Challenge
	err error
}

func (g *Generator) newBatch() *batch { return &batch{g: g} }

// add draws n unique challenges from fn and applies post in order.
func (b *batch) add(n int, fn archetype, post ...postProcess) *batch {
	for i := 0; i < n && b.err == nil; i++ {
		c, err := b.g.generateUnique(fn)
		if err != nil {
			b.err = err
			return b
		}
		for _, p := range post {
			c = p(c)
		}
		b.out = append(b.out, c)
	}
	return b
}

func (b *batch) shuffle() *batch {
	if b.err == nil {
		b.g.src.Shuffle(len(b.out), func(i, j int) { b.out[i], b.out[j] = b.out[j], b.out[i] })
	}
	return b
}

func (b *batch) extend(other *batch) *batch {
	if b.err == nil {
		b.err = other.err
		b.out = append(b.out, other.out...)
	}
	return b
}

func (b *batch) result() ([]challenge.Challenge, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.out, nil
}

func (g *Generator) level0() ([]challenge.Challenge, error) {
	return g.newBatch().
		add(3, g.buildArea).
		add(2, g.rectangularFindArea).
		add(1, g.lShapedFindArea).
		result()
}

func (g *Generator) level1() ([]challenge.Challenge, error) {
	return g.newBatch().
		add(3, g.buildAreaAndPerimeter).
		add(3, g.twoRectangleBuildAreaAndPerimeter).
		result()
}

func (g *Generator) level2() ([]challenge.Challenge, error) {
	shapes := g.newBatch().
		add(1, g.uShapedFindArea).
		add(1, g.oShapedFindArea).
		add(1, g.diagonalCornerFindArea).
		shuffle()
	triangles := g.newBatch().
		add(1, g.slantedTriangleFindArea).
		add(1, g.levelTriangleFindArea).
		shuffle()

	return shapes.
		extend(triangles).
		add(1, g.largeRectWithPieceMissing).
		result()
}

func (g *Generator) level3() ([]challenge.Challenge, error) {
	return g.newBatch().
		add(1, g.largeRectWithChipMissing, disableGrid, g.squaresOnly).
		add(1, g.largeRectWithSmallHole, disableGrid, g.squaresOnly).
		add(1, g.largeRectWithPieceMissing, disableGrid, g.squaresOnly).
		add(1, g.lShapedFindArea, disableGrid, g.squaresOnly).
		add(1, g.largeRectWithChipMissing, disableGrid, g.squaresOnly, stripKit).
		add(1, g.oShapedFindArea, disableGrid, g.squaresOnly, stripKit).
		shuffle().
		result()
}

func (g *Generator) level4() ([]challenge.Challenge, error) {
	return g.newBatch().
		add(3, g.proportional(Easy, false)).
		add(3, g.proportional(Harder, false)).
		result()
}

func (g *Generator) level5() ([]challenge.Challenge, error) {
	return g.newBatch().
		add(3, g.proportional(Easy, true)).
		add(3, g.proportional(Harder, true)).
		result()
}

func disableGrid(c challenge.Challenge) challenge.Challenge {
	c.ToolSpec.GridControl = false
	return c
}

// squaresOnly replaces the kit with unit squares capped at the larger side
// of the challenge's footprint in cells.
func (g *Generator) squaresOnly(c challenge.Challenge) challenge.Challenge {
	w, h := g.footprintCells(c)
	c.UserShapes = shapekit.UnitSquares(g.unit(), palette.KitColor, max(w, h))
	return c
}

func stripKit(c challenge.Challenge) challenge.Challenge {
	c.UserShapes = nil
	return c
}

// footprintCells is the bounding box of the background shape, or of the
// example solution for build challenges, in cells.
func (g *Generator) footprintCells(c challenge.Challenge) (w, h int) {
	if c.BackgroundShape != nil {
		u := g.unit()
		return int(math.Ceil(c.BackgroundShape.Width()/u - boundsTolerance)),
			int(math.Ceil(c.BackgroundShape.Height()/u - boundsTolerance))
	}
	if len(c.ExampleSolution) == 0 {
		return 0, 0
	}
	first := c.ExampleSolution[0]
	minC, maxC, minR, maxR := first.Column, first.Column, first.Row, first.Row
	for _, cs := range c.ExampleSolution[1:] {
		minC, maxC = min(minC, cs.Column), max(maxC, cs.Column)
		minR, maxR = min(minR, cs.Row), max(maxR, cs.Row)
	}
	return maxC - minC + 1, maxR - minR + 1
}
