// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// impl_proportional.go — two-colour build challenges with a colour ratio.
//
// Algorithm:
//   1) Draw h ∈ [3,6]; w ∈ [4,8] when h = 3, else w ∈ [2,10].
//   2) Collect the factors of w·h inside the difficulty's range
//      (easy: [2,4], harder: [5,9]); re-draw if there are none.
//   3) Pick the denominator d among them and re-draw the numerator in
//      [1,d−1] until gcd(n,d) = 1.
//   4) Colour the first n/d of the cells (row-major) with Color1.
//
// With perimeter the BuildSpec also asks for 2w+2h.

package generator

import (
	"fmt"

	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/shapekit"
)

// Difficulty selects the denominator range of a proportional challenge.
type Difficulty int

const (
	// Easy uses denominators in [2,4].
	Easy Difficulty = iota
	// Harder uses denominators in [5,9].
	Harder
)

func (d Difficulty) String() string {
	if d == Harder {
		return "harder"
	}
	return "easy"
}

// factorRange is the inclusive denominator range for d.
func (d Difficulty) factorRange() (lo, hi int) {
	if d == Harder {
		return 5, 9
	}
	return 2, 4
}

const (
	minProportionalHeight    = 3
	maxProportionalHeight    = 6
	minProportionalWidth     = 2
	maxProportionalWidth     = 10
	minShortProportionalWide = 4
	maxShortProportionalWide = 8
)

func proportionalMethod(d Difficulty, withPerimeter bool) string {
	if withPerimeter {
		return fmt.Sprintf("proportional(%s,perimeter)", d)
	}
	return fmt.Sprintf("proportional(%s)", d)
}

// proportional returns an archetype for the given difficulty.
func (g *Generator) proportional(d Difficulty, withPerimeter bool) archetype {
	return func() (challenge.Challenge, error) {
		return g.proportionalChallenge(d, withPerimeter)
	}
}

func (g *Generator) proportionalChallenge(d Difficulty, withPerimeter bool) (challenge.Challenge, error) {
	method := proportionalMethod(d, withPerimeter)
	s := g.newSampler(method)
	b := g.cfg.board
	lo, hi := d.factorRange()

	var w, h int
	var factors []int
	s.retry(func() bool {
		h = s.intBetween(minProportionalHeight, min(maxProportionalHeight, b.Height-2))
		if h == minProportionalHeight {
			w = s.intBetween(minShortProportionalWide, min(maxShortProportionalWide, b.Width-2))
		} else {
			w = s.intBetween(minProportionalWidth, min(maxProportionalWidth, b.Width-2))
		}
		factors = factors[:0]
		for f := lo; f <= hi; f++ {
			if (w*h)%f == 0 {
				factors = append(factors, f)
			}
		}
		return len(factors) > 0
	})
	den := pick(s, factors)

	var num int
	s.retry(func() bool {
		num = s.intBetween(1, den-1)
		return challenge.GCD(num, den) == 1
	})
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	frac, err := challenge.NewFraction(num, den)
	if err != nil {
		return challenge.Challenge{}, fmt.Errorf("%s: %w", method, err)
	}
	pair := g.pairs.Next()
	spec := challenge.BuildSpec{
		Area: w * h,
		Proportions: &challenge.Proportions{
			Color1:           pair.Color1,
			Color2:           pair.Color2,
			Color1Proportion: frac,
		},
	}
	if withPerimeter {
		spec.Perimeter = 2*w + 2*h
	}

	col, row := g.origin(w, h)
	solution := challenge.TwoToneRectangularSolution(col, row, w, h, pair.Color1, pair.Color2, frac)
	kit := shapekit.TwoToneSquares(g.unit(), pair.Color1, pair.Color2)

	return g.finishBuild(method, spec, kit, solution)
}
