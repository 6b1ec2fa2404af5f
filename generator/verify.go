// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// verify.go — self-checks applied to every generated challenge before it
// leaves an archetype.
//
// Build challenges: the example solution must be duplicate-free, lie on the
// board, form one 4-connected region, and match the BuildSpec's area,
// perimeter and colour ratio.
// Find-area challenges: the background must lie on the board.

package generator

import (
	"fmt"

	"github.com/katalvlaran/areabuilder/cellgrid"
	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/perimeter"
	"github.com/katalvlaran/areabuilder/shapekit"
)

const boundsTolerance = 1e-9

// finishBuild verifies the example solution and wraps it into a challenge.
func (g *Generator) finishBuild(method string, spec challenge.BuildSpec, kit []shapekit.Item, solution challenge.SolutionSpec) (challenge.Challenge, error) {
	if err := g.verifySolution(spec, solution); err != nil {
		return challenge.Challenge{}, fmt.Errorf("%s: %w", method, err)
	}
	return challenge.NewBuildChallenge(spec, kit, solution), nil
}

// finishFindArea checks the background fits and wraps it into a challenge.
func (g *Generator) finishFindArea(method string, shape perimeter.Shape, kit []shapekit.Item) (challenge.Challenge, error) {
	lo, hi := shape.Bounds()
	b := g.cfg.board
	w, h := float64(b.Width)*b.UnitLength, float64(b.Height)*b.UnitLength
	if lo.X < -boundsTolerance || lo.Y < -boundsTolerance || hi.X > w+boundsTolerance || hi.Y > h+boundsTolerance {
		return challenge.Challenge{}, fmt.Errorf("%s: bounds (%g,%g)-(%g,%g) on %gx%g board: %w",
			method, lo.X, lo.Y, hi.X, hi.Y, w, h, ErrOffBoard)
	}
	return challenge.NewFindAreaChallenge(shape, kit), nil
}

func (g *Generator) verifySolution(spec challenge.BuildSpec, solution challenge.SolutionSpec) error {
	if solution.HasDuplicates() {
		return fmt.Errorf("repeated cell: %w", ErrInvalidSolution)
	}

	b := g.cfg.board
	cells := make([]cellgrid.Cell, len(solution))
	for i, c := range solution {
		if c.Column < 0 || c.Row < 0 || c.Column >= b.Width || c.Row >= b.Height {
			return fmt.Errorf("cell (%d,%d) on %dx%d board: %w", c.Column, c.Row, b.Width, b.Height, ErrOffBoard)
		}
		cells[i] = cellgrid.Cell{Column: c.Column, Row: c.Row}
	}

	grid, err := cellgrid.FromCells(cells, cellgrid.Conn4)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSolution, err)
	}
	if n := len(grid.ConnectedComponents()); n != 1 {
		return fmt.Errorf("%d disconnected regions: %w", n, ErrInvalidSolution)
	}
	if area := grid.Area(); area != spec.Area {
		return fmt.Errorf("area %d, want %d: %w", area, spec.Area, ErrInvalidSolution)
	}
	if spec.RequiresPerimeter() {
		if p := grid.Perimeter(); p != spec.Perimeter {
			return fmt.Errorf("perimeter %d, want %d: %w", p, spec.Perimeter, ErrInvalidSolution)
		}
	}

	if p := spec.Proportions; p != nil {
		frac := p.Color1Proportion
		if !frac.Reduced() || frac.Denominator <= 0 || (spec.Area*frac.Numerator)%frac.Denominator != 0 {
			return fmt.Errorf("proportion %s of area %d: %w", frac, spec.Area, ErrInvalidSolution)
		}
		want := spec.Area * frac.Numerator / frac.Denominator
		if got := solution.ColorCount(p.Color1); got != want {
			return fmt.Errorf("%d cells of colour 1, want %d: %w", got, want, ErrInvalidSolution)
		}
		if got := solution.ColorCount(p.Color2); got != spec.Area-want {
			return fmt.Errorf("%d cells of colour 2, want %d: %w", got, spec.Area-want, ErrInvalidSolution)
		}
	}

	return nil
}
