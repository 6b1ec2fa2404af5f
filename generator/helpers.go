// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// helpers.go — placement and styling shared by the archetypes.

package generator

import (
	"image/color"

	"github.com/katalvlaran/areabuilder/perimeter"
)

// Sampling bounds in unit cells.
const (
	minBuildArea             = 8
	maxBuildArea             = 36
	minAreaAndPerimeterArea  = 12
	minAreaAndPerimeterSide  = 3
	maxAreaAndPerimeterSide  = 8
	skippedAreaPerimeterSide = 7
	minFindArea              = 16
	maxFindArea              = 36
)

// unit is the side length of one cell in view units.
func (g *Generator) unit() float64 { return g.cfg.board.UnitLength }

// px converts a cell count to view units.
func (g *Generator) px(cells int) float64 { return float64(cells) * g.cfg.board.UnitLength }

// origin returns the top-left cell that centres a w×h footprint on the board.
func (g *Generator) origin(w, h int) (column, row int) {
	return (g.cfg.board.Width - w) / 2, (g.cfg.board.Height - h) / 2
}

// originPx is origin in view units.
func (g *Generator) originPx(w, h int) (x, y float64) {
	col, row := g.origin(w, h)
	return g.px(col), g.px(row)
}

func (g *Generator) style(fill color.RGBA) perimeter.Style {
	return perimeter.Style{UnitLength: g.unit(), Fill: fill}
}

func differentParity(a, b int) bool { return (a+b)%2 == 1 }
