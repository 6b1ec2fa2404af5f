// SPDX-License-Identifier: MIT
// Package: areabuilder/generator
//
// impl_find_area.go — find-the-area archetypes over rectilinear backgrounds.
//
// Each archetype samples integer cell dimensions, rejects draws whose unit
// area falls outside [16,36], builds the perimeter.Shape centred on the board
// and fills it with the next find-area palette colour.
//
//   • rectangularFindArea:    w×h, w and h of different parity.
//   • lShapedFindArea:        rectangle minus one corner block.
//   • uShapedFindArea:        rectangle with a notch in one side.
//   • oShapedFindArea:        rectangle with an interior hole.
//   • diagonalCornerFindArea: one 45° corner (even d) plus an opposite notch,
//                             offered with the rectangles-and-triangles kit.

package generator

import (
	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/palette"
	"github.com/katalvlaran/areabuilder/perimeter"
	"github.com/katalvlaran/areabuilder/shapekit"
)

const (
	methodRectangularFindArea    = "rectangularFindArea"
	methodLShapedFindArea        = "lShapedFindArea"
	methodUShapedFindArea        = "uShapedFindArea"
	methodOShapedFindArea        = "oShapedFindArea"
	methodDiagonalCornerFindArea = "diagonalCornerFindArea"
)

func (g *Generator) rectangularFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodRectangularFindArea)
	b := g.cfg.board

	var w, h int
	s.retry(func() bool {
		w = s.intBetween(2, b.Width-4)
		h = s.intBetween(2, b.Height-2)
		return differentParity(w, h) && within(w*h, minFindArea, maxFindArea)
	})
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	x, y := g.originPx(w, h)
	shape, err := perimeter.Rectangle(x, y, g.px(w), g.px(h), g.style(g.findColors.Next()))
	if err != nil {
		return challenge.Challenge{}, err
	}

	return g.finishFindArea(methodRectangularFindArea, shape, shapekit.BasicRectangles(g.unit(), palette.KitColor))
}

func (g *Generator) lShapedFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodLShapedFindArea)
	b := g.cfg.board

	var w, h, wm, hm int
	s.retry(func() bool {
		w = s.intBetween(3, b.Width-4)
		h = s.intBetween(3, b.Height-2)
		wm = s.intBetween(1, w-1)
		hm = s.intBetween(1, h-1)
		return within(w*h-wm*hm, minFindArea, maxFindArea)
	})
	corner := pick(s, perimeter.Corners)
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	x, y := g.originPx(w, h)
	shape, err := perimeter.LShape(x, y, g.px(w), g.px(h), corner, g.px(wm), g.px(hm), g.style(g.findColors.Next()))
	if err != nil {
		return challenge.Challenge{}, err
	}

	return g.finishFindArea(methodLShapedFindArea, shape, shapekit.BasicRectangles(g.unit(), palette.KitColor))
}

// notch is a cutW×cutH cut into side at offset cells from the top (vertical
// sides) or the left (horizontal sides).
type notch struct {
	side             perimeter.Side
	cutW, cutH, offs int
}

func (g *Generator) uShapedFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodUShapedFindArea)
	b := g.cfg.board

	var w, h int
	var n notch
	s.retry(func() bool {
		w = s.intBetween(4, b.Width-4)
		h = s.intBetween(4, b.Height-2)
		n.side = pick(s, perimeter.Sides)
		if n.side.Vertical() {
			n.cutW = s.intBetween(1, w-2)
			n.cutH = s.intBetween(1, h-2)
			n.offs = s.intBetween(1, h-n.cutH-1)
		} else {
			n.cutW = s.intBetween(1, w-2)
			n.cutH = s.intBetween(1, h-2)
			n.offs = s.intBetween(1, w-n.cutW-1)
		}
		return within(w*h-n.cutW*n.cutH, minFindArea, maxFindArea)
	})
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	shape, err := g.uShape(w, h, n)
	if err != nil {
		return challenge.Challenge{}, err
	}

	return g.finishFindArea(methodUShapedFindArea, shape, shapekit.BasicRectangles(g.unit(), palette.KitColor))
}

func (g *Generator) uShape(w, h int, n notch) (perimeter.Shape, error) {
	x, y := g.originPx(w, h)
	return perimeter.UShape(x, y, g.px(w), g.px(h), n.side,
		g.px(n.cutW), g.px(n.cutH), g.px(n.offs), g.style(g.findColors.Next()))
}

// hole is a holeW×holeH opening offset (x,y) cells from the top-left corner.
type hole struct {
	w, h, x, y int
}

func (g *Generator) oShapedFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodOShapedFindArea)
	b := g.cfg.board

	var w, h int
	var o hole
	s.retry(func() bool {
		w = s.intBetween(3, b.Width-4)
		h = s.intBetween(3, b.Height-2)
		o.w = s.intBetween(1, w-2)
		o.h = s.intBetween(1, h-2)
		return within(w*h-o.w*o.h, minFindArea, maxFindArea)
	})
	o.x = s.intBetween(1, w-o.w-1)
	o.y = s.intBetween(1, h-o.h-1)
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	shape, err := g.oShape(w, h, o)
	if err != nil {
		return challenge.Challenge{}, err
	}

	return g.finishFindArea(methodOShapedFindArea, shape, shapekit.BasicRectangles(g.unit(), palette.KitColor))
}

func (g *Generator) oShape(w, h int, o hole) (perimeter.Shape, error) {
	x, y := g.originPx(w, h)
	return perimeter.OShape(x, y, g.px(w), g.px(h),
		g.px(o.w), g.px(o.h), g.px(o.x), g.px(o.y), g.style(g.findColors.Next()))
}

func (g *Generator) diagonalCornerFindArea() (challenge.Challenge, error) {
	s := g.newSampler(methodDiagonalCornerFindArea)
	b := g.cfg.board

	var w, h, d, cutW, cutH int
	s.retry(func() bool {
		w = s.intBetween(4, b.Width-4)
		h = s.intBetween(4, b.Height-2)
		d = s.evenBetween(2, min(w, h)-2)
		cutW = s.intBetween(1, w-d)
		cutH = s.intBetween(1, h-d)
		return within(w*h-d*d/2-cutW*cutH, minFindArea, maxFindArea)
	})
	corner := pick(s, perimeter.Corners)
	if s.err != nil {
		return challenge.Challenge{}, s.err
	}

	x, y := g.originPx(w, h)
	shape, err := perimeter.DiagonalCornerShape(x, y, g.px(w), g.px(h), corner,
		g.px(d), g.px(cutW), g.px(cutH), g.style(g.findColors.Next()))
	if err != nil {
		return challenge.Challenge{}, err
	}

	kit := shapekit.RectanglesAndTriangles(g.unit(), palette.KitColor)
	return g.finishFindArea(methodDiagonalCornerFindArea, shape, kit)
}
