// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// impl_oshape.go — OShape: a rectangle with a rectangular hole.
//
// Contract:
//   • holeX, holeY > 0; holeX+holeW < w; holeY+holeH < h (hole strictly inside).
//   • Exterior loop clockwise, interior loop counter-clockwise (screen coords).

package perimeter

import "fmt"

const methodOShape = "OShape"

// OShape returns a w×h rectangle at (x,y) with a holeW×holeH hole whose
// top-left corner is offset (holeX, holeY) from (x,y).
func OShape(x, y, w, h, holeW, holeH, holeX, holeY float64, st Style) (Shape, error) {
	if err := validateStyle(methodOShape, st); err != nil {
		return Shape{}, err
	}
	if err := validatePositive(methodOShape, w, h, holeW, holeH, holeX, holeY); err != nil {
		return Shape{}, err
	}
	if holeX+holeW >= w || holeY+holeH >= h {
		return Shape{}, fmt.Errorf("%s: hole %vx%v at (%v,%v) not strictly inside %vx%v: %w",
			methodOShape, holeW, holeH, holeX, holeY, w, h, ErrInvalidGeometry)
	}
	if err := validateOnGrid(methodOShape, st.UnitLength, x, y, w, h, holeW, holeH, holeX, holeY); err != nil {
		return Shape{}, err
	}

	hx, hy := x+holeX, y+holeY
	hole := []Point{
		{X: hx, Y: hy},
		{X: hx, Y: hy + holeH},
		{X: hx + holeW, Y: hy + holeH},
		{X: hx + holeW, Y: hy},
	}

	return newShape(st, rectLoop(x, y, w, h), hole), nil
}
