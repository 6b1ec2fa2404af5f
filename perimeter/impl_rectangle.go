// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// impl_rectangle.go — Rectangle(x, y, w, h, style).
//
// Contract:
//   • w > 0, h > 0; x, y, w, h on the unit lattice.
//   • Single 4-point exterior loop, clockwise from (x,y); no interior loop.

package perimeter

const methodRectangle = "Rectangle"

// Rectangle returns a plain w×h rectangle whose top-left corner is (x,y).
func Rectangle(x, y, w, h float64, st Style) (Shape, error) {
	if err := validateStyle(methodRectangle, st); err != nil {
		return Shape{}, err
	}
	if err := validatePositive(methodRectangle, w, h); err != nil {
		return Shape{}, err
	}
	if err := validateOnGrid(methodRectangle, st.UnitLength, x, y, w, h); err != nil {
		return Shape{}, err
	}

	return newShape(st, rectLoop(x, y, w, h)), nil
}

// rectLoop emits the clockwise corners of an axis-aligned rectangle.
func rectLoop(x, y, w, h float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}
