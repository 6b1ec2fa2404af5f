// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// impl_lshape.go — LShape: a rectangle with one corner removed.
//
// Contract:
//   • 0 < widthMissing < w and 0 < heightMissing < h (else ErrInvalidGeometry).
//   • Canonical outline has the LeftTop corner missing (6 points); the other
//     corners are derived with FlipHorizontal / FlipVertical.

package perimeter

import "fmt"

const methodLShape = "LShape"

// LShape returns a w×h rectangle at (x,y) with a widthMissing×heightMissing
// block removed from missingCorner.
func LShape(x, y, w, h float64, missingCorner Corner, widthMissing, heightMissing float64, st Style) (Shape, error) {
	if err := validateStyle(methodLShape, st); err != nil {
		return Shape{}, err
	}
	if !missingCorner.valid() {
		return Shape{}, fmt.Errorf("%s: unknown corner %d: %w", methodLShape, missingCorner, ErrInvalidGeometry)
	}
	if err := validatePositive(methodLShape, w, h, widthMissing, heightMissing); err != nil {
		return Shape{}, err
	}
	if widthMissing >= w || heightMissing >= h {
		return Shape{}, fmt.Errorf("%s: missing %vx%v must be smaller than %vx%v: %w",
			methodLShape, widthMissing, heightMissing, w, h, ErrInvalidGeometry)
	}
	if err := validateOnGrid(methodLShape, st.UnitLength, x, y, w, h, widthMissing, heightMissing); err != nil {
		return Shape{}, err
	}

	canonical := []Point{
		{X: x + widthMissing, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
		{X: x, Y: y + heightMissing},
		{X: x + widthMissing, Y: y + heightMissing},
	}

	return newShape(st, OrientCorner(canonical, missingCorner)), nil
}
