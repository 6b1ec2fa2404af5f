// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// impl_diagonal.go — DiagonalCornerShape: a rectangle with one corner cut by
// a 45° diagonal and a small rectangular notch at the opposite corner.
//
// Contract:
//   • d = diagonalSquareLength > 0, cutW > 0, cutH > 0.
//   • w − d ≥ cutW and h − d ≥ cutH (notch and diagonal never overlap).
//   • 7-point canonical outline with the diagonal at LeftTop and the notch at
//     RightBottom; other placements come from flips, so the notch always
//     sits opposite the diagonal.

package perimeter

import "fmt"

const methodDiagonalCorner = "DiagonalCornerShape"

// DiagonalCornerShape returns a w×h rectangle at (x,y) whose diagonalCorner is
// replaced by a diagonal edge spanning a d×d square, with a cutW×cutH notch
// removed from the opposite corner.
func DiagonalCornerShape(x, y, w, h float64, diagonalCorner Corner, d, cutW, cutH float64, st Style) (Shape, error) {
	if err := validateStyle(methodDiagonalCorner, st); err != nil {
		return Shape{}, err
	}
	if !diagonalCorner.valid() {
		return Shape{}, fmt.Errorf("%s: unknown corner %d: %w", methodDiagonalCorner, diagonalCorner, ErrInvalidGeometry)
	}
	if err := validatePositive(methodDiagonalCorner, w, h, d, cutW, cutH); err != nil {
		return Shape{}, err
	}
	if w-d < cutW || h-d < cutH {
		return Shape{}, fmt.Errorf("%s: diagonal %v and notch %vx%v overlap in %vx%v: %w",
			methodDiagonalCorner, d, cutW, cutH, w, h, ErrInvalidGeometry)
	}
	if err := validateOnGrid(methodDiagonalCorner, st.UnitLength, x, y, w, h, d, cutW, cutH); err != nil {
		return Shape{}, err
	}

	canonical := []Point{
		{X: x, Y: y + d},
		{X: x + d, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h - cutH},
		{X: x + w - cutW, Y: y + h - cutH},
		{X: x + w - cutW, Y: y + h},
		{X: x, Y: y + h},
	}

	return newShape(st, OrientCorner(canonical, diagonalCorner)), nil
}
