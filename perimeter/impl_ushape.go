// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// impl_ushape.go — UShape: a rectangle with a rectangular notch cut into one side.
//
// Contract:
//   • Left/Right cutouts carve the vertical edge: cutW < w and
//     0 < cutOffset, cutOffset+cutH < h (the notch never reaches a corner).
//   • Top/Bottom cutouts carve the horizontal edge: cutH < h and
//     0 < cutOffset, cutOffset+cutW < w.
//   • 8-point outline built for Left or Top, then flipped for Right or Bottom.
//     cutOffset is measured from the top (vertical sides) or the left
//     (horizontal sides) in both cases.

package perimeter

import "fmt"

const methodUShape = "UShape"

// UShape returns a w×h rectangle at (x,y) with a cutW×cutH notch cut into
// sideWithCutout, starting cutOffset along that side.
func UShape(x, y, w, h float64, sideWithCutout Side, cutW, cutH, cutOffset float64, st Style) (Shape, error) {
	if err := validateStyle(methodUShape, st); err != nil {
		return Shape{}, err
	}
	if !sideWithCutout.valid() {
		return Shape{}, fmt.Errorf("%s: unknown side %d: %w", methodUShape, sideWithCutout, ErrInvalidGeometry)
	}
	if err := validatePositive(methodUShape, w, h, cutW, cutH, cutOffset); err != nil {
		return Shape{}, err
	}
	if err := validateOnGrid(methodUShape, st.UnitLength, x, y, w, h, cutW, cutH, cutOffset); err != nil {
		return Shape{}, err
	}

	var canonical []Point
	if sideWithCutout.Vertical() {
		if cutW >= w || cutOffset+cutH >= h {
			return Shape{}, fmt.Errorf("%s: %v notch %vx%v at %v does not fit %vx%v: %w",
				methodUShape, sideWithCutout, cutW, cutH, cutOffset, w, h, ErrInvalidGeometry)
		}
		canonical = []Point{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
			{X: x, Y: y + cutOffset + cutH},
			{X: x + cutW, Y: y + cutOffset + cutH},
			{X: x + cutW, Y: y + cutOffset},
			{X: x, Y: y + cutOffset},
		}
	} else {
		if cutH >= h || cutOffset+cutW >= w {
			return Shape{}, fmt.Errorf("%s: %v notch %vx%v at %v does not fit %vx%v: %w",
				methodUShape, sideWithCutout, cutW, cutH, cutOffset, w, h, ErrInvalidGeometry)
		}
		canonical = []Point{
			{X: x, Y: y},
			{X: x + cutOffset, Y: y},
			{X: x + cutOffset, Y: y + cutH},
			{X: x + cutOffset + cutW, Y: y + cutH},
			{X: x + cutOffset + cutW, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}
	}

	return newShape(st, orientSide(canonical, sideWithCutout)), nil
}
