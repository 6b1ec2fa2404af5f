// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// impl_triangle.go — right isosceles triangles.
//
// SlantedHypotenuseTriangle: legs are axis-aligned, the right angle sits at
// one of the four corners and the hypotenuse is diagonal.
// LevelHypotenuseTriangle: the hypotenuse is axis-aligned and the right angle
// is centred on one side of the extent (pointing Left/Right/Top/Bottom).
//
// Both lengths must span an even number of unit cells so the kit pieces
// (unit squares and unit half-square triangles) tile the shape exactly.

package perimeter

import "fmt"

const (
	methodSlantedTriangle = "SlantedHypotenuseTriangle"
	methodLevelTriangle   = "LevelHypotenuseTriangle"
)

// SlantedHypotenuseTriangle returns a right isosceles triangle with legs of
// edgeLength whose right angle is at rightAngleCorner of the extent at (x,y).
func SlantedHypotenuseTriangle(x, y, edgeLength float64, rightAngleCorner Corner, st Style) (Shape, error) {
	if err := validateStyle(methodSlantedTriangle, st); err != nil {
		return Shape{}, err
	}
	if !rightAngleCorner.valid() {
		return Shape{}, fmt.Errorf("%s: unknown corner %d: %w", methodSlantedTriangle, rightAngleCorner, ErrInvalidGeometry)
	}
	if err := validatePositive(methodSlantedTriangle, edgeLength); err != nil {
		return Shape{}, err
	}
	if err := validateOnGrid(methodSlantedTriangle, st.UnitLength, x, y, edgeLength); err != nil {
		return Shape{}, err
	}
	if err := validateEvenUnits(methodSlantedTriangle, edgeLength, st.UnitLength); err != nil {
		return Shape{}, err
	}

	canonical := []Point{
		{X: x, Y: y},
		{X: x + edgeLength, Y: y},
		{X: x, Y: y + edgeLength},
	}

	return newShape(st, OrientCorner(canonical, rightAngleCorner)), nil
}

// LevelHypotenuseTriangle returns a right isosceles triangle whose hypotenuse
// of hypotenuseLength is axis-aligned and whose right angle points toward
// apexSide. Top/Bottom apexes give a hypotenuseLength × hypotenuseLength/2
// extent at (x,y); Left/Right apexes give the transposed extent.
func LevelHypotenuseTriangle(x, y, hypotenuseLength float64, apexSide Side, st Style) (Shape, error) {
	if err := validateStyle(methodLevelTriangle, st); err != nil {
		return Shape{}, err
	}
	if !apexSide.valid() {
		return Shape{}, fmt.Errorf("%s: unknown side %d: %w", methodLevelTriangle, apexSide, ErrInvalidGeometry)
	}
	if err := validatePositive(methodLevelTriangle, hypotenuseLength); err != nil {
		return Shape{}, err
	}
	if err := validateOnGrid(methodLevelTriangle, st.UnitLength, x, y, hypotenuseLength); err != nil {
		return Shape{}, err
	}
	if err := validateEvenUnits(methodLevelTriangle, hypotenuseLength, st.UnitLength); err != nil {
		return Shape{}, err
	}

	half := hypotenuseLength / 2
	var canonical []Point
	if apexSide.Vertical() {
		canonical = []Point{
			{X: x, Y: y + half},
			{X: x + half, Y: y},
			{X: x + half, Y: y + hypotenuseLength},
		}
	} else {
		canonical = []Point{
			{X: x + half, Y: y},
			{X: x + hypotenuseLength, Y: y + half},
			{X: x, Y: y + half},
		}
	}

	return newShape(st, orientSide(canonical, apexSide)), nil
}
