package perimeter

import (
	"fmt"
	"math"
)

// gridTolerance absorbs float noise when testing unit multiples.
const gridTolerance = 1e-9

// validateStyle rejects non-positive or NaN unit lengths.
func validateStyle(method string, st Style) error {
	if !(st.UnitLength > 0) || math.IsInf(st.UnitLength, 0) {
		return fmt.Errorf("%s: unitLength=%v: %w", method, st.UnitLength, ErrBadUnitLength)
	}
	return nil
}

// validateOnGrid ensures every value is an integer multiple of unit.
func validateOnGrid(method string, unit float64, values ...float64) error {
	for _, v := range values {
		q := v / unit
		if math.Abs(q-math.Round(q)) > gridTolerance {
			return fmt.Errorf("%s: %v is not a multiple of %v: %w", method, v, unit, ErrOffGrid)
		}
	}
	return nil
}

// validatePositive ensures every length is > 0.
func validatePositive(method string, values ...float64) error {
	for _, v := range values {
		if !(v > 0) {
			return fmt.Errorf("%s: length %v must be positive: %w", method, v, ErrInvalidGeometry)
		}
	}
	return nil
}

// validateEvenUnits ensures length spans an even number of unit cells.
func validateEvenUnits(method string, length, unit float64) error {
	if int(math.Round(length/unit))%2 != 0 {
		return fmt.Errorf("%s: length %v must span an even number of units: %w", method, length, ErrInvalidGeometry)
	}
	return nil
}

// newShape assembles the immutable value, normalizes loop winding and
// derives the edge colour.
func newShape(st Style, exterior []Point, interior ...[]Point) Shape {
	for i, loop := range interior {
		interior[i] = wind(loop, false)
	}
	s := Shape{
		Exterior:   [][]Point{wind(exterior, true)},
		UnitLength: st.UnitLength,
		FillColor:  st.Fill,
		EdgeColor:  Darken(st.Fill),
	}
	if len(interior) > 0 {
		s.Interior = interior
	}
	return s
}
