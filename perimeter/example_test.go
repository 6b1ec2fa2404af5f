package perimeter_test

import (
	"fmt"

	"github.com/katalvlaran/areabuilder/perimeter"
)

// ExampleLShape builds a 4×3 L-shape missing its top-right 1×1 block.
func ExampleLShape() {
	st := perimeter.Style{UnitLength: 1}
	s, err := perimeter.LShape(0, 0, 4, 3, perimeter.RightTop, 1, 1, st)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.UnitArea(), s.Width(), s.Height())
	fmt.Println(s.Exterior[0])
	// Output:
	// 11 4 3
	// [{3 1} {4 1} {4 3} {0 3} {0 0} {3 0}]
}
