package challenge

import (
	"image/color"

	"github.com/zyedidia/generic/mapset"
)

// Cell addresses one unit cell on the board; the origin is the top-left cell.
type Cell struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// CellSpec is one occupied cell of an example solution.
type CellSpec struct {
	Column int        `json:"cellColumn"`
	Row    int        `json:"cellRow"`
	Color  color.RGBA `json:"color"`
}

// SolutionSpec lists the cells that tile a target shape. Order is not meaningful.
type SolutionSpec []CellSpec

// RectangularSolution fills a w×h block whose top-left cell is (column,row)
// with a single colour, row-major.
func RectangularSolution(column, row, w, h int, c color.RGBA) SolutionSpec {
	out := make(SolutionSpec, 0, w*h)
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			out = append(out, CellSpec{Column: column + col, Row: row + r, Color: c})
		}
	}
	return out
}

// TwoToneRectangularSolution fills a w×h block row-major, giving cell i the
// colour c1 while i/(w·h) < proportion and c2 afterwards. When the
// proportion's denominator divides w·h, exactly proportion·w·h cells get c1.
func TwoToneRectangularSolution(column, row, w, h int, c1, c2 color.RGBA, proportion Fraction) SolutionSpec {
	out := make(SolutionSpec, 0, w*h)
	area := w * h
	for r := 0; r < h; r++ {
		for col := 0; col < w; col++ {
			i := r*w + col
			c := c2
			// i/area < n/d without float rounding
			if i*proportion.Denominator < proportion.Numerator*area {
				c = c1
			}
			out = append(out, CellSpec{Column: column + col, Row: row + r, Color: c})
		}
	}
	return out
}

// Footprint returns the set of occupied cells, colours ignored.
func (s SolutionSpec) Footprint() mapset.Set[Cell] {
	set := mapset.New[Cell]()
	for _, cs := range s {
		set.Put(Cell{Column: cs.Column, Row: cs.Row})
	}
	return set
}

// HasDuplicates reports whether two specs occupy the same cell.
func (s SolutionSpec) HasDuplicates() bool {
	return s.Footprint().Size() != len(s)
}

// ColorCount counts cells painted c.
func (s SolutionSpec) ColorCount(c color.RGBA) int {
	n := 0
	for _, cs := range s {
		if cs.Color == c {
			n++
		}
	}
	return n
}
