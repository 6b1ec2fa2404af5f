package cellgrid

import "errors"

// ErrEmptyGrid indicates a grid with no rows, no columns or no cells.
var ErrEmptyGrid = errors.New("cellgrid: grid must have at least one row, one column and one cell")

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell is a column/row pair.
type Cell struct {
	Column, Row int
}

// Grid is an immutable W×H occupancy raster. Origin records the board
// coordinates of raster cell (0,0).
type Grid struct {
	Width, Height int
	Origin        Cell
	Conn          Connectivity
	occupied      []bool
	offsets       [][2]int
}
