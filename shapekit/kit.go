package shapekit

import (
	"image/color"

	"github.com/katalvlaran/areabuilder/perimeter"
)

// Piece is a polygon outline anchored at the origin.
type Piece struct {
	Name    string            `json:"name"`
	Outline []perimeter.Point `json:"outline"`
}

// Item is one user-manipulable kit entry. CreationLimit == 0 means unlimited.
type Item struct {
	Piece         Piece      `json:"shape"`
	Color         color.RGBA `json:"color"`
	CreationLimit int        `json:"creationLimit,omitempty"`
}

// Piece names.
const (
	NameUnitSquare          = "unitSquare"
	NameHorizontalDouble    = "horizontalDoubleSquare"
	NameVerticalDouble      = "verticalDoubleSquare"
	NameQuadSquare          = "quadSquare"
	NameLeftTopTriangle     = "leftTopTriangle"
	NameRightTopTriangle    = "rightTopTriangle"
	NameLeftBottomTriangle  = "leftBottomTriangle"
	NameRightBottomTriangle = "rightBottomTriangle"
)

func rect(name string, w, h, unit float64) Piece {
	return Piece{Name: name, Outline: []perimeter.Point{
		{X: 0, Y: 0},
		{X: w * unit, Y: 0},
		{X: w * unit, Y: h * unit},
		{X: 0, Y: h * unit},
	}}
}

// UnitSquare is a 1×1 square.
func UnitSquare(unit float64) Piece { return rect(NameUnitSquare, 1, 1, unit) }

// HorizontalDoubleSquare is a 2×1 rectangle.
func HorizontalDoubleSquare(unit float64) Piece { return rect(NameHorizontalDouble, 2, 1, unit) }

// VerticalDoubleSquare is a 1×2 rectangle.
func VerticalDoubleSquare(unit float64) Piece { return rect(NameVerticalDouble, 1, 2, unit) }

// QuadSquare is a 2×2 square.
func QuadSquare(unit float64) Piece { return rect(NameQuadSquare, 2, 2, unit) }

// Triangle is a unit right triangle with its right angle at corner.
func Triangle(unit float64, corner perimeter.Corner) Piece {
	canonical := []perimeter.Point{{X: 0, Y: 0}, {X: unit, Y: 0}, {X: 0, Y: unit}}
	return Piece{Name: triangleName(corner), Outline: perimeter.OrientCorner(canonical, corner)}
}

func triangleName(c perimeter.Corner) string {
	switch c {
	case perimeter.RightTop:
		return NameRightTopTriangle
	case perimeter.LeftBottom:
		return NameLeftBottomTriangle
	case perimeter.RightBottom:
		return NameRightBottomTriangle
	}
	return NameLeftTopTriangle
}

// BasicRectangles is the default rectangle-only kit.
func BasicRectangles(unit float64, c color.RGBA) []Item {
	return []Item{
		{Piece: UnitSquare(unit), Color: c},
		{Piece: HorizontalDoubleSquare(unit), Color: c},
		{Piece: VerticalDoubleSquare(unit), Color: c},
		{Piece: QuadSquare(unit), Color: c},
	}
}

// RectanglesAndTriangles adds the four unit triangles to the small
// rectangles, for shapes with diagonal edges.
func RectanglesAndTriangles(unit float64, c color.RGBA) []Item {
	return []Item{
		{Piece: HorizontalDoubleSquare(unit), Color: c},
		{Piece: UnitSquare(unit), Color: c},
		{Piece: VerticalDoubleSquare(unit), Color: c},
		{Piece: Triangle(unit, perimeter.LeftBottom), Color: c},
		{Piece: Triangle(unit, perimeter.LeftTop), Color: c},
		{Piece: Triangle(unit, perimeter.RightBottom), Color: c},
		{Piece: Triangle(unit, perimeter.RightTop), Color: c},
	}
}

// TwoToneSquares offers one unit square per colour.
func TwoToneSquares(unit float64, c1, c2 color.RGBA) []Item {
	return []Item{
		{Piece: UnitSquare(unit), Color: c1},
		{Piece: UnitSquare(unit), Color: c2},
	}
}

// UnitSquares offers only unit squares, at most limit of them (0 = unlimited).
func UnitSquares(unit float64, c color.RGBA, limit int) []Item {
	return []Item{{Piece: UnitSquare(unit), Color: c, CreationLimit: limit}}
}
