package perimeter

import (
	"image/color"
	"math"
)

// Point is a polygon vertex in view units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Corner selects one of the four corners of a shape's bounding extent.
type Corner int

const (
	LeftTop Corner = iota
	RightTop
	LeftBottom
	RightBottom
)

// Corners lists every Corner in declaration order.
var Corners = []Corner{LeftTop, RightTop, LeftBottom, RightBottom}

func (c Corner) String() string {
	switch c {
	case LeftTop:
		return "leftTop"
	case RightTop:
		return "rightTop"
	case LeftBottom:
		return "leftBottom"
	case RightBottom:
		return "rightBottom"
	}
	return "unknown"
}

func (c Corner) valid() bool { return c >= LeftTop && c <= RightBottom }

// Side selects one of the four sides of a shape's bounding extent.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

// Sides lists every Side in declaration order.
var Sides = []Side{Left, Right, Top, Bottom}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

func (s Side) valid() bool { return s >= Left && s <= Bottom }

// Vertical reports whether s is Left or Right.
func (s Side) Vertical() bool { return s == Left || s == Right }

// Style carries the injected, non-geometric inputs of every builder.
type Style struct {
	UnitLength float64
	Fill       color.RGBA
}

// Shape is an immutable polygon description. Exterior loops are wound
// clockwise in screen coordinates (y grows downward); Interior loops are
// wound the other way so a non-zero fill rule renders them as holes.
//
// Every coordinate is an integer multiple of UnitLength and every interior
// loop lies strictly inside the exterior extent.
type Shape struct {
	Exterior   [][]Point  `json:"exteriorPerimeters"`
	Interior   [][]Point  `json:"interiorPerimeters,omitempty"`
	UnitLength float64    `json:"unitLength"`
	FillColor  color.RGBA `json:"fillColor"`
	EdgeColor  color.RGBA `json:"edgeColor"`
}

// UnitArea returns the enclosed area measured in unit cells: the exterior
// loops' area minus the holes' area. Half cells appear for diagonal edges.
// Complexity: O(P) over all loop points.
func (s Shape) UnitArea() float64 {
	var a float64
	for _, loop := range s.Exterior {
		a += math.Abs(signedArea(loop))
	}
	for _, loop := range s.Interior {
		a -= math.Abs(signedArea(loop))
	}
	return a / (s.UnitLength * s.UnitLength)
}

// Bounds returns the min and max corners of the exterior extent.
func (s Shape) Bounds() (min, max Point) {
	first := true
	for _, loop := range s.Exterior {
		lo, hi := extent(loop)
		if first {
			min, max, first = lo, hi, false
			continue
		}
		min.X, min.Y = math.Min(min.X, lo.X), math.Min(min.Y, lo.Y)
		max.X, max.Y = math.Max(max.X, hi.X), math.Max(max.Y, hi.Y)
	}
	return min, max
}

// Width is the exterior extent along X, in unit cells.
func (s Shape) Width() float64 {
	lo, hi := s.Bounds()
	return (hi.X - lo.X) / s.UnitLength
}

// Height is the exterior extent along Y, in unit cells.
func (s Shape) Height() float64 {
	lo, hi := s.Bounds()
	return (hi.Y - lo.Y) / s.UnitLength
}

// signedArea is the shoelace sum over a closed loop (last point joins first).
func signedArea(loop []Point) float64 {
	var sum float64
	n := len(loop)
	for i := 0; i < n; i++ {
		p, q := loop[i], loop[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// extent returns the component-wise min and max of points.
func extent(points []Point) (min, max Point) {
	if len(points) == 0 {
		return Point{}, Point{}
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		min.X, min.Y = math.Min(min.X, p.X), math.Min(min.Y, p.Y)
		max.X, max.Y = math.Max(max.X, p.X), math.Max(max.Y, p.Y)
	}
	return min, max
}
