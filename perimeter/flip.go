package perimeter

// FlipHorizontal mirrors points about the vertical centre line of their own
// extent: x ↦ minX + maxX − x. Y is unchanged. The input is not modified.
// Complexity: O(n).
func FlipHorizontal(points []Point) []Point {
	lo, hi := extent(points)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: lo.X + hi.X - p.X, Y: p.Y}
	}
	return out
}

// FlipVertical mirrors points about the horizontal centre line of their own
// extent: y ↦ minY + maxY − y. X is unchanged. The input is not modified.
// Applying both flips is a 180° rotation about the extent's centre.
// Complexity: O(n).
func FlipVertical(points []Point) []Point {
	lo, hi := extent(points)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: p.X, Y: lo.Y + hi.Y - p.Y}
	}
	return out
}

// OrientCorner maps a canonical LeftTop construction onto corner c.
func OrientCorner(points []Point, c Corner) []Point {
	switch c {
	case RightTop:
		return FlipHorizontal(points)
	case LeftBottom:
		return FlipVertical(points)
	case RightBottom:
		return FlipVertical(FlipHorizontal(points))
	}
	return points
}

// orientSide maps a canonical Left (vertical) or Top (horizontal)
// construction onto side s.
func orientSide(points []Point, s Side) []Point {
	switch s {
	case Right:
		return FlipHorizontal(points)
	case Bottom:
		return FlipVertical(points)
	}
	return points
}

// wind returns loop wound clockwise in screen coordinates (positive shoelace
// sum with y down) when clockwise is set, counter-clockwise otherwise. A
// single flip reverses winding, so oriented builders pass through here.
func wind(loop []Point, clockwise bool) []Point {
	if (signedArea(loop) > 0) == clockwise {
		return loop
	}
	out := make([]Point, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}
