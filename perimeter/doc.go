// Package perimeter builds the polygon descriptions used as "find the area"
// backgrounds and as outlines for build-challenge example solutions.
//
// What:
//
//   - Shape: one or more exterior point loops, zero or more interior (hole)
//     loops, a unit length and fill/edge colours.
//   - Builders, one per topology: Rectangle, LShape, UShape, OShape,
//     DiagonalCornerShape, SlantedHypotenuseTriangle, LevelHypotenuseTriangle.
//   - FlipHorizontal / FlipVertical: reflect a point list about its own
//     bounding extent. Every oriented builder constructs one canonical
//     outline (missing corner at LeftTop, cutout on Left or Top, ...) and
//     derives the other variants through these flips.
//
// Builders never randomize. All parameters, including the unit length and
// fill colour (Style), are supplied by the caller.
//
// Errors:
//
//   - ErrBadUnitLength: Style.UnitLength is not strictly positive.
//   - ErrOffGrid: a coordinate or length is not a multiple of the unit length.
//   - ErrInvalidGeometry: a topology precondition is violated
//     (e.g. LShape with widthMissing ≥ width).
//
// Complexity: every builder is O(1); UnitArea is O(P) over all loop points.
package perimeter
