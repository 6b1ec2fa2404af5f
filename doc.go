// Package areabuilder generates the puzzles of an area-and-perimeter
// teaching game: "build a shape with this area" and "find the area of this
// shape", graded across six levels.
//
// What is inside?
//
//	A procedural challenge generator that brings together:
//		• Geometry builders: rectangles, L/U/O shapes, diagonal corners, triangles
//		• Piece kits: unit squares, dominoes, 2×2 squares, half-square triangles
//		• Colour palettes that never repeat a colour across a cycle boundary
//		• Challenge descriptions with example solutions and colour ratios
//		• Repetition avoidance across a whole play session
//
// Subpackages:
//
//	perimeter/  — pixel-space shape builders on the unit grid, flips, area
//	shapekit/   — draggable piece outlines and the standard kits
//	palette/    — cyclic no-immediate-repeat choosers and colour catalogues
//	challenge/  — Challenge, BuildSpec, SolutionSpec, Fraction, similarity, History
//	cellgrid/   — occupancy grid: connected components, perimeter, area
//	generator/  — archetypes, uniqueness tracking and the per-level recipes
//	cmd/areagen — CLI printing challenge sets as JSON
//
// Quick example:
//
//	g, _ := generator.New(generator.WithSeed(7))
//	set, _ := g.GenerateChallengeSet(0, 6)
//	for _, c := range set {
//		fmt.Println(c.Kind())
//	}
//
// All coordinates are in view units with y pointing down; every vertex lies
// on multiples of the unit length.
package areabuilder
