// Package cellgrid treats a set of occupied unit cells as a small raster and
// answers the questions needed to verify an example solution: how many
// connected regions it forms, how many unit cells it covers and how long its
// outer boundary is.
//
// Complexity:
//
//   - FromCells:           O(N + W×H).
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//   - Perimeter:           O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no cells, or a non-positive dimension.
package cellgrid
