// Package shapekit is the fixed catalogue of unit-cell pieces a player drags
// onto the board: unit square, 2×1 and 1×2 rectangles, 2×2 square and the
// four unit right-triangle orientations. Kits bundle pieces with a colour and
// an optional creation limit.
package shapekit
