// SPDX-License-Identifier: MIT
// Package: areabuilder/perimeter
//
// errors.go — sentinel errors for the perimeter package.
//
// Callers MUST branch with errors.Is. Builders attach their method tag with
// %w, e.g. "LShape: widthMissing=5 ≥ width=5: perimeter: invalid geometry".

package perimeter

import "errors"

// ErrBadUnitLength indicates Style.UnitLength ≤ 0 (or NaN).
var ErrBadUnitLength = errors.New("perimeter: unit length must be positive")

// ErrOffGrid indicates a coordinate or length that is not an integer multiple
// of the unit length.
var ErrOffGrid = errors.New("perimeter: value is not a multiple of the unit length")

// ErrInvalidGeometry indicates a violated builder precondition. It is a
// programmer error on the caller side: generators are expected to sample only
// parameters that satisfy the documented preconditions.
var ErrInvalidGeometry = errors.New("perimeter: invalid geometry")
