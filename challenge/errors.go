package challenge

import "errors"

var (
	// ErrZeroDenominator indicates a Fraction with denominator 0.
	ErrZeroDenominator = errors.New("challenge: fraction denominator must be non-zero")
	// ErrAmbiguousKind indicates a Challenge with both or neither of BuildSpec and BackgroundShape.
	ErrAmbiguousKind = errors.New("challenge: exactly one of buildSpec and backgroundShape must be set")
)
