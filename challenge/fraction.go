package challenge

import "fmt"

// Fraction is a ratio of integers. Colour-ratio targets are always reduced.
type Fraction struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

// GCD returns the greatest common divisor of |a| and |b| (GCD(0,0) == 0).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NewFraction returns n/d in lowest terms with a positive denominator.
func NewFraction(n, d int) (Fraction, error) {
	if d == 0 {
		return Fraction{}, fmt.Errorf("NewFraction(%d/%d): %w", n, d, ErrZeroDenominator)
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := GCD(n, d); g > 1 {
		n, d = n/g, d/g
	}
	return Fraction{Numerator: n, Denominator: d}, nil
}

// Reduced reports whether gcd(Numerator, Denominator) == 1.
func (f Fraction) Reduced() bool { return GCD(f.Numerator, f.Denominator) == 1 }

func (f Fraction) String() string { return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator) }
