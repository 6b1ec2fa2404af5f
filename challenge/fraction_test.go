package challenge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areabuilder/challenge"
)

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{12, 18, 6},
		{7, 3, 1},
		{0, 5, 5},
		{-4, 6, 2},
		{0, 0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, challenge.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
	}
}

func TestNewFraction(t *testing.T) {
	f, err := challenge.NewFraction(6, 8)
	require.NoError(t, err)
	assert.Equal(t, challenge.Fraction{Numerator: 3, Denominator: 4}, f)
	assert.True(t, f.Reduced())
	assert.Equal(t, "3/4", f.String())

	f, err = challenge.NewFraction(2, -6)
	require.NoError(t, err)
	assert.Equal(t, challenge.Fraction{Numerator: -1, Denominator: 3}, f)

	_, err = challenge.NewFraction(1, 0)
	assert.ErrorIs(t, err, challenge.ErrZeroDenominator)

	assert.False(t, challenge.Fraction{Numerator: 2, Denominator: 4}.Reduced())
}
