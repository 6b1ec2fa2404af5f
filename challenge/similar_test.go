package challenge_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/perimeter"
)

func build(area, perim int) challenge.Challenge {
	return challenge.NewBuildChallenge(challenge.BuildSpec{Area: area, Perimeter: perim}, nil, nil)
}

func proportional(area, perim, n, d int) challenge.Challenge {
	c := build(area, perim)
	c.BuildSpec.Proportions = &challenge.Proportions{
		Color1:           green,
		Color2:           dark,
		Color1Proportion: challenge.Fraction{Numerator: n, Denominator: d},
	}
	return c
}

func findArea(t *testing.T, w, h float64) challenge.Challenge {
	t.Helper()
	s, err := perimeter.Rectangle(0, 0, w, h, perimeter.Style{UnitLength: 1, Fill: color.RGBA{A: 255}})
	require.NoError(t, err)
	return challenge.NewFindAreaChallenge(s, nil)
}

func TestIsSimilar(t *testing.T) {
	cases := []struct {
		name string
		a, b challenge.Challenge
		want bool
	}{
		{"build same area", build(12, 0), build(12, 0), true},
		{"build same area, perimeter differs", build(12, 14), build(12, 16), true},
		{"build different area", build(12, 0), build(15, 0), false},
		{"proportional same denominator", proportional(12, 0, 1, 3), proportional(24, 0, 2, 3), true},
		{"proportional different denominator", proportional(12, 0, 1, 3), proportional(12, 0, 1, 4), false},
		{"proportional perimeter mismatch", proportional(12, 14, 1, 3), proportional(12, 0, 1, 3), false},
		{"proportional both perimeter", proportional(12, 14, 1, 3), proportional(18, 18, 2, 3), true},
		// both branches must look at both challenges
		{"proportional vs plain", proportional(12, 0, 1, 3), build(12, 0), false},
		{"plain vs proportional", build(12, 0), proportional(12, 0, 1, 3), false},
		{"find area same area", findArea(t, 4, 3), findArea(t, 6, 2), true},
		{"find area different", findArea(t, 4, 3), findArea(t, 4, 4), false},
		{"mixed kinds", build(12, 0), findArea(t, 4, 3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, challenge.IsSimilar(tc.a, tc.b))
			assert.Equal(t, tc.want, challenge.IsSimilar(tc.b, tc.a), "symmetry")
		})
	}
}

func TestChallenge_Kind(t *testing.T) {
	assert.Equal(t, challenge.KindBuild, build(4, 0).Kind())
	assert.Equal(t, challenge.KindFindArea, findArea(t, 2, 2).Kind())
	assert.NoError(t, build(4, 0).Validate())

	broken := build(4, 0)
	broken.BackgroundShape = findArea(t, 2, 2).BackgroundShape
	assert.Equal(t, challenge.KindInvalid, broken.Kind())
	assert.ErrorIs(t, broken.Validate(), challenge.ErrAmbiguousKind)
	assert.ErrorIs(t, challenge.Challenge{}.Validate(), challenge.ErrAmbiguousKind)
}

func TestNewChallenge_ToolSpecs(t *testing.T) {
	b := build(4, 0)
	assert.True(t, b.ToolSpec.GridControl)
	assert.True(t, b.ToolSpec.DecompositionToggleControl)
	f := findArea(t, 2, 2)
	assert.True(t, f.ToolSpec.GridControl)
	assert.False(t, f.ToolSpec.DecompositionToggleControl)
}
