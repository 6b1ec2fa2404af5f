package generator_test

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areabuilder/cellgrid"
	"github.com/katalvlaran/areabuilder/challenge"
	"github.com/katalvlaran/areabuilder/generator"
)

func newGen(t *testing.T, seed int64, opts ...generator.Option) *generator.Generator {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	opts = append([]generator.Option{generator.WithSeed(seed), generator.WithLogger(logger)}, opts...)
	g, err := generator.New(opts...)
	require.NoError(t, err)
	return g
}

func generate(t *testing.T, g *generator.Generator, level int) []challenge.Challenge {
	t.Helper()
	n, err := generator.ChallengeCount(level)
	require.NoError(t, err)
	out, err := g.GenerateChallengeSet(level, n)
	require.NoError(t, err)
	require.Len(t, out, n)
	return out
}

// requireSolutionMatches rebuilds the example solution on a cell grid and
// checks it against the BuildSpec.
func requireSolutionMatches(t *testing.T, c challenge.Challenge) {
	t.Helper()
	require.Equal(t, challenge.KindBuild, c.Kind())
	require.False(t, c.ExampleSolution.HasDuplicates())

	cells := make([]cellgrid.Cell, 0, len(c.ExampleSolution))
	for _, cs := range c.ExampleSolution {
		cells = append(cells, cellgrid.Cell{Column: cs.Column, Row: cs.Row})
	}
	grid, err := cellgrid.FromCells(cells, cellgrid.Conn4)
	require.NoError(t, err)
	assert.Len(t, grid.ConnectedComponents(), 1)
	assert.Equal(t, c.BuildSpec.Area, grid.Area())
	if c.BuildSpec.RequiresPerimeter() {
		assert.Equal(t, c.BuildSpec.Perimeter, grid.Perimeter())
	}
}

func unitArea(c challenge.Challenge) int {
	return int(math.Round(c.BackgroundShape.UnitArea()))
}

func TestLevels(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, generator.Levels())
	for _, level := range generator.Levels() {
		n, err := generator.ChallengeCount(level)
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	}
	_, err := generator.ChallengeCount(6)
	assert.ErrorIs(t, err, generator.ErrUnsupportedLevel)
}

func TestGenerateChallengeSet_EveryLevel(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{1, 2, 3, 42} {
		g := newGen(t, seed)
		for _, level := range generator.Levels() {
			for _, c := range generate(t, g, level) {
				require.NoError(t, c.Validate(), "seed %d level %d", seed, level)
				if c.Kind() == challenge.KindBuild {
					requireSolutionMatches(t, c)
				}
			}
		}
	}
}

func TestGenerateChallengeSet_Errors(t *testing.T) {
	t.Parallel()
	g := newGen(t, 1)

	_, err := g.GenerateChallengeSet(-1, 6)
	assert.ErrorIs(t, err, generator.ErrUnsupportedLevel)
	_, err = g.GenerateChallengeSet(6, 6)
	assert.ErrorIs(t, err, generator.ErrUnsupportedLevel)

	_, err = g.GenerateChallengeSet(0, 5)
	assert.ErrorIs(t, err, generator.ErrCountMismatch)
}

func TestLevel0_Composition(t *testing.T) {
	t.Parallel()
	out := generate(t, newGen(t, 7), 0)

	for _, c := range out[:3] {
		require.Equal(t, challenge.KindBuild, c.Kind())
		assert.False(t, c.BuildSpec.RequiresPerimeter())
		assert.Nil(t, c.BuildSpec.Proportions)
		assert.GreaterOrEqual(t, c.BuildSpec.Area, 8)
		assert.LessOrEqual(t, c.BuildSpec.Area, 36)
		assert.True(t, c.ToolSpec.DecompositionToggleControl)
	}
	for i, c := range out[3:] {
		require.Equal(t, challenge.KindFindArea, c.Kind())
		assert.GreaterOrEqual(t, unitArea(c), 16)
		assert.LessOrEqual(t, unitArea(c), 36)
		assert.True(t, c.ToolSpec.GridControl)
		assert.False(t, c.ToolSpec.DecompositionToggleControl)
		if i < 2 {
			assert.Len(t, c.BackgroundShape.Exterior[0], 4, "rectangle")
		} else {
			assert.Len(t, c.BackgroundShape.Exterior[0], 6, "L-shape")
		}
	}

	for i := range out {
		for j := i + 1; j < len(out); j++ {
			assert.False(t, challenge.IsSimilar(out[i], out[j]), "challenges %d and %d", i, j)
		}
	}
}

func TestLevel1_PerimeterTargets(t *testing.T) {
	t.Parallel()
	out := generate(t, newGen(t, 9), 1)

	for i, c := range out {
		require.Equal(t, challenge.KindBuild, c.Kind())
		require.True(t, c.BuildSpec.RequiresPerimeter())
		requireSolutionMatches(t, c)
		if i < 3 {
			assert.GreaterOrEqual(t, c.BuildSpec.Area, 12)
			assert.LessOrEqual(t, c.BuildSpec.Area, 36)
		}
	}
}

func TestLevel2_Grouping(t *testing.T) {
	t.Parallel()
	out := generate(t, newGen(t, 11), 2)

	topology := func(c challenge.Challenge) string {
		s := c.BackgroundShape
		switch {
		case len(s.Interior) == 1:
			return "O"
		case len(s.Exterior[0]) == 8:
			return "U"
		case len(s.Exterior[0]) == 7:
			return "diagonal"
		case len(s.Exterior[0]) == 3:
			return "triangle"
		}
		return "other"
	}

	var first []string
	for _, c := range out[:3] {
		require.Equal(t, challenge.KindFindArea, c.Kind())
		first = append(first, topology(c))
	}
	assert.ElementsMatch(t, []string{"U", "O", "diagonal"}, first)

	for _, c := range out[3:5] {
		assert.Equal(t, "triangle", topology(c))
	}
	assert.Contains(t, []string{"U", "O"}, topology(out[5]))
}

func TestLevel3_PostProcessing(t *testing.T) {
	t.Parallel()
	g := newGen(t, 13)
	out := generate(t, g, 3)
	unit := g.Board().UnitLength

	stripped := 0
	for _, c := range out {
		require.Equal(t, challenge.KindFindArea, c.Kind())
		assert.False(t, c.ToolSpec.GridControl)
		if len(c.UserShapes) == 0 {
			stripped++
			continue
		}
		require.Len(t, c.UserShapes, 1)
		w := int(math.Round(c.BackgroundShape.Width() / unit))
		h := int(math.Round(c.BackgroundShape.Height() / unit))
		assert.Equal(t, max(w, h), c.UserShapes[0].CreationLimit)
	}
	assert.Equal(t, 2, stripped)
}

func TestProportionalLevels(t *testing.T) {
	t.Parallel()
	g := newGen(t, 17)

	for _, level := range []int{4, 5} {
		out := generate(t, g, level)
		for i, c := range out {
			require.Equal(t, challenge.KindBuild, c.Kind())
			p := c.BuildSpec.Proportions
			require.NotNil(t, p)
			assert.True(t, p.Color1Proportion.Reduced(), "%s", p.Color1Proportion)
			assert.NotEqual(t, p.Color1, p.Color2)
			assert.Equal(t, level == 5, c.BuildSpec.RequiresPerimeter())
			assert.Equal(t, 0, (c.BuildSpec.Area*p.Color1Proportion.Numerator)%p.Color1Proportion.Denominator)

			d := p.Color1Proportion.Denominator
			if i < 3 {
				assert.True(t, d >= 2 && d <= 4, "easy denominator %d", d)
			} else {
				assert.True(t, d >= 5 && d <= 9, "harder denominator %d", d)
			}

			want := c.BuildSpec.Area * p.Color1Proportion.Numerator / d
			assert.Equal(t, want, c.ExampleSolution.ColorCount(p.Color1))
			requireSolutionMatches(t, c)
		}
	}
}

func TestGenerateChallengeSet_Deterministic(t *testing.T) {
	t.Parallel()
	a, b := newGen(t, 99), newGen(t, 99)
	for _, level := range generator.Levels() {
		assert.Equal(t, generate(t, a, level), generate(t, b, level), "level %d", level)
	}
}

func TestGenerator_HistorySpansLevels(t *testing.T) {
	t.Parallel()
	g := newGen(t, 5)
	generate(t, g, 0)
	assert.Len(t, g.History(), 6)
	generate(t, g, 1)
	assert.Len(t, g.History(), 12)

	snap := g.History()
	snap[0] = challenge.Challenge{}
	assert.NotEqual(t, challenge.Challenge{}, g.History()[0])
}

func TestGenerator_LargerBoard(t *testing.T) {
	t.Parallel()
	board := generator.Board{Width: 20, Height: 14, UnitLength: 24}
	g := newGen(t, 21, generator.WithBoard(board))

	for _, level := range generator.Levels() {
		for _, c := range generate(t, g, level) {
			if c.Kind() != challenge.KindFindArea {
				continue
			}
			lo, hi := c.BackgroundShape.Bounds()
			assert.GreaterOrEqual(t, lo.X, 0.0)
			assert.GreaterOrEqual(t, lo.Y, 0.0)
			assert.LessOrEqual(t, hi.X, float64(board.Width)*board.UnitLength)
			assert.LessOrEqual(t, hi.Y, float64(board.Height)*board.UnitLength)
		}
	}
}

func TestGenerator_LogsSet(t *testing.T) {
	t.Parallel()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := generator.New(generator.WithSeed(3), generator.WithLogger(logger))
	require.NoError(t, err)
	generate(t, g, 4)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "challenge set generated", entry.Message)
	assert.Equal(t, 4, entry.Data["level"])
	assert.Equal(t, 6, entry.Data["challenges"])
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { generator.WithBoard(generator.Board{Width: 11, Height: 8, UnitLength: 1}) })
	assert.Panics(t, func() { generator.WithBoard(generator.Board{Width: 12, Height: 7, UnitLength: 1}) })
	assert.Panics(t, func() { generator.WithBoard(generator.Board{Width: 12, Height: 8}) })
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithRetryLimit(0) })
	assert.Panics(t, func() { generator.WithMaxSamplingAttempts(0) })
	assert.Panics(t, func() { generator.WithLogger(nil) })
	assert.NotPanics(t, func() { generator.WithBoard(generator.DefaultBoard()) })
}
