package perimeter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipHorizontal_MirrorsAboutExtent(t *testing.T) {
	in := []Point{{X: 1, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 2}}
	got := FlipHorizontal(in)

	assert.Equal(t, []Point{{X: 3, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 2}}, got)
	// input untouched
	assert.Equal(t, Point{X: 1, Y: 0}, in[0])
}

func TestFlipVertical_MirrorsAboutExtent(t *testing.T) {
	in := []Point{{X: 0, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 5}}
	got := FlipVertical(in)

	assert.Equal(t, []Point{{X: 0, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 2}}, got)
}

func TestFlip_Involution(t *testing.T) {
	in := []Point{{X: 0, Y: 0}, {X: 5, Y: 1}, {X: 2, Y: 7}, {X: -3, Y: 4}}

	assert.Equal(t, in, FlipHorizontal(FlipHorizontal(in)))
	assert.Equal(t, in, FlipVertical(FlipVertical(in)))
}

// Both flips together equal a 180° rotation about the extent centre.
func TestFlip_BothIsHalfTurn(t *testing.T) {
	in := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 2}, {X: 1, Y: 3}}
	lo, hi := extent(in)
	cx, cy := (lo.X+hi.X)/2, (lo.Y+hi.Y)/2

	got := FlipVertical(FlipHorizontal(in))
	for i, p := range in {
		assert.InDelta(t, 2*cx-p.X, got[i].X, 1e-12)
		assert.InDelta(t, 2*cy-p.Y, got[i].Y, 1e-12)
	}
}

func TestFlip_PreservesArea(t *testing.T) {
	st := Style{UnitLength: 10}
	shapes := []Shape{}
	for _, c := range Corners {
		s, err := LShape(0, 0, 60, 40, c, 20, 10, st)
		assert.NoError(t, err)
		shapes = append(shapes, s)
	}
	s, err := DiagonalCornerShape(10, 20, 60, 50, LeftTop, 20, 10, 20, st)
	assert.NoError(t, err)
	shapes = append(shapes, s)

	for _, s := range shapes {
		loop := s.Exterior[0]
		want := math.Abs(signedArea(loop))
		flipped := FlipVertical(FlipHorizontal(loop))
		assert.InDelta(t, want, math.Abs(signedArea(flipped)), 1e-9)

		lo, hi := extent(loop)
		flo, fhi := extent(flipped)
		assert.Equal(t, lo, flo)
		assert.Equal(t, hi, fhi)
	}
}

func TestFlip_Empty(t *testing.T) {
	assert.Empty(t, FlipHorizontal(nil))
	assert.Empty(t, FlipVertical([]Point{}))
}

func TestBuilders_WindingNormalized(t *testing.T) {
	st := Style{UnitLength: 10}
	var shapes []Shape
	for _, c := range Corners {
		l, err := LShape(0, 0, 60, 40, c, 20, 10, st)
		assert.NoError(t, err)
		d, err := DiagonalCornerShape(0, 0, 60, 50, c, 20, 10, 20, st)
		assert.NoError(t, err)
		tri, err := SlantedHypotenuseTriangle(0, 0, 40, c, st)
		assert.NoError(t, err)
		shapes = append(shapes, l, d, tri)
	}
	for _, side := range Sides {
		u, err := UShape(0, 0, 60, 50, side, 10, 10, 10, st)
		assert.NoError(t, err)
		tri, err := LevelHypotenuseTriangle(0, 0, 40, side, st)
		assert.NoError(t, err)
		shapes = append(shapes, u, tri)
	}
	o, err := OShape(0, 0, 50, 40, 20, 10, 10, 10, st)
	assert.NoError(t, err)
	shapes = append(shapes, o)

	for i, s := range shapes {
		for _, loop := range s.Exterior {
			assert.Greater(t, signedArea(loop), 0.0, "shape %d exterior", i)
		}
		for _, loop := range s.Interior {
			assert.Less(t, signedArea(loop), 0.0, "shape %d interior", i)
		}
	}
}

func TestWind_ReversesOnlyWhenNeeded(t *testing.T) {
	cw := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	assert.Equal(t, cw, wind(cw, true))
	assert.Equal(t, []Point{{0, 1}, {1, 1}, {1, 0}, {0, 0}}, wind(cw, false))
}
