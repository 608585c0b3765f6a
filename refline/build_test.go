package refline

import (
	gm "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pfeifer.dev/refmatch/math"
)

func pts(coords ...float64) []m.Vector {
	res := make([]m.Vector, len(coords)/2)
	for i := range res {
		res[i] = m.NewVector(coords[2*i], coords[2*i+1])
	}
	return res
}

func TestFromPointsStraight(t *testing.T) {
	path := FromPoints(pts(0, 0, 1, 0, 2, 0))
	require.Len(t, path, 3)
	for i, p := range path {
		assert.Equal(t, float64(i), p.S)
		assert.Equal(t, 0.0, p.Theta)
		assert.Equal(t, 0.0, p.Kappa)
	}
	assert.NoError(t, path.Validate())
	assert.Equal(t, 2.0, path.Length())
}

func TestFromPointsCircle(t *testing.T) {
	points := make([]m.Vector, 21)
	for k := range points {
		phi := float64(k) * gm.Pi / 20
		points[k] = m.NewVector(10*gm.Cos(phi), 10*gm.Sin(phi))
	}
	path := FromPoints(points)
	require.NoError(t, path.Validate())

	for i := 1; i < len(path)-1; i++ {
		assert.InDelta(t, 0.1, path[i].Kappa, 1e-9)
		assert.InDelta(t, 0, path[i].Dkappa, 1e-6)
	}
	assert.InDelta(t, 0.1, path[0].Kappa, 1e-9)
	assert.InDelta(t, gm.Pi/2+gm.Pi/40, path[0].Theta, 1e-9)
	assert.InDelta(t, gm.Pi, gm.Abs(path[10].Theta), 1e-9)

	chord := 2 * 10 * gm.Sin(gm.Pi/40)
	assert.InDelta(t, 20*chord, path.Length(), 1e-9)
}

func TestFromPointsShort(t *testing.T) {
	assert.Empty(t, FromPoints(nil))

	single := FromPoints(pts(3, 4))
	require.Len(t, single, 1)
	assert.Equal(t, PathPoint{X: 3, Y: 4}, single[0])

	pair := FromPoints(pts(0, 0, 0, 2))
	assert.InDelta(t, gm.Pi/2, pair[0].Theta, 1e-12)
	assert.InDelta(t, gm.Pi/2, pair[1].Theta, 1e-12)
	assert.Equal(t, 2.0, pair[1].S)
}

func TestFromPointsRepeatedSample(t *testing.T) {
	path := FromPoints(pts(0, 0, 1, 1, 1, 1, 2, 2))
	require.NoError(t, path.Validate())
	assert.Equal(t, path[1].S, path[2].S)
	for _, p := range path {
		assert.True(t, p.IsFinite())
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Path{}.Validate(), ErrEmptyPath)

	decreasing := Path{{S: 0}, {X: 1, S: 2}, {X: 2, S: 1}}
	assert.ErrorIs(t, decreasing.Validate(), ErrNonMonotonic)

	nan := Path{{S: 0}, {X: gm.NaN(), S: 1}}
	assert.ErrorIs(t, nan.Validate(), ErrNonFinite)

	duplicates := Path{{S: 0}, {S: 0}, {X: 1, S: 1}}
	assert.NoError(t, duplicates.Validate())
}

func TestBounds(t *testing.T) {
	path := FromPoints(pts(-1, 2, 3, -4, 0, 0))
	box := path.Bounds()
	assert.Equal(t, m.NewVector(-1, -4), box.MinPos)
	assert.Equal(t, m.NewVector(3, 2), box.MaxPos)
}

func TestInterpolateLinear(t *testing.T) {
	p0 := PathPoint{X: 0, Y: 0, S: 0, Theta: 0, Kappa: 0.1, Dkappa: 1}
	p1 := PathPoint{X: 4, Y: 2, S: 10, Theta: gm.Pi / 2, Kappa: 0.3, Dkappa: 3}

	mid := InterpolateLinear(p0, p1, 5)
	assert.InDelta(t, 2, mid.X, 1e-12)
	assert.InDelta(t, 1, mid.Y, 1e-12)
	assert.Equal(t, 5.0, mid.S)
	assert.InDelta(t, gm.Pi/4, mid.Theta, 1e-12)
	assert.InDelta(t, 0.2, mid.Kappa, 1e-12)
	assert.InDelta(t, 2, mid.Dkappa, 1e-12)

	assert.Equal(t, p0.X, InterpolateLinear(p0, p1, 0).X)
	assert.Equal(t, p1.X, InterpolateLinear(p0, p1, 10).X)

	same := PathPoint{X: 9, Y: 9, S: 0}
	assert.Equal(t, p0, InterpolateLinear(p0, same, 0.5))
}
