package refline

import (
	gm "math"

	"github.com/pkg/errors"

	m "pfeifer.dev/refmatch/math"
)

var (
	ErrEmptyPath    = errors.New("empty reference path")
	ErrNonMonotonic = errors.New("reference path s is decreasing")
	ErrNonFinite    = errors.New("reference path has a non finite value")
)

// PathPoint is one sampled pose of a reference path. S is the cumulative
// arc length from the first point of the path.
type PathPoint struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	S       float64 `json:"s"`
	Theta   float64 `json:"theta"`
	Kappa   float64 `json:"kappa"`
	Dkappa  float64 `json:"dkappa"`
	Ddkappa float64 `json:"ddkappa"`
}

func (p PathPoint) Pos() m.Vector {
	return m.Vector{X: p.X, Y: p.Y}
}

func (p PathPoint) IsFinite() bool {
	if !p.Pos().IsFinite() {
		return false
	}
	for _, v := range [...]float64{p.S, p.Theta, p.Kappa, p.Dkappa, p.Ddkappa} {
		if gm.IsNaN(v) || gm.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Path is an ordered reference path. Functions in this package never modify
// it, so a Path may be shared between goroutines as long as the owner does
// not write to it concurrently.
type Path []PathPoint

// Coordinate is a position expressed relative to a reference path.
// Lateral is never negative. Side is +1 when the query is left of the
// matched heading, -1 when right and 0 when it lies on the path.
type Coordinate struct {
	S       float64 `json:"s"`
	Lateral float64 `json:"lateral"`
	Side    int     `json:"side"`
}

// Signed returns the lateral offset with its side applied.
func (c Coordinate) Signed() float64 {
	return float64(c.Side) * c.Lateral
}

func (p Path) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPath
	}
	for i, point := range p {
		if !point.IsFinite() {
			return errors.Wrapf(ErrNonFinite, "point %d", i)
		}
		if i > 0 && point.S < p[i-1].S {
			return errors.Wrapf(ErrNonMonotonic, "point %d has s %f after %f", i, point.S, p[i-1].S)
		}
	}
	return nil
}

func (p Path) Length() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1].S - p[0].S
}

func (p Path) Bounds() m.Box {
	box := m.EmptyBox()
	for _, point := range p {
		box.Extend(point.Pos())
	}
	return box
}
