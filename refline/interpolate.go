package refline

import (
	m "pfeifer.dev/refmatch/math"
)

// InterpolateLinear blends p0 and p1 at arc length s. The ratio is not
// clamped, so s outside [p0.S, p1.S] extrapolates along the chord. When both
// points share the same s there is nothing to blend and p0 is returned.
func InterpolateLinear(p0, p1 PathPoint, s float64) PathPoint {
	ds := p1.S - p0.S
	if ds == 0 {
		return p0
	}
	weight := (s - p0.S) / ds

	return PathPoint{
		X:       m.Lerp(p0.X, p1.X, weight),
		Y:       m.Lerp(p0.Y, p1.Y, weight),
		S:       s,
		Theta:   m.Slerp(p0.Theta, p1.Theta, weight),
		Kappa:   m.Lerp(p0.Kappa, p1.Kappa, weight),
		Dkappa:  m.Lerp(p0.Dkappa, p1.Dkappa, weight),
		Ddkappa: m.Lerp(p0.Ddkappa, p1.Ddkappa, weight),
	}
}
