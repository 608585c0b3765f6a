package refline

import (
	m "pfeifer.dev/refmatch/math"
)

// FromPoints builds a path from raw planar samples. S accumulates the
// straight line distance between samples, heading follows the local chord
// and curvature comes from the circle through each point and its
// neighbours. The samples are not smoothed or resampled.
func FromPoints(points []m.Vector) Path {
	path := make(Path, len(points))
	for i, p := range points {
		path[i].X = p.X
		path[i].Y = p.Y
		if i > 0 {
			path[i].S = path[i-1].S + points[i-1].DistanceTo(p)
		}
	}
	if len(points) < 2 {
		return path
	}

	for i := range points {
		prev := max(i-1, 0)
		next := min(i+1, len(points)-1)
		chord := points[next].Subtract(points[prev])
		if chord.Norm() == 0 {
			if i > 0 {
				path[i].Theta = path[i-1].Theta
			}
			continue
		}
		path[i].Theta = chord.Heading()
	}

	if len(points) < 3 {
		return path
	}
	for i := 1; i < len(points)-1; i++ {
		path[i].Kappa = m.CalculateCurvature(points[i-1], points[i], points[i+1]).Curvature
	}
	path[0].Kappa = path[1].Kappa
	path[len(path)-1].Kappa = path[len(path)-2].Kappa

	derive(path, func(p *PathPoint) float64 { return p.Kappa }, func(p *PathPoint, v float64) { p.Dkappa = v })
	derive(path, func(p *PathPoint) float64 { return p.Dkappa }, func(p *PathPoint, v float64) { p.Ddkappa = v })
	return path
}

// derive fills a derivative with respect to s using central differences.
func derive(path Path, get func(*PathPoint) float64, set func(*PathPoint, float64)) {
	values := make([]float64, len(path))
	for i := range path {
		prev := max(i-1, 0)
		next := min(i+1, len(path)-1)
		ds := path[next].S - path[prev].S
		if ds == 0 {
			continue
		}
		values[i] = (get(&path[next]) - get(&path[prev])) / ds
	}
	for i := range path {
		set(&path[i], values[i])
	}
}
