package math

import (
	m "math"
)

const (
	R          = 6373000.0 // approximate radius of earth in meters
	TO_RADIANS = m.Pi / 180
)

func NewPosition(latDeg, lonDeg float64) Position {
	return Position{latitudeDeg: latDeg, longitudeDeg: lonDeg}
}

type Position struct {
	latitudeDeg  float64
	longitudeDeg float64
}

func (p *Position) LatRad() float64 {
	return p.latitudeDeg * TO_RADIANS
}

func (p *Position) LonRad() float64 {
	return p.longitudeDeg * TO_RADIANS
}

// ToLocal maps p onto a plane tangent at origin using an equirectangular
// approximation. X points east and Y points north, both in metres. Only
// accurate for the few kilometres a reference path spans.
func (p *Position) ToLocal(origin Position) Vector {
	cosLat := m.Cos(origin.LatRad())
	return Vector{
		X: (p.LonRad() - origin.LonRad()) * cosLat * R,
		Y: (p.LatRad() - origin.LatRad()) * R,
	}
}
