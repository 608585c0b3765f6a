package math

import (
	m "math"
)

// NormalizeAngle wraps an angle in radians to [-pi, pi).
func NormalizeAngle(angle float64) float64 {
	a := m.Mod(angle+m.Pi, 2*m.Pi)
	if a < 0 {
		a += 2 * m.Pi
	}
	return a - m.Pi
}

// Lerp returns exactly a at t=0 and exactly b at t=1.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Slerp blends two headings along the shortest arc between them. The
// endpoints are returned unchanged at t=0 and t=1.
func Slerp(a0, a1, t float64) float64 {
	if t == 0 || a0 == a1 {
		return a0
	}
	if t == 1 {
		return a1
	}
	a0n := NormalizeAngle(a0)
	a1n := NormalizeAngle(a1)
	d := a1n - a0n
	if d > m.Pi {
		d -= 2 * m.Pi
	} else if d < -m.Pi {
		d += 2 * m.Pi
	}
	return NormalizeAngle(a0n + d*t)
}
