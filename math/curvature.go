package math

import (
	m "math"
)

type Curvature struct {
	Curvature, ArcLength, Angle float64
	Pos                         Vector
}

// CalculateCurvature returns the signed curvature of the circle through a,
// b and c, evaluated at b. Positive curvature turns left.
func CalculateCurvature(a Vector, b Vector, c Vector) Curvature {
	lengthA := a.DistanceTo(b)
	lengthB := a.DistanceTo(c)
	lengthC := b.DistanceTo(c)

	lengthProd := lengthA * lengthB * lengthC
	if lengthProd == 0 {
		return Curvature{Pos: b}
	}

	// twice the signed triangle area
	area2 := b.Subtract(a).Cross(c.Subtract(a))
	if area2 == 0 {
		return Curvature{Pos: b, ArcLength: lengthB}
	}

	res := Curvature{Pos: b}
	res.Curvature = 2 * area2 / lengthProd
	radius := 1.0 / m.Abs(res.Curvature)

	num := radius*radius*2 - lengthB*lengthB
	den := 2 * radius * radius
	res.Angle = m.Acos(max(-1, min(1, num/den)))

	res.ArcLength = radius * res.Angle

	return res
}
