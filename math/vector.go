package math

import (
	m "math"
)

type Vector struct {
	X float64
	Y float64
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross is the z component of the 3d cross product.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) Norm() float64 {
	return m.Hypot(v.X, v.Y)
}

func (v Vector) DistanceTo(other Vector) float64 {
	return m.Hypot(v.X-other.X, v.Y-other.Y)
}

func (v Vector) DistanceSquaredTo(other Vector) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

func (v Vector) Equals(other Vector) bool {
	return v.X == other.X && v.Y == other.Y
}

// Heading is measured counter clockwise from the x axis.
func (v Vector) Heading() float64 {
	return m.Atan2(v.Y, v.X)
}

func (v Vector) IsFinite() bool {
	return !(m.IsNaN(v.X) || m.IsNaN(v.Y) || m.IsInf(v.X, 0) || m.IsInf(v.Y, 0))
}
