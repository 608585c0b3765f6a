package math

import (
	m "math"
)

type Box struct {
	MinPos Vector
	MaxPos Vector
}

// EmptyBox is inverted so that the first Extend sets both corners.
func EmptyBox() Box {
	return Box{
		MinPos: Vector{X: m.Inf(1), Y: m.Inf(1)},
		MaxPos: Vector{X: m.Inf(-1), Y: m.Inf(-1)},
	}
}

func (b *Box) Extend(p Vector) {
	b.MinPos.X = min(b.MinPos.X, p.X)
	b.MinPos.Y = min(b.MinPos.Y, p.Y)
	b.MaxPos.X = max(b.MaxPos.X, p.X)
	b.MaxPos.Y = max(b.MaxPos.Y, p.Y)
}

func (b Box) PosInside(p Vector) bool {
	return p.X >= b.MinPos.X && p.X <= b.MaxPos.X && p.Y >= b.MinPos.Y && p.Y <= b.MaxPos.Y
}

func (b Box) Overlap(overlap float64) Box {
	return Box{
		MinPos: Vector{X: b.MinPos.X - overlap, Y: b.MinPos.Y - overlap},
		MaxPos: Vector{X: b.MaxPos.X + overlap, Y: b.MaxPos.Y + overlap},
	}
}

func (b Box) Width() float64 {
	return b.MaxPos.X - b.MinPos.X
}

func (b Box) Height() float64 {
	return b.MaxPos.Y - b.MinPos.Y
}
