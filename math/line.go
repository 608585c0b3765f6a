package math

type Line struct {
	Start, End Vector
}

type LinePosition struct {
	Pos Vector
	T   float64
}

func (l *Line) Degenerate() bool {
	return l.Start.Equals(l.End)
}

// NearestPosition clamps the projection to the segment.
func (l *Line) NearestPosition(pos Vector) LinePosition {
	AB := l.End.Subtract(l.Start)
	if l.Degenerate() {
		return LinePosition{Pos: l.Start, T: 0}
	}
	AP := pos.Subtract(l.Start)
	t := AP.Dot(AB) / AB.Dot(AB)

	t = max(0, min(1, t))
	closest := l.Start.Add(AB.Scale(t))
	return LinePosition{Pos: closest, T: t}
}

// Offset returns the signed distance along the line from Start to the
// orthogonal projection of pos. The projection is not clamped to the
// segment. ok is false when Start and End coincide.
func (l *Line) Offset(pos Vector) (offset float64, ok bool) {
	AB := l.End.Subtract(l.Start)
	norm := AB.Norm()
	if norm == 0 {
		return 0, false
	}
	return pos.Subtract(l.Start).Dot(AB) / norm, true
}
