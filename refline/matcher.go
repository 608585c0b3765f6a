package refline

import (
	gm "math"
	"sort"

	"github.com/pkg/errors"

	m "pfeifer.dev/refmatch/math"
)

// FindNearestIndex returns the index of the path point closest to (x, y).
// Ties resolve to the lowest index.
func FindNearestIndex(path Path, x, y float64) (int, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	return nearestInRange(path, m.Vector{X: x, Y: y}, 0, len(path)-1), nil
}

// FindNearestIndexNear only scans the points within radius of hint. A
// negative radius or a hint outside the path scans the whole path.
func FindNearestIndexNear(path Path, x, y float64, hint int, radius int) (int, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}
	if radius < 0 || hint < 0 || hint >= len(path) {
		return FindNearestIndex(path, x, y)
	}
	start := max(hint-radius, 0)
	end := min(hint+radius, len(path)-1)
	return nearestInRange(path, m.Vector{X: x, Y: y}, start, end), nil
}

func nearestInRange(path Path, pos m.Vector, start, end int) int {
	minIdx := start
	minDistance := path[start].Pos().DistanceSquaredTo(pos)
	for i := start + 1; i <= end; i++ {
		distance := path[i].Pos().DistanceSquaredTo(pos)
		if distance < minDistance {
			minDistance = distance
			minIdx = i
		}
	}
	return minIdx
}

// Project maps (x, y) onto the line through p0 and p1 and returns the path
// point at the projected arc length. The projection is not clamped to the
// segment. Coincident points return p0.
func Project(p0, p1 PathPoint, x, y float64) PathPoint {
	line := m.Line{Start: p0.Pos(), End: p1.Pos()}
	deltaS, ok := line.Offset(m.Vector{X: x, Y: y})
	if !ok {
		return p0
	}
	return InterpolateLinear(p0, p1, p0.S+deltaS)
}

// LocateByS returns the point at arc length s. Values before the first or
// after the last point return that point unchanged.
func LocateByS(path Path, s float64) (PathPoint, error) {
	if len(path) == 0 {
		return PathPoint{}, ErrEmptyPath
	}
	idx := sort.Search(len(path), func(i int) bool {
		return path[i].S >= s
	})
	if idx == 0 {
		return path[0], nil
	}
	if idx == len(path) {
		return path[len(path)-1], nil
	}
	return InterpolateLinear(path[idx-1], path[idx], s), nil
}

// MatchXY projects (x, y) onto the chord spanning the neighbours of the
// nearest path point.
func MatchXY(path Path, x, y float64) (PathPoint, error) {
	idx, err := FindNearestIndex(path, x, y)
	if err != nil {
		return PathPoint{}, err
	}
	matched, _ := matchWindow(path, idx, x, y)
	return matched, nil
}

// MatchXYBestSegment tests the two segments adjacent to the nearest point
// separately and keeps the one that passes closest to (x, y).
func MatchXYBestSegment(path Path, x, y float64) (PathPoint, error) {
	idx, err := FindNearestIndex(path, x, y)
	if err != nil {
		return PathPoint{}, err
	}
	matched, _ := matchBestSegment(path, idx, x, y)
	return matched, nil
}

// ToPathCoordinates returns the arc length and lateral distance of (x, y)
// relative to path.
func ToPathCoordinates(path Path, x, y float64) (Coordinate, error) {
	idx, err := FindNearestIndex(path, x, y)
	if err != nil {
		return Coordinate{}, err
	}
	matched, segment := matchWindow(path, idx, x, y)
	return coordinate(matched, segment, x, y), nil
}

// matchWindow returns the matched point and the segment it was projected
// on. The segment is degenerate when no projection was possible.
func matchWindow(path Path, idx int, x, y float64) (PathPoint, m.Line) {
	start := max(idx-1, 0)
	end := min(idx+1, len(path)-1)
	if start == end {
		return path[start], m.Line{Start: path[start].Pos(), End: path[start].Pos()}
	}
	return Project(path[start], path[end], x, y), m.Line{Start: path[start].Pos(), End: path[end].Pos()}
}

func matchBestSegment(path Path, idx int, x, y float64) (PathPoint, m.Line) {
	pos := m.Vector{X: x, Y: y}
	best := -1
	bestDistance := 0.0
	for _, start := range [...]int{idx - 1, idx} {
		end := start + 1
		if start < 0 || end >= len(path) {
			continue
		}
		line := m.Line{Start: path[start].Pos(), End: path[end].Pos()}
		if line.Degenerate() {
			continue
		}
		distance := line.NearestPosition(pos).Pos.DistanceSquaredTo(pos)
		if best < 0 || distance < bestDistance {
			best = start
			bestDistance = distance
		}
	}
	if best < 0 {
		return path[idx], m.Line{Start: path[idx].Pos(), End: path[idx].Pos()}
	}
	return Project(path[best], path[best+1], x, y), m.Line{Start: path[best].Pos(), End: path[best+1].Pos()}
}

func coordinate(matched PathPoint, segment m.Line, x, y float64) Coordinate {
	pos := m.Vector{X: x, Y: y}
	offset := pos.Subtract(matched.Pos())
	res := Coordinate{S: matched.S, Lateral: offset.Norm()}

	direction := segment.End.Subtract(segment.Start)
	if segment.Degenerate() {
		direction = m.Vector{X: gm.Cos(matched.Theta), Y: gm.Sin(matched.Theta)}
	}
	cross := direction.Cross(offset)
	switch {
	case res.Lateral == 0 || cross == 0:
		res.Side = 0
	case cross > 0:
		res.Side = 1
	default:
		res.Side = -1
	}
	return res
}

type Strategy string

const (
	STRATEGY_WINDOW       Strategy = "window"
	STRATEGY_BEST_SEGMENT Strategy = "best_segment"
)

func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case STRATEGY_WINDOW, "":
		return STRATEGY_WINDOW, nil
	case STRATEGY_BEST_SEGMENT:
		return STRATEGY_BEST_SEGMENT, nil
	}
	return STRATEGY_WINDOW, errors.Errorf("unknown match strategy %q", name)
}

// Matcher selects how a query is projected once the nearest point is known.
// The zero value uses STRATEGY_WINDOW.
type Matcher struct {
	Strategy Strategy
}

// MatchFromIndex matches (x, y) given the index of the nearest point.
func (mt Matcher) MatchFromIndex(path Path, idx int, x, y float64) (PathPoint, Coordinate, error) {
	if len(path) == 0 {
		return PathPoint{}, Coordinate{}, ErrEmptyPath
	}
	if idx < 0 || idx >= len(path) {
		return PathPoint{}, Coordinate{}, errors.Errorf("nearest index %d outside path of %d points", idx, len(path))
	}
	var matched PathPoint
	var segment m.Line
	if mt.Strategy == STRATEGY_BEST_SEGMENT {
		matched, segment = matchBestSegment(path, idx, x, y)
	} else {
		matched, segment = matchWindow(path, idx, x, y)
	}
	return matched, coordinate(matched, segment, x, y), nil
}

func (mt Matcher) Match(path Path, x, y float64) (PathPoint, Coordinate, error) {
	idx, err := FindNearestIndex(path, x, y)
	if err != nil {
		return PathPoint{}, Coordinate{}, err
	}
	return mt.MatchFromIndex(path, idx, x, y)
}

func (mt Matcher) Locate(path Path, s float64) (PathPoint, error) {
	return LocateByS(path, s)
}
