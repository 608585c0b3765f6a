package refline

// Tracker matches a stream of queries that move along the same path. It
// remembers the previous nearest index and only searches around it.
type Tracker struct {
	Matcher      Matcher
	SearchRadius int

	lastIndex int
	tracking  bool
}

func (t *Tracker) Reset() {
	t.tracking = false
	t.lastIndex = 0
}

func (t *Tracker) LastIndex() (int, bool) {
	return t.lastIndex, t.tracking
}

func (t *Tracker) Match(path Path, x, y float64) (PathPoint, Coordinate, error) {
	idx, err := t.nearest(path, x, y)
	if err != nil {
		t.Reset()
		return PathPoint{}, Coordinate{}, err
	}
	t.lastIndex = idx
	t.tracking = true
	return t.Matcher.MatchFromIndex(path, idx, x, y)
}

func (t *Tracker) nearest(path Path, x, y float64) (int, error) {
	if !t.tracking || t.SearchRadius < 0 || t.lastIndex >= len(path) {
		return FindNearestIndex(path, x, y)
	}
	idx, err := FindNearestIndexNear(path, x, y, t.lastIndex, t.SearchRadius)
	if err != nil {
		return 0, err
	}
	// a minimum on the window edge may continue outside of it
	start := max(t.lastIndex-t.SearchRadius, 0)
	end := min(t.lastIndex+t.SearchRadius, len(path)-1)
	if (idx == start && start > 0) || (idx == end && end < len(path)-1) {
		return FindNearestIndex(path, x, y)
	}
	return idx, nil
}
