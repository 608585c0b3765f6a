package settings

import (
	"time"
)

const (
	LOOP_DELAY            = 50 * time.Millisecond
	DEFAULT_SEARCH_RADIUS = 10
	LOAD_RETRIES          = 3
)

// BOUNDS_MARGIN is how far in metres a query may lie outside the path
// bounds and still be reported in bounds.
const BOUNDS_MARGIN = 50.0
