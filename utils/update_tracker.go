package utils

import (
	"time"

	m "pfeifer.dev/refmatch/math"
)

// UpdateTracker keeps a moving average of the time between updates.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
	Count    uint64
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = u.LastTime
	u.Count = 0
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.UpdateAt(time.Now())
}

func (u *UpdateTracker) UpdateAt(now time.Time) {
	u.LastTime = u.Time
	u.Time = now
	u.Count += 1
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}

// Rate is the average number of updates per second.
func (u *UpdateTracker) Rate() float64 {
	if u.DiffMA.Estimate <= 0 {
		return 0
	}
	return 1 / u.DiffMA.Estimate
}
