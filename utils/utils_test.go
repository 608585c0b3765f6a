package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateTrackerRate(t *testing.T) {
	u := UpdateTracker{}
	u.Init(4)
	start := u.Time
	for i := 1; i <= 8; i++ {
		u.UpdateAt(start.Add(time.Duration(i) * 50 * time.Millisecond))
	}
	assert.InDelta(t, 20, u.Rate(), 1e-6)
	assert.Equal(t, uint64(8), u.Count)
}

func TestUpdateTrackerNoUpdates(t *testing.T) {
	u := UpdateTracker{}
	u.Init(2)
	assert.Equal(t, 0.0, u.Rate())
}

func TestCheck(t *testing.T) {
	assert.NotPanics(t, func() { Check(nil) })
	assert.Panics(t, func() { Check(errors.New("boom")) })
	assert.NotPanics(t, func() { Loge(errors.New("logged"), "key", "value") })
}
