//go:build unit

package clock_test

import (
	"testing"
	"time"

	"tripmatch/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestStamp(t *testing.T) {
	loc := time.FixedZone("JST", 9*60*60)
	c := clock.NewMockClock(time.Date(2026, 5, 1, 19, 0, 0, 123456789, loc))

	got := clock.Stamp(c)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2026, 5, 1, 10, 0, 0, 123456000, time.UTC), got)
}

func TestSteppingClock(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	c := clock.NewSteppingClock(start, time.Second)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Second), c.Now())

	c.Add(time.Minute)
	assert.Equal(t, start.Add(time.Minute+2*time.Second), c.Now())
}

func TestMockClock_Fixed(t *testing.T) {
	start := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, c.Now(), c.Now())
	c.Set(start.Add(time.Hour))
	assert.Equal(t, start.Add(time.Hour), c.Now())
}
