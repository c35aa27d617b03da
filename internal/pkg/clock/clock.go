package clock

import (
	"sync"
	"time"
)

// Precision is the finest timestamp resolution every store keeps.
// Entries are stamped at this precision so ordering survives a round trip.
const Precision = time.Microsecond

type Clock interface {
	Now() time.Time
}

// Stamp reads c in UTC at storage precision.
func Stamp(c Clock) time.Time {
	return c.Now().UTC().Truncate(Precision)
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is safe for concurrent use. With a non-zero step every Now call
// advances the clock afterwards, giving each caller a distinct instant.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	step        time.Duration
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func NewSteppingClock(t time.Time, step time.Duration) *MockClock {
	return &MockClock{currentTime: t, step: step}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.currentTime
	c.currentTime = c.currentTime.Add(c.step)
	return now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
