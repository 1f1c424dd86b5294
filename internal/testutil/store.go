package testutil

import (
	"sync"
	"testing"
	"time"

	"bancada/internal/store"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Clock is a settable time source for tests.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ReferenceTime is the fixed instant tests start their clocks at.
var ReferenceTime = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

// SetupStore returns an empty store driven by a clock starting at ReferenceTime.
func SetupStore(t *testing.T) (*store.Store, *Clock) {
	t.Helper()
	clock := NewClock(ReferenceTime)
	return store.New(zap.NewNop(), clock.Now), clock
}

// SetupSeededStore returns a store loaded with the default startup dataset.
func SetupSeededStore(t *testing.T) (*store.Store, *Clock) {
	t.Helper()
	s, clock := SetupStore(t)
	require.NoError(t, s.Seed(store.DefaultSeed(clock.Now())))
	return s, clock
}
