package clock

import (
	"sync"
	"time"
)

// Monotonic returns wall-clock timestamps that never go backwards, truncated
// to microseconds so they survive a round trip through postgres.
type Monotonic struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func NewMonotonic(now func() time.Time) *Monotonic {
	if now == nil {
		now = time.Now
	}
	return &Monotonic{now: now}
}

func (m *Monotonic) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.now().UTC().Truncate(time.Microsecond)
	if t.Before(m.last) {
		t = m.last
	}
	m.last = t
	return t
}
