package clock_test

import (
	"testing"
	"time"

	"github.com/goto/remark/pkg/clock"
	"github.com/stretchr/testify/assert"
)

func TestMonotonic(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	ticks := []time.Time{
		base,
		base.Add(-time.Minute), // clock stepped back
		base.Add(1500 * time.Nanosecond),
		base.Add(time.Second),
	}
	i := 0
	c := clock.NewMonotonic(func() time.Time {
		t := ticks[i]
		i++
		return t
	})

	assert.Equal(t, base, c.Now())
	assert.Equal(t, base, c.Now())
	assert.Equal(t, base.Add(time.Microsecond), c.Now())
	assert.Equal(t, base.Add(time.Second), c.Now())
}
