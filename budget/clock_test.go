package budget_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/evoclust/budget"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ elapsed time.Duration }

func (f *fakeClock) Elapsed() time.Duration { return f.elapsed }

func TestDeadline_ExhaustedAndRemaining(t *testing.T) {
	fc := &fakeClock{elapsed: 0}
	d := budget.NewDeadline(fc, 10*time.Second)
	assert.False(t, d.Exhausted())
	assert.Equal(t, 10*time.Second, d.Remaining())

	fc.elapsed = 5 * time.Second
	assert.False(t, d.Exhausted())
	assert.Equal(t, 5*time.Second, d.Remaining())

	fc.elapsed = 11 * time.Second
	assert.True(t, d.Exhausted())
	assert.Equal(t, time.Duration(0), d.Remaining())
}

func TestRealClock_ElapsedIncreases(t *testing.T) {
	c := budget.NewRealClock()
	time.Sleep(2 * time.Millisecond)
	assert.Greater(t, c.Elapsed(), time.Duration(0))
}
