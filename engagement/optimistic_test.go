package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimisticConfirm(t *testing.T) {
	o := NewOptimistic(false)

	o.Begin(true)
	assert.True(t, o.Value())
	assert.True(t, o.Pending())
	assert.Equal(t, 1, o.CounterDelta())

	o.Confirm()
	assert.True(t, o.Value())
	assert.False(t, o.Pending())
	assert.Equal(t, 0, o.CounterDelta())
}

func TestOptimisticRevert(t *testing.T) {
	o := NewOptimistic(true)

	o.Begin(false)
	assert.False(t, o.Value())
	assert.Equal(t, -1, o.CounterDelta())

	o.Revert()
	assert.True(t, o.Value())
	assert.False(t, o.Pending())
	assert.Equal(t, 0, o.CounterDelta())
}

func TestOptimisticRetarget(t *testing.T) {
	o := NewOptimistic(false)

	// User taps twice before the first call settles; intended state ends
	// where it started, so the displayed counter should not move.
	o.Begin(true)
	o.Begin(false)
	assert.False(t, o.Value())
	assert.Equal(t, 0, o.CounterDelta())

	o.Confirm()
	assert.False(t, o.Value())
}

func TestOptimisticConfirmWithoutBegin(t *testing.T) {
	o := NewOptimistic(true)
	o.Confirm()
	assert.True(t, o.Value())
	assert.False(t, o.Pending())
}
