package schedule_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/signup/internal/schedule"
)

func TestManual_FiresInDueOrder(t *testing.T) {
	m := schedule.NewManual()
	var order []string

	m.AfterFunc(5*time.Second, func() { order = append(order, "hide") })
	m.AfterFunc(2*time.Second, func() { order = append(order, "reset") })

	m.Advance(1 * time.Second)
	assert.Empty(t, order)
	assert.Equal(t, 2, m.Pending())

	m.Advance(1 * time.Second)
	assert.Equal(t, []string{"reset"}, order)

	m.Advance(3 * time.Second)
	assert.Equal(t, []string{"reset", "hide"}, order)
	assert.Zero(t, m.Pending())
	assert.Equal(t, 5*time.Second, m.Elapsed())
}

func TestManual_ChainedCallbacks(t *testing.T) {
	m := schedule.NewManual()
	var fired []time.Duration

	m.AfterFunc(2*time.Second, func() {
		fired = append(fired, m.Elapsed())
		m.AfterFunc(5*time.Second, func() {
			fired = append(fired, m.Elapsed())
		})
	})

	m.Advance(6 * time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second}, fired, "chained timer is due at 7s")

	m.Advance(1 * time.Second)
	assert.Equal(t, []time.Duration{2 * time.Second, 7 * time.Second}, fired)
}

func TestManual_Stop(t *testing.T) {
	m := schedule.NewManual()
	called := false

	timer := m.AfterFunc(time.Second, func() { called = true })
	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop is a no-op")

	m.Advance(time.Minute)
	assert.False(t, called)

	fired := m.AfterFunc(time.Second, func() {})
	m.Advance(time.Second)
	assert.False(t, fired.Stop(), "stopping a fired timer reports false")
}

func TestClock_AfterFunc(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	timer := schedule.NewClock().AfterFunc(time.Millisecond, wg.Done)
	require.NotNil(t, timer)
	wg.Wait()

	stopped := schedule.NewClock().AfterFunc(time.Hour, func() { t.Error("should not fire") })
	assert.True(t, stopped.Stop())
}
