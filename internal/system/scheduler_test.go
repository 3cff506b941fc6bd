package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsDueTasksInOrder(t *testing.T) {
	s := NewScheduler()
	var got []string

	s.Schedule(300*time.Millisecond, func() { got = append(got, "c") }, nil)
	s.Schedule(100*time.Millisecond, func() { got = append(got, "a") }, nil)
	s.Schedule(100*time.Millisecond, func() { got = append(got, "b") }, nil)

	assert.Equal(t, 0, s.Run(50*time.Millisecond))
	assert.Equal(t, 2, s.Run(200*time.Millisecond))
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, s.Pending())

	s.Run(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, s.Pending())
}

func TestScheduler_GuardDropsStaleTask(t *testing.T) {
	s := NewScheduler()
	alive := true
	fired := 0
	s.Schedule(time.Second, func() { fired++ }, func() bool { return alive })

	alive = false
	assert.Equal(t, 0, s.Run(2*time.Second))
	assert.Zero(t, fired)
	assert.Zero(t, s.Pending(), "stale task is dropped, not retried")
}

func TestScheduler_CancelAndClear(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.Schedule(time.Second, func() { fired = true }, nil)

	at, ok := s.FireAt(id)
	assert.True(t, ok)
	assert.Equal(t, time.Second, at)

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	s.Run(time.Hour)
	assert.False(t, fired)

	s.Schedule(time.Second, func() { fired = true }, nil)
	s.Clear()
	s.Run(time.Hour)
	assert.False(t, fired)
}

func TestScheduler_TaskScheduledDuringRunWaitsForNextRun(t *testing.T) {
	s := NewScheduler()
	var got []int
	s.Schedule(0, func() {
		got = append(got, 1)
		s.Schedule(0, func() { got = append(got, 2) }, nil)
	}, nil)

	s.Run(0)
	assert.Equal(t, []int{1}, got)
	s.Run(0)
	assert.Equal(t, []int{1, 2}, got)
}
