package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManualScheduler(t *testing.T) {
	start := time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)

	t.Run("AdvanceFiresInOrder", func(t *testing.T) {
		s := NewManualScheduler(start)
		var fired []string
		s.AfterFunc(2*time.Second, func() { fired = append(fired, "b") })
		s.AfterFunc(time.Second, func() { fired = append(fired, "a") })
		stopped := s.AfterFunc(time.Second, func() { fired = append(fired, "x") })
		require.True(t, stopped.Stop())
		require.False(t, stopped.Stop())

		s.Advance(1500 * time.Millisecond)
		require.Equal(t, []string{"a"}, fired)
		require.Equal(t, 1, s.Pending())

		s.Advance(time.Second)
		require.Equal(t, []string{"a", "b"}, fired)
		require.Equal(t, start.Add(2500*time.Millisecond), s.Now())
	})

	t.Run("DrainFollowsChains", func(t *testing.T) {
		s := NewManualScheduler(start)
		var fired []string
		s.AfterFunc(time.Second, func() {
			fired = append(fired, "first")
			s.AfterFunc(2*time.Second, func() { fired = append(fired, "second") })
		})

		s.Drain(10)
		require.Equal(t, []string{"first", "second"}, fired)
		require.Zero(t, s.Pending())
		require.Equal(t, start.Add(3*time.Second), s.Now())
	})
}
