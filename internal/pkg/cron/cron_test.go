package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUnknownJob(t *testing.T) {
	s := New()
	err := s.Run(context.Background(), "missing")
	assert.Error(t, err)
}

// A manual trigger must survive the triggering request: the admin endpoint
// answers 202 and cancels its request context while the job is still running.
func TestRunDetachesFromCallerContext(t *testing.T) {
	s := New()
	seen := make(chan error, 1)
	s.Register(Job{
		Name:     "rebuild",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			seen <- ctx.Err()
			return ctx.Err()
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, s.Run(ctx, "rebuild"))

	select {
	case err := <-seen:
		assert.NoError(t, err, "job context must not inherit the trigger's cancellation")
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	assert.Eventually(t, func() bool {
		for _, item := range s.List() {
			if item.Name == "rebuild" {
				return item.Status == StatusFulfill
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestRunRecordsFailure(t *testing.T) {
	s := New()
	s.Register(Job{
		Name:     "sweep",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			return errors.New("store unavailable")
		},
	})
	require.NoError(t, s.Run(context.Background(), "sweep"))

	assert.Eventually(t, func() bool {
		for _, item := range s.List() {
			if item.Name == "sweep" {
				return item.Status == StatusReject && item.Message == "store unavailable"
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
