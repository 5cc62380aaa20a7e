//go:build unit

package scheduler_test

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"gym-reserve/internal/infra/scheduler"
	"gym-reserve/internal/usecase/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	runs atomic.Int32
}

func (r *countingRefresher) LoadSchedules(context.Context) (session.LoadReport, error) {
	r.runs.Add(1)
	return session.LoadReport{Loaded: []int64{10001}}, nil
}

func TestVenueRefresh(t *testing.T) {
	t.Run("refresh runs on its interval", func(t *testing.T) {
		s, err := scheduler.New(slog.New(slog.DiscardHandler))
		require.NoError(t, err)
		r := &countingRefresher{}

		require.NoError(t, s.RegisterVenueRefresh(20*time.Millisecond, r))
		assert.Equal(t, 1, s.Jobs())

		s.Start()
		t.Cleanup(func() { _ = s.Shutdown() })

		assert.Eventually(t, func() bool { return r.runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("zero interval schedules nothing", func(t *testing.T) {
		s, err := scheduler.New(slog.New(slog.DiscardHandler))
		require.NoError(t, err)

		require.NoError(t, s.RegisterVenueRefresh(0, &countingRefresher{}))
		assert.Equal(t, 0, s.Jobs())
		s.Start()
		require.NoError(t, s.Shutdown())
	})
}
