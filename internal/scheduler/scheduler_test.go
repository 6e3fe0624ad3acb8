package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"auction-dashboard/internal/dashboarderrors"

	"github.com/stretchr/testify/require"
)

func TestScheduler_FirstTickIsImmediate(t *testing.T) {
	t.Parallel()

	started := make(chan uint64, 1)
	s := New(time.Hour, func(ctx context.Context, tick uint64) {
		started <- tick
	})
	require.Equal(t, Idle, s.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))
	require.Equal(t, Polling, s.State())

	select {
	case tick := <-started:
		require.Equal(t, uint64(1), tick)
	case <-time.After(2 * time.Second):
		t.Fatal("first tick did not run before the interval elapsed")
	}
}

func TestScheduler_StartTwice(t *testing.T) {
	t.Parallel()

	s := New(time.Hour, func(context.Context, uint64) {})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	err := s.Start(ctx)
	require.ErrorIs(t, err, dashboarderrors.ErrAlreadyPolling)
}

func TestScheduler_TicksAreMonotonicAndKeepCadence(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		ticks []uint64
	)
	var calls atomic.Int32
	release := make(chan struct{})

	s := New(10*time.Millisecond, func(ctx context.Context, tick uint64) {
		mu.Lock()
		ticks = append(ticks, tick)
		mu.Unlock()
		if calls.Add(1) == 1 {
			// the first tick hangs; later ticks must still fire on schedule
			<-release
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))

	require.Eventually(t, func() bool { return calls.Load() >= 5 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	close(release)
	s.Wait()

	mu.Lock()
	defer mu.Unlock()
	seen := make(map[uint64]bool, len(ticks))
	for _, tick := range ticks {
		require.False(t, seen[tick], "tick id %d reused", tick)
		seen[tick] = true
	}
	require.True(t, seen[1])
	require.GreaterOrEqual(t, s.LastTick(), uint64(5))
}

func TestScheduler_PanickingTickDoesNotStopPolling(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	s := New(5*time.Millisecond, func(ctx context.Context, tick uint64) {
		if calls.Add(1) == 1 {
			panic("boom")
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	require.Equal(t, Polling, s.State())
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "polling", Polling.String())
	require.Equal(t, "state(7)", State(7).String())
}
