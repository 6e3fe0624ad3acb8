package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"auction-dashboard/internal/dashboarderrors"
	"auction-dashboard/utils"
)

// DefaultInterval is the polling cadence
const DefaultInterval = time.Second

// State of the poll loop
type State int32

const (
	Idle State = iota
	Polling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Polling:
		return "polling"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// TickFunc runs one full pipeline pass. It must not fail the loop; errors are
// handled inside.
type TickFunc func(ctx context.Context, tick uint64)

// Scheduler drives the pipeline once at startup and then on a fixed interval.
// Ticks run in their own goroutines, so a slow tick never delays the next one.
type Scheduler struct {
	interval time.Duration
	run      TickFunc

	state    atomic.Int32
	lastTick atomic.Uint64
	inFlight sync.WaitGroup
}

// New creates an idle scheduler. interval <= 0 uses DefaultInterval.
func New(interval time.Duration, run TickFunc) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{interval: interval, run: run}
}

// Start moves Idle -> Polling: it runs the first tick immediately and then arms
// the repeating timer. It returns at once; polling continues until ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	if !s.state.CompareAndSwap(int32(Idle), int32(Polling)) {
		return fmt.Errorf("scheduler: %w", dashboarderrors.ErrAlreadyPolling)
	}

	utils.Info("scheduler: polling started", map[string]any{"interval": s.interval.String()})

	// the loop holds its own slot so ticks are never added to a drained group
	s.inFlight.Add(1)
	s.fire(ctx)

	ticker := time.NewTicker(s.interval)
	go func() {
		defer s.inFlight.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				utils.Info("scheduler: polling stopped", map[string]any{"last_tick": s.lastTick.Load()})
				return
			case <-ticker.C:
				if ctx.Err() != nil {
					continue
				}
				s.fire(ctx)
			}
		}
	}()
	return nil
}

// fire launches the next tick with a fresh, monotonically increasing id
func (s *Scheduler) fire(ctx context.Context) {
	tick := s.lastTick.Add(1)
	s.inFlight.Add(1)
	go func() {
		defer s.inFlight.Done()
		defer func() {
			// a panicking tick must not take the loop down
			if r := recover(); r != nil {
				utils.Error("scheduler: tick panicked", map[string]any{"tick": tick, "panic": fmt.Sprint(r)})
			}
		}()
		s.run(ctx, tick)
	}()
}

// Wait blocks until the loop has stopped and every started tick has returned.
// It only returns after the context given to Start is done.
func (s *Scheduler) Wait() {
	s.inFlight.Wait()
}

// State returns the current loop state
func (s *Scheduler) State() State {
	return State(s.state.Load())
}

// LastTick returns the id of the most recently started tick
func (s *Scheduler) LastTick() uint64 {
	return s.lastTick.Load()
}
