package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	mu       sync.Mutex
	calls    []string
	ticks    int
	flushErr error
	// onTick runs inside the n-th tick (1-based) when set.
	onTick func(ctx context.Context, n int)
}

func (f *fakeTicker) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeTicker) Load(ctx context.Context) {
	f.record("load")
}

func (f *fakeTicker) Tick(ctx context.Context) (entity.TickResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, "tick")
	f.ticks++
	n := f.ticks
	f.mu.Unlock()

	if f.onTick != nil {
		f.onTick(ctx, n)
		f.record("tick-done")
	}
	return entity.TickResult{}, nil
}

func (f *fakeTicker) Ticks() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ticks
}

func (f *fakeTicker) Flush(ctx context.Context) error {
	f.record("flush")
	return f.flushErr
}

func (f *fakeTicker) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newTestScheduler(ticker Ticker) *Scheduler {
	s, _ := newTestSchedulerWithClock(ticker, time.Second)
	return s
}

func newTestSchedulerWithClock(ticker Ticker, stopTimeout time.Duration) (*Scheduler, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 12, 24, 23, 59, 30, 0, time.UTC))
	return New(ticker, Config{
		Interval:    time.Minute,
		StopTimeout: stopTimeout,
		Location:    time.UTC,
		Clock:       clock,
	}, zerolog.Nop()), clock
}

// advanceToNextTick waits for the job timer to be armed, then moves the clock
// one interval forward.
func advanceToNextTick(t *testing.T, clock *clockwork.FakeClock) {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1), "job timer never armed")
	clock.Advance(time.Minute)
}

func TestScheduler_Start(t *testing.T) {
	ticker := &fakeTicker{}
	s := newTestScheduler(ticker)

	require.NoError(t, s.Start(t.Context()))
	defer s.Stop(t.Context())

	// load always precedes the first tick
	assert.Equal(t, []string{"load", "tick"}, ticker.Calls())

	// a second start does not load again
	require.NoError(t, s.Start(t.Context()))
	assert.Equal(t, []string{"load", "tick"}, ticker.Calls())
}

func TestScheduler_periodicTicks(t *testing.T) {
	ticker := &fakeTicker{}
	s, clock := newTestSchedulerWithClock(ticker, time.Second)

	require.NoError(t, s.Start(t.Context()))
	defer s.Stop(t.Context())
	require.Equal(t, 1, ticker.Ticks())

	for i := 1; i <= 3; i++ {
		advanceToNextTick(t, clock)
		require.Eventually(t, func() bool { return ticker.Ticks() == 1+i },
			2*time.Second, 5*time.Millisecond, "tick %d did not run", i)
	}

	// nothing runs without the clock moving
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 4, ticker.Ticks())
}

func TestScheduler_Stop_drainsRunningTick(t *testing.T) {
	started := make(chan struct{})
	ticker := &fakeTicker{onTick: func(ctx context.Context, n int) {
		if n == 2 {
			close(started)
			time.Sleep(300 * time.Millisecond)
		}
	}}
	s, clock := newTestSchedulerWithClock(ticker, time.Second)

	require.NoError(t, s.Start(t.Context()))
	advanceToNextTick(t, clock)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("periodic tick never started")
	}

	require.NoError(t, s.Stop(t.Context()))
	assert.Equal(t, []string{"load", "tick", "tick-done", "tick", "tick-done", "flush"}, ticker.Calls())
}

func TestScheduler_Stop_cancelsTickAfterDrainTimeout(t *testing.T) {
	started := make(chan struct{})
	ticker := &fakeTicker{onTick: func(ctx context.Context, n int) {
		if n == 2 {
			close(started)
			<-ctx.Done()
		}
	}}
	s, clock := newTestSchedulerWithClock(ticker, 50*time.Millisecond)

	require.NoError(t, s.Start(t.Context()))
	advanceToNextTick(t, clock)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("periodic tick never started")
	}

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	err := s.Stop(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, gocron.ErrStopJobsTimedOut)

	// the cancelled tick returned before the flush
	assert.Equal(t, []string{"load", "tick", "tick-done", "tick", "tick-done", "flush"}, ticker.Calls())
}

func TestScheduler_Stop(t *testing.T) {
	t.Run("Should flush once and ignore repeated stops", func(t *testing.T) {
		ticker := &fakeTicker{}
		s := newTestScheduler(ticker)

		require.NoError(t, s.Start(t.Context()))
		require.NoError(t, s.Stop(t.Context()))
		require.NoError(t, s.Stop(t.Context()))

		assert.Equal(t, []string{"load", "tick", "flush"}, ticker.Calls())
	})

	t.Run("Should report a failed flush", func(t *testing.T) {
		ticker := &fakeTicker{flushErr: errors.New("disk full")}
		s := newTestScheduler(ticker)

		require.NoError(t, s.Start(t.Context()))
		err := s.Stop(t.Context())
		require.Error(t, err)
		assert.ErrorIs(t, err, ticker.flushErr)
	})

	t.Run("Should do nothing when never started", func(t *testing.T) {
		ticker := &fakeTicker{}
		s := newTestScheduler(ticker)

		require.NoError(t, s.Stop(t.Context()))
		assert.Empty(t, ticker.Calls())
	})
}

func TestScheduler_firstRun(t *testing.T) {
	s := newTestScheduler(&fakeTicker{})

	assert.Equal(t, time.Date(2024, 12, 25, 0, 0, 1, 0, time.UTC), s.firstRun())
}

func TestNew_defaults(t *testing.T) {
	s := New(&fakeTicker{}, Config{}, zerolog.Nop())

	assert.Equal(t, time.Minute, s.cfg.Interval)
	assert.Equal(t, 10*time.Second, s.cfg.StopTimeout)
	assert.NotNil(t, s.cfg.Location)
	assert.NotNil(t, s.cfg.Clock)
}
