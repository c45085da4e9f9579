// Package scheduler drives the announcement tick on a fixed interval.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/logger"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

const jobName = "announcement-tick"

// Ticker is the part of the announcement service the runner drives.
type Ticker interface {
	Load(ctx context.Context)
	Tick(ctx context.Context) (entity.TickResult, error)
	Flush(ctx context.Context) error
}

type Config struct {
	Interval     time.Duration
	StopTimeout  time.Duration
	Location     *time.Location
	Clock        clockwork.Clock
	SlowTickWarn time.Duration
}

// Scheduler runs Ticker.Tick once per interval, aligned to the start of a
// minute. A tick never overlaps the previous one.
type Scheduler struct {
	ticker Ticker
	cfg    Config
	log    zerolog.Logger

	mu      sync.Mutex
	cron    gocron.Scheduler
	running bool
	cancel  context.CancelFunc
	// busy is held for the duration of a tick.
	busy chan struct{}
}

func New(ticker Ticker, cfg Config, log zerolog.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = 10 * time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.SlowTickWarn <= 0 {
		cfg.SlowTickWarn = 5 * time.Second
	}

	return &Scheduler{
		ticker: ticker,
		cfg:    cfg,
		log:    log.With().Str("component", "runner").Logger(),
		busy:   make(chan struct{}, 1),
	}
}

// Start loads the persisted announcements, runs one tick immediately and
// then schedules the periodic tick. Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	// ticks outlive the caller's context; Stop cancels them once the drain
	// timeout has passed
	tickCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.ticker.Load(tickCtx)
	s.tick(tickCtx)

	cron, err := gocron.NewScheduler(
		gocron.WithClock(s.cfg.Clock),
		gocron.WithLocation(s.cfg.Location),
		gocron.WithLogger(logger.NewGocron(s.log)),
		gocron.WithStopTimeout(s.cfg.StopTimeout),
	)
	if err != nil {
		cancel()
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	job, err := cron.NewJob(
		gocron.DurationJob(s.cfg.Interval),
		gocron.NewTask(s.tick, tickCtx),
		gocron.WithName(jobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartDateTime(s.firstRun())),
	)
	if err != nil {
		_ = cron.Shutdown()
		cancel()
		return fmt.Errorf("failed to schedule %s: %w", jobName, err)
	}

	cron.Start()
	s.cron = cron
	s.cancel = cancel
	s.running = true

	event := s.log.Info().Dur("interval", s.cfg.Interval).Str("location", s.cfg.Location.String())
	if next, err := job.NextRun(); err == nil {
		event = event.Time("next_run", next)
	}
	event.Msg("scheduler started")

	return nil
}

// firstRun is one second past the next minute boundary so the periodic tick
// lands inside the minute it evaluates.
func (s *Scheduler) firstRun() time.Time {
	now := s.cfg.Clock.Now().In(s.cfg.Location)
	return now.Truncate(time.Minute).Add(time.Minute + time.Second)
}

func (s *Scheduler) tick(ctx context.Context) {
	s.busy <- struct{}{}
	defer func() { <-s.busy }()

	// stopped while waiting for the previous tick
	if ctx.Err() != nil {
		return
	}

	start := s.cfg.Clock.Now()

	result, err := s.ticker.Tick(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("tick failed")
	}

	if took := s.cfg.Clock.Since(start); took > s.cfg.SlowTickWarn {
		s.log.Warn().
			Dur("took", took).
			Int("fired", result.Fired).
			Msg("slow tick")
	}
}

// Stop waits up to the stop timeout for a running tick. Past the timeout the
// tick's context is cancelled and Stop waits for it to return, bounded by ctx,
// so nothing is left writing to storage. It then persists any state a failed
// save left behind. Calling Stop twice is a no-op.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false

	defer s.cancel()

	var errList []error
	if err := s.cron.Shutdown(); err != nil {
		if isDrainTimeout(err) {
			s.log.Warn().
				Dur("drain_timeout", s.cfg.StopTimeout).
				Msg("tick still running after drain timeout, cancelling it")
		}
		errList = append(errList, fmt.Errorf("failed to shutdown scheduler: %w", err))
	}
	s.cancel()

	select {
	case s.busy <- struct{}{}:
		defer func() { <-s.busy }()
	case <-ctx.Done():
		errList = append(errList, fmt.Errorf("tick did not return before shutdown deadline: %w", ctx.Err()))
		s.log.Error().Msg("tick did not return before shutdown deadline")
		return errors.Join(errList...)
	}

	if err := s.ticker.Flush(ctx); err != nil {
		errList = append(errList, fmt.Errorf("failed to flush announcements: %w", err))
	}

	s.log.Info().Msg("scheduler stopped")
	return errors.Join(errList...)
}

func isDrainTimeout(err error) bool {
	return errors.Is(err, gocron.ErrStopJobsTimedOut) ||
		errors.Is(err, gocron.ErrStopExecutorTimedOut) ||
		errors.Is(err, gocron.ErrStopSchedulerTimedOut)
}
