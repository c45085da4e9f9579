package service

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type scheduler struct {
	store           *store
	notifier        contract.Notifier
	clock           clockwork.Clock
	loc             *time.Location
	log             zerolog.Logger
	announceOnStart bool
}

func newScheduler(st *store, notifier contract.Notifier, clock clockwork.Clock, loc *time.Location, log zerolog.Logger, announceOnStart bool) *scheduler {
	return &scheduler{
		store:           st,
		notifier:        notifier,
		clock:           clock,
		loc:             loc,
		log:             log.With().Str("component", "scheduler").Logger(),
		announceOnStart: announceOnStart,
	}
}

// Load reads the persisted announcements. It must run before the first tick.
func (s *scheduler) Load(ctx context.Context) {
	s.store.load(ctx)

	if !s.announceOnStart {
		return
	}
	if err := s.notifier.Deliver(ctx, domain.OnlineMessage); err != nil {
		s.log.Error().Err(err).Msg("failed to post startup message")
	}
}

// Tick fires everything due in the current minute. Due items are recorded
// as fired and persisted before any delivery is attempted, so a crash
// between the two loses a delivery instead of repeating it.
func (s *scheduler) Tick(ctx context.Context) (entity.TickResult, error) {
	var result entity.TickResult

	if !s.store.isLoaded() {
		return result, fmt.Errorf("tick before load")
	}

	now := s.clock.Now().In(s.loc)

	firings, saveErr := s.store.consume(ctx, now)
	if saveErr != nil {
		s.log.Error().
			Err(saveErr).
			Int("fired", len(firings)).
			Msg("failed to persist fired announcements, will retry on next tick")
	}

	result.Fired = len(firings)
	for _, f := range firings {
		if err := s.notifier.Deliver(ctx, render(f)); err != nil {
			result.Failed++
			s.log.Error().
				Err(errs.NewDeliveryError("failed to deliver announcement", err)).
				Str("id", f.ID).
				Str("category", string(f.Category)).
				Str("label", f.Label).
				Msg("announcement delivery failed")
			continue
		}

		result.Delivered++
		s.log.Info().
			Str("id", f.ID).
			Str("category", string(f.Category)).
			Str("label", f.Label).
			Msg("announcement delivered")
	}

	if result.Fired > 0 {
		s.log.Debug().
			Time("now", now).
			Int("fired", result.Fired).
			Int("delivered", result.Delivered).
			Int("failed", result.Failed).
			Msg("tick finished")
	}

	return result, saveErr
}

// Flush persists state a failed tick left unsaved.
func (s *scheduler) Flush(ctx context.Context) error {
	return s.store.flush(ctx)
}

func render(f entity.Firing) string {
	if f.Category == entity.CategoryYearly {
		return fmt.Sprintf(domain.YearlyMessageFormat, f.Message)
	}
	return fmt.Sprintf(domain.OnceMessageFormat, f.Message)
}
