package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type announcementService struct {
	store    *store
	notifier contract.Notifier
	clock    clockwork.Clock
	loc      *time.Location
	log      zerolog.Logger
}

func newAnnouncement(st *store, notifier contract.Notifier, clock clockwork.Clock, loc *time.Location, log zerolog.Logger) *announcementService {
	return &announcementService{
		store:    st,
		notifier: notifier,
		clock:    clock,
		loc:      loc,
		log:      log.With().Str("component", "announcement").Logger(),
	}
}

func (s *announcementService) now() time.Time {
	return s.clock.Now().In(s.loc)
}

func (s *announcementService) newBase(message, author string) entity.Announcement {
	return entity.Announcement{
		ID:      uuid.NewString(),
		Message: message,
		AddedBy: author,
		AddedAt: s.clock.Now().UTC().Truncate(time.Second),
	}
}

func (s *announcementService) AddYearly(ctx context.Context, date, message, author string) (entity.Yearly, error) {
	md, err := entity.ParseMonthDay(date)
	if err != nil {
		return entity.Yearly{}, err
	}

	message, err = cleanMessage(message)
	if err != nil {
		return entity.Yearly{}, err
	}

	y := entity.Yearly{
		Announcement: s.newBase(message, author),
		Date:         md,
	}

	err = s.store.mutate(ctx, func(c *entity.Collection) error {
		c.Yearly = append(c.Yearly, y)
		return nil
	})
	if err != nil {
		return entity.Yearly{}, fmt.Errorf("failed to add yearly announcement: %w", err)
	}

	s.log.Info().
		Str("id", y.ID).
		Str("date", md.String()).
		Str("added_by", author).
		Msg("yearly announcement added")

	return y, nil
}

func (s *announcementService) AddOnce(ctx context.Context, date, clock, message, author string) (entity.Once, error) {
	dt, err := entity.ParseDateTime(date, clock)
	if err != nil {
		return entity.Once{}, err
	}

	now := s.now()
	target, ok := dt.In(now.Year(), s.loc)
	if !ok {
		return entity.Once{}, errs.NewValidationError(
			fmt.Sprintf("%s does not exist in %d", dt.MonthDay, now.Year()), errs.ErrInvalidDateTime)
	}
	// a wall time skipped by a DST change never appears on the clock
	if target.Hour() != dt.Hour || target.Minute() != dt.Minute {
		return entity.Once{}, errs.NewValidationError(
			fmt.Sprintf("%s does not exist in %s (clock change)", dt, s.loc), errs.ErrInvalidDateTime)
	}
	if target.Before(entity.TruncateToMinute(now)) {
		return entity.Once{}, errs.NewValidationError(
			fmt.Sprintf("%s has already passed this year", dt), errs.ErrInvalidDateTime)
	}

	message, err = cleanMessage(message)
	if err != nil {
		return entity.Once{}, err
	}

	o := entity.Once{
		Announcement: s.newBase(message, author),
		At:           dt,
	}

	err = s.store.mutate(ctx, func(c *entity.Collection) error {
		c.Once = append(c.Once, o)
		return nil
	})
	if err != nil {
		return entity.Once{}, fmt.Errorf("failed to add one-time announcement: %w", err)
	}

	s.log.Info().
		Str("id", o.ID).
		Str("datetime", dt.String()).
		Str("added_by", author).
		Msg("one-time announcement added")

	return o, nil
}

// DeleteAt removes the item at the 1-based index of the category and returns
// its message.
func (s *announcementService) DeleteAt(ctx context.Context, category string, index int) (string, error) {
	cat, ok := entity.ParseCategory(category)
	if !ok {
		return "", errs.NewValidationError(
			fmt.Sprintf("invalid category %q, use 'yearly' or 'once'", category), errs.ErrIndexOutOfRange)
	}

	var removed entity.Announcement
	err := s.store.mutate(ctx, func(c *entity.Collection) error {
		if index < 1 || index > c.Len(cat) {
			return errs.NewValidationError(
				fmt.Sprintf("invalid index %d for %s announcements, use list to see valid indices", index, cat),
				errs.ErrIndexOutOfRange)
		}

		i := index - 1
		switch cat {
		case entity.CategoryYearly:
			removed = c.Yearly[i].Announcement
			c.Yearly = append(c.Yearly[:i], c.Yearly[i+1:]...)
		case entity.CategoryOnce:
			removed = c.Once[i].Announcement
			c.Once = append(c.Once[:i], c.Once[i+1:]...)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("id", removed.ID).
		Str("category", string(cat)).
		Int("index", index).
		Msg("announcement deleted")

	return removed.Message, nil
}

// List returns every announcement with 1-based indices and the time left
// until its next occurrence. Indices are derived from the current snapshot.
func (s *announcementService) List(ctx context.Context) (entity.Listing, error) {
	c := s.store.snapshot()
	now := s.now()

	listing := entity.Listing{
		Yearly: make([]entity.ListItem, 0, len(c.Yearly)),
		Once:   make([]entity.ListItem, 0, len(c.Once)),
	}

	for i, y := range c.Yearly {
		next := y.NextOccurrence(now)
		listing.Yearly = append(listing.Yearly, entity.ListItem{
			Index:     i + 1,
			Category:  entity.CategoryYearly,
			ID:        y.ID,
			Label:     y.Date.String(),
			Message:   y.Message,
			AddedBy:   y.AddedBy,
			AddedAt:   y.AddedAt,
			Next:      next,
			Remaining: next.Sub(now),
		})
	}

	for i, o := range c.Once {
		next := o.NextOccurrence(now)
		listing.Once = append(listing.Once, entity.ListItem{
			Index:     i + 1,
			Category:  entity.CategoryOnce,
			ID:        o.ID,
			Label:     o.At.String(),
			Message:   o.Message,
			AddedBy:   o.AddedBy,
			AddedAt:   o.AddedAt,
			Next:      next,
			Remaining: next.Sub(now),
		})
	}

	return listing, nil
}

// SendTest posts a test message to the announcement channel.
func (s *announcementService) SendTest(ctx context.Context) error {
	if err := s.notifier.Deliver(ctx, domain.TestMessage); err != nil {
		return errs.NewDeliveryError("failed to send test message", err)
	}
	return nil
}

func cleanMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", errs.NewValidationError("announcement message cannot be empty", errs.ErrEmptyMessage)
	}
	return message, nil
}
