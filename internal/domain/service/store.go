package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/rs/zerolog"
)

// store owns the in-memory collection. Every read-modify-write of the
// collection and its persistence happens under mu.
type store struct {
	repo contract.AnnouncementRepo
	log  zerolog.Logger

	mu     sync.Mutex
	coll   entity.Collection
	loaded bool
	// dirty is set when a tick mutated the collection but could not persist it.
	dirty bool
}

func newStore(repo contract.AnnouncementRepo, log zerolog.Logger) *store {
	return &store{
		repo: repo,
		log:  log.With().Str("component", "store").Logger(),
	}
}

// load replaces the in-memory collection with the persisted one. It never
// fails: unreadable or corrupt storage degrades to an empty collection.
func (s *store) load(ctx context.Context) {
	c, err := s.repo.Load(ctx)
	if err != nil {
		event := "store_unreadable"
		if errors.Is(err, errs.ErrCorrupt) {
			event = "store_corrupt"
		}
		s.log.Warn().
			Err(err).
			Str("event", event).
			Msg("announcement store could not be loaded, starting with an empty collection")
		c = entity.Collection{}
	}

	s.mu.Lock()
	s.coll = c.Clone()
	s.loaded = true
	s.dirty = false
	s.mu.Unlock()

	s.log.Info().
		Int("yearly", len(c.Yearly)).
		Int("once", len(c.Once)).
		Msg("announcements loaded")
}

func (s *store) isLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// snapshot returns a deep copy of the current collection.
func (s *store) snapshot() entity.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.coll.Clone()
}

// mutate applies fn to a copy of the collection and persists it. The copy
// becomes the current collection only if fn and the save both succeed.
func (s *store) mutate(ctx context.Context, fn func(c *entity.Collection) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.coll.Clone()
	if err := fn(&next); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, next); err != nil {
		return persistenceErr(err)
	}

	s.coll = next
	s.dirty = false
	return nil
}

// consume detects what is due at now, records it as fired and persists the
// result. The in-memory state keeps the mutation even if the save fails so
// the same item cannot fire twice; the store is then left dirty.
func (s *store) consume(ctx context.Context, now time.Time) ([]entity.Firing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := DueNow(s.coll, now)
	if due.IsEmpty() && !s.dirty {
		return nil, nil
	}

	next := s.coll.Clone()
	due.Apply(&next, now)
	s.coll = next

	if err := s.repo.Save(ctx, next); err != nil {
		s.dirty = true
		return due.Fire, persistenceErr(err)
	}

	s.dirty = false
	return due.Fire, nil
}

// flush persists a pending dirty collection.
func (s *store) flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := s.repo.Save(ctx, s.coll); err != nil {
		return persistenceErr(err)
	}
	s.dirty = false
	return nil
}

func persistenceErr(err error) error {
	if errs.IsPersistence(err) {
		return err
	}
	return errs.NewPersistenceError("failed to save announcements", err)
}
