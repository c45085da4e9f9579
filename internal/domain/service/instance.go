package service

import (
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

type Instance struct {
	Announcement *announcementService
	Scheduler    *scheduler
}

type Options struct {
	Clock           clockwork.Clock
	Location        *time.Location
	AnnounceOnStart bool
}

func NewInstance(repo contract.AnnouncementRepo, notifier contract.Notifier, log zerolog.Logger, opts Options) *Instance {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}

	st := newStore(repo, log)

	return &Instance{
		Announcement: newAnnouncement(st, notifier, opts.Clock, opts.Location, log),
		Scheduler:    newScheduler(st, notifier, opts.Clock, opts.Location, log, opts.AnnounceOnStart),
	}
}
