package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/rs/zerolog"
)

const backupStampLayout = "20060102T150405Z"

// announcementRepo persists the whole collection across the yearly and once
// tables. Every Save replaces both tables in one transaction.
type announcementRepo struct {
	dm     contract.DataManager
	backup func(ctx context.Context) (string, error)
	close  func() error
	log    zerolog.Logger
}

// NewAnnouncementRepo returns the SQLite backed AnnouncementRepo. It takes
// ownership of db.
func NewAnnouncementRepo(db *DB, log zerolog.Logger) contract.AnnouncementRepo {
	return newAnnouncementRepo(NewInstance(db), db.backup, db.Close, log)
}

func newAnnouncementRepo(dm contract.DataManager, backup func(ctx context.Context) (string, error), closeFn func() error, log zerolog.Logger) *announcementRepo {
	return &announcementRepo{
		dm:     dm,
		backup: backup,
		close:  closeFn,
		log:    log.With().Str("component", "sqlite_store").Logger(),
	}
}

func (r *announcementRepo) Load(ctx context.Context) (entity.Collection, error) {
	var c entity.Collection

	err := r.dm.WithTransaction(ctx, func(tx contract.DataManager) (err error) {
		c.Yearly, err = tx.Yearly().List(ctx)
		if err != nil {
			return err
		}
		c.Once, err = tx.Once().List(ctx)
		return err
	})
	if err == nil {
		return c, nil
	}

	if !errors.Is(err, errs.ErrCorrupt) {
		return entity.Collection{}, errs.NewPersistenceError("failed to read announcements", err)
	}

	msg := "announcement rows are corrupt"
	if path, bErr := r.backup(ctx); bErr != nil {
		r.log.Error().Err(bErr).Msg("failed to back up corrupt database")
	} else if path != "" {
		msg += ", database copied to " + path
	}
	return entity.Collection{}, errs.NewPersistenceError(msg, err)
}

func (r *announcementRepo) Save(ctx context.Context, c entity.Collection) error {
	err := r.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Yearly().ReplaceAll(ctx, c.Yearly); err != nil {
			return err
		}
		return tx.Once().ReplaceAll(ctx, c.Once)
	})
	if err != nil {
		return errs.NewPersistenceError("failed to save announcements", err)
	}
	return nil
}

func (r *announcementRepo) Close() error {
	return r.close()
}

// backup copies the database next to its file. In-memory databases are
// not backed up and return an empty path.
func (db *DB) backup(ctx context.Context) (string, error) {
	if db.InMemory() {
		return "", nil
	}

	path := fmt.Sprintf("%s.corrupt-%s", db.path, time.Now().UTC().Format(backupStampLayout))
	if _, err := db.conn.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return "", fmt.Errorf("failed to copy database: %w", err)
	}
	return path, nil
}
