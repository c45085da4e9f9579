package storage

import (
	"strings"

	"github.com/diegoclair/slack-announcement-bot/internal/database"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/diegoclair/slack-announcement-bot/migrator/sqlite"
	"github.com/rs/zerolog"
)

// Open initializes the configured store.
func Open(cfg Config, log zerolog.Logger) (contract.AnnouncementRepo, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))

	switch driver {
	case "", DriverFile, "json":
		return openFile(cfg, log)
	case DriverSQLite, "sqlite3":
		return openSQLite(cfg, log)
	default:
		return nil, errs.NewConfigError("unknown storage driver: "+driver, nil)
	}
}

func openSQLite(cfg Config, log zerolog.Logger) (contract.AnnouncementRepo, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errs.NewConfigError("storage path is required for sqlite driver", nil)
	}

	db, err := database.New(cfg.Path, cfg.BusyTimeout)
	if err != nil {
		return nil, errs.NewPersistenceError("failed to open database", err)
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		_ = db.Close()
		return nil, errs.NewPersistenceError("failed to run migrations", err)
	}

	return database.NewAnnouncementRepo(db, log), nil
}
