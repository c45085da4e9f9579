package contract

import (
	"context"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
)

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

// AnnouncementRepo is durable storage for the announcement collection.
// Implementations own the on-disk shape.
type AnnouncementRepo interface {
	// Load returns the persisted collection. A missing store is an empty
	// collection with a nil error; unreadable or corrupt content is reported
	// as a PersistenceError (corrupt content wraps errs.ErrCorrupt).
	Load(ctx context.Context) (entity.Collection, error)
	// Save overwrites the persisted collection atomically.
	Save(ctx context.Context, c entity.Collection) error
	Close() error
}

// DataManager gives access to the SQL repositories, optionally inside a
// transaction.
type DataManager interface {
	Yearly() YearlyRepo
	Once() OnceRepo
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
}

// YearlyRepo stores yearly announcements in insertion order.
type YearlyRepo interface {
	List(ctx context.Context) ([]entity.Yearly, error)
	ReplaceAll(ctx context.Context, items []entity.Yearly) error
}

// OnceRepo stores one-time announcements in insertion order.
type OnceRepo interface {
	List(ctx context.Context) ([]entity.Once, error)
	ReplaceAll(ctx context.Context, items []entity.Once) error
}
