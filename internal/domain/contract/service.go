package contract

import (
	"context"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
)

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

// AnnouncementService is the surface the command layer consumes.
type AnnouncementService interface {
	AddYearly(ctx context.Context, date, message, author string) (entity.Yearly, error)
	AddOnce(ctx context.Context, date, clock, message, author string) (entity.Once, error)
	DeleteAt(ctx context.Context, category string, index int) (string, error)
	List(ctx context.Context) (entity.Listing, error)
	SendTest(ctx context.Context) error
}
