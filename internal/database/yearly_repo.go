package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/diegoclair/slack-announcement-bot/pkg/models"
)

type yearlyRepo struct {
	db dbConn
}

func newYearlyRepo(db dbConn) contract.YearlyRepo {
	return &yearlyRepo{db: db}
}

func (r *yearlyRepo) List(ctx context.Context) ([]entity.Yearly, error) {
	query := `
		SELECT id, date, message, added_by, added_at, last_fired
		FROM yearly_announcements
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list yearly announcements: %w", err)
	}
	defer rows.Close()

	items := []entity.Yearly{}
	for rows.Next() {
		var (
			rec     models.YearlyRecord
			addedAt string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.Message,
			&rec.AddedBy,
			&addedAt,
			&rec.LastFired,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan yearly announcement: %w", err)
		}

		rec.AddedAt, err = models.ParseTimestamp(addedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: yearly %s: %v", errs.ErrCorrupt, rec.ID, err)
		}

		y, err := rec.Entity()
		if err != nil {
			return nil, fmt.Errorf("%w: yearly %s: %v", errs.ErrCorrupt, rec.ID, err)
		}
		items = append(items, y)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate yearly announcements: %w", err)
	}

	return items, nil
}

// ReplaceAll overwrites the table with items, keeping their order.
func (r *yearlyRepo) ReplaceAll(ctx context.Context, items []entity.Yearly) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM yearly_announcements`); err != nil {
		return fmt.Errorf("failed to clear yearly announcements: %w", err)
	}

	stmt, err := r.db.PrepareContext(ctx, `
		INSERT INTO yearly_announcements (position, id, date, message, added_by, added_at, last_fired)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare yearly insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range models.FromCollection(entity.Collection{Yearly: items}).Yearly {
		_, err := stmt.ExecContext(ctx,
			i,
			rec.ID,
			rec.Date,
			rec.Message,
			rec.AddedBy,
			rec.AddedAt.String(),
			rec.LastFired,
		)
		if err != nil {
			return fmt.Errorf("failed to insert yearly announcement %s: %w", rec.ID, err)
		}
	}

	return nil
}
