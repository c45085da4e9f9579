package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/diegoclair/slack-announcement-bot/pkg/models"
)

type onceRepo struct {
	db dbConn
}

func newOnceRepo(db dbConn) contract.OnceRepo {
	return &onceRepo{db: db}
}

func (r *onceRepo) List(ctx context.Context) ([]entity.Once, error) {
	query := `
		SELECT id, datetime, message, added_by, added_at
		FROM once_announcements
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list one-time announcements: %w", err)
	}
	defer rows.Close()

	items := []entity.Once{}
	for rows.Next() {
		var (
			rec     models.OnceRecord
			addedAt string
		)
		err := rows.Scan(
			&rec.ID,
			&rec.DateTime,
			&rec.Message,
			&rec.AddedBy,
			&addedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan one-time announcement: %w", err)
		}

		rec.AddedAt, err = models.ParseTimestamp(addedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: once %s: %v", errs.ErrCorrupt, rec.ID, err)
		}

		o, err := rec.Entity()
		if err != nil {
			return nil, fmt.Errorf("%w: once %s: %v", errs.ErrCorrupt, rec.ID, err)
		}
		items = append(items, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate one-time announcements: %w", err)
	}

	return items, nil
}

// ReplaceAll overwrites the table with items, keeping their order.
func (r *onceRepo) ReplaceAll(ctx context.Context, items []entity.Once) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM once_announcements`); err != nil {
		return fmt.Errorf("failed to clear one-time announcements: %w", err)
	}

	stmt, err := r.db.PrepareContext(ctx, `
		INSERT INTO once_announcements (position, id, datetime, message, added_by, added_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare one-time insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range models.FromCollection(entity.Collection{Once: items}).Once {
		_, err := stmt.ExecContext(ctx,
			i,
			rec.ID,
			rec.DateTime,
			rec.Message,
			rec.AddedBy,
			rec.AddedAt.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert one-time announcement %s: %w", rec.ID, err)
		}
	}

	return nil
}
