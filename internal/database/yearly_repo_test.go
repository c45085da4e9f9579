package database

import (
	"testing"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testYearly(id string, month time.Month, day int, message string) entity.Yearly {
	return entity.Yearly{
		Announcement: entity.Announcement{
			ID:      id,
			Message: message,
			AddedBy: "U123",
			AddedAt: time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC),
		},
		Date: entity.MonthDay{Month: month, Day: day},
	}
}

func TestYearlyRepo_ReplaceAll(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newYearlyRepo(db.conn)

	t.Run("should return empty list for a new database", func(t *testing.T) {
		items, err := repo.List(t.Context())
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NotNil(t, items)
	})

	t.Run("should store items in order", func(t *testing.T) {
		xmas := testYearly("b", time.December, 25, "Merry Christmas!")
		xmas.LastFired = "2023-12-25"
		items := []entity.Yearly{
			xmas,
			testYearly("a", time.January, 1, "Happy new year"),
			testYearly("c", time.February, 29, "Leap day"),
		}

		require.NoError(t, repo.ReplaceAll(t.Context(), items))

		got, err := repo.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("should replace previous content", func(t *testing.T) {
		items := []entity.Yearly{testYearly("z", time.May, 1, "May day")}

		require.NoError(t, repo.ReplaceAll(t.Context(), items))

		got, err := repo.List(t.Context())
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("should clear the table", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(t.Context(), nil))

		got, err := repo.List(t.Context())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestYearlyRepo_List_corrupt(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	_, err := db.conn.Exec(`
		INSERT INTO yearly_announcements (position, id, date, message)
		VALUES (0, 'bad', '13-45', 'broken')
	`)
	require.NoError(t, err)

	_, err = newYearlyRepo(db.conn).List(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCorrupt)
}
