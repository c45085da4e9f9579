package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *fileStore {
	t.Helper()

	s, err := openFile(Config{Path: filepath.Join(t.TempDir(), "data", "announcements.json")}, zerolog.Nop())
	require.NoError(t, err)
	return s
}

func testCollection() entity.Collection {
	addedAt := time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC)
	return entity.Collection{
		Yearly: []entity.Yearly{
			{
				Announcement: entity.Announcement{ID: "y1", Message: "Merry Christmas!", AddedBy: "U1", AddedAt: addedAt},
				Date:         entity.MonthDay{Month: time.December, Day: 25},
				LastFired:    "2023-12-25",
			},
			{
				Announcement: entity.Announcement{ID: "y2", Message: "Leap day", AddedBy: "U2", AddedAt: addedAt},
				Date:         entity.MonthDay{Month: time.February, Day: 29},
			},
		},
		Once: []entity.Once{
			{
				Announcement: entity.Announcement{ID: "o1", Message: "New Year prep!", AddedBy: "U1", AddedAt: addedAt},
				At: entity.DateTime{
					MonthDay: entity.MonthDay{Month: time.December, Day: 31},
					Hour:     23,
					Minute:   59,
				},
			},
		},
	}
}

func TestFileStore_Load(t *testing.T) {
	t.Run("should return an empty collection when the file is missing", func(t *testing.T) {
		s := newTestFileStore(t)

		c, err := s.Load(t.Context())
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should treat an empty file as an empty collection", func(t *testing.T) {
		s := newTestFileStore(t)
		require.NoError(t, os.WriteFile(s.path, []byte("  \n"), 0o600))

		c, err := s.Load(t.Context())
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should read the legacy added_at format and assign missing ids", func(t *testing.T) {
		s := newTestFileStore(t)
		legacy := `{
  "yearly": [{"date": "12-25", "message": "Merry Christmas!", "added_by": "U1", "added_at": "2024-11-01 09:30:00"}],
  "once": [{"id": "o1", "datetime": "12-31 23:59", "message": "New Year prep!", "added_by": "U1", "added_at": "2024-11-01T09:30:00Z"}]
}`
		require.NoError(t, os.WriteFile(s.path, []byte(legacy), 0o600))

		c, err := s.Load(t.Context())
		require.NoError(t, err)
		require.Len(t, c.Yearly, 1)
		require.Len(t, c.Once, 1)

		assert.NotEmpty(t, c.Yearly[0].ID)
		assert.Equal(t, time.Date(2024, 11, 1, 9, 30, 0, 0, time.UTC), c.Yearly[0].AddedAt)
		assert.Equal(t, "o1", c.Once[0].ID)
		assert.Equal(t, "12-31 23:59", c.Once[0].At.String())
	})

	tests := []struct {
		name    string
		content string
	}{
		{name: "should quarantine invalid json", content: `{"yearly": [`},
		{name: "should quarantine an invalid date", content: `{"yearly": [{"id": "x", "date": "13-40", "message": "m"}], "once": []}`},
		{name: "should quarantine an invalid datetime", content: `{"yearly": [], "once": [{"id": "x", "datetime": "12-31", "message": "m"}]}`},
		{name: "should quarantine an invalid last_fired", content: `{"yearly": [{"id": "x", "date": "12-25", "message": "m", "last_fired": "yesterday"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestFileStore(t)
			s.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
			require.NoError(t, os.WriteFile(s.path, []byte(tt.content), 0o600))

			c, err := s.Load(t.Context())
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrCorrupt)
			assert.True(t, errs.IsPersistence(err))
			assert.True(t, c.IsEmpty())

			assert.NoFileExists(t, s.path)
			backup, readErr := os.ReadFile(s.path + ".corrupt-20250102T030405Z")
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(backup))
		})
	}
}

func TestFileStore_Save(t *testing.T) {
	t.Run("should round trip the collection", func(t *testing.T) {
		s := newTestFileStore(t)
		c := testCollection()

		require.NoError(t, s.Save(t.Context(), c))

		got, err := s.Load(t.Context())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	})

	t.Run("should be stable across save and load", func(t *testing.T) {
		s := newTestFileStore(t)
		require.NoError(t, s.Save(t.Context(), testCollection()))
		first, err := os.ReadFile(s.path)
		require.NoError(t, err)

		c, err := s.Load(t.Context())
		require.NoError(t, err)
		require.NoError(t, s.Save(t.Context(), c))

		second, err := os.ReadFile(s.path)
		require.NoError(t, err)
		assert.Equal(t, string(first), string(second))
	})

	t.Run("should write the documented shape", func(t *testing.T) {
		s := newTestFileStore(t)
		require.NoError(t, s.Save(t.Context(), testCollection()))

		b, err := os.ReadFile(s.path)
		require.NoError(t, err)
		assert.Contains(t, string(b), `"date": "12-25"`)
		assert.Contains(t, string(b), `"datetime": "12-31 23:59"`)
		assert.Contains(t, string(b), `"added_at": "2024-11-01T09:30:00Z"`)
		assert.Contains(t, string(b), `"last_fired": "2023-12-25"`)
	})

	t.Run("should leave no temporary file behind", func(t *testing.T) {
		s := newTestFileStore(t)
		require.NoError(t, s.Save(t.Context(), testCollection()))

		assert.NoFileExists(t, s.path+".tmp")
	})

	t.Run("should save an empty collection as empty lists", func(t *testing.T) {
		s := newTestFileStore(t)
		require.NoError(t, s.Save(t.Context(), entity.Collection{}))

		b, err := os.ReadFile(s.path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"yearly": [], "once": []}`, string(b))
	})
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "should open the file driver by default", cfg: Config{Path: filepath.Join(dir, "a.json")}},
		{name: "should open the file driver", cfg: Config{Driver: "file", Path: filepath.Join(dir, "b.json")}},
		{name: "should open the sqlite driver", cfg: Config{Driver: "SQLite", Path: filepath.Join(dir, "c.db")}},
		{name: "should reject an unknown driver", cfg: Config{Driver: "redis", Path: "x"}, wantErr: true},
		{name: "should require a path", cfg: Config{Driver: "file"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := Open(tt.cfg, zerolog.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, errs.CodeConfig, errs.Code(err))
				return
			}
			require.NoError(t, err)
			defer repo.Close()

			c, err := repo.Load(t.Context())
			require.NoError(t, err)
			assert.True(t, c.IsEmpty())
		})
	}
}
