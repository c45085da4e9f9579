package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var storeNow = time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)

func Test_store_load(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		wantLen   int
		wantEvent string
	}{
		{
			name: "Should load the persisted collection",
			buildMock: func(m allMocks) {
				m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{
					Yearly: []entity.Yearly{yearly("xmas", time.December, 25, "Merry Christmas!")},
				}, nil)
			},
			wantLen: 1,
		},
		{
			name: "Should degrade to empty and signal a corrupt store",
			buildMock: func(m allMocks) {
				m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{},
					errs.NewPersistenceError("invalid json", errs.ErrCorrupt))
			},
			wantEvent: "store_corrupt",
		},
		{
			name: "Should degrade to empty and signal an unreadable store",
			buildMock: func(m allMocks) {
				m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{},
					errs.NewPersistenceError("permission denied", errors.New("EACCES")))
			},
			wantEvent: "store_unreadable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t, storeNow)
			defer ctrl.Finish()

			tt.buildMock(m)

			st := newStore(m.mockRepo, m.logger())
			assert.False(t, st.isLoaded())

			st.load(t.Context())

			assert.True(t, st.isLoaded())
			assert.Len(t, st.snapshot().Yearly, tt.wantLen)
			if tt.wantEvent != "" {
				assert.Contains(t, m.logs.String(), `"event":"`+tt.wantEvent+`"`)
				assert.Contains(t, m.logs.String(), `"level":"warn"`)
			}
		})
	}
}

func Test_store_mutate(t *testing.T) {
	tests := []struct {
		name      string
		buildMock func(m allMocks)
		fn        func(c *entity.Collection) error
		wantErr   bool
		wantLen   int
		check     func(t *testing.T, err error)
	}{
		{
			name: "Should commit when the save succeeds",
			buildMock: func(m allMocks) {
				m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			fn: func(c *entity.Collection) error {
				c.Yearly = append(c.Yearly, yearly("a", time.May, 1, "a"))
				return nil
			},
			wantLen: 2,
		},
		{
			name: "Should keep the previous collection when the save fails",
			buildMock: func(m allMocks) {
				m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			fn: func(c *entity.Collection) error {
				c.Yearly = append(c.Yearly, yearly("a", time.May, 1, "a"))
				return nil
			},
			wantErr: true,
			wantLen: 1,
			check: func(t *testing.T, err error) {
				assert.True(t, errs.IsPersistence(err))
			},
		},
		{
			name:      "Should not save when fn fails",
			buildMock: func(m allMocks) {},
			fn: func(c *entity.Collection) error {
				c.Yearly = nil
				return errs.NewValidationError("nope", errs.ErrIndexOutOfRange)
			},
			wantErr: true,
			wantLen: 1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrIndexOutOfRange)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t, storeNow)
			defer ctrl.Finish()

			m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{
				Yearly: []entity.Yearly{yearly("xmas", time.December, 25, "Merry Christmas!")},
			}, nil)
			tt.buildMock(m)

			st := newStore(m.mockRepo, m.logger())
			st.load(t.Context())

			err := st.mutate(t.Context(), tt.fn)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
			assert.Len(t, st.snapshot().Yearly, tt.wantLen)
		})
	}
}

func Test_store_consume(t *testing.T) {
	t.Run("Should persist the fired state before returning firings", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t, storeNow)
		defer ctrl.Finish()

		m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{
			Yearly: []entity.Yearly{yearly("xmas", time.December, 25, "Merry Christmas!")},
			Once:   []entity.Once{once("o", time.December, 25, 0, 0, "now")},
		}, nil)

		var saved entity.Collection
		m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entity.Collection) error {
				saved = c
				return nil
			})

		st := newStore(m.mockRepo, m.logger())
		st.load(t.Context())

		firings, err := st.consume(t.Context(), storeNow)
		require.NoError(t, err)
		require.Len(t, firings, 2)

		require.Len(t, saved.Yearly, 1)
		assert.Equal(t, "2024-12-25", saved.Yearly[0].LastFired)
		assert.Empty(t, saved.Once)
	})

	t.Run("Should not save when nothing is due", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t, storeNow)
		defer ctrl.Finish()

		m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{
			Yearly: []entity.Yearly{yearly("may", time.May, 1, "May day")},
		}, nil)

		st := newStore(m.mockRepo, m.logger())
		st.load(t.Context())

		firings, err := st.consume(t.Context(), storeNow)
		require.NoError(t, err)
		assert.Empty(t, firings)
	})

	t.Run("Should keep the mutation and retry after a failed save", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t, storeNow)
		defer ctrl.Finish()

		m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{
			Once: []entity.Once{once("o", time.December, 25, 0, 0, "now")},
		}, nil)

		gomock.InOrder(
			m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
			m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, c entity.Collection) error {
					assert.Empty(t, c.Once)
					return nil
				}),
		)

		st := newStore(m.mockRepo, m.logger())
		st.load(t.Context())

		firings, err := st.consume(t.Context(), storeNow)
		require.Error(t, err)
		assert.True(t, errs.IsPersistence(err))
		require.Len(t, firings, 1)
		assert.Empty(t, st.snapshot().Once)

		// nothing due, but the dirty state is retried
		firings, err = st.consume(t.Context(), storeNow.Add(time.Minute))
		require.NoError(t, err)
		assert.Empty(t, firings)

		require.NoError(t, st.flush(t.Context()))
	})
}

func Test_store_flush(t *testing.T) {
	m, ctrl := newServiceTestMock(t, storeNow)
	defer ctrl.Finish()

	m.mockRepo.EXPECT().Load(gomock.Any()).Return(entity.Collection{
		Once: []entity.Once{once("o", time.December, 25, 0, 0, "now")},
	}, nil)
	gomock.InOrder(
		m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		m.mockRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil),
	)

	st := newStore(m.mockRepo, m.logger())
	st.load(t.Context())

	_, err := st.consume(t.Context(), storeNow)
	require.Error(t, err)

	require.NoError(t, st.flush(t.Context()))
	// clean store, no further save
	require.NoError(t, st.flush(t.Context()))
}
