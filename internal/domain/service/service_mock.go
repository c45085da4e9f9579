package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/diegoclair/slack-announcement-bot/mocks"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockRepo     *mocks.MockAnnouncementRepo
	mockNotifier *mocks.MockNotifier
	clock        *clockwork.FakeClock
	logs         *bytes.Buffer
}

func newServiceTestMock(t *testing.T, now time.Time) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockRepo:     mocks.NewMockAnnouncementRepo(ctrl),
		mockNotifier: mocks.NewMockNotifier(ctrl),
		clock:        clockwork.NewFakeClockAt(now),
		logs:         &bytes.Buffer{},
	}

	// validate service creation
	instance := NewInstance(m.mockRepo, m.mockNotifier, m.logger(), Options{Clock: m.clock, Location: time.UTC})
	require.NotNil(t, instance)
	require.NotNil(t, instance.Announcement)
	require.NotNil(t, instance.Scheduler)

	return
}

func (m allMocks) logger() zerolog.Logger {
	return zerolog.New(m.logs)
}

// newLoadedInstance builds an instance whose store already holds the
// collection returned by the first repo Load.
func (m allMocks) newLoadedInstance(t *testing.T) *Instance {
	t.Helper()
	return m.newLoadedInstanceIn(t, time.UTC)
}

func (m allMocks) newLoadedInstanceIn(t *testing.T, loc *time.Location) *Instance {
	t.Helper()

	instance := NewInstance(m.mockRepo, m.mockNotifier, m.logger(), Options{Clock: m.clock, Location: loc})
	instance.Scheduler.store.load(t.Context())
	return instance
}
