package services

import (
	"time"

	"cpd/internal/structures"
	"cpd/internal/testutil"
)

var testNow = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type fixture struct {
	conf          *structures.Config
	store         *testutil.FailingStore
	logger        *testutil.MockLogger
	metrics       *testutil.MockMetrics
	library       *LibraryService
	notifications *NotificationService
	revenue       *RevenueService
}

func newFixture() *fixture {
	f := &fixture{
		conf:    &structures.Config{},
		store:   testutil.NewFailingStore(),
		logger:  &testutil.MockLogger{},
		metrics: testutil.NewMockMetrics(),
	}
	f.library = NewLibraryService(f.conf, f.store, f.logger, f.metrics).(*LibraryService)
	f.notifications = NewNotificationService(f.conf, f.store, f.logger, f.metrics).(*NotificationService)
	f.notifications.clock = fixedClock(testNow)
	f.revenue = NewRevenueService(f.conf, f.store, f.logger, f.metrics).(*RevenueService)
	f.revenue.clock = fixedClock(testNow)
	return f
}

func (f *fixture) publication() *PublicationService {
	ps := NewPublicationService(f.library, f.notifications, f.playback(), NewReferenceResolver(f.conf), f.logger, f.metrics).(*PublicationService)
	ps.clock = fixedClock(testNow)
	return ps
}

func (f *fixture) playback() PlaybackServiceInterface {
	return NewPlaybackService(f.library, f.revenue, f.logger, f.metrics)
}
