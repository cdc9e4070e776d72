package controllers

import (
	"cpd/internal/services"
	"cpd/internal/structures"
	"cpd/internal/testutil"
)

type testEnv struct {
	store         *testutil.FailingStore
	logger        *testutil.MockLogger
	cache         *testutil.MockCache
	library       services.LibraryServiceInterface
	notifications services.NotificationServiceInterface
	revenue       services.RevenueServiceInterface
	publication   services.PublicationServiceInterface
	playback      services.PlaybackServiceInterface
}

func newTestEnv() *testEnv {
	conf := &structures.Config{}
	env := &testEnv{
		store:  testutil.NewFailingStore(),
		logger: &testutil.MockLogger{},
		cache:  testutil.NewMockCache(),
	}
	metrics := testutil.NewMockMetrics()
	env.library = services.NewLibraryService(conf, env.store, env.logger, metrics)
	env.notifications = services.NewNotificationService(conf, env.store, env.logger, metrics)
	env.revenue = services.NewRevenueService(conf, env.store, env.logger, metrics)
	env.playback = services.NewPlaybackService(env.library, env.revenue, env.logger, metrics)
	env.publication = services.NewPublicationService(env.library, env.notifications, env.playback,
		services.NewReferenceResolver(conf), env.logger, metrics)
	return env
}

func (e *testEnv) api() *ApiController {
	return NewApiController(e.logger, e.library, e.publication, e.playback, e.cache)
}
