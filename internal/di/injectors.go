//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"cpd/internal"
	"cpd/internal/controllers"
	"cpd/internal/providers"
	"cpd/internal/scheduler"
	"cpd/internal/services"
	"cpd/internal/storage"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"
)

var domainSet = wire.NewSet(
	providers.NewConfigProvider,
	provideLogger,
	providers.NewMetricsProvider,
	storage.NewCompressor,
	provideStore,

	services.NewLibraryService,
	services.NewNotificationService,
	services.NewRevenueService,
	services.NewRetentionService,
	scheduler.NewScheduler,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		domainSet,
		providers.NewInstrumentedCacheProvider,
		services.NewReferenceResolver,
		services.NewPublicationService,
		services.NewPlaybackService,
		controllers.NewApiController,
		controllers.NewNotificationController,
		controllers.NewRevenueController,
		controllers.NewHealthController,
		internal.InitRoutes,
		wire.Bind(new(interfaces.SchedulerInterface), new(*scheduler.Scheduler)),
		internal.NewApp,
	)

	return nil, nil, nil
}

func InitCleanup(cfg *structures.CliFlags) (*scheduler.Scheduler, func(), error) {

	wire.Build(domainSet)

	return nil, nil, nil
}
