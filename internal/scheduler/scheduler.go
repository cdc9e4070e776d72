package scheduler

import (
	"sync"
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/services"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"

	"github.com/roylee0704/gron"
)

type Scheduler struct {
	config    *structures.Config
	logger    providers.Logger
	retention services.RetentionServiceInterface
	cron      *gron.Cron
	opsMu     sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Retention.Interval
	if interval <= 0 {
		interval = time.Hour
	}

	s.cron.AddFunc(gron.Every(interval), func() {
		if _, err := s.RunCleanup(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while cleaning up: %s", err)
		}
	})

	s.cron.Start()
	s.logger.Infof(providers.TypeApp, "Retention scheduled every %s", interval)
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunCleanup runs one retention pass. Passes never overlap.
func (s *Scheduler) RunCleanup() (*models.CleanupReport, error) {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Applying retention...")
	return s.retention.Cleanup()
}

func NewScheduler(config *structures.Config, logger providers.Logger, retention services.RetentionServiceInterface) *Scheduler {
	return &Scheduler{
		config:    config,
		logger:    logger,
		retention: retention,
	}
}

var _ interfaces.SchedulerInterface = (*Scheduler)(nil)
