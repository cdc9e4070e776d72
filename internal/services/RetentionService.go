package services

import (
	"errors"
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/structures"
)

type RetentionServiceInterface interface {
	Cleanup() (*models.CleanupReport, error)
}

// RetentionService applies the periodic limits, which are stricter than the
// caps enforced on every write. Running it twice in a row changes nothing
// the second time.
type RetentionService struct {
	library            LibraryServiceInterface
	notifications      NotificationServiceInterface
	revenue            RevenueServiceInterface
	logger             providers.Logger
	notificationMaxAge time.Duration
	libraryRetain      int
	revenueMaxAge      time.Duration
	clock              func() time.Time
}

func NewRetentionService(conf *structures.Config, library LibraryServiceInterface, notifications NotificationServiceInterface, revenue RevenueServiceInterface, logger providers.Logger) RetentionServiceInterface {
	return &RetentionService{
		library:            library,
		notifications:      notifications,
		revenue:            revenue,
		logger:             logger,
		notificationMaxAge: orDefault(conf.Notifications.MaxAge, DefaultNotificationMaxAge),
		libraryRetain:      orDefault(conf.Library.RetainItems, DefaultLibraryRetainItems),
		revenueMaxAge:      orDefault(conf.Revenue.MaxAge, DefaultRevenueMaxAge),
		clock:              time.Now,
	}
}

// Cleanup runs every step even if an earlier one fails and returns the
// joined errors.
func (rs *RetentionService) Cleanup() (*models.CleanupReport, error) {
	now := rs.clock()
	report := &models.CleanupReport{NotificationsRemoved: make(map[models.Stream]int, len(models.Streams))}
	var errs []error

	for _, s := range models.Streams {
		n, err := rs.notifications.Prune(s, now.Add(-rs.notificationMaxAge))
		if err != nil {
			errs = append(errs, err)
		}
		report.NotificationsRemoved[s] = n
	}

	n, err := rs.library.Trim(rs.libraryRetain)
	if err != nil {
		errs = append(errs, err)
	}
	report.LibraryRemoved = n

	// Records of content still in the library stay, or its next view would
	// restart the ledger count from one.
	live := make(map[string]bool)
	for _, item := range rs.library.ListAll() {
		live[item.ID] = true
	}
	n, err = rs.revenue.Cleanup(now.Add(-rs.revenueMaxAge), func(id string) bool { return live[id] })
	if err != nil {
		errs = append(errs, err)
	}
	report.RevenueRemoved = n

	rs.logger.Infof(providers.TypeApp, "Cleanup removed %d audience, %d admin notifications, %d library items, %d revenue records",
		report.NotificationsRemoved[models.StreamAudience], report.NotificationsRemoved[models.StreamAdmin],
		report.LibraryRemoved, report.RevenueRemoved)
	return report, errors.Join(errs...)
}
