package services

import (
	"sync"

	"cpd/internal/models"
	"cpd/internal/providers"
)

type PlaybackServiceInterface interface {
	View(contentID string) (models.ContentItem, bool)
	Remove(contentID string) (bool, error)
}

// PlaybackService records a view on both the library item and its revenue
// record. The two updates happen under one lock; if the ledger update fails
// the library increment is taken back so the counts stay equal. Removal of
// content takes the same lock, so a view in flight cannot bring back the
// revenue record of a removed item.
type PlaybackService struct {
	mu      sync.Mutex
	library LibraryServiceInterface
	revenue RevenueServiceInterface
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewPlaybackService(library LibraryServiceInterface, revenue RevenueServiceInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) PlaybackServiceInterface {
	return &PlaybackService{
		library: library,
		revenue: revenue,
		logger:  logger,
		metrics: metrics,
	}
}

// View never fails towards the caller: unknown content is ignored and
// persistence failures are only logged.
func (ps *PlaybackService) View(contentID string) (models.ContentItem, bool) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	item, found, err := ps.library.IncrementViews(contentID)
	if err != nil {
		ps.logger.Errorf(providers.TypePost, "View of %s dropped: %s", contentID, err)
		ps.metrics.IncViews(providers.OutcomeFailed)
		return models.ContentItem{}, false
	}
	if !found {
		ps.metrics.IncViews(providers.OutcomeNotFound)
		return models.ContentItem{}, false
	}

	if _, err := ps.revenue.RecordView(item.ID, item.InstructorID, item.Title); err != nil {
		ps.logger.Errorf(providers.TypePost, "Revenue for view of %s not recorded: %s", contentID, err)
		if rbErr := ps.library.DecrementViews(item.ID); rbErr != nil {
			ps.logger.Errorf(providers.TypePost, "View counts of %s diverged, rollback failed: %s", contentID, rbErr)
		}
		ps.metrics.IncViews(providers.OutcomeFailed)
		return models.ContentItem{}, false
	}

	ps.metrics.IncViews(providers.OutcomeOK)
	return item, true
}

// Remove deletes the library entry and its revenue record.
func (ps *PlaybackService) Remove(contentID string) (bool, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	removed, err := ps.library.Remove(contentID)
	if err != nil {
		return false, err
	}
	if _, err := ps.revenue.RemoveRecord(contentID); err != nil {
		return removed, err
	}
	return removed, nil
}
