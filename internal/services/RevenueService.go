package services

import (
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/storage"
	"cpd/internal/storage/interfaces"
	"cpd/internal/structures"
)

type RevenueServiceInterface interface {
	RecordView(contentID, instructorID, title string) (models.RevenueRecord, error)
	StatsForInstructor(instructorID string) models.InstructorStats
	ListByInstructor(instructorID string) []models.RevenueRecord
	RemoveRecord(contentID string) (bool, error)
	Cleanup(olderThan time.Time, keep func(contentID string) bool) (int, error)
	Rate() float64
	Count() int
	Revision() uint64
}

// RevenueService is the per-content view ledger. Records are kept in
// creation order, one per content id.
type RevenueService struct {
	records *storage.Collection[models.RevenueRecord]
	rate    float64
	window  time.Duration
	clock   func() time.Time
}

func NewRevenueService(conf *structures.Config, store interfaces.StoreInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) RevenueServiceInterface {
	return &RevenueService{
		records: storage.NewCollection[models.RevenueRecord](storage.BucketRevenue, store, logger, metrics),
		rate:    orDefault(conf.Revenue.Rate, DefaultMonetizationRate),
		window:  orDefault(conf.Revenue.Window, DefaultRevenueWindow),
		clock:   time.Now,
	}
}

// RecordView counts one view for contentID, creating its record on the
// first view. Repeated calls are not deduplicated.
func (rs *RevenueService) RecordView(contentID, instructorID, title string) (models.RevenueRecord, error) {
	var record models.RevenueRecord
	now := rs.clock()
	err := rs.records.Update(func(items []models.RevenueRecord) ([]models.RevenueRecord, bool) {
		for i := range items {
			if items[i].ContentID == contentID {
				items[i].ViewCount++
				items[i].UpdatedAt = now
				items[i].Recompute(rs.rate)
				record = items[i]
				return items, true
			}
		}
		record = models.RevenueRecord{
			ContentID:    contentID,
			Title:        title,
			InstructorID: instructorID,
			ViewCount:    1,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		record.Recompute(rs.rate)
		return append(items, record), true
	})
	if err != nil {
		return models.RevenueRecord{}, err
	}
	return record, nil
}

func (rs *RevenueService) ListByInstructor(instructorID string) []models.RevenueRecord {
	all := rs.records.Load()
	out := make([]models.RevenueRecord, 0, len(all))
	for _, r := range all {
		if r.InstructorID == instructorID {
			out = append(out, r)
		}
	}
	return out
}

// StatsForInstructor aggregates the instructor's records. Monthly revenue
// covers records created within the trailing window; growth compares it
// with the window before.
func (rs *RevenueService) StatsForInstructor(instructorID string) models.InstructorStats {
	stats := models.InstructorStats{InstructorID: instructorID}
	now := rs.clock()
	windowStart := now.Add(-rs.window)
	priorStart := windowStart.Add(-rs.window)

	for _, r := range rs.ListByInstructor(instructorID) {
		stats.RecordCount++
		stats.TotalViews += r.ViewCount
		stats.TotalRevenue += r.AccruedRevenue
		if stats.TopRecord == nil || r.ViewCount > stats.TopRecord.ViewCount {
			top := r
			stats.TopRecord = &top
		}

		switch {
		case r.CreatedAt.After(windowStart) && !r.CreatedAt.After(now):
			stats.MonthlyRevenue += r.AccruedRevenue
		case r.CreatedAt.After(priorStart) && !r.CreatedAt.After(windowStart):
			stats.PriorMonthlyRevenue += r.AccruedRevenue
		}
	}

	if stats.RecordCount > 0 {
		stats.AverageViews = float64(stats.TotalViews) / float64(stats.RecordCount)
	}
	if stats.PriorMonthlyRevenue > 0 {
		stats.Growth = (stats.MonthlyRevenue - stats.PriorMonthlyRevenue) / stats.PriorMonthlyRevenue * 100
		stats.GrowthAvailable = true
	}
	return stats
}

func (rs *RevenueService) RemoveRecord(contentID string) (bool, error) {
	removed := false
	err := rs.records.Update(func(items []models.RevenueRecord) ([]models.RevenueRecord, bool) {
		out := items[:0]
		for _, r := range items {
			if r.ContentID == contentID {
				removed = true
				continue
			}
			out = append(out, r)
		}
		return out, removed
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// Cleanup drops records that last changed before olderThan. Records for
// which keep reports true stay regardless of age; keep may be nil.
func (rs *RevenueService) Cleanup(olderThan time.Time, keep func(contentID string) bool) (int, error) {
	removed := 0
	err := rs.records.Update(func(items []models.RevenueRecord) ([]models.RevenueRecord, bool) {
		out := items[:0]
		for _, r := range items {
			if r.UpdatedAt.Before(olderThan) && (keep == nil || !keep(r.ContentID)) {
				removed++
				continue
			}
			out = append(out, r)
		}
		return out, removed > 0
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func (rs *RevenueService) Rate() float64 {
	return rs.rate
}

func (rs *RevenueService) Count() int {
	return len(rs.records.Load())
}

func (rs *RevenueService) Revision() uint64 {
	return rs.records.Revision()
}
