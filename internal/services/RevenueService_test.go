package services

import (
	"testing"
	"time"

	"cpd/internal/models"
	"cpd/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordViews(t *testing.T, rs *RevenueService, contentID, instructorID string, n int) models.RevenueRecord {
	t.Helper()
	var rec models.RevenueRecord
	for i := 0; i < n; i++ {
		var err error
		rec, err = rs.RecordView(contentID, instructorID, "Title "+contentID)
		require.NoError(t, err)
	}
	return rec
}

func TestRevenue_FirstViewCreatesRecord(t *testing.T) {
	f := newFixture()
	rec := recordViews(t, f.revenue, "v1", "i1", 1)

	assert.Equal(t, "v1", rec.ContentID)
	assert.Equal(t, "i1", rec.InstructorID)
	assert.Equal(t, int64(1), rec.ViewCount)
	assert.InDelta(t, 0.0025, rec.AccruedRevenue, 1e-12)
	assert.Equal(t, testNow, rec.CreatedAt)
	assert.Equal(t, 1, f.revenue.Count())
}

func TestRevenue_2500ViewsAccrue625(t *testing.T) {
	f := newFixture()
	rec := recordViews(t, f.revenue, "v1", "i1", 2500)

	assert.Equal(t, int64(2500), rec.ViewCount)
	assert.InDelta(t, 6.25, rec.AccruedRevenue, 1e-9)

	stats := f.revenue.StatsForInstructor("i1")
	assert.Equal(t, int64(2500), stats.TotalViews)
	assert.InDelta(t, 6.25, stats.TotalRevenue, 1e-9)
}

func TestRevenue_RecomputedFromCountNotAccumulated(t *testing.T) {
	f := newFixture()
	recordViews(t, f.revenue, "v1", "i1", 999)

	for _, r := range f.revenue.ListByInstructor("i1") {
		assert.Equal(t, float64(r.ViewCount)/1000*2.5, r.AccruedRevenue)
	}
}

func TestRevenue_UnknownInstructorHasZeroStats(t *testing.T) {
	f := newFixture()
	recordViews(t, f.revenue, "v1", "i1", 3)

	stats := f.revenue.StatsForInstructor("nobody")
	assert.Equal(t, models.InstructorStats{InstructorID: "nobody"}, stats)
}

func TestRevenue_StatsAggregate(t *testing.T) {
	f := newFixture()
	recordViews(t, f.revenue, "v1", "i1", 10)
	recordViews(t, f.revenue, "v2", "i1", 30)
	recordViews(t, f.revenue, "v3", "i2", 100)

	stats := f.revenue.StatsForInstructor("i1")
	assert.Equal(t, 2, stats.RecordCount)
	assert.Equal(t, int64(40), stats.TotalViews)
	assert.InDelta(t, 0.1, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 20.0, stats.AverageViews, 1e-9)
	require.NotNil(t, stats.TopRecord)
	assert.Equal(t, "v2", stats.TopRecord.ContentID)
}

func TestRevenue_TopRecordTieGoesToFirstRecord(t *testing.T) {
	f := newFixture()
	recordViews(t, f.revenue, "v1", "i1", 5)
	recordViews(t, f.revenue, "v2", "i1", 5)

	stats := f.revenue.StatsForInstructor("i1")
	require.NotNil(t, stats.TopRecord)
	assert.Equal(t, "v1", stats.TopRecord.ContentID)
}

func TestRevenue_Growth(t *testing.T) {
	f := newFixture()
	f.revenue.clock = fixedClock(testNow.Add(-40 * 24 * time.Hour))
	recordViews(t, f.revenue, "old", "i1", 1000)
	f.revenue.clock = fixedClock(testNow.Add(-5 * 24 * time.Hour))
	recordViews(t, f.revenue, "new", "i1", 1500)
	f.revenue.clock = fixedClock(testNow)

	stats := f.revenue.StatsForInstructor("i1")
	assert.InDelta(t, 3.75, stats.MonthlyRevenue, 1e-9)
	assert.InDelta(t, 2.5, stats.PriorMonthlyRevenue, 1e-9)
	assert.True(t, stats.GrowthAvailable)
	assert.InDelta(t, 50.0, stats.Growth, 1e-9)
}

func TestRevenue_GrowthUnavailableWithoutPriorWindow(t *testing.T) {
	f := newFixture()
	recordViews(t, f.revenue, "v1", "i1", 10)

	stats := f.revenue.StatsForInstructor("i1")
	assert.False(t, stats.GrowthAvailable)
	assert.Zero(t, stats.Growth)
}

func TestRevenue_RemoveRecord(t *testing.T) {
	f := newFixture()
	recordViews(t, f.revenue, "v1", "i1", 1)

	removed, err := f.revenue.RemoveRecord("v1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, f.revenue.Count())

	removed, err = f.revenue.RemoveRecord("v1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRevenue_Cleanup(t *testing.T) {
	f := newFixture()
	f.revenue.clock = fixedClock(testNow.Add(-400 * 24 * time.Hour))
	recordViews(t, f.revenue, "old", "i1", 1)
	f.revenue.clock = fixedClock(testNow)
	recordViews(t, f.revenue, "new", "i1", 1)

	removed, err := f.revenue.Cleanup(testNow.Add(-DefaultRevenueMaxAge), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	records := f.revenue.ListByInstructor("i1")
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ContentID)
}

func TestRevenue_CleanupAgesByLastView(t *testing.T) {
	f := newFixture()
	f.revenue.clock = fixedClock(testNow.Add(-400 * 24 * time.Hour))
	recordViews(t, f.revenue, "evergreen", "i1", 3)
	f.revenue.clock = fixedClock(testNow.Add(-24 * time.Hour))
	recordViews(t, f.revenue, "evergreen", "i1", 1)

	removed, err := f.revenue.Cleanup(testNow.Add(-DefaultRevenueMaxAge), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)

	records := f.revenue.ListByInstructor("i1")
	require.Len(t, records, 1)
	assert.Equal(t, int64(4), records[0].ViewCount)
}

func TestRevenue_CleanupKeepsSelectedRecords(t *testing.T) {
	f := newFixture()
	f.revenue.clock = fixedClock(testNow.Add(-400 * 24 * time.Hour))
	recordViews(t, f.revenue, "listed", "i1", 1)
	recordViews(t, f.revenue, "gone", "i1", 1)

	removed, err := f.revenue.Cleanup(testNow.Add(-DefaultRevenueMaxAge), func(id string) bool { return id == "listed" })
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	records := f.revenue.ListByInstructor("i1")
	require.Len(t, records, 1)
	assert.Equal(t, "listed", records[0].ContentID)
}

func TestRevenue_ConfiguredRate(t *testing.T) {
	f := newFixture()
	f.conf.Revenue.Rate = 4
	rs := NewRevenueService(f.conf, f.store, f.logger, f.metrics)

	rec, err := rs.RecordView("v1", "i1", "Intro")
	require.NoError(t, err)
	assert.Equal(t, 4.0, rs.Rate())
	assert.InDelta(t, 0.004, rec.AccruedRevenue, 1e-12)
}

func TestRevenue_RecordViewWriteFailure(t *testing.T) {
	f := newFixture()
	f.store.SetFailing(storage.BucketRevenue, true)

	_, err := f.revenue.RecordView("v1", "i1", "Intro")
	assert.True(t, models.IsStoreWriteError(err))
}
