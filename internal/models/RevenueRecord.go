package models

import "time"

// ViewsPerRateUnit is the number of views the monetization rate is quoted for.
const ViewsPerRateUnit = 1000

type RevenueRecord struct {
	ContentID      string    `json:"contentId"`
	Title          string    `json:"title"`
	InstructorID   string    `json:"instructorId"`
	ViewCount      int64     `json:"viewCount"`
	AccruedRevenue float64   `json:"accruedRevenue"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Recompute derives AccruedRevenue from ViewCount. It is called on every
// change so the figure never drifts from the count.
func (r *RevenueRecord) Recompute(rate float64) {
	r.AccruedRevenue = float64(r.ViewCount) / ViewsPerRateUnit * rate
}

// InstructorStats aggregates all revenue records of one instructor. An
// instructor without records gets the zero value.
//
// TopRecord is the record with the highest view count; on ties the first one
// in ledger order wins. Growth compares MonthlyRevenue with the window before
// it and is only meaningful when GrowthAvailable is set.
type InstructorStats struct {
	InstructorID        string         `json:"instructorId"`
	TotalViews          int64          `json:"totalViews"`
	TotalRevenue        float64        `json:"totalRevenue"`
	RecordCount         int            `json:"recordCount"`
	AverageViews        float64        `json:"averageViewsPerRecord"`
	TopRecord           *RevenueRecord `json:"topRecord,omitempty"`
	MonthlyRevenue      float64        `json:"monthlyRevenue"`
	PriorMonthlyRevenue float64        `json:"priorMonthlyRevenue"`
	Growth              float64        `json:"growthPercent"`
	GrowthAvailable     bool           `json:"growthAvailable"`
}
