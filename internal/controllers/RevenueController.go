package controllers

import (
	"net/http"

	"cpd/internal/models"
	"cpd/internal/services"
)

type RevenueController struct {
	revenue services.RevenueServiceInterface
}

type statsResponse struct {
	models.InstructorStats
	Rate      float64         `json:"rate"`
	Formatted formattedTotals `json:"formatted"`
}

type formattedTotals struct {
	TotalViews     string `json:"totalViews"`
	TotalRevenue   string `json:"totalRevenue"`
	MonthlyRevenue string `json:"monthlyRevenue"`
}

func NewRevenueController(revenue services.RevenueServiceInterface) *RevenueController {
	return &RevenueController{revenue: revenue}
}

func (rc *RevenueController) Stats(w http.ResponseWriter, r *http.Request) {
	instructor, ok := requireParam(w, r, "i")
	if !ok {
		return
	}
	stats := rc.revenue.StatsForInstructor(instructor)
	writeJSON(w, http.StatusOK, statsResponse{
		InstructorStats: stats,
		Rate:            rc.revenue.Rate(),
		Formatted: formattedTotals{
			TotalViews:     models.FormatCount(stats.TotalViews),
			TotalRevenue:   models.FormatCurrency(stats.TotalRevenue),
			MonthlyRevenue: models.FormatCurrency(stats.MonthlyRevenue),
		},
	})
}

func (rc *RevenueController) Records(w http.ResponseWriter, r *http.Request) {
	instructor, ok := requireParam(w, r, "i")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rc.revenue.ListByInstructor(instructor))
}
