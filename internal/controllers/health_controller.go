package controllers

import (
	"fmt"
	"net/http"
	"time"

	"cpd/internal/models"
	"cpd/internal/providers"
	"cpd/internal/services"
)

type HealthController struct {
	logger        providers.Logger
	library       services.LibraryServiceInterface
	notifications services.NotificationServiceInterface
	revenue       services.RevenueServiceInterface
	startTime     time.Time
}

type healthResponse struct {
	Status         string                `json:"status"`
	Uptime         string                `json:"uptime"`
	UptimeSeconds  float64               `json:"uptime_seconds"`
	LibraryItems   int                   `json:"library_items"`
	RevenueRecords int                   `json:"revenue_records"`
	UnreadByStream map[models.Stream]int `json:"unread_notifications"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:         "ok",
		Uptime:         formatDuration(uptime),
		UptimeSeconds:  uptime.Seconds(),
		LibraryItems:   hc.library.Count(),
		RevenueRecords: hc.revenue.Count(),
		UnreadByStream: make(map[models.Stream]int, len(models.Streams)),
	}
	// A stream that cannot be counted is left out rather than reported as 0.
	for _, s := range models.Streams {
		n, err := hc.notifications.UnreadCount(s)
		if err != nil {
			hc.logger.Errorf(providers.TypeApp, "Unread count of %s stream failed: %s", s, err)
			continue
		}
		resp.UnreadByStream[s] = n
	}

	writeJSON(w, http.StatusOK, resp)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(logger providers.Logger, library services.LibraryServiceInterface, notifications services.NotificationServiceInterface, revenue services.RevenueServiceInterface) *HealthController {
	return &HealthController{
		logger:        logger,
		library:       library,
		notifications: notifications,
		revenue:       revenue,
		startTime:     time.Now(),
	}
}
