package services

import "time"

const (
	DefaultLibraryMaxItems    = 100
	DefaultLibraryRetainItems = 50
	DefaultAudienceMax        = 50
	DefaultAdminMax           = 20
	DefaultNotificationMaxAge = 30 * 24 * time.Hour
	DefaultMonetizationRate   = 2.5
	DefaultRevenueMaxAge      = 365 * 24 * time.Hour
	DefaultRevenueWindow      = 30 * 24 * time.Hour
)

func orDefault[T int | float64 | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}
