package internal

import (
	"net/http"

	"cpd/internal/controllers"
	"cpd/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, notificationController *controllers.NotificationController, revenueController *controllers.RevenueController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/library", http.HandlerFunc(apiController.GetLibrary))
	routers.Post("/library", http.HandlerFunc(apiController.Publish))
	routers.Delete("/library", http.HandlerFunc(apiController.RemoveContent))
	routers.Post("/library/view", http.HandlerFunc(apiController.View))

	routers.Get("/notifications", http.HandlerFunc(notificationController.List))
	routers.Delete("/notifications", http.HandlerFunc(notificationController.Delete))
	routers.Post("/notifications/read", http.HandlerFunc(notificationController.MarkRead))
	routers.Post("/notifications/read-all", http.HandlerFunc(notificationController.MarkAllRead))

	routers.Get("/revenue/stats", http.HandlerFunc(revenueController.Stats))
	routers.Get("/revenue/records", http.HandlerFunc(revenueController.Records))
	return routers
}
