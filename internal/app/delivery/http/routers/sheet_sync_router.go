package routers

import (
	"agenda-sync-service/internal/app/delivery/http/controllers"
	"agenda-sync-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSheetSyncRoutes(router chi.Router, middlewares *middlewares.Middlewares, sheetSyncController *controllers.SheetSyncController) {
	router.Use(middlewares.RequireAPIKey)
	router.Post("/appointments/sync", sheetSyncController.SyncAppointment)
	router.Get("/debug", sheetSyncController.DebugGrid)
}
