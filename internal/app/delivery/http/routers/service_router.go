package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachServiceRoutes(router chi.Router, m *middlewares.Middlewares, serviceController *controllers.ServiceController) {
	router.Use(m.Authenticate)

	router.With(m.RequirePermission(middlewares.PermissionCompleteService)).Put("/{service_id}/complete", serviceController.CompleteService)
	router.With(m.RequirePermission(middlewares.PermissionDispenseService)).Put("/{service_id}/dispense", serviceController.DispenseService)
	router.With(m.RequirePermission(middlewares.PermissionViewLabQueue)).Get("/queue/lab", serviceController.GetLabQueue)
	router.With(m.RequirePermission(middlewares.PermissionViewPharmacyQueue)).Get("/queue/pharmacy", serviceController.GetPharmacyQueue)
}
