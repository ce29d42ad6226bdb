package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, m *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.Use(m.Authenticate)

	router.With(m.RequirePermission(middlewares.PermissionViewRevenue)).Get("/revenue", reportController.GetRevenue)
	router.With(m.RequirePermission(middlewares.PermissionViewHODReports)).Get("/top-items", reportController.GetTopItems)
	router.With(m.RequirePermission(middlewares.PermissionViewHODReports)).Get("/staff-performance", reportController.GetStaffPerformance)
}
