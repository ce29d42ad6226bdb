package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(router chi.Router, m *middlewares.Middlewares, diagnosisController *controllers.DiagnosisController) {
	router.Use(m.Authenticate)

	router.With(m.RequirePermission(middlewares.PermissionRecordDiagnosis)).Post("/", diagnosisController.RecordDiagnosis)
}
