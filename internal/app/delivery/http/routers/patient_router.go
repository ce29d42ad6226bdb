package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, m *middlewares.Middlewares, patientController *controllers.PatientController, diagnosisController *controllers.DiagnosisController) {
	router.Use(m.Authenticate)

	router.With(m.RequirePermission(middlewares.PermissionRegisterPatient)).Post("/", patientController.RegisterPatient)
	router.With(m.RequirePermission(middlewares.PermissionViewPatients)).Get("/", patientController.ListPatients)
	router.With(m.RequirePermission(middlewares.PermissionViewPatients)).Get("/{patient_id}", patientController.GetPatient)
	router.With(m.RequirePermission(middlewares.PermissionViewPayments)).Get("/{patient_id}/payments", patientController.GetPatientPayments)
	router.With(m.RequirePermission(middlewares.PermissionViewPatients)).Get("/{patient_id}/services", patientController.GetPatientServices)
	router.With(m.RequirePermission(middlewares.PermissionRecordPayment)).Get("/{patient_id}/services/pending", patientController.GetPendingServices)
	router.With(m.RequirePermission(middlewares.PermissionViewDiagnoses)).Get("/{patient_id}/diagnoses", diagnosisController.GetPatientDiagnoses)
}
