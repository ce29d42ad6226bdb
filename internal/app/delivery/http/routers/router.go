package routers

import (
	"fmt"
	"medipos-service/internal/app/config"
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	m *middlewares.Middlewares,
	patientController *controllers.PatientController,
	paymentController *controllers.PaymentController,
	diagnosisController *controllers.DiagnosisController,
	serviceController *controllers.ServiceController,
	reportController *controllers.ReportController,
	catalogController *controllers.CatalogController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(m.RequestIDMiddleware)
	router.Use(m.Logging)
	router.Use(m.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, internalConfig, m, authController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, m, patientController, diagnosisController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, m, paymentController)
			})

			r.Route("/diagnoses", func(r chi.Router) {
				attachDiagnosisRoutes(r, m, diagnosisController)
			})

			r.Route("/services", func(r chi.Router) {
				attachServiceRoutes(r, m, serviceController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, m, reportController)
			})

			r.Route("/catalog", func(r chi.Router) {
				attachCatalogRoutes(r, m, catalogController)
			})

			r.Route("/admin", func(r chi.Router) {
				attachAdminRoutes(r, m, userController)
			})
		})
	})
}
