package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, m *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	router.Use(m.Authenticate)
	router.Use(m.RequirePermission(middlewares.PermissionRecordPayment))

	router.Post("/", paymentController.RecordPayment)
	router.Post("/combined", paymentController.RecordCombinedPayment)
}
