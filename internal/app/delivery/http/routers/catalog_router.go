package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachCatalogRoutes(router chi.Router, m *middlewares.Middlewares, catalogController *controllers.CatalogController) {
	router.Use(m.Authenticate)

	router.With(m.RequirePermission(middlewares.PermissionViewCatalog)).Get("/lab-tests", catalogController.GetLabTests)
	router.With(m.RequirePermission(middlewares.PermissionViewCatalog)).Get("/medications", catalogController.GetMedications)
	router.With(m.RequirePermission(middlewares.PermissionUpdateCatalog)).Put("/items/{item_id}/price", catalogController.UpdateItemPrice)
}
