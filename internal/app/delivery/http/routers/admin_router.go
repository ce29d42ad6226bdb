package routers

import (
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, m *middlewares.Middlewares, userController *controllers.UserController) {
	router.Use(m.Authenticate)
	router.Use(m.RequirePermission(middlewares.PermissionManageUsers))

	router.Post("/users", userController.CreateUser)
}
