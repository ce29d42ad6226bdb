package routers

import (
	"medipos-service/internal/app/config"
	"medipos-service/internal/app/delivery/http/controllers"
	"medipos-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, internalConfig *config.InternalConfig, m *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := middlewares.NewRateLimiter(internalConfig.App.LoginMaxAttemptsPerMinute, time.Minute)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.With(m.Authenticate).Post("/logout", authController.Logout)
	router.With(m.Authenticate).Get("/me", authController.GetProfile)
}
