// Package predictiondashboard предоставляет маршруты для основного приложения.
package predictiondashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/auth/upgrade"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/prediction/create"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/prediction/list"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/prediction/read"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/prediction/remove"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/prediction/seed"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/handlers/prediction/updatestatus"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/auth"
	predictionservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/prediction"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Чтение ленты открыто всем: роль из необязательного JWT влияет только
// на маскировку premium-контента. Все операции записи закрыты
// JWT middleware и проверкой роли admin.
func RegisterRoutes(r chi.Router, logger *slog.Logger, predictionService *predictionservice.Service, authService *authservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/seed", seed.New(logger, predictionService).ServeHTTP)

		// Публичная лента: токен необязателен, роль определяет маскировку
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(authService, logger))
			r.Get("/predictions", list.New(logger, predictionService).ServeHTTP)
			r.Get("/predictions/{id}", read.New(logger, predictionService).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/user", me.New(logger, authService).ServeHTTP)

			// Операции записи: только администратор
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))
				r.Use(middlewarectx.RateLimitMiddleware(logger))
				r.Post("/predictions", create.New(logger, predictionService).ServeHTTP)
				r.Patch("/predictions/{id}/status", updatestatus.New(logger, predictionService).ServeHTTP)
				r.Delete("/predictions/{id}", remove.New(logger, predictionService).ServeHTTP)
				r.Post("/users/{id}/role", upgrade.New(logger, authService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
