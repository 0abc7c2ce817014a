// Package me реализует HTTP-обработчик получения профиля текущего пользователя.
//
// Имя пользователя берётся из контекста запроса, куда его кладёт JWT middleware.
package me

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения профиля пользователя.
type Service interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает учётную запись пользователя из JWT. Хэш пароля не отдаётся.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /user [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("username missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

	user, err := h.service.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load user"))
		return
	}

	log.Info("user profile loaded", slog.String("username", user.Username))
	render.JSON(w, r, response.OKWithData(user))
}
