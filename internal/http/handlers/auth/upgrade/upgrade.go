// Package upgrade реализует HTTP-обработчик смены роли пользователя.
//
// Роль premium может сопровождаться датой окончания подписки.
// Маршрут закрыт middleware только для админа.
package upgrade

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	authservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/auth"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// Request — входные данные для смены роли.
//
// SubscriptionEnd задаётся строкой в формате RFC3339 и имеет смысл
// только для роли premium.
type Request struct {
	Role            string `json:"role" validate:"required"`
	SubscriptionEnd string `json:"subscriptionEnd,omitempty"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс смены роли пользователя.
type Service interface {
	UpgradeRole(ctx context.Context, userID int, role string, subscriptionEnd *time.Time) (*models.User, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить роль пользователя
// @Description Переводит пользователя в роль free, premium или admin. Только для администратора.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param id path int true "ID пользователя"
// @Param request body Request true "Целевая роль"
// @Success 200 {object} map[string]any "Обновлённая учётная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID, роль или дата"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Security BearerAuth
// @Router /users/{id}/role [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.upgrade"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	var subscriptionEnd *time.Time
	if req.SubscriptionEnd != "" {
		t, err := time.Parse(time.RFC3339, req.SubscriptionEnd)
		if err != nil {
			log.Error("failed to parse subscription end", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid subscriptionEnd, expected RFC3339"))
			return
		}
		subscriptionEnd = &t
	}

	user, err := h.service.UpgradeRole(r.Context(), id, req.Role, subscriptionEnd)
	if errors.Is(err, authservice.ErrInvalidRole) {
		log.Error("invalid role", slog.String("role", req.Role))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid role"))
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("user not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to update role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update user role"))
		return
	}

	log.Info("user role updated",
		slog.Int("id", id), slog.String("role", user.Role))
	render.JSON(w, r, response.OKWithData(user))
}
