// Package updatestatus реализует HTTP-обработчик смены статуса прогноза.
//
// Любой допустимый статус принимается из любого исходного; неизвестный
// отклоняется. Маршрут закрыт middleware только для админа.
package updatestatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	predictionservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/prediction"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// Request — входные данные для смены статуса.
type Request struct {
	Status string `json:"status" validate:"required"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены статуса.
type Service interface {
	UpdateStatus(ctx context.Context, id int, status string) (*models.Prediction, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить статус прогноза
// @Description Переводит прогноз в целевой статус (upcoming, won, lost, void). Только для администратора.
// @Tags Predictions
// @Accept  json
// @Produce  json
// @Param id path int true "ID прогноза"
// @Param request body Request true "Целевой статус"
// @Success 200 {object} map[string]any "Обновлённый прогноз"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID или статус"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Прогноз не найден"
// @Router /predictions/{id}/status [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.updatestatus"
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

	updated, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if errors.Is(err, predictionservice.ErrInvalidStatus) {
		log.Error("invalid status", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid status"))
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("prediction not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("prediction not found"))
		return
	}
	if err != nil {
		log.Error("failed to update status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update prediction status"))
		return
	}

	log.Info("prediction status updated",
		slog.Int("id", id), slog.String("status", req.Status))
	render.JSON(w, r, response.OKWithData(updated))
}
