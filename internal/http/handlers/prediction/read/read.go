// Package read реализует HTTP-обработчик чтения одного прогноза по ID.
//
// Прогноз доступен всем, но контент premium-прогноза маскируется,
// если у запрашивающего нет подписки.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения прогноза.
type Service interface {
	Get(ctx context.Context, id int, role string) (*models.PredictionView, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Прогноз по ID
// @Description Возвращает один прогноз. Контент premium-прогноза маскируется для пользователей без подписки.
// @Tags Predictions
// @Produce  json
// @Param id path int true "ID прогноза"
// @Success 200 {object} map[string]any "Прогноз"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Прогноз не найден"
// @Router /predictions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.read"

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

	role, _ := r.Context().Value(middlewarectx.Role).(string)

	res, err := h.service.Get(r.Context(), id, role)
	if errors.Is(err, storage.ErrNotFound) {
		log.Info("prediction not found", slog.Int("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("prediction not found"))
		return
	}
	if err != nil {
		log.Error("failed to read prediction", slog.Any("err", err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read prediction"))
		return
	}

	render.JSON(w, r, response.OKWithData(res))
}
