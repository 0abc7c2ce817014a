// Package seed реализует HTTP-обработчик первичного наполнения хранилища:
// администратор и примеры прогнозов. Повторный вызов ничего не дублирует.
package seed

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс сидирования.
type Service interface {
	Seed(ctx context.Context) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Наполнить хранилище стартовыми данными
// @Description Создаёт администратора и примеры прогнозов, если их ещё нет.
// @Tags Service
// @Produce  json
// @Success 200 {object} map[string]any "Результат сидирования"
// @Failure 500 {object} response.ErrorResponse "Ошибка сидирования"
// @Router /seed [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.seed"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.Seed(r.Context()); err != nil {
		log.Error("failed to seed storage", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to seed storage"))
		return
	}

	log.Info("storage seeded")
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "storage seeded successfully",
	}))
}
