package list

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики ленты прогнозов.
type Service interface {
	List(ctx context.Context, filter models.PredictionFilter, role string) []*models.PredictionView
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Лента прогнозов
// @Description Возвращает прогнозы по фильтрам, отсортированные по времени начала матча. Контент premium-прогнозов маскируется для пользователей без подписки.
// @Tags Predictions
// @Produce  json
// @Param status query string false "Фильтр статуса: upcoming, completed или точный статус"
// @Param sportType query string false "Вид спорта или all"
// @Param type query string false "Тип видимости: free, premium или all"
// @Param timeFrame query string false "Окно времени: today, tomorrow, thisWeek, any"
// @Param startDate query string false "Нижняя граница времени начала (YYYY-MM-DD, включительно)"
// @Param endDate query string false "Верхняя граница времени начала (YYYY-MM-DD, включительно)"
// @Success 200 {object} map[string]any "Список прогнозов"
// @Router /predictions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.PredictionFilter{
		Status:    r.URL.Query().Get("status"),
		SportType: r.URL.Query().Get("sportType"),
		Type:      r.URL.Query().Get("type"),
		TimeFrame: r.URL.Query().Get("timeFrame"),
	}
	if raw := r.URL.Query().Get("startDate"); raw != "" {
		if startDate, err := time.Parse("2006-01-02", raw); err == nil {
			filter.StartDate = &startDate
		}
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		if endDate, err := time.Parse("2006-01-02", raw); err == nil {
			filter.EndDate = &endDate
		}
	}

	// Для анонимного запроса роли в контексте нет: маскировка как для free.
	role, _ := r.Context().Value(middlewarectx.Role).(string)

	res := h.service.List(r.Context(), filter, role)

	log.Info("list predictions", slog.Int("count", len(res)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":       len(res),
		"predictions": res,
	}))
}
