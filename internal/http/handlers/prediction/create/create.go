// Package create реализует HTTP-обработчик публикации нового прогноза.
//
// Handler принимает JSON-запрос с данными прогноза, валидирует их,
// вызывает бизнес-логику создания через сервис и возвращает созданную
// запись в JSON-формате. Маршрут закрыт middleware только для админа.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/prediction-dashboard/internal/http/response"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	predictionservice "github.com/magabrotheeeer/prediction-dashboard/internal/services/prediction"
)

// Handler управляет HTTP-запросами на публикацию прогнозов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики прогнозов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания прогноза.
type Service interface {
	Create(ctx context.Context, req models.DummyPrediction) (*models.Prediction, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Опубликовать прогноз
// @Description Создает новый прогноз со статусом upcoming. Только для администратора.
// @Tags Predictions
// @Accept  json
// @Produce  json
// @Param request body models.DummyPrediction true "Данные нового прогноза"
// @Success 200 {object} map[string]any "Созданный прогноз"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или время начала"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании прогноза"
// @Router /predictions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.prediction.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPrediction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	created, err := h.service.Create(r.Context(), req)
	if errors.Is(err, predictionservice.ErrInvalidStartTime) {
		log.Error("invalid start time", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid start time, expected RFC3339"))
		return
	}
	if err != nil {
		log.Error("failed to create prediction", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create prediction"))
		return
	}

	log.Info("prediction created", slog.Int("id", created.ID))
	render.JSON(w, r, response.OKWithData(created))
}
