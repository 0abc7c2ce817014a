// Package prediction содержит бизнес-логику ленты прогнозов: разрешение
// фильтров в предикат хранилища, политику видимости premium-контента,
// переходы статусов и кеширование одиночных чтений.
package prediction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/timeframe"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// ErrInvalidStatus — целевой статус вне допустимого набора.
var ErrInvalidStatus = errors.New("invalid status")

// ErrInvalidStartTime — время начала матча не распарсилось или отсутствует.
var ErrInvalidStartTime = errors.New("invalid start time")

// Repository определяет методы для работы с прогнозами в хранилище.
type Repository interface {
	// CreatePrediction добавляет новый прогноз и возвращает созданную запись.
	CreatePrediction(ctx context.Context, p models.Prediction) (*models.Prediction, error)
	// GetPrediction возвращает прогноз по ID.
	GetPrediction(ctx context.Context, id int) (*models.Prediction, error)
	// ListPredictions возвращает прогнозы по разрешённому фильтру.
	ListPredictions(ctx context.Context, filter storage.ListFilter) ([]*models.Prediction, error)
	// UpdatePredictionStatus меняет статус прогноза по ID.
	UpdatePredictionStatus(ctx context.Context, id int, status string) (*models.Prediction, error)
	// DeletePrediction удаляет прогноз по ID.
	DeletePrediction(ctx context.Context, id int) (bool, error)
}

// UserRegistrar — операции над пользователями, нужные сидированию.
type UserRegistrar interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с прогнозами.
// Поле now инъектируется, чтобы тесты могли зафиксировать "сейчас"
// при проверке именованных окон времени.
type Service struct {
	repo  Repository
	users UserRegistrar
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// New создает новый экземпляр Service.
func New(repo Repository, users UserRegistrar, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		users: users,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// WithClock заменяет источник времени. Используется тестами.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// List возвращает ленту прогнозов по фильтру, отсортированную по времени
// начала матча, с маскировкой premium-контента под роль запрашивающего.
// При ошибке хранилища деградирует до пустого списка: доступность ленты
// важнее сигнала об ошибке читателю.
func (s *Service) List(ctx context.Context, filter models.PredictionFilter, role string) []*models.PredictionView {
	resolved := s.resolveFilter(filter)

	items, err := s.repo.ListPredictions(ctx, resolved)
	if err != nil {
		s.log.Error("failed to list predictions, serving empty feed", sl.Err(err))
		return []*models.PredictionView{}
	}

	views := make([]*models.PredictionView, 0, len(items))
	for _, p := range items {
		views = append(views, redact(p, role))
	}
	return views
}

// Get возвращает один прогноз по ID с маскировкой под роль запрашивающего.
// Кешируется только сырая запись: маскировка применяется после чтения,
// поэтому один ключ кеша обслуживает все уровни доступа.
func (s *Service) Get(ctx context.Context, id int, role string) (*models.PredictionView, error) {
	var cached *models.Prediction
	cacheKey := fmt.Sprintf("prediction:%d", id)
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return redact(cached, role), nil
	}

	p, err := s.repo.GetPrediction(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, p, time.Hour); err != nil {
		s.log.Warn("failed to cache prediction", slog.String("key", cacheKey), sl.Err(err))
	}
	return redact(p, role), nil
}

// Create создает новый прогноз со статусом upcoming.
func (s *Service) Create(ctx context.Context, req models.DummyPrediction) (*models.Prediction, error) {
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStartTime, err)
	}

	p := models.Prediction{
		MatchTitle: req.MatchTitle,
		League:     req.League,
		SportType:  req.SportType,
		StartTime:  startTime,
		Prediction: req.Prediction,
		Odds:       req.Odds,
		Type:       req.Type,
		Status:     models.StatusUpcoming,
		Notes:      req.Notes,
	}

	created, err := s.repo.CreatePrediction(ctx, p)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new prediction", slog.Int("id", created.ID))
	return created, nil
}

// UpdateStatus переводит прогноз в целевой статус. Любой допустимый статус
// принимается из любого исходного; неизвестный — ErrInvalidStatus без
// обращения к хранилищу. Кеш записи инвалидируется.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*models.Prediction, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.repo.UpdatePredictionStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("prediction:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), sl.Err(err))
	}
	s.log.Info("updated prediction status",
		slog.Int("id", id), slog.String("status", status))
	return updated, nil
}

// Delete удаляет прогноз по ID и инвалидирует кеш.
// Для несуществующего ID возвращает (false, nil).
func (s *Service) Delete(ctx context.Context, id int) (bool, error) {
	cacheKey := fmt.Sprintf("prediction:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), sl.Err(err))
	}

	deleted, err := s.repo.DeletePrediction(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// resolveFilter переводит измерения фильтра вызывающей стороны
// в конкретный предикат хранилища. Все активные ограничения — AND.
func (s *Service) resolveFilter(filter models.PredictionFilter) storage.ListFilter {
	var resolved storage.ListFilter

	switch filter.Status {
	case "":
		// без ограничения
	case "upcoming":
		resolved.Statuses = []string{models.StatusUpcoming}
	case "completed":
		resolved.Statuses = []string{models.StatusWon, models.StatusLost, models.StatusVoid}
	default:
		// Точное значение статуса; неизвестное игнорируется,
		// а не превращается в ошибку.
		if models.ValidStatus(filter.Status) {
			resolved.Statuses = []string{filter.Status}
		}
	}

	if filter.SportType != "" && filter.SportType != "all" {
		resolved.SportType = filter.SportType
	}
	if filter.Type != "" && filter.Type != "all" {
		resolved.Type = filter.Type
	}

	if from, to, ok := timeframe.Resolve(filter.TimeFrame, s.now()); ok {
		resolved.From = &from
		resolved.To = &to
	}

	resolved.StartDate = filter.StartDate
	resolved.EndDate = filter.EndDate
	return resolved
}

// redact применяет политику видимости к одной записи. Открытый прогноз
// возвращается целиком; закрытый — целиком только для ролей premium
// и admin, остальным поля Prediction и Notes заменяются маской,
// а IsPremiumLocked выставляется в true.
func redact(p *models.Prediction, role string) *models.PredictionView {
	view := &models.PredictionView{Prediction: *p}

	if p.Type != models.TypePremium {
		return view
	}
	if role == models.RolePremium || role == models.RoleAdmin {
		return view
	}

	view.Prediction.Prediction = models.MaskToken
	view.Prediction.Notes = models.MaskToken
	view.IsPremiumLocked = true
	return view
}
