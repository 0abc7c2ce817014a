// Package memstorage реализует контракт storage.Storage в памяти процесса.
// Используется в тестах и в деплое со storage_driver: memory, когда
// PostgreSQL не нужен. Все операции защищены мьютексом; данные живут
// до перезапуска процесса.
package memstorage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// Storage хранит пользователей и прогнозы в map-ах под одним мьютексом.
type Storage struct {
	mu sync.RWMutex

	users       map[int]*models.User
	predictions map[int]*models.Prediction

	nextUserID       int
	nextPredictionID int

	now func() time.Time
}

// New создаёт пустое хранилище в памяти.
func New() *Storage {
	return &Storage{
		users:            make(map[int]*models.User),
		predictions:      make(map[int]*models.Prediction),
		nextUserID:       1,
		nextPredictionID: 1,
		now:              time.Now,
	}
}

// CreatePrediction вставляет прогноз, назначая ID и дату создания.
func (s *Storage) CreatePrediction(_ context.Context, p models.Prediction) (*models.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPredictionID
	s.nextPredictionID++
	p.CreatedAt = s.now()

	stored := p
	s.predictions[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetPrediction возвращает прогноз по ID или storage.ErrNotFound.
func (s *Storage) GetPrediction(_ context.Context, id int) (*models.Prediction, error) {
	const op = "storage.memstorage.GetPrediction"
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.predictions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	result := *p
	return &result, nil
}

// ListPredictions возвращает прогнозы по фильтру, отсортированные
// по возрастанию времени начала матча (при равенстве — по ID).
func (s *Storage) ListPredictions(_ context.Context, filter storage.ListFilter) ([]*models.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*models.Prediction
	for _, p := range s.predictions {
		if !matches(p, filter) {
			continue
		}
		item := *p
		result = append(result, &item)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result, nil
}

// UpdatePredictionStatus меняет только статус прогноза.
func (s *Storage) UpdatePredictionStatus(_ context.Context, id int, status string) (*models.Prediction, error) {
	const op = "storage.memstorage.UpdatePredictionStatus"
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.predictions[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	p.Status = status
	result := *p
	return &result, nil
}

// DeletePrediction удаляет прогноз по ID. Для несуществующего ID
// возвращает (false, nil).
func (s *Storage) DeletePrediction(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.predictions[id]; !ok {
		return false, nil
	}
	delete(s.predictions, id)
	return true, nil
}

// RegisterUser сохраняет нового пользователя, назначая ID, UID и дату
// создания. Занятое имя — storage.ErrUsernameTaken.
func (s *Storage) RegisterUser(_ context.Context, user models.User) (*models.User, error) {
	const op = "storage.memstorage.RegisterUser"
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUsernameTaken)
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	user.UID = uuid.New().String()
	user.CreatedAt = s.now()

	stored := user
	s.users[stored.ID] = &stored

	result := stored
	return &result, nil
}

// GetUser возвращает пользователя по ID или storage.ErrNotFound.
func (s *Storage) GetUser(_ context.Context, id int) (*models.User, error) {
	const op = "storage.memstorage.GetUser"
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	result := *u
	return &result, nil
}

// GetUserByUsername возвращает пользователя по имени или storage.ErrNotFound.
func (s *Storage) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	const op = "storage.memstorage.GetUserByUsername"
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			result := *u
			return &result, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
}

// UpdateUserRole меняет роль и дату окончания подписки пользователя.
func (s *Storage) UpdateUserRole(_ context.Context, id int, role string, subscriptionEnd *time.Time) (*models.User, error) {
	const op = "storage.memstorage.UpdateUserRole"
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	u.Role = role
	u.SubscriptionEnd = subscriptionEnd
	result := *u
	return &result, nil
}

func matches(p *models.Prediction, filter storage.ListFilter) bool {
	if len(filter.Statuses) > 0 {
		found := false
		for _, status := range filter.Statuses {
			if p.Status == status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.SportType != "" && p.SportType != filter.SportType {
		return false
	}
	if filter.Type != "" && p.Type != filter.Type {
		return false
	}
	// Именованное окно — полуинтервал [From, To).
	if filter.From != nil && p.StartTime.Before(*filter.From) {
		return false
	}
	if filter.To != nil && !p.StartTime.Before(*filter.To) {
		return false
	}
	// Явные границы — включительные.
	if filter.StartDate != nil && p.StartTime.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && p.StartTime.After(*filter.EndDate) {
		return false
	}
	return true
}
