// Package storage определяет контракт хранилища данных дашборда:
// интерфейсы репозиториев прогнозов и пользователей, типовые ошибки
// и структуру фильтра списка. Конкретные реализации лежат в подпакетах
// postgres (персистентное хранилище) и memstorage (в памяти);
// вызывающий код зависит только от контракта и получает реализацию
// при старте процесса по настройке storage_driver.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
)

// Типовые ошибки хранилища. Реализации обязаны возвращать именно их
// (обёрнутыми через %w), а не ошибки драйвера: вызывающий код различает
// случаи по errors.Is.
var (
	// ErrNotFound — запись с указанным идентификатором не существует.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken — имя пользователя уже занято.
	ErrUsernameTaken = errors.New("username already taken")
)

// ListFilter — полностью разрешённый предикат списка прогнозов,
// передаваемый в хранилище. Именованные окна времени уже вычислены
// сервисным слоем: From/To — полуинтервал [From, To), StartDate/EndDate —
// включительные границы. Все непустые поля комбинируются через AND.
type ListFilter struct {
	Statuses  []string
	SportType string
	Type      string
	From      *time.Time
	To        *time.Time
	StartDate *time.Time
	EndDate   *time.Time
}

// PredictionRepository описывает операции хранилища над прогнозами.
type PredictionRepository interface {
	// CreatePrediction вставляет прогноз, назначая ID и дату создания,
	// и возвращает созданную запись.
	CreatePrediction(ctx context.Context, p models.Prediction) (*models.Prediction, error)
	// GetPrediction возвращает прогноз по ID или ErrNotFound.
	GetPrediction(ctx context.Context, id int) (*models.Prediction, error)
	// ListPredictions возвращает прогнозы, удовлетворяющие фильтру,
	// отсортированные по возрастанию времени начала матча.
	ListPredictions(ctx context.Context, filter ListFilter) ([]*models.Prediction, error)
	// UpdatePredictionStatus меняет только статус прогноза и возвращает
	// обновлённую запись или ErrNotFound.
	UpdatePredictionStatus(ctx context.Context, id int, status string) (*models.Prediction, error)
	// DeletePrediction удаляет прогноз. Для несуществующего ID
	// возвращает (false, nil), а не ошибку.
	DeletePrediction(ctx context.Context, id int) (bool, error)
}

// UserRepository описывает операции хранилища над пользователями.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает созданную
	// запись. Занятое имя — ErrUsernameTaken.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUser возвращает пользователя по ID или ErrNotFound.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// GetUserByUsername возвращает пользователя по имени или ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// UpdateUserRole меняет роль и дату окончания подписки пользователя,
	// не трогая остальные поля, и возвращает обновлённую запись.
	UpdateUserRole(ctx context.Context, id int, role string, subscriptionEnd *time.Time) (*models.User, error)
}

// Storage объединяет оба репозитория: его реализуют и postgres-хранилище,
// и хранилище в памяти.
type Storage interface {
	PredictionRepository
	UserRepository
}
