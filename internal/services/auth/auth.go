// Package auth содержит логику бизнес-уровня для работы с пользователями:
// регистрацию, вход, валидацию JWT и смену роли (выдачу подписки).
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/password"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
)

// ErrInvalidCredentials — неверное имя пользователя или пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRole — целевая роль вне допустимого набора.
var ErrInvalidRole = errors.New("invalid role")

// UserRepository описывает контракт для работы с пользователями в хранилище.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает созданную запись.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUser возвращает пользователя по ID или ошибку, если не найден.
	GetUser(ctx context.Context, id int) (*models.User, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// UpdateUserRole меняет роль и дату окончания подписки пользователя.
	UpdateUserRole(ctx context.Context, id int, role string, subscriptionEnd *time.Time) (*models.User, error)
}

// Service отвечает за регистрацию, авторизацию, валидацию JWT и роли.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и дефолтной
// ролью free. Дата окончания подписки при регистрации не назначается.
func (s *Service) Register(ctx context.Context, username, rawPassword string) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         models.RoleFree,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Username, user.Role, user.UID)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе.
func (s *Service) ValidateToken(_ context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username: claims.Username,
		Role:     claims.Role,
		UID:      claims.UserUID,
	}, nil
}

// GetUserByUsername возвращает пользователя по имени. Используется
// обработчиком текущей учётной записи.
func (s *Service) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetUserByUsername(ctx, username)
}

// UpgradeRole меняет роль пользователя и дату окончания подписки.
// Проверка срока подписки при чтении контента не выполняется: истечение
// срока обрабатывается внешним процессом, понижающим роль обратно.
func (s *Service) UpgradeRole(ctx context.Context, id int, role string, subscriptionEnd *time.Time) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return s.users.UpdateUserRole(ctx, id, role, subscriptionEnd)
}
