package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// RegisterUser сохраняет нового пользователя в базу данных и возвращает
// созданную запись. Занятое имя пользователя — storage.ErrUsernameTaken.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.postgres.RegisterUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (username, password_hash, role, subscription_end)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, uid, username, password_hash, role, subscription_end, created_at`
	row := s.DB.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.Role, user.SubscriptionEnd)

	result, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrUsernameTaken)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetUser возвращает пользователя по его ID.
func (s *Storage) GetUser(ctx context.Context, id int) (*models.User, error) {
	const op = "storage.postgres.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, username, password_hash, role, subscription_end, created_at
			  FROM users
			  WHERE id = $1`
	result, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetUserByUsername возвращает пользователя по его username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgres.GetUserByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, uid, username, password_hash, role, subscription_end, created_at
			  FROM users
			  WHERE username = $1`
	result, err := scanUser(s.DB.QueryRowContext(ctx, query, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUserRole меняет роль и дату окончания подписки пользователя,
// не трогая остальные поля, и возвращает обновлённую запись.
func (s *Storage) UpdateUserRole(ctx context.Context, id int, role string, subscriptionEnd *time.Time) (*models.User, error) {
	const op = "storage.postgres.UpdateUserRole"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET role = $1, subscription_end = $2
			  WHERE id = $3
			  RETURNING id, uid, username, password_hash, role, subscription_end, created_at`
	result, err := scanUser(s.DB.QueryRowContext(ctx, query, role, subscriptionEnd, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var u models.User
	var subscriptionEnd sql.NullTime
	if err := row.Scan(&u.ID, &u.UID, &u.Username, &u.PasswordHash,
		&u.Role, &subscriptionEnd, &u.CreatedAt); err != nil {
		return nil, err
	}
	if subscriptionEnd.Valid {
		u.SubscriptionEnd = &subscriptionEnd.Time
	}
	return &u, nil
}
