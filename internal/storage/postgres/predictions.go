package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"context"

	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// CreatePrediction вставляет новый прогноз и возвращает созданную запись.
// ID и дата создания назначаются базой, значения из аргумента игнорируются.
func (s *Storage) CreatePrediction(ctx context.Context, p models.Prediction) (*models.Prediction, error) {
	const op = "storage.postgres.CreatePrediction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO predictions (match_title, league, sport_type, start_time,
			      prediction, odds, type, status, notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, match_title, league, sport_type, start_time,
			      prediction, odds, type, status, notes, created_at`
	row := s.DB.QueryRowContext(ctx, query,
		p.MatchTitle, p.League, p.SportType, p.StartTime,
		p.Prediction, p.Odds, p.Type, p.Status, p.Notes)

	result, err := scanPrediction(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPrediction возвращает прогноз по его ID.
func (s *Storage) GetPrediction(ctx context.Context, id int) (*models.Prediction, error) {
	const op = "storage.postgres.GetPrediction"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, match_title, league, sport_type, start_time,
			      prediction, odds, type, status, notes, created_at
			  FROM predictions WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	result, err := scanPrediction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListPredictions возвращает прогнозы по фильтру, отсортированные
// по возрастанию времени начала матча. Все непустые измерения фильтра
// комбинируются через AND.
func (s *Storage) ListPredictions(ctx context.Context, filter storage.ListFilter) ([]*models.Prediction, error) {
	const op = "storage.postgres.ListPredictions"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conds []string
	var args []any

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			args = append(args, status)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conds = append(conds, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.SportType != "" {
		args = append(args, filter.SportType)
		conds = append(conds, fmt.Sprintf("sport_type = $%d", len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	// Именованное окно — полуинтервал [From, To).
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("start_time < $%d", len(args)))
	}
	// Явные границы — включительные.
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conds = append(conds, fmt.Sprintf("start_time >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conds = append(conds, fmt.Sprintf("start_time <= $%d", len(args)))
	}

	query := `SELECT id, match_title, league, sport_type, start_time,
			      prediction, odds, type, status, notes, created_at
			  FROM predictions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_time, id"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Prediction
	for rows.Next() {
		item, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePredictionStatus меняет только статус прогноза и возвращает
// обновлённую запись.
func (s *Storage) UpdatePredictionStatus(ctx context.Context, id int, status string) (*models.Prediction, error) {
	const op = "storage.postgres.UpdatePredictionStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE predictions
			  SET status = $1
			  WHERE id = $2
			  RETURNING id, match_title, league, sport_type, start_time,
			      prediction, odds, type, status, notes, created_at`
	row := s.DB.QueryRowContext(ctx, query, status, id)

	result, err := scanPrediction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeletePrediction удаляет прогноз по ID. Для несуществующего ID
// возвращает (false, nil).
func (s *Storage) DeletePrediction(ctx context.Context, id int) (bool, error) {
	const op = "storage.postgres.DeletePrediction"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM predictions WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected > 0, nil
}

// rowScanner покрывает *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrediction(row rowScanner) (*models.Prediction, error) {
	var p models.Prediction
	var notes sql.NullString
	if err := row.Scan(&p.ID, &p.MatchTitle, &p.League, &p.SportType, &p.StartTime,
		&p.Prediction, &p.Odds, &p.Type, &p.Status, &notes, &p.CreatedAt); err != nil {
		return nil, err
	}
	if notes.Valid {
		p.Notes = notes.String
	}
	return &p, nil
}
