package prediction

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/password"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

// SeedUsername и SeedPassword — учётные данные администратора,
// создаваемого сидированием. Пароль нужно сменить после первого входа.
const (
	SeedUsername = "admin"
	SeedPassword = "admin123"
)

// Seed наполняет пустое хранилище стартовыми данными: администратором
// и примерами прогнозов. Повторный вызов ничего не дублирует.
func (s *Service) Seed(ctx context.Context) error {
	if err := s.seedAdmin(ctx); err != nil {
		return err
	}
	return s.seedPredictions(ctx)
}

func (s *Service) seedAdmin(ctx context.Context) error {
	_, err := s.users.GetUserByUsername(ctx, SeedUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := password.GetHash(SeedPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     SeedUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if _, err := s.users.RegisterUser(ctx, admin); err != nil {
		return err
	}
	s.log.Info("seeded admin user", slog.String("username", SeedUsername))
	return nil
}

func (s *Service) seedPredictions(ctx context.Context) error {
	existing, err := s.repo.ListPredictions(ctx, storage.ListFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := s.now()
	samples := []models.Prediction{
		{
			MatchTitle: "Arsenal vs Chelsea",
			League:     "Premier League",
			SportType:  models.SportFootball,
			StartTime:  now.AddDate(0, 0, 1),
			Prediction: "Over 2.5 goals",
			Odds:       "1.85",
			Type:       models.TypeFree,
			Status:     models.StatusUpcoming,
			Notes:      "Both teams scoring freely this season",
		},
		{
			MatchTitle: "Lakers vs Celtics",
			League:     "NBA",
			SportType:  models.SportBasketball,
			StartTime:  now.AddDate(0, 0, 2),
			Prediction: "Lakers +4.5",
			Odds:       "1.91",
			Type:       models.TypePremium,
			Status:     models.StatusUpcoming,
			Notes:      "Key injury on the Celtics side",
		},
		{
			MatchTitle: "Djokovic vs Alcaraz",
			League:     "ATP Masters",
			SportType:  models.SportTennis,
			StartTime:  now.AddDate(0, 0, -1),
			Prediction: "Alcaraz to win in straight sets",
			Odds:       "2.40",
			Type:       models.TypePremium,
			Status:     models.StatusWon,
		},
	}
	for _, sample := range samples {
		if _, err := s.repo.CreatePrediction(ctx, sample); err != nil {
			return err
		}
	}
	s.log.Info("seeded sample predictions", slog.Int("count", len(samples)))
	return nil
}
