package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
)

func TestStorage_CreateAndGetPrediction(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()
	start := time.Date(2025, 3, 15, 18, 0, 0, 0, time.UTC)

	created, err := store.CreatePrediction(ctx, GetTestPrediction("Arsenal vs Chelsea", start))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.StatusUpcoming, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := store.GetPrediction(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal vs Chelsea", got.MatchTitle)
	assert.True(t, start.Equal(got.StartTime))

	_, err = store.GetPrediction(ctx, 99999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_ListPredictions(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(store)
	ctx := context.Background()
	base := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	// Вставляем в перемешанном порядке, лента должна быть отсортирована
	late := GetTestPrediction("late match", base.Add(3*time.Hour))
	lateID := factory.CreatePrediction(t, late)

	early := GetTestPrediction("early match", base)
	earlyID := factory.CreatePrediction(t, early)

	wonPremium := GetTestPrediction("premium won", base.Add(time.Hour))
	wonPremium.Type = models.TypePremium
	wonPremium.Status = models.StatusWon
	wonPremium.SportType = models.SportBasketball
	wonID := factory.CreatePrediction(t, wonPremium)

	t.Run("без фильтра сортировка по start_time", func(t *testing.T) {
		items, err := store.ListPredictions(ctx, storage.ListFilter{})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, earlyID, items[0].ID)
		assert.Equal(t, wonID, items[1].ID)
		assert.Equal(t, lateID, items[2].ID)
	})

	t.Run("фильтр по набору статусов", func(t *testing.T) {
		items, err := store.ListPredictions(ctx, storage.ListFilter{
			Statuses: []string{models.StatusWon, models.StatusLost, models.StatusVoid},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, wonID, items[0].ID)
	})

	t.Run("фильтр по виду спорта и типу", func(t *testing.T) {
		items, err := store.ListPredictions(ctx, storage.ListFilter{
			SportType: models.SportBasketball,
			Type:      models.TypePremium,
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, wonID, items[0].ID)
	})

	t.Run("полуинтервал времени", func(t *testing.T) {
		from := base
		to := base.Add(3 * time.Hour)
		items, err := store.ListPredictions(ctx, storage.ListFilter{From: &from, To: &to})
		require.NoError(t, err)
		// late match ровно на правой границе и не входит
		require.Len(t, items, 2)
		assert.Equal(t, earlyID, items[0].ID)
		assert.Equal(t, wonID, items[1].ID)
	})
}

func TestStorage_UpdatePredictionStatus(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(store)
	ctx := context.Background()

	id := factory.CreatePrediction(t, GetTestPrediction("match", time.Now().UTC()))

	updated, err := store.UpdatePredictionStatus(ctx, id, models.StatusLost)
	require.NoError(t, err)
	assert.Equal(t, models.StatusLost, updated.Status)
	assert.Equal(t, "match", updated.MatchTitle)

	_, err = store.UpdatePredictionStatus(ctx, 99999, models.StatusWon)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStorage_DeletePrediction(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(store)
	ctx := context.Background()

	id := factory.CreatePrediction(t, GetTestPrediction("match", time.Now().UTC()))

	deleted, err := store.DeletePrediction(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Повторное удаление не ошибка
	deleted, err = store.DeletePrediction(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStorage_Users(t *testing.T) {
	store, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx := context.Background()

	created, err := store.RegisterUser(ctx, models.User{
		Username:     "alice",
		PasswordHash: "hashedpassword",
		Role:         models.RoleFree,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.UID)

	t.Run("дубликат имени отклоняется", func(t *testing.T) {
		_, err := store.RegisterUser(ctx, models.User{
			Username:     "alice",
			PasswordHash: "otherhash",
			Role:         models.RoleFree,
		})
		assert.ErrorIs(t, err, storage.ErrUsernameTaken)
	})

	t.Run("чтение по имени и по id", func(t *testing.T) {
		byName, err := store.GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, byName.ID)

		byID, err := store.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)

		_, err = store.GetUserByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("смена роли с датой окончания подписки", func(t *testing.T) {
		end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		updated, err := store.UpdateUserRole(ctx, created.ID, models.RolePremium, &end)
		require.NoError(t, err)
		assert.Equal(t, models.RolePremium, updated.Role)
		require.NotNil(t, updated.SubscriptionEnd)
		assert.True(t, end.Equal(*updated.SubscriptionEnd))

		_, err = store.UpdateUserRole(ctx, 99999, models.RoleAdmin, nil)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
