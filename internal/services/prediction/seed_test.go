package prediction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/prediction-dashboard/internal/cache"
	"github.com/magabrotheeeer/prediction-dashboard/internal/lib/password"
	"github.com/magabrotheeeer/prediction-dashboard/internal/models"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage"
	"github.com/magabrotheeeer/prediction-dashboard/internal/storage/memstorage"
)

func TestSeed(t *testing.T) {
	store := memstorage.New()
	svc := New(store, store, cache.Noop{}, newNoopLogger())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))

	admin, err := store.GetUserByUsername(ctx, SeedUsername)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, password.CompareHash(admin.PasswordHash, SeedPassword))

	items, err := store.ListPredictions(ctx, storage.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSeed_Idempotent(t *testing.T) {
	store := memstorage.New()
	svc := New(store, store, cache.Noop{}, newNoopLogger())
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx))
	require.NoError(t, svc.Seed(ctx))

	items, err := store.ListPredictions(ctx, storage.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSeed_KeepsExistingPredictions(t *testing.T) {
	store := memstorage.New()
	svc := New(store, store, cache.Noop{}, newNoopLogger())
	ctx := context.Background()

	created, err := store.CreatePrediction(ctx, models.Prediction{
		MatchTitle: "existing match",
		SportType:  models.SportFootball,
		Type:       models.TypeFree,
		Status:     models.StatusUpcoming,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Seed(ctx))

	items, err := store.ListPredictions(ctx, storage.ListFilter{})
	require.NoError(t, err)
	// Примеры не добавляются в непустую ленту
	require.Len(t, items, 1)
	assert.Equal(t, created.ID, items[0].ID)
}
