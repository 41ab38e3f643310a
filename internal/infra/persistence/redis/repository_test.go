package redis

import (
	"context"
	"testing"
	"time"

	"scancare/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *goredis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestFavoriteRepository_AddListRemove(t *testing.T) {
	repo := NewFavoriteRepository(newTestClient(t))

	ctx := context.Background()
	userID := uuid.New()

	first := entity.Favorite{ID: "p1", Name: "CeraVe Moisturizing Cream", Category: "🌿 Drugstore & Affordable Moisturizers"}
	second := entity.Favorite{ID: "p2", Name: "Tatcha The Water Cream", Category: "✨ High-End / Luxury Moisturizers"}

	got, err := repo.Add(ctx, userID, first)
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{first}, got)

	// Most recent first
	got, err = repo.Add(ctx, userID, second)
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{second, first}, got)

	// Read-after-write through a fresh load
	listed, err := repo.List(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, got, listed)

	got, err = repo.Remove(ctx, userID, "p1")
	require.NoError(t, err)
	assert.Equal(t, []entity.Favorite{second}, got)
}

func TestFavoriteRepository_DedupByIDOrName(t *testing.T) {
	repo := NewFavoriteRepository(newTestClient(t))

	ctx := context.Background()
	userID := uuid.New()

	base := entity.Favorite{ID: "p1", Name: "CeraVe Moisturizing Cream"}
	_, err := repo.Add(ctx, userID, base)
	require.NoError(t, err)

	// Same ID, different name
	got, err := repo.Add(ctx, userID, entity.Favorite{ID: "p1", Name: "Other"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Same name, different synthetic ID
	got, err = repo.Add(ctx, userID, entity.Favorite{ID: "unknown-CeraVe Moisturizing Cream", Name: "CeraVe Moisturizing Cream"})
	require.NoError(t, err)
	assert.Len(t, got, 1)

	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	for _, favorite := range got {
		_, dupID := seenIDs[favorite.ID]
		_, dupName := seenNames[favorite.Name]
		assert.False(t, dupID)
		assert.False(t, dupName)
		seenIDs[favorite.ID] = struct{}{}
		seenNames[favorite.Name] = struct{}{}
	}
}

func TestFavoriteRepository_Contains(t *testing.T) {
	repo := NewFavoriteRepository(newTestClient(t))

	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.Add(ctx, userID, entity.Favorite{ID: "p1", Name: "CeraVe Moisturizing Cream"})
	require.NoError(t, err)

	byID, err := repo.Contains(ctx, userID, "p1")
	require.NoError(t, err)
	assert.True(t, byID)

	byName, err := repo.Contains(ctx, userID, "CeraVe Moisturizing Cream")
	require.NoError(t, err)
	assert.True(t, byName)

	missing, err := repo.Contains(ctx, userID, "nope")
	require.NoError(t, err)
	assert.False(t, missing)
}

func TestFavoriteRepository_EmptyListForFreshUser(t *testing.T) {
	repo := NewFavoriteRepository(newTestClient(t))

	got, err := repo.List(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFavoriteRepository_UsersAreIsolated(t *testing.T) {
	repo := NewFavoriteRepository(newTestClient(t))

	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := repo.Add(ctx, alice, entity.Favorite{ID: "p1", Name: "x"})
	require.NoError(t, err)

	got, err := repo.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHistoryRepository_AddGeneratesIDAndTimestamp(t *testing.T) {
	client := newTestClient(t)
	repo := &historyRepository{
		client: client,
		now:    func() time.Time { return time.UnixMilli(1724800000000) },
	}

	ctx := context.Background()
	userID := uuid.New()

	stored, err := repo.Add(ctx, userID, entity.ScanEntry{Barcode: "5901234123457", Name: "CeraVe Moisturizing Cream", Found: true})

	require.NoError(t, err)
	assert.Equal(t, int64(1724800000000), stored.Timestamp)
	assert.Regexp(t, `^1724800000000-[0-9a-f]{8}$`, stored.ID)
}

func TestHistoryRepository_NoDedupAndMostRecentFirst(t *testing.T) {
	repo := NewHistoryRepository(newTestClient(t))

	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.Add(ctx, userID, entity.ScanEntry{Barcode: "5901234123457", Found: true})
	require.NoError(t, err)
	second, err := repo.Add(ctx, userID, entity.ScanEntry{Barcode: "5901234123457", Found: true})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	entries, err := repo.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestHistoryRepository_RemoveAndClear(t *testing.T) {
	repo := NewHistoryRepository(newTestClient(t))

	ctx := context.Background()
	userID := uuid.New()

	first, err := repo.Add(ctx, userID, entity.ScanEntry{Barcode: "a"})
	require.NoError(t, err)
	_, err = repo.Add(ctx, userID, entity.ScanEntry{Barcode: "b"})
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, userID, first.ID))

	entries, err := repo.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].Barcode)

	require.NoError(t, repo.Clear(ctx, userID))

	entries, err = repo.List(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProfileRepository_RoundTrip(t *testing.T) {
	repo := NewProfileRepository(newTestClient(t))

	ctx := context.Background()
	userID := uuid.New()

	// Fresh user resolves to the zero profile
	prefs, err := repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, &entity.Preferences{}, prefs)

	stored := &entity.Preferences{
		SkinType:         entity.SkinTypeDry,
		AvoidIngredients: []string{"Parfume"},
		FavoriteBrand:    "CeraVe",
		FocusAreas:       []string{"Hydration"},
	}
	require.NoError(t, repo.Save(ctx, userID, stored))

	prefs, err = repo.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, stored, prefs)
}

func TestRepositories_SurfaceStorageFailures(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	userID := uuid.New()

	favRepo := NewFavoriteRepository(client)
	histRepo := NewHistoryRepository(client)
	profRepo := NewProfileRepository(client)

	mr.Close()

	_, err := favRepo.List(ctx, userID)
	assert.Error(t, err)

	_, err = histRepo.Add(ctx, userID, entity.ScanEntry{Barcode: "x"})
	assert.Error(t, err)

	err = profRepo.Save(ctx, userID, &entity.Preferences{})
	assert.Error(t, err)
}
