package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"scancare/config"
	"scancare/internal/domain/entity"
	mockRepo "scancare/internal/mocks/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recommendationServiceFixtures holds all test dependencies for
// recommendation service tests.
type recommendationServiceFixtures struct {
	service     usecase.RecommendationUsecase
	catalogUC   usecase.CatalogUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestRecommendationService(t *testing.T) recommendationServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	catalogUC := NewCatalogService()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Recommendation: &config.RecommendationConfig{DefaultLimit: 10}}
	service := NewRecommendationService(catalogUC, profileRepo, cfg, logger)

	return recommendationServiceFixtures{
		service:     service,
		catalogUC:   catalogUC,
		profileRepo: profileRepo,
	}
}

func TestRecommendationService_Recommend_LoadsProfile(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.Preferences{FavoriteBrand: "CeraVe"}

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(profile, nil)

	got, err := fx.service.Recommend(ctx, userID, 5)

	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "CeraVe", got[0].Brand)
}

func TestRecommendationService_Recommend_ProfileLoadFailureDegradesToZeroProfile(t *testing.T) {
	fx := createTestRecommendationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(nil, errors.New("kv unavailable"))

	got, err := fx.service.Recommend(ctx, userID, 3)

	require.NoError(t, err)
	assert.Equal(t, fx.catalogUC.Products()[:3], got)
}

func TestRecommendationService_FavoriteBrandRanksFirst(t *testing.T) {
	fx := createTestRecommendationService(t)

	profile := &entity.Preferences{
		SkinType:         entity.SkinTypeDry,
		AvoidIngredients: []string{"Parfume"},
		FavoriteBrand:    "CeraVe",
	}

	got := fx.service.RecommendForProfile(profile, 10)

	require.NotEmpty(t, got)
	assert.Equal(t, "CeraVe Moisturizing Cream", got[0].Name)
	for _, product := range got {
		assert.False(t, product.ContainsAny([]string{"Parfume"}), "product %s carries an avoided ingredient", product.Name)
		assert.True(t, product.SuitsSkinType(entity.SkinTypeDry), "product %s excludes dry skin", product.Name)
	}
}

func TestRecommendationService_StrictFilterExcludesMismatchedSkinTypes(t *testing.T) {
	fx := createTestRecommendationService(t)

	profile := &entity.Preferences{SkinType: entity.SkinTypeDry}

	got := fx.service.RecommendForProfile(profile, len(fx.catalogUC.Products()))

	for _, product := range got {
		assert.NotEqual(t, "La Roche-Posay Effaclar Mat (for oily skin)", product.Name)
	}
}

// stubCatalog is a fixed-product CatalogUsecase for filter edge cases the
// shipped catalog cannot produce.
type stubCatalog struct {
	products []entity.Product
}

func (s *stubCatalog) Products() []entity.Product     { return s.products }
func (s *stubCatalog) Search(string) []entity.Product { return s.products }
func (s *stubCatalog) Find(string) *entity.Product    { return nil }
func (s *stubCatalog) Resolve(string) *entity.Product { return nil }

func TestRecommendationService_FallbackNeverReturnsEmpty(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Recommendation: &config.RecommendationConfig{DefaultLimit: 10}}

	// Every product is tagged with the avoided ingredient, so the strict
	// filter yields zero candidates.
	catalogUC := &stubCatalog{products: []entity.Product{
		{ID: "a", Name: "a", Contains: []string{"Parfume"}},
		{ID: "b", Name: "b", Contains: []string{"Parfume"}},
		{ID: "c", Name: "c", Contains: []string{"Parfume"}},
	}}
	service := NewRecommendationService(catalogUC, profileRepo, cfg, logger)

	profile := &entity.Preferences{AvoidIngredients: []string{"Parfume"}}

	got := service.RecommendForProfile(profile, 2)
	assert.Len(t, got, 2, "fallback must fill the limit from the full catalog")

	got = service.RecommendForProfile(profile, 10)
	assert.Len(t, got, 3)
}

func TestRecommendationService_Deterministic(t *testing.T) {
	fx := createTestRecommendationService(t)

	profile := &entity.Preferences{
		SkinType:      entity.SkinTypeCombination,
		FavoriteBrand: "Neutrogena",
	}

	first := fx.service.RecommendForProfile(profile, 12)
	second := fx.service.RecommendForProfile(profile, 12)

	assert.Equal(t, first, second)
}

func TestRecommendationService_ZeroLimitUsesDefault(t *testing.T) {
	fx := createTestRecommendationService(t)

	got := fx.service.RecommendForProfile(&entity.Preferences{}, 0)

	assert.Len(t, got, 10)
}

func TestRecommendationService_NilProfileRecommendsCatalogHead(t *testing.T) {
	fx := createTestRecommendationService(t)

	got := fx.service.RecommendForProfile(nil, 4)

	assert.Equal(t, fx.catalogUC.Products()[:4], got)
}
