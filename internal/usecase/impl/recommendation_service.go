package impl

import (
	"context"
	"log/slog"

	"scancare/config"
	"scancare/internal/domain/entity"
	"scancare/internal/domain/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	catalogUC    usecase.CatalogUsecase
	profileRepo  repository.ProfileRepository
	defaultLimit int
	logger       *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(
	catalogUC usecase.CatalogUsecase,
	profileRepo repository.ProfileRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RecommendationUsecase {
	return &recommendationService{
		catalogUC:    catalogUC,
		profileRepo:  profileRepo,
		defaultLimit: cfg.Recommendation.DefaultLimit,
		logger:       logger,
	}
}

// Recommend loads the user's stored preferences and ranks the catalog
// against them. A missing or unreadable profile degrades to the zero
// profile, which recommends the unfiltered catalog head.
func (srv *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Product, error) {
	profile, err := srv.profileRepo.Get(ctx, userID)
	if err != nil {
		srv.logger.Error("failed to load profile for recommendations", "userID", userID, "error", err)
		profile = &entity.Preferences{}
	}

	return srv.RecommendForProfile(profile, limit), nil
}

// RecommendForProfile ranks the catalog against the given preferences:
// strict filter, full-catalog fallback when the filter empties, favorite
// brand first, truncate. Stable throughout, so identical inputs always
// produce identical output.
func (srv *recommendationService) RecommendForProfile(profile *entity.Preferences, limit int) []entity.Product {
	if profile == nil {
		profile = &entity.Preferences{}
	}
	if limit <= 0 {
		limit = srv.defaultLimit
	}

	products := srv.catalogUC.Products()

	// 1. Strict filter on skin type and avoid list
	candidates := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if !product.SuitsSkinType(profile.SkinType) {
			continue
		}
		if product.ContainsAny(profile.AvoidIngredients) {
			continue
		}
		candidates = append(candidates, product)
	}

	// 2. Never dead-end: an over-strict filter falls back to everything
	if len(candidates) == 0 {
		candidates = products
	}

	// 3. Favorite brand first, both groups in catalog order
	if profile.FavoriteBrand != "" {
		preferred := make([]entity.Product, 0, len(candidates))
		rest := make([]entity.Product, 0, len(candidates))
		for _, product := range candidates {
			if product.Brand == profile.FavoriteBrand {
				preferred = append(preferred, product)
			} else {
				rest = append(rest, product)
			}
		}
		candidates = append(preferred, rest...)
	}

	// 4. Truncate
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates
}
