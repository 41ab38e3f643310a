package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// RecommendationUsecase ranks the catalog against a user's skincare
// preferences. Output order is deterministic for identical inputs.
type RecommendationUsecase interface {
	// Recommend loads the user's stored preferences and ranks the
	// catalog against them. A limit of zero or less uses the configured
	// default.
	Recommend(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Product, error)

	// RecommendForProfile ranks the catalog against an explicit
	// preference set without touching storage.
	RecommendForProfile(profile *entity.Preferences, limit int) []entity.Product
}
