package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase manages the user's pinned products.
type FavoriteUsecase interface {
	// List returns the user's favorites, most recently added first.
	List(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error)

	// Add pins a product. Adding an already-pinned product (same ID or
	// same name) is a no-op; the resulting collection is returned either
	// way.
	Add(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) ([]entity.Favorite, error)

	// Remove unpins the favorite with the exact ID and returns the
	// resulting collection.
	Remove(ctx context.Context, userID uuid.UUID, id string) ([]entity.Favorite, error)

	// Contains reports whether the product is pinned, matching by ID or
	// by name.
	Contains(ctx context.Context, userID uuid.UUID, idOrName string) (bool, error)
}

// --- Input DTOs ---

// AddFavoriteInput defines the data required to pin a product.
type AddFavoriteInput struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}
