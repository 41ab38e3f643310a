package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase manages the user's stored skincare preferences.
type ProfileUsecase interface {
	// GetProfile loads the stored preferences. A missing profile
	// resolves to the zero value, never an error.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error)

	// UpdateProfile validates and persists the preferences, applying the
	// "no preference" avoid-list rule and the focus-area cap.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.Preferences, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update the skincare
// profile. Every field replaces the stored value.
type UpdateProfileInput struct {
	SkinType         string   `json:"skin_type"`
	AvoidIngredients []string `json:"avoid_ingredients"`
	FavoriteBrand    string   `json:"favorite_brand"`
	FocusAreas       []string `json:"focus_areas"`
}
