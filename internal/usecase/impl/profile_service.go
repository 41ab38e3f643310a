package impl

import (
	"context"
	"fmt"
	"log/slog"

	"scancare/internal/domain/entity"
	domainerrors "scancare/internal/domain/errors"
	"scancare/internal/domain/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile loads the stored preferences. A missing or unreadable
// profile degrades to the zero value.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error) {
	prefs, err := srv.profileRepo.Get(ctx, userID)
	if err != nil {
		srv.logger.Error("failed to load profile", "userID", userID, "error", err)

		return &entity.Preferences{}, nil
	}

	return prefs, nil
}

// UpdateProfile validates and persists the preferences.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Preferences, error) {
	// 1. Validate the skin type against the known enum
	skinType := entity.SkinType(input.SkinType)
	if !skinType.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown skin type %q", input.SkinType))
	}

	// 2. Enforce the focus-area cap
	if len(input.FocusAreas) > entity.MaxFocusAreas {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("at most %d focus areas allowed", entity.MaxFocusAreas))
	}

	prefs := &entity.Preferences{
		SkinType:         skinType,
		AvoidIngredients: input.AvoidIngredients,
		FavoriteBrand:    input.FavoriteBrand,
		FocusAreas:       input.FocusAreas,
	}

	// 3. Apply the "no preference" avoid-list rule before storing
	prefs.Normalize()

	if err := srv.profileRepo.Save(ctx, userID, prefs); err != nil {
		srv.logger.Error("failed to save profile", "userID", userID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, "failed to save profile")
	}

	return prefs, nil
}
