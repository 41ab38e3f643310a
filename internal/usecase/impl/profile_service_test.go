package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"scancare/internal/domain/entity"
	domainerrors "scancare/internal/domain/errors"
	mockRepo "scancare/internal/mocks/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service
// tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(profileRepo, logger)

	return profileServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.Preferences{SkinType: entity.SkinTypeDry, FavoriteBrand: "CeraVe"}

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(stored, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestProfileService_GetProfile_ReadFailureDegradesToZeroValue(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(nil, errors.New("kv unavailable"))

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, &entity.Preferences{}, got)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		SkinType:         "Dry",
		AvoidIngredients: []string{"Parfume"},
		FavoriteBrand:    "CeraVe",
		FocusAreas:       []string{"Hydration", "Redness"},
	}
	expected := &entity.Preferences{
		SkinType:         entity.SkinTypeDry,
		AvoidIngredients: []string{"Parfume"},
		FavoriteBrand:    "CeraVe",
		FocusAreas:       []string{"Hydration", "Redness"},
	}

	fx.profileRepo.EXPECT().Save(ctx, userID, expected).Return(nil)

	got, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestProfileService_UpdateProfile_NoPreferenceClearsAvoidList(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateProfileInput{
		AvoidIngredients: []string{"Parfume", entity.AvoidNone, "Lanolin"},
	}

	fx.profileRepo.EXPECT().Save(ctx, userID, &entity.Preferences{}).Return(nil)

	got, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Empty(t, got.AvoidIngredients)
}

func TestProfileService_UpdateProfile_UnknownSkinTypeFails(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		SkinType: "Reptilian",
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
}

func TestProfileService_UpdateProfile_TooManyFocusAreasFails(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		FocusAreas: []string{"Hydration", "Redness", "Acne"},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
}

func TestProfileService_UpdateProfile_WriteFailureSurfaces(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().Save(ctx, userID, &entity.Preferences{}).Return(errors.New("kv unavailable"))

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}
