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

// historyServiceFixtures holds all test dependencies for history service
// tests.
type historyServiceFixtures struct {
	service     usecase.HistoryUsecase
	historyRepo *mockRepo.MockHistoryRepository
}

func createTestHistoryService(t *testing.T) historyServiceFixtures {
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewHistoryService(historyRepo, logger)

	return historyServiceFixtures{
		service:     service,
		historyRepo: historyRepo,
	}
}

func TestHistoryService_List_Success(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := []entity.ScanEntry{{ID: "e1", Barcode: "5901234123457", Found: true}}

	fx.historyRepo.EXPECT().List(ctx, userID).Return(stored, nil)

	got, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestHistoryService_List_ReadFailureDegradesToEmpty(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.historyRepo.EXPECT().List(ctx, userID).Return(nil, errors.New("kv unavailable"))

	got, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestHistoryService_Remove_WriteFailureSurfaces(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.historyRepo.EXPECT().Remove(ctx, userID, "e1").Return(errors.New("kv unavailable"))

	err := fx.service.Remove(ctx, userID, "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestHistoryService_Clear_Success(t *testing.T) {
	fx := createTestHistoryService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.historyRepo.EXPECT().Clear(ctx, userID).Return(nil)

	require.NoError(t, fx.service.Clear(ctx, userID))
}
