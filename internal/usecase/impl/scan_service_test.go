package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"scancare/internal/domain/entity"
	mockRepo "scancare/internal/mocks/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan service tests.
type scanServiceFixtures struct {
	service     usecase.ScanUsecase
	historyRepo *mockRepo.MockHistoryRepository
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	historyRepo := mockRepo.NewMockHistoryRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewScanService(NewCatalogService(), historyRepo, logger)

	return scanServiceFixtures{
		service:     service,
		historyRepo: historyRepo,
	}
}

func TestScanService_Scan_KnownBarcode(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := entity.ScanEntry{
		Barcode:  "5901234123457",
		Name:     "CeraVe Moisturizing Cream",
		Category: "🌿 Drugstore & Affordable Moisturizers",
		Found:    true,
	}
	stored := expected
	stored.ID = "1724800000000-abcd1234"
	stored.Timestamp = 1724800000000

	fx.historyRepo.EXPECT().Add(ctx, userID, expected).Return(&stored, nil)

	result, err := fx.service.Scan(ctx, userID, "5901234123457")

	require.NoError(t, err)
	assert.True(t, result.Found)
	require.NotNil(t, result.Product)
	assert.Equal(t, "🌿 Drugstore & Affordable Moisturizers-CeraVe Moisturizing Cream", result.Product.ID)
	assert.Equal(t, &stored, result.Entry)
}

func TestScanService_Scan_UnmappedBarcodeStillRecorded(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := entity.ScanEntry{
		Barcode: "0000000000000",
		Found:   false,
	}

	fx.historyRepo.EXPECT().Add(ctx, userID, expected).Return(&expected, nil)

	result, err := fx.service.Scan(ctx, userID, "0000000000000")

	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Nil(t, result.Product)
}

func TestScanService_Scan_SyntheticRecordForUncataloguedName(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := entity.ScanEntry{
		Barcode:  "3274870002222",
		Name:     "Cicaplast Baume B5+",
		Category: "Unknown category",
		Found:    true,
	}

	fx.historyRepo.EXPECT().Add(ctx, userID, expected).Return(&expected, nil)

	result, err := fx.service.Scan(ctx, userID, "3274870002222")

	require.NoError(t, err)
	require.NotNil(t, result.Product)
	assert.Equal(t, "unknown-Cicaplast Baume B5+", result.Product.ID)
}

func TestScanService_Scan_HistoryFailureDoesNotFailScan(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.historyRepo.EXPECT().
		Add(ctx, userID, entity.ScanEntry{
			Barcode:  "5901234123457",
			Name:     "CeraVe Moisturizing Cream",
			Category: "🌿 Drugstore & Affordable Moisturizers",
			Found:    true,
		}).
		Return(nil, errors.New("kv unavailable"))

	result, err := fx.service.Scan(ctx, userID, "5901234123457")

	require.NoError(t, err)
	assert.True(t, result.Found)
	require.NotNil(t, result.Product)
	assert.Nil(t, result.Entry)
}
