package impl

import (
	"context"
	"log/slog"

	"scancare/internal/domain/entity"
	"scancare/internal/domain/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
)

// scanService implements the ScanUsecase interface.
type scanService struct {
	catalogUC   usecase.CatalogUsecase
	historyRepo repository.HistoryRepository
	logger      *slog.Logger
}

// NewScanService is the constructor for scanService.
func NewScanService(
	catalogUC usecase.CatalogUsecase,
	historyRepo repository.HistoryRepository,
	logger *slog.Logger,
) usecase.ScanUsecase {
	return &scanService{
		catalogUC:   catalogUC,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// Scan resolves the barcode and records the outcome in the scan history.
// Every resolution is recorded, found or not; a degraded history write is
// logged and leaves the scan result intact.
func (srv *scanService) Scan(ctx context.Context, userID uuid.UUID, barcode string) (*usecase.ScanResult, error) {
	// 1. Resolve the barcode against the catalog
	product := srv.catalogUC.Resolve(barcode)

	result := &usecase.ScanResult{
		Product: product,
		Found:   product != nil,
	}

	// 2. Record the outcome, found or not
	entry := entity.ScanEntry{
		Barcode: barcode,
		Found:   result.Found,
	}
	if product != nil {
		entry.Name = product.Name
		entry.Category = product.Category
	}

	stored, err := srv.historyRepo.Add(ctx, userID, entry)
	if err != nil {
		srv.logger.Error("failed to record scan history", "userID", userID, "barcode", barcode, "error", err)

		return result, nil
	}
	result.Entry = stored

	return result, nil
}
