package impl

import (
	"context"
	"log/slog"

	"scancare/internal/domain/entity"
	domainerrors "scancare/internal/domain/errors"
	"scancare/internal/domain/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// historyService implements the HistoryUsecase interface.
type historyService struct {
	historyRepo repository.HistoryRepository
	logger      *slog.Logger
}

// NewHistoryService is the constructor for historyService.
func NewHistoryService(
	historyRepo repository.HistoryRepository,
	logger *slog.Logger,
) usecase.HistoryUsecase {
	return &historyService{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

// List returns the scan log, most recent first. A failed load degrades to
// an empty log.
func (srv *historyService) List(ctx context.Context, userID uuid.UUID) ([]entity.ScanEntry, error) {
	entries, err := srv.historyRepo.List(ctx, userID)
	if err != nil {
		srv.logger.Error("failed to load scan history", "userID", userID, "error", err)

		return []entity.ScanEntry{}, nil
	}

	return entries, nil
}

// Remove deletes a single entry by ID.
func (srv *historyService) Remove(ctx context.Context, userID uuid.UUID, id string) error {
	if err := srv.historyRepo.Remove(ctx, userID, id); err != nil {
		srv.logger.Error("failed to remove history entry", "userID", userID, "entryID", id, "error", err)

		return errors.Wrap(domainerrors.ErrStorageFailed, "failed to remove history entry")
	}

	return nil
}

// Clear deletes the whole log.
func (srv *historyService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.historyRepo.Clear(ctx, userID); err != nil {
		srv.logger.Error("failed to clear scan history", "userID", userID, "error", err)

		return errors.Wrap(domainerrors.ErrStorageFailed, "failed to clear scan history")
	}

	return nil
}
