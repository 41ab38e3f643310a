package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// HistoryUsecase manages the user's scan log. Entries are appended by the
// scan flow; this interface covers reads and deletes only.
type HistoryUsecase interface {
	// List returns the scan log, most recent first.
	List(ctx context.Context, userID uuid.UUID) ([]entity.ScanEntry, error)

	// Remove deletes a single entry by ID.
	Remove(ctx context.Context, userID uuid.UUID, id string) error

	// Clear deletes the whole log.
	Clear(ctx context.Context, userID uuid.UUID) error
}
