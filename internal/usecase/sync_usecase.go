package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncUsecase keeps a per-user view snapshot consistent with the stores.
// Reloads are event-driven: screen focus and post-mutation refreshes.
// Readers always observe a complete snapshot, never a partially applied
// reload.
type SyncUsecase interface {
	// Reload refetches favorites and history for the user and, when
	// productID is non-empty, that product's reviews and stats. The new
	// snapshot is published atomically and returned. A cancelled context
	// discards the result without publishing.
	Reload(ctx context.Context, userID uuid.UUID, productID string) (*ViewSnapshot, error)

	// Snapshot returns the last published snapshot for the user, nil
	// before the first reload.
	Snapshot(userID uuid.UUID) *ViewSnapshot
}

// ViewSnapshot is one immutable, internally consistent view of a user's
// synced state.
type ViewSnapshot struct {
	Favorites []entity.Favorite `json:"favorites"`
	History   []entity.ScanEntry `json:"history"`

	// ProductID names the product the review fields cover; empty when
	// the reload skipped reviews.
	ProductID string          `json:"product_id,omitempty"`
	Reviews   *ProductReviews `json:"reviews,omitempty"`
}
