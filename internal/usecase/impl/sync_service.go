package impl

import (
	"context"
	"log/slog"
	"sync"

	"scancare/internal/usecase"

	"github.com/google/uuid"
)

// syncService implements the SyncUsecase interface. Snapshots are built
// off to the side and swapped in whole under the mutex, so readers never
// observe a half-applied reload.
type syncService struct {
	favoriteUC usecase.FavoriteUsecase
	historyUC  usecase.HistoryUsecase
	reviewUC   usecase.ReviewUsecase
	logger     *slog.Logger

	mu        sync.RWMutex
	snapshots map[uuid.UUID]*usecase.ViewSnapshot
}

// NewSyncService is the constructor for syncService.
func NewSyncService(
	favoriteUC usecase.FavoriteUsecase,
	historyUC usecase.HistoryUsecase,
	reviewUC usecase.ReviewUsecase,
	logger *slog.Logger,
) usecase.SyncUsecase {
	return &syncService{
		favoriteUC: favoriteUC,
		historyUC:  historyUC,
		reviewUC:   reviewUC,
		logger:     logger,
		snapshots:  make(map[uuid.UUID]*usecase.ViewSnapshot),
	}
}

// Reload refetches the user's synced state and publishes it atomically.
// A context cancelled during the fetches discards the result instead of
// publishing a snapshot for a view that is no longer live.
func (srv *syncService) Reload(ctx context.Context, userID uuid.UUID, productID string) (*usecase.ViewSnapshot, error) {
	// 1. Build the snapshot off to the side
	favorites, err := srv.favoriteUC.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := srv.historyUC.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := &usecase.ViewSnapshot{
		Favorites: favorites,
		History:   history,
	}

	if productID != "" {
		reviews, err := srv.reviewUC.GetProductReviews(ctx, productID)
		if err != nil {
			return nil, err
		}
		snapshot.ProductID = productID
		snapshot.Reviews = reviews
	}

	// 2. Discard instead of publishing when the trigger is gone
	if err := ctx.Err(); err != nil {
		srv.logger.Debug("discarding snapshot for cancelled reload", "userID", userID)

		return nil, err
	}

	// 3. Publish the complete snapshot
	srv.mu.Lock()
	srv.snapshots[userID] = snapshot
	srv.mu.Unlock()

	return snapshot, nil
}

// Snapshot returns the last published snapshot for the user.
func (srv *syncService) Snapshot(userID uuid.UUID) *usecase.ViewSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.snapshots[userID]
}
