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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// List returns the user's favorites, most recently added first.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.List(ctx, userID)
	if err != nil {
		srv.logger.Error("failed to load favorites", "userID", userID, "error", err)

		return []entity.Favorite{}, nil
	}

	return favorites, nil
}

// Add pins a product, deduplicated by ID or name.
func (srv *favoriteService) Add(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) ([]entity.Favorite, error) {
	favorite := entity.Favorite{
		ID:       input.ID,
		Name:     input.Name,
		Category: input.Category,
	}

	favorites, err := srv.favoriteRepo.Add(ctx, userID, favorite)
	if err != nil {
		srv.logger.Error("failed to add favorite", "userID", userID, "favoriteID", input.ID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, "failed to add favorite")
	}

	return favorites, nil
}

// Remove unpins the favorite with the exact ID.
func (srv *favoriteService) Remove(ctx context.Context, userID uuid.UUID, id string) ([]entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.Remove(ctx, userID, id)
	if err != nil {
		srv.logger.Error("failed to remove favorite", "userID", userID, "favoriteID", id, "error", err)

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, "failed to remove favorite")
	}

	return favorites, nil
}

// Contains reports whether the product is pinned, by ID or by name.
func (srv *favoriteService) Contains(ctx context.Context, userID uuid.UUID, idOrName string) (bool, error) {
	found, err := srv.favoriteRepo.Contains(ctx, userID, idOrName)
	if err != nil {
		srv.logger.Error("failed to check favorite", "userID", userID, "key", idOrName, "error", err)

		return false, nil
	}

	return found, nil
}
