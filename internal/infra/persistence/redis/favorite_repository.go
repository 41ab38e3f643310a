package redis

import (
	"context"
	"encoding/json"

	"scancare/internal/domain/entity"
	"scancare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// favoriteRepository implements the repository.FavoriteRepository
// interface over a JSON list value per user.
type favoriteRepository struct {
	client *redis.Client
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(client *redis.Client) repository.FavoriteRepository {
	return &favoriteRepository{
		client: client,
	}
}

// List returns the user's favorites, most recently added first.
func (repo *favoriteRepository) List(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	return repo.load(ctx, userID)
}

// Add prepends the favorite unless one with the same ID or name already
// exists. The mutation is persisted before returning, so a read after a
// successful Add observes it.
func (repo *favoriteRepository) Add(ctx context.Context, userID uuid.UUID, favorite entity.Favorite) ([]entity.Favorite, error) {
	favorites, err := repo.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, existing := range favorites {
		if existing.ID == favorite.ID || existing.Name == favorite.Name {
			return favorites, nil
		}
	}

	updated := append([]entity.Favorite{favorite}, favorites...)
	if err := repo.store(ctx, userID, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Remove filters out the favorite with the exact ID.
func (repo *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, id string) ([]entity.Favorite, error) {
	favorites, err := repo.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := make([]entity.Favorite, 0, len(favorites))
	for _, existing := range favorites {
		if existing.ID != id {
			updated = append(updated, existing)
		}
	}

	if len(updated) == len(favorites) {
		return favorites, nil
	}

	if err := repo.store(ctx, userID, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Contains reports whether any favorite matches the value by ID or name.
func (repo *favoriteRepository) Contains(ctx context.Context, userID uuid.UUID, idOrName string) (bool, error) {
	favorites, err := repo.load(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, existing := range favorites {
		if existing.ID == idOrName || existing.Name == idOrName {
			return true, nil
		}
	}

	return false, nil
}

func (repo *favoriteRepository) load(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	raw, err := repo.client.Get(ctx, favoritesKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.Favorite{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	var favorites []entity.Favorite
	if err := json.Unmarshal(raw, &favorites); err != nil {
		return nil, errors.Wrap(err, "failed to decode favorites")
	}

	return favorites, nil
}

func (repo *favoriteRepository) store(ctx context.Context, userID uuid.UUID, favorites []entity.Favorite) error {
	raw, err := json.Marshal(favorites)
	if err != nil {
		return errors.Wrap(err, "failed to encode favorites")
	}

	if err := repo.client.Set(ctx, favoritesKey(userID), raw, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to store favorites")
	}

	return nil
}
