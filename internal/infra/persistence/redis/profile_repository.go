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

// profileRepository implements the repository.ProfileRepository interface
// over a single JSON document per user.
type profileRepository struct {
	client *redis.Client
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(client *redis.Client) repository.ProfileRepository {
	return &profileRepository{
		client: client,
	}
}

// Get loads the stored preferences. A missing profile resolves to the
// zero value.
func (repo *profileRepository) Get(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error) {
	raw, err := repo.client.Get(ctx, profileKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &entity.Preferences{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	var prefs entity.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}

	return &prefs, nil
}

// Save persists the preferences, replacing any prior value.
func (repo *profileRepository) Save(ctx context.Context, userID uuid.UUID, prefs *entity.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return errors.Wrap(err, "failed to encode profile")
	}

	if err := repo.client.Set(ctx, profileKey(userID), raw, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to store profile")
	}

	return nil
}
