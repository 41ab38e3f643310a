package redis

import (
	"context"
	"encoding/json"
	"time"

	"scancare/internal/domain/entity"
	"scancare/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// historyRepository implements the repository.HistoryRepository interface
// over a JSON list value per user.
type historyRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewHistoryRepository is the constructor for historyRepository.
func NewHistoryRepository(client *redis.Client) repository.HistoryRepository {
	return &historyRepository{
		client: client,
		now:    time.Now,
	}
}

// List returns the scan log, most recent first.
func (repo *historyRepository) List(ctx context.Context, userID uuid.UUID) ([]entity.ScanEntry, error) {
	return repo.load(ctx, userID)
}

// Add generates the entry's ID and timestamp, prepends it and persists
// the log before returning the stored entry. No dedup: every scan lands.
func (repo *historyRepository) Add(ctx context.Context, userID uuid.UUID, entry entity.ScanEntry) (*entity.ScanEntry, error) {
	entries, err := repo.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := repo.now()
	entry.ID = entity.NewScanEntryID(now)
	entry.Timestamp = now.UnixMilli()

	updated := append([]entity.ScanEntry{entry}, entries...)
	if err := repo.store(ctx, userID, updated); err != nil {
		return nil, err
	}

	return &entry, nil
}

// Remove deletes a single entry by ID.
func (repo *historyRepository) Remove(ctx context.Context, userID uuid.UUID, id string) error {
	entries, err := repo.load(ctx, userID)
	if err != nil {
		return err
	}

	updated := make([]entity.ScanEntry, 0, len(entries))
	for _, existing := range entries {
		if existing.ID != id {
			updated = append(updated, existing)
		}
	}

	if len(updated) == len(entries) {
		return nil
	}

	return repo.store(ctx, userID, updated)
}

// Clear deletes the whole log.
func (repo *historyRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := repo.client.Del(ctx, historyKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear scan history")
	}

	return nil
}

func (repo *historyRepository) load(ctx context.Context, userID uuid.UUID) ([]entity.ScanEntry, error) {
	raw, err := repo.client.Get(ctx, historyKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []entity.ScanEntry{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load scan history")
	}

	var entries []entity.ScanEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to decode scan history")
	}

	return entries, nil
}

func (repo *historyRepository) store(ctx context.Context, userID uuid.UUID, entries []entity.ScanEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "failed to encode scan history")
	}

	if err := repo.client.Set(ctx, historyKey(userID), raw, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to store scan history")
	}

	return nil
}
