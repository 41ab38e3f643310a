package repository

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository is the local, durable store for a user's favorite
// products. The collection is ordered most-recent-first and deduplicated
// by ID or name at insert time.
//
// Read failures degrade to an empty list inside implementations; write
// failures are reported to the caller.
type FavoriteRepository interface {
	// List returns the user's favorites, most recently added first.
	List(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error)

	// Add prepends the favorite unless one with the same ID or the same
	// name already exists, in which case the collection is unchanged.
	// Returns the resulting collection.
	Add(ctx context.Context, userID uuid.UUID, favorite entity.Favorite) ([]entity.Favorite, error)

	// Remove filters out the favorite with the exact ID.
	Remove(ctx context.Context, userID uuid.UUID, id string) ([]entity.Favorite, error)

	// Contains reports whether any favorite matches the value by ID or
	// by name.
	Contains(ctx context.Context, userID uuid.UUID, idOrName string) (bool, error)
}

// HistoryRepository is the local, durable append-only scan history log.
// Entries are never deduplicated; each insert generates a fresh ID and
// timestamp.
type HistoryRepository interface {
	// List returns the scan log, most recent first.
	List(ctx context.Context, userID uuid.UUID) ([]entity.ScanEntry, error)

	// Add generates ID and timestamp for the entry, prepends it and
	// returns the stored entry.
	Add(ctx context.Context, userID uuid.UUID, entry entity.ScanEntry) (*entity.ScanEntry, error)

	// Remove deletes a single entry by ID.
	Remove(ctx context.Context, userID uuid.UUID, id string) error

	// Clear deletes the whole log.
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ProfileRepository is the local, durable store for the user's skincare
// preferences.
type ProfileRepository interface {
	// Get loads the stored preferences. A missing or unreadable profile
	// degrades to the zero value.
	Get(ctx context.Context, userID uuid.UUID) (*entity.Preferences, error)

	// Save persists the preferences, replacing any prior value.
	Save(ctx context.Context, userID uuid.UUID, prefs *entity.Preferences) error
}
