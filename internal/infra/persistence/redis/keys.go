package redis

import "github.com/google/uuid"

// Per-user key layout. One JSON document per concern.
const (
	favoritesKeyPrefix = "sc:favorites:"
	historyKeyPrefix   = "sc:history:"
	profileKeyPrefix   = "sc:profile:"
)

func favoritesKey(userID uuid.UUID) string {
	return favoritesKeyPrefix + userID.String()
}

func historyKey(userID uuid.UUID) string {
	return historyKeyPrefix + userID.String()
}

func profileKey(userID uuid.UUID) string {
	return profileKeyPrefix + userID.String()
}
