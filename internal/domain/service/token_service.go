// Package service defines the interfaces for infrastructure-backed domain
// services.
package service

import (
	"time"

	"scancare/internal/domain/entity"
)

// TokenService validates the access tokens issued by the identity
// provider and extracts the authenticated identity from them.
type TokenService interface {
	// GenerateToken signs an access token carrying the identity. Used by
	// local tooling and tests; production tokens come from the identity
	// provider.
	GenerateToken(identity entity.Identity, ttl time.Duration) (string, error)

	// ValidateToken checks the token signature and expiry and returns
	// the embedded identity.
	ValidateToken(tokenString string) (*entity.Identity, error)
}
