// Package repository defines the persistence interfaces the use case layer
// depends on, keeping it independent of any concrete store.
package repository

import (
	"context"

	"scancare/internal/domain/entity"
	"scancare/internal/errors"

	"github.com/google/uuid"
)

// Sentinel errors returned by review store implementations.
var (
	// ErrReviewNotFound is returned when a review lookup misses.
	ErrReviewNotFound = errors.New("review not found")

	// ErrDuplicateReview is returned when an insert would violate the
	// one-review-per-user-per-product constraint. Implementations must
	// enforce this atomically at insert time, not by a prior read.
	ErrDuplicateReview = errors.New("duplicate review for product and user")
)

// ReviewRepository is the remote, authoritative store for product reviews.
type ReviewRepository interface {
	// Create persists a new review. The store assigns ID and CreatedAt
	// and writes them back onto the entity.
	Create(ctx context.Context, review *entity.Review) error

	// FindByProduct returns all reviews for a product, newest first.
	FindByProduct(ctx context.Context, productID string) ([]*entity.Review, error)

	// FindByID retrieves a single review.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ExistsByProductAndUser reports whether the user already reviewed
	// the product. Bounded existence check (limit 1).
	ExistsByProductAndUser(ctx context.Context, productID string, userID uuid.UUID) (bool, error)

	// Delete removes a review by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
