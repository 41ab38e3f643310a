package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase covers the review lifecycle against the remote store:
// fetch with aggregate stats, submit, delete.
type ReviewUsecase interface {
	// GetProductReviews returns the product's reviews newest first along
	// with aggregate stats. When the store holds no reviews the shipped
	// demo set is substituted for display; the Demo flag marks it and
	// the substitute is never persisted.
	GetProductReviews(ctx context.Context, productID string) (*ProductReviews, error)

	// Submit persists a new review for the authenticated identity. A
	// nil identity, an out-of-range rating, or an existing review by the
	// same user for the same product fail with the matching business
	// error.
	Submit(ctx context.Context, identity *entity.Identity, input *SubmitReviewInput) (*entity.Review, error)

	// Delete removes a review owned by the authenticated identity. A
	// nil identity or an ownership mismatch fail with the matching
	// business error.
	Delete(ctx context.Context, identity *entity.Identity, reviewID uuid.UUID) error

	// Aggregate computes stats over a review set. Pure.
	Aggregate(reviews []*entity.Review) entity.ReviewStats
}

// ProductReviews bundles a product's reviews with their aggregate stats.
type ProductReviews struct {
	Reviews []*entity.Review   `json:"reviews"`
	Stats   entity.ReviewStats `json:"stats"`

	// Demo marks the reviews as the shipped fallback set rather than
	// stored records.
	Demo bool `json:"demo"`
}

// --- Input DTOs ---

// SubmitReviewInput defines the data required to submit a review.
type SubmitReviewInput struct {
	ProductID   string `json:"product_id" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Rating      int    `json:"rating"`
	Text        string `json:"text"`
}
