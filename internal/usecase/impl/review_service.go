package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"scancare/internal/domain/entity"
	domainerrors "scancare/internal/domain/errors"
	"scancare/internal/domain/repository"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	catalogUC  usecase.CatalogUsecase
	logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	catalogUC usecase.CatalogUsecase,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: reviewRepo,
		catalogUC:  catalogUC,
		logger:     logger,
	}
}

// GetProductReviews returns the product's reviews newest first with
// aggregate stats. A fetch failure degrades to an empty list, which in
// turn triggers the demo fallback for display.
func (srv *reviewService) GetProductReviews(ctx context.Context, productID string) (*usecase.ProductReviews, error) {
	reviews, err := srv.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		srv.logger.Error("failed to fetch reviews", "productID", productID, "error", err)
		reviews = nil
	}

	if len(reviews) > 0 {
		return &usecase.ProductReviews{
			Reviews: reviews,
			Stats:   srv.Aggregate(reviews),
		}, nil
	}

	// No stored reviews: substitute the shipped demo set for display.
	var demo []*entity.Review
	if product := srv.catalogUC.Find(productID); product != nil {
		demo = demoReviewsFor(product.Name)
	}
	if len(demo) == 0 {
		return &usecase.ProductReviews{
			Reviews: []*entity.Review{},
			Stats:   srv.Aggregate(nil),
		}, nil
	}

	return &usecase.ProductReviews{
		Reviews: demo,
		Stats:   srv.Aggregate(demo),
		Demo:    true,
	}, nil
}

// Submit persists a new review for the authenticated identity. The
// one-review-per-user-per-product rule is enforced by the store's unique
// constraint at insert time, so two rapid submissions cannot both land.
func (srv *reviewService) Submit(ctx context.Context, identity *entity.Identity, input *usecase.SubmitReviewInput) (*entity.Review, error) {
	// 1. Session required
	if identity == nil {
		return nil, domainerrors.ErrAuthRequired
	}

	// 2. Rating must be within bounds
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, domainerrors.ErrInvalidRating.WithDetails(
			fmt.Sprintf("rating %d outside [%d, %d]", input.Rating, entity.MinRating, entity.MaxRating))
	}

	review := &entity.Review{
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
		UserID:      identity.ID,
		UserName:    identity.DisplayName(),
		Rating:      input.Rating,
		Text:        strings.TrimSpace(input.Text),
	}

	// 3. Insert; the unique index reports a duplicate atomically
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrDuplicateReview
		}

		srv.logger.Error("failed to create review", "productID", input.ProductID, "userID", identity.ID, "error", err)

		return nil, errors.Wrap(domainerrors.ErrStorageFailed, "failed to create review")
	}

	return review, nil
}

// Delete removes a review owned by the authenticated identity.
func (srv *reviewService) Delete(ctx context.Context, identity *entity.Identity, reviewID uuid.UUID) error {
	// 1. Session required
	if identity == nil {
		return domainerrors.ErrAuthRequired
	}

	// 2. The review must exist and belong to the caller
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to find review")
	}

	if review.UserID != identity.ID {
		return domainerrors.ErrPermissionDenied
	}

	// 3. Remove the remote record
	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		srv.logger.Error("failed to delete review", "reviewID", reviewID, "error", err)

		return errors.Wrap(domainerrors.ErrStorageFailed, "failed to delete review")
	}

	return nil
}

// Aggregate computes the average rating to one decimal place and the
// per-bucket percentage distribution. Buckets round independently, so the
// percentages need not sum to exactly 100.
func (srv *reviewService) Aggregate(reviews []*entity.Review) entity.ReviewStats {
	distribution := make(map[int]int, entity.MaxRating)
	for star := entity.MinRating; star <= entity.MaxRating; star++ {
		distribution[star] = 0
	}

	if len(reviews) == 0 {
		return entity.ReviewStats{
			AverageRating:      "0.0",
			TotalReviews:       0,
			RatingDistribution: distribution,
		}
	}

	total := len(reviews)
	sum := 0
	counts := make(map[int]int, entity.MaxRating)
	for _, review := range reviews {
		sum += review.Rating
		counts[review.Rating]++
	}

	for star := entity.MinRating; star <= entity.MaxRating; star++ {
		distribution[star] = int(math.Round(float64(counts[star]) / float64(total) * 100))
	}

	return entity.ReviewStats{
		AverageRating:      fmt.Sprintf("%.1f", float64(sum)/float64(total)),
		TotalReviews:       total,
		RatingDistribution: distribution,
	}
}
