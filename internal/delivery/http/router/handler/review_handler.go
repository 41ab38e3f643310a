package handler

import (
	"log/slog"
	"net/http"

	"scancare/internal/delivery/http/middleware"
	"scancare/internal/delivery/http/response"
	"scancare/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	SyncUC   usecase.SyncUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review-related handlers.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	syncUC   usecase.SyncUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		syncUC:   params.SyncUC,
		logger:   params.Logger,
	}
}

// GetProductReviews returns a product's reviews with aggregate stats.
// Products without stored reviews get the shipped demo set, marked as
// such.
func (h *ReviewHandler) GetProductReviews(c echo.Context) error {
	reviews, err := h.reviewUC.GetProductReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// SubmitReview persists a new review for the authenticated identity.
// The product ID comes from the path, not the body.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	input.ProductID = c.Param("id")

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	review, err := h.reviewUC.Submit(c.Request().Context(), identity, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.syncUC.Reload(c.Request().Context(), identity.ID, input.ProductID); err != nil {
		h.logger.Warn("Snapshot reload after review submit failed", "error", err, "userID", identity.ID)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted successfully")
}

// DeleteReview removes a review owned by the authenticated identity.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	identity := middleware.GetIdentity(c)
	if identity == nil {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid review ID")
	}

	if err := h.reviewUC.Delete(c.Request().Context(), identity, reviewID); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.syncUC.Reload(c.Request().Context(), identity.ID, ""); err != nil {
		h.logger.Warn("Snapshot reload after review delete failed", "error", err, "userID", identity.ID)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review deleted"}, "Review deleted successfully")
}
