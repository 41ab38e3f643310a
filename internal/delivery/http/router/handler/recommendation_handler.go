package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"scancare/internal/delivery/http/middleware"
	"scancare/internal/delivery/http/response"
	"scancare/internal/domain/entity"
	"scancare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecommendationHandlerParams holds dependencies for RecommendationHandler, injected by Fx.
type RecommendationHandlerParams struct {
	fx.In

	RecommendationUC usecase.RecommendationUsecase
	Logger           *slog.Logger
}

// RecommendationHandler holds dependencies for recommendation handlers.
type RecommendationHandler struct {
	recommendationUC usecase.RecommendationUsecase
	logger           *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler.
func NewRecommendationHandler(params RecommendationHandlerParams) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUC: params.RecommendationUC,
		logger:           params.Logger,
	}
}

// PreviewRequest represents an explicit preference set to rank against
// without touching the stored profile.
type PreviewRequest struct {
	SkinType         string   `json:"skin_type"`
	AvoidIngredients []string `json:"avoid_ingredients"`
	FavoriteBrand    string   `json:"favorite_brand"`
	Limit            int      `json:"limit"`
}

// Recommend ranks the catalog against the user's stored preferences.
// The optional "limit" query parameter caps the result.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be an integer")
		}
		limit = parsed
	}

	products, err := h.recommendationUC.Recommend(c.Request().Context(), userID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, products, "Recommendations retrieved successfully")
}

// Preview ranks the catalog against the preferences in the request body
// without reading or writing the stored profile.
func (h *RecommendationHandler) Preview(c echo.Context) error {
	var req PreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid preview input")
	}

	profile := &entity.Preferences{
		SkinType:         entity.SkinType(req.SkinType),
		AvoidIngredients: req.AvoidIngredients,
		FavoriteBrand:    req.FavoriteBrand,
	}
	if !profile.SkinType.Valid() {
		return response.BadRequest(c, "VALIDATION_ERROR", "Unknown skin type")
	}
	profile.Normalize()

	products := h.recommendationUC.RecommendForProfile(profile, req.Limit)

	return response.Success(c, http.StatusOK, products, "Recommendations retrieved successfully")
}
