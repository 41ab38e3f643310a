package handler

import (
	"log/slog"
	"net/http"

	"scancare/internal/delivery/http/middleware"
	"scancare/internal/delivery/http/response"
	"scancare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	SyncUC     usecase.SyncUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for favorite-related handlers.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	syncUC     usecase.SyncUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		syncUC:     params.SyncUC,
		logger:     params.Logger,
	}
}

// ListFavorites returns the user's pinned products, newest first.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorites retrieved successfully")
}

// AddFavorite pins a product. Pinning an already-pinned product is a
// no-op and still succeeds.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input *usecase.AddFavoriteInput
	if err := c.Bind(&input); err != nil || input == nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	favorites, err := h.favoriteUC.Add(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.syncUC.Reload(c.Request().Context(), userID, ""); err != nil {
		h.logger.Warn("Snapshot reload after favorite add failed", "error", err, "userID", userID)
	}

	return response.Success(c, http.StatusCreated, favorites, "Favorite added successfully")
}

// RemoveFavorite unpins the favorite with the given ID.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favorites, err := h.favoriteUC.Remove(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.syncUC.Reload(c.Request().Context(), userID, ""); err != nil {
		h.logger.Warn("Snapshot reload after favorite remove failed", "error", err, "userID", userID)
	}

	return response.Success(c, http.StatusOK, favorites, "Favorite removed successfully")
}

// ContainsFavorite reports whether a product is pinned, matching by ID
// or by name through the "product" query parameter.
func (h *FavoriteHandler) ContainsFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	idOrName := c.QueryParam("product")
	if idOrName == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'product' is required")
	}

	contained, err := h.favoriteUC.Contains(c.Request().Context(), userID, idOrName)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"contained": contained}, "Favorite lookup successful")
}
