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

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// SyncHandler holds dependencies for view-snapshot handlers.
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler.
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// ReloadRequest represents the request body for an explicit snapshot
// reload, issued by the client when a screen regains focus.
type ReloadRequest struct {
	// ProductID optionally asks for that product's reviews in the
	// refreshed snapshot.
	ProductID string `json:"product_id"`
}

// Reload refetches the user's synced state and publishes a fresh
// snapshot.
func (h *SyncHandler) Reload(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ReloadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reload input")
	}

	snapshot, err := h.syncUC.Reload(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot, "Snapshot reloaded successfully")
}

// Snapshot returns the last published snapshot for the user, nil data
// before the first reload.
func (h *SyncHandler) Snapshot(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	snapshot := h.syncUC.Snapshot(userID)

	return response.Success(c, http.StatusOK, snapshot, "Snapshot retrieved successfully")
}
