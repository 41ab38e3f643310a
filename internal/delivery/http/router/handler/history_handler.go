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

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	SyncUC    usecase.SyncUsecase
	Logger    *slog.Logger
}

// HistoryHandler holds dependencies for scan-history handlers.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	syncUC    usecase.SyncUsecase
	logger    *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler.
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		syncUC:    params.SyncUC,
		logger:    params.Logger,
	}
}

// ListHistory returns the user's scan log, most recent first.
func (h *HistoryHandler) ListHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.historyUC.List(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries, "Scan history retrieved successfully")
}

// RemoveHistoryEntry deletes a single scan log entry by ID.
func (h *HistoryHandler) RemoveHistoryEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.historyUC.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.syncUC.Reload(c.Request().Context(), userID, ""); err != nil {
		h.logger.Warn("Snapshot reload after history remove failed", "error", err, "userID", userID)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entry removed"}, "Scan history entry removed successfully")
}

// ClearHistory deletes the user's whole scan log.
func (h *HistoryHandler) ClearHistory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.historyUC.Clear(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	if _, err := h.syncUC.Reload(c.Request().Context(), userID, ""); err != nil {
		h.logger.Warn("Snapshot reload after history clear failed", "error", err, "userID", userID)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "History cleared"}, "Scan history cleared successfully")
}
