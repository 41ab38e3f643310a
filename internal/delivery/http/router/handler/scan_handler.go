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

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScanUC usecase.ScanUsecase
	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// ScanHandler holds dependencies for the barcode scan handler.
type ScanHandler struct {
	scanUC usecase.ScanUsecase
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler.
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scanUC: params.ScanUC,
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// ScanRequest represents the request body for a barcode scan.
type ScanRequest struct {
	Barcode string `json:"barcode" validate:"required"`
}

// Scan resolves a barcode against the catalog and records the outcome
// in the scan history.
func (h *ScanHandler) Scan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.scanUC.Scan(c.Request().Context(), userID, req.Barcode)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// The scan appended to the history, so refresh the synced view.
	if _, err := h.syncUC.Reload(c.Request().Context(), userID, ""); err != nil {
		h.logger.Warn("Snapshot reload after scan failed", "error", err, "userID", userID)
	}

	return response.Success(c, http.StatusOK, result, "Barcode scanned successfully")
}
