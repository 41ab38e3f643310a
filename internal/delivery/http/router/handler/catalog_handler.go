// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"scancare/internal/delivery/http/response"
	domainerrors "scancare/internal/domain/errors"
	"scancare/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListProducts returns the catalog, optionally filtered by the "query"
// search parameter.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products := h.catalogUC.Search(c.QueryParam("query"))

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct returns a single product by its identifier.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product := h.catalogUC.Find(c.Param("id"))
	if product == nil {
		return response.HandleAppError(c, domainerrors.ErrProductNotFound)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
