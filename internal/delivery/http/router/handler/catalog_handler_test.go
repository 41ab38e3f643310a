package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"scancare/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogHandlerForTest() *CatalogHandler {
	return &CatalogHandler{
		catalogUC: impl.NewCatalogService(),
		logger:    slog.Default(),
	}
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	handler := newCatalogHandlerForTest()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/products", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListProducts(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "CeraVe Moisturizing Cream")
}

func TestCatalogHandler_ListProducts_Query(t *testing.T) {
	handler := newCatalogHandlerForTest()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/products?query=cerave", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListProducts(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, "CeraVe Moisturizing Cream")
	assert.NotContains(t, responseBody, "Nivea Soft Moisturizing Cream")
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	handler := newCatalogHandlerForTest()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/catalog/products/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("does-not-exist")

	err := handler.GetProduct(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
