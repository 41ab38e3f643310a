// Package impl contains the application-specific business rules implementations.
package impl

import (
	"scancare/internal/catalog"
	"scancare/internal/domain/entity"
	"scancare/internal/usecase"
)

// catalogService implements the CatalogUsecase interface over the static
// shipped catalog, flattened once at construction.
type catalogService struct {
	products []entity.Product
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService() usecase.CatalogUsecase {
	return &catalogService{
		products: catalog.Flatten(catalog.Sections()),
	}
}

// Products returns the full flattened catalog in canonical order.
func (srv *catalogService) Products() []entity.Product {
	return srv.products
}

// Search filters the catalog by name or category substring.
func (srv *catalogService) Search(query string) []entity.Product {
	return catalog.Filter(srv.products, query)
}

// Find looks up a product by identifier.
func (srv *catalogService) Find(id string) *entity.Product {
	return catalog.Lookup(srv.products, id)
}

// Resolve maps a scanned barcode to a product record.
func (srv *catalogService) Resolve(code string) *entity.Product {
	return catalog.Resolve(code, srv.products)
}
