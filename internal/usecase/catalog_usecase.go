// Package usecase contains the application-specific business rules.
package usecase

import (
	"scancare/internal/domain/entity"
)

// CatalogUsecase exposes the read-only product catalog. The catalog is
// flattened once at startup; all operations are pure over that snapshot.
type CatalogUsecase interface {
	// Products returns the full flattened catalog in canonical order.
	Products() []entity.Product

	// Search filters the catalog by a case-insensitive substring match
	// against name or category. A blank query returns everything.
	Search(query string) []entity.Product

	// Find looks up a product by identifier. Returns nil on a miss.
	Find(id string) *entity.Product

	// Resolve maps a scanned barcode to a product record. Returns nil
	// for codes absent from the barcode table.
	Resolve(code string) *entity.Product
}
