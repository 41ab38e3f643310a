// Package catalog holds the static product catalog shipped with the
// application and the pure functions that index and query it. The catalog
// is read-only process state; everything here is free of side effects.
package catalog

import (
	"strings"

	"scancare/internal/domain/entity"
)

// RawEntry is one unresolved catalog line. The shipped data mixes plain
// product names with structured entries carrying extra tags; both resolve
// to the same canonical entity.Product at flatten time.
type RawEntry struct {
	Name        string
	ID          string // Explicit identifier; synthesized from category and name when empty.
	Brand       string
	SkinTypes   []entity.SkinType
	Contains    []string
	Description string
}

// Section groups raw entries under a display title. Section order and
// within-section order are meaningful: they are the deterministic
// tie-break for every downstream ranking.
type Section struct {
	Title string
	Data  []RawEntry
}

// N wraps a plain product name as a RawEntry.
func N(name string) RawEntry {
	return RawEntry{Name: name}
}

// Flatten normalizes the sectioned catalog into a uniform product list,
// preserving section order and within-section order. Each product inherits
// its category from the section title; missing identifiers are synthesized
// as "<category>-<name>".
func Flatten(sections []Section) []entity.Product {
	var products []entity.Product
	for _, section := range sections {
		for _, raw := range section.Data {
			id := raw.ID
			if id == "" {
				id = section.Title + "-" + raw.Name
			}

			brand := raw.Brand
			if brand == "" {
				brand = deriveBrand(raw.Name)
			}

			products = append(products, entity.Product{
				ID:          id,
				Name:        raw.Name,
				Category:    section.Title,
				Brand:       brand,
				SkinTypes:   raw.SkinTypes,
				Contains:    raw.Contains,
				Description: raw.Description,
			})
		}
	}

	return products
}

// Filter returns the products whose name or category contains the query,
// case-insensitively. An empty or blank query returns the full list in
// its original order.
func Filter(products []entity.Product, query string) []entity.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	filtered := make([]entity.Product, 0, len(products))
	for _, product := range products {
		if strings.Contains(strings.ToLower(product.Name), q) ||
			strings.Contains(strings.ToLower(product.Category), q) {
			filtered = append(filtered, product)
		}
	}

	return filtered
}

// Lookup finds a product by its identifier. Returns nil on a miss.
func Lookup(products []entity.Product, id string) *entity.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}

	return nil
}

// deriveBrand matches a product name against the known brand prefixes so
// plain-name entries still participate in brand prioritization.
func deriveBrand(name string) string {
	lower := strings.ToLower(name)
	for _, brand := range knownBrands {
		if strings.HasPrefix(lower, strings.ToLower(brand)) {
			return brand
		}
	}

	return ""
}
