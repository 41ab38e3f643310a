// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Product is a single catalogued skincare product, normalized from the
// static sectioned catalog at startup. Products are immutable once loaded.
type Product struct {
	ID          string     `json:"id"`                    // Stable identifier, "<category>-<name>" unless declared explicitly.
	Name        string     `json:"name"`                  // Display name of the product.
	Category    string     `json:"category"`              // Section title the product was listed under.
	Brand       string     `json:"brand,omitempty"`       // Manufacturer brand, when known.
	SkinTypes   []SkinType `json:"skinTypes,omitempty"`   // Skin types the product is declared suitable for. Empty means "any".
	Contains    []string   `json:"contains,omitempty"`    // Ingredient tags relevant for avoidance matching.
	Description string     `json:"description,omitempty"` // Short marketing description.
}

// SuitsSkinType reports whether the product is usable for the given skin
// type. Products with no declared skin types match everything.
func (p Product) SuitsSkinType(skinType SkinType) bool {
	if skinType == "" || len(p.SkinTypes) == 0 {
		return true
	}
	for _, st := range p.SkinTypes {
		if st == skinType {
			return true
		}
	}

	return false
}

// ContainsAny reports whether the product declares any of the given
// ingredient tags. Products with no declared ingredients never match.
func (p Product) ContainsAny(ingredients []string) bool {
	if len(ingredients) == 0 || len(p.Contains) == 0 {
		return false
	}
	for _, tag := range p.Contains {
		for _, avoided := range ingredients {
			if tag == avoided {
				return true
			}
		}
	}

	return false
}
