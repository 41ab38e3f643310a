package entity

// SkinType enumerates the skin types a user can declare in their profile.
type SkinType string

const (
	SkinTypeNormal      SkinType = "Normal"
	SkinTypeDry         SkinType = "Dry"
	SkinTypeOily        SkinType = "Oily"
	SkinTypeCombination SkinType = "Combination"
	SkinTypeSensitive   SkinType = "Sensitive"
)

// SkinTypes lists every valid skin type, in display order.
var SkinTypes = []SkinType{
	SkinTypeNormal,
	SkinTypeDry,
	SkinTypeOily,
	SkinTypeCombination,
	SkinTypeSensitive,
}

// Valid reports whether the skin type is one of the known values.
// The empty string is valid and means "not declared".
func (s SkinType) Valid() bool {
	if s == "" {
		return true
	}
	for _, st := range SkinTypes {
		if st == s {
			return true
		}
	}

	return false
}

// AvoidNone is the sentinel avoid-list entry meaning "no preference".
// It is mutually exclusive with every concrete ingredient: storing it
// clears the rest of the list.
const AvoidNone = "no preference"

// MaxFocusAreas caps how many focus areas a profile may carry.
const MaxFocusAreas = 2

// Preferences is the current user's stored skincare profile. It is owned
// by the user session and mutated only through the profile update
// operation.
type Preferences struct {
	SkinType         SkinType `json:"skinType,omitempty"`         // Declared skin type, empty when not set.
	AvoidIngredients []string `json:"avoidIngredients,omitempty"` // Ingredient tags the user wants to avoid.
	FavoriteBrand    string   `json:"favoriteBrand,omitempty"`    // Brand whose products are ranked first.
	FocusAreas       []string `json:"focusAreas,omitempty"`       // Up to MaxFocusAreas skincare concerns.
}

// Normalize applies the avoid-list sentinel rule: "no preference"
// clears all other entries.
func (p *Preferences) Normalize() {
	for _, ingredient := range p.AvoidIngredients {
		if ingredient == AvoidNone {
			p.AvoidIngredients = nil

			return
		}
	}
}
