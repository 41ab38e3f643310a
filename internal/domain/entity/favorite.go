package entity

// Favorite is a user-pinned product reference. The favorites collection is
// ordered most-recent-first and deduplicated by ID or name.
type Favorite struct {
	ID       string `json:"id"`       // Product identifier the favorite points at.
	Name     string `json:"name"`     // Product name, also a dedup key.
	Category string `json:"category"` // Category the product was listed under.
}
