package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds accepted for a review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user-authored rating and text tied to one product. The
// remote store is the source of truth; at most one review exists per
// (product, user) pair.
type Review struct {
	ID          uuid.UUID `json:"id"`           // Store-assigned identifier.
	ProductID   string    `json:"product_id"`   // Product the review belongs to.
	ProductName string    `json:"product_name"` // Product name at submission time.
	UserID      uuid.UUID `json:"user_id"`      // Authoring user; owns mutation rights.
	UserName    string    `json:"user_name"`    // Display name of the author.
	Rating      int       `json:"rating"`       // Star rating in [MinRating, MaxRating].
	Text        string    `json:"text"`         // Free-form review body, may be empty.
	CreatedAt   time.Time `json:"created_at"`   // Store-assigned creation timestamp.
}

// ReviewStats is the derived summary over a set of reviews. It is never
// persisted.
type ReviewStats struct {
	// Average rating formatted to one decimal place; "0.0" when there
	// are no reviews.
	AverageRating string `json:"average_rating"`
	TotalReviews  int    `json:"total_reviews"`
	// Percentage of reviews per star bucket. Each bucket rounds
	// independently, so the values need not sum to exactly 100.
	RatingDistribution map[int]int `json:"rating_distribution"`
}

// Identity is the authenticated user as reported by the identity
// provider. A nil Identity means no session.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}

// DisplayName returns the name to attach to authored content, falling
// back to the email local part when no name is set.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	for idx, r := range i.Email {
		if r == '@' {
			return i.Email[:idx]
		}
	}

	return i.Email
}
