package impl

import (
	"scancare/internal/domain/entity"
)

// demoReviewsByProduct holds the shipped fallback reviews shown while a
// product has no stored reviews yet. Keyed by product name. These records
// are display-only and must never reach the review store.
var demoReviewsByProduct = map[string][]demoReview{
	"CeraVe Moisturizing Cream": {
		{
			UserName: "Anna, 27",
			Rating:   5,
			Text:     "Min hud føles roligere og gennemfugtet hele dagen. Den er tung, men uden at fedte – perfekt til min tørre hud.",
		},
		{
			UserName: "Mikkel, 33",
			Rating:   4,
			Text:     "Bruger den især om vinteren, hvor min hud ellers sprækker. Trækker langsomt ind, men virker virkelig beskyttende.",
		},
	},
}

// demoReview is a fixture record without identity or timestamps.
type demoReview struct {
	UserName string
	Rating   int
	Text     string
}

// demoReviewsFor materializes the fixture set for a product name, empty
// when no fixtures exist.
func demoReviewsFor(productName string) []*entity.Review {
	fixtures := demoReviewsByProduct[productName]
	if len(fixtures) == 0 {
		return nil
	}

	reviews := make([]*entity.Review, 0, len(fixtures))
	for _, fixture := range fixtures {
		reviews = append(reviews, &entity.Review{
			ProductName: productName,
			UserName:    fixture.UserName,
			Rating:      fixture.Rating,
			Text:        fixture.Text,
		})
	}

	return reviews
}
