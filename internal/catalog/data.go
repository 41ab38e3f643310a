package catalog

import "scancare/internal/domain/entity"

// knownBrands are the brands the app ships logos for; names starting with
// one of these resolve their brand automatically.
var knownBrands = []string{
	"CeraVe",
	"NIVEA",
	"La Roche-Posay",
	"Cetaphil",
	"Neutrogena",
	"Cosrx",
}

// Sections returns the shipped moisturizer catalog. Order matters: it is
// the deterministic tie-break for search results and recommendations.
func Sections() []Section {
	return []Section{
		{
			Title: "🌿 Drugstore & Affordable Moisturizers",
			Data: []RawEntry{
				{
					Name:        "CeraVe Moisturizing Cream",
					Brand:       "CeraVe",
					SkinTypes:   []entity.SkinType{entity.SkinTypeDry, entity.SkinTypeNormal},
					Description: "Rich ceramide cream for dry to very dry skin.",
				},
				N("CeraVe Daily Moisturizing Lotion"),
				N("CeraVe PM Facial Moisturizing Lotion"),
				N("Cetaphil Moisturizing Cream"),
				N("Cetaphil Daily Hydrating Lotion"),
				{
					Name:      "Neutrogena Hydro Boost Water Gel",
					Brand:     "Neutrogena",
					SkinTypes: []entity.SkinType{entity.SkinTypeNormal, entity.SkinTypeCombination, entity.SkinTypeOily},
					Contains:  []string{"Parfume"},
				},
				N("Neutrogena Hydro Boost Gel-Cream Extra-Dry Skin"),
				N("Aveeno Daily Moisturizing Lotion"),
				N("Aveeno Calm + Restore Oat Gel Moisturizer"),
				N("Eucerin Advanced Repair Cream"),
				N("Eucerin Original Healing Cream"),
				{
					Name:      "Vanicream Moisturizing Cream",
					Brand:     "Vanicream",
					SkinTypes: []entity.SkinType{entity.SkinTypeSensitive, entity.SkinTypeDry},
				},
				N("Vanicream Daily Facial Moisturizer"),
				{
					Name:     "Nivea Soft Moisturizing Cream",
					Brand:    "NIVEA",
					Contains: []string{"Parfume"},
				},
				N("Nivea Creme (blue tin)"),
				{
					Name:      "La Roche-Posay Toleriane Double Repair Face Moisturizer",
					Brand:     "La Roche-Posay",
					SkinTypes: []entity.SkinType{entity.SkinTypeSensitive, entity.SkinTypeNormal},
				},
				N("La Roche-Posay Lipikar Balm AP+"),
				{
					Name:      "La Roche-Posay Effaclar Mat (for oily skin)",
					Brand:     "La Roche-Posay",
					SkinTypes: []entity.SkinType{entity.SkinTypeOily},
				},
				{
					Name:     "Garnier Moisture Bomb Antioxidant Moisturizer",
					Brand:    "Garnier",
					Contains: []string{"Parfume", "Sulfater"},
				},
				N("Simple Hydrating Light Moisturizer"),
			},
		},
		{
			Title: "💧 Mid-Range Moisturizers",
			Data: []RawEntry{
				N("The Ordinary Natural Moisturizing Factors + HA"),
				N("The Inkey List Omega Water Cream"),
				N("The Inkey List Peptide Moisturizer"),
				N("First Aid Beauty Ultra Repair Cream"),
				N("First Aid Beauty Hello FAB Coconut Water Cream"),
				{
					Name:      "Paula’s Choice Clear Oil-Free Moisturizer",
					Brand:     "Paula’s Choice",
					SkinTypes: []entity.SkinType{entity.SkinTypeOily, entity.SkinTypeCombination},
				},
				N("Paula’s Choice Resist Anti-Aging Moisturizer"),
				N("Paula’s Choice Water-Infusing Electrolyte Moisturizer"),
				{
					Name:     "Glow Recipe Plum Plump Hyaluronic Cream",
					Brand:    "Glow Recipe",
					Contains: []string{"Parfume"},
				},
				N("Glow Recipe Watermelon Glow Pink Juice Moisturizer"),
				N("Youth To The People Superfood Air-Whip Moisture Cream"),
				N("Youth To The People Adaptogen Deep Moisture Cream"),
				N("Krave Beauty Oat So Simple Water Cream"),
				{
					Name:      "Cosrx Advanced Snail 92 All in One Cream",
					Brand:     "Cosrx",
					SkinTypes: []entity.SkinType{entity.SkinTypeDry, entity.SkinTypeNormal, entity.SkinTypeCombination},
				},
				N("Cosrx Hyaluronic Acid Intensive Cream"),
				N("Belif The True Cream Aqua Bomb"),
				N("Belif The True Cream Moisturizing Bomb"),
				{
					Name:      "Dr. Jart+ Ceramidin Cream",
					Brand:     "Dr. Jart+",
					SkinTypes: []entity.SkinType{entity.SkinTypeDry, entity.SkinTypeSensitive},
					Contains:  []string{"Lanolin"},
				},
				N("Dr. Jart+ Water Fuse Hydro Sleep Mask (can double as night moisturizer)"),
			},
		},
		{
			Title: "✨ High-End / Luxury Moisturizers",
			Data: []RawEntry{
				N("Clinique Moisture Surge 100H Auto-Replenishing Hydrator"),
				N("Clinique Dramatically Different Moisturizing Lotion+"),
				N("Kiehl’s Ultra Facial Cream"),
				N("Kiehl’s Calendula Serum-Infused Water Cream"),
				{
					Name:     "Shiseido Essential Energy Hydrating Cream",
					Brand:    "Shiseido",
					Contains: []string{"Parfume"},
				},
				N("Shiseido Benefiance Wrinkle Smoothing Cream"),
				N("Tatcha The Water Cream"),
				N("Tatcha The Dewy Skin Cream"),
				N("Dior Hydra Life Fresh Hydration Sorbet Creme"),
				N("Dior Capture Totale Super Potent Rich Creme"),
				N("Estée Lauder DayWear Multi-Protection Anti-Oxidant Creme"),
				N("Estée Lauder Revitalizing Supreme+ Global Anti-Aging Creme"),
				{
					Name:     "Lancôme Hydra Zen Gel Cream",
					Brand:    "Lancôme",
					Contains: []string{"Parfume", "Parabener"},
				},
				N("Lancôme Absolue Soft Cream"),
				N("Chanel Hydra Beauty Crème"),
				N("Chanel Sublimage La Crème"),
				N("Augustinus Bader The Rich Cream"),
				{
					Name:      "La Mer Crème de la Mer",
					Brand:     "La Mer",
					SkinTypes: []entity.SkinType{entity.SkinTypeDry},
					Contains:  []string{"Lanolin", "Parfume"},
				},
				N("La Mer The Moisturizing Soft Cream"),
			},
		},
	}
}
