package catalog

import (
	"strings"

	"scancare/internal/domain/entity"
)

// barcodes maps EAN/UPC codes to canonical product names. The table ships
// with the app; unmapped codes fail resolution rather than guessing.
var barcodes = map[string]string{
	"5901234123457": "CeraVe Moisturizing Cream",
	"4005808812345": "Nivea Soft Moisturizing Cream",
	"737628064502":  "La Roche-Posay Toleriane Double Repair Face Moisturizer",
	"036000291452":  "Neutrogena Hydro Boost Water Gel",
	"8809647391234": "Cosrx Advanced Snail 92 All in One Cream",
	"012345678905":  "Cetaphil Moisturizing Cream",
	"3274870001111": "Toleriane Hydrating Gentle Cleanser",
	"3274870002222": "Cicaplast Baume B5+",
	"3274870003333": "Effaclar Duo +M",
	"3274870004444": "Effaclar Purifying Foaming Gel",
	"3274870005555": "Hydraphase Intense Serum",
	"3274870006666": "Lipikar Baume AP+M",
}

// Resolve turns a scanned barcode into a product record. Unmapped codes
// return nil. Mapped names are matched against the catalog
// case-insensitively; a name with no catalog entry still resolves, to a
// synthetic record outside every category, so every known barcode yields
// a scannable result.
func Resolve(code string, products []entity.Product) *entity.Product {
	name, ok := barcodes[code]
	if !ok {
		return nil
	}

	lower := strings.ToLower(name)
	for i := range products {
		if strings.ToLower(products[i].Name) == lower {
			return &products[i]
		}
	}

	return &entity.Product{
		ID:       "unknown-" + name,
		Name:     name,
		Category: "Unknown category",
	}
}
