package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ScanEntry is one record in the append-only scan history log. Every
// barcode resolution produces an entry, whether or not the code mapped to
// a catalogued product.
type ScanEntry struct {
	ID        string `json:"id"`                 // Generated identifier, "<unix-millis>-<random>".
	Timestamp int64  `json:"timestamp"`          // Creation time in Unix milliseconds.
	Barcode   string `json:"barcode"`            // Raw barcode value as delivered by the scanner.
	Name      string `json:"name,omitempty"`     // Resolved product name, empty when not found.
	Category  string `json:"category,omitempty"` // Resolved product category, empty when not found.
	Found     bool   `json:"found"`              // Whether the barcode mapped to anything.
}

// NewScanEntryID generates a history entry identifier from the current
// time and a random suffix.
func NewScanEntryID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + uuid.NewString()[:8]
}
