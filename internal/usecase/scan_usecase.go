package usecase

import (
	"context"

	"scancare/internal/domain/entity"

	"github.com/google/uuid"
)

// ScanUsecase drives the barcode-scan flow: resolve the code against the
// catalog and record the outcome in the user's scan history.
type ScanUsecase interface {
	// Scan resolves the barcode and appends a history entry whether or
	// not the code resolved. A history write failure does not fail the
	// scan itself; the resolved product is still returned.
	Scan(ctx context.Context, userID uuid.UUID, barcode string) (*ScanResult, error)
}

// ScanResult is the outcome of one barcode scan.
type ScanResult struct {
	// Product is the resolved record, nil when the barcode is unmapped.
	Product *entity.Product `json:"product,omitempty"`

	// Found reports whether the barcode resolved to a record.
	Found bool `json:"found"`

	// Entry is the recorded history entry, nil when the history write
	// was degraded.
	Entry *entity.ScanEntry `json:"entry,omitempty"`
}
