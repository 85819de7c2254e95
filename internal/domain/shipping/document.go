// Package shipping covers return-shipping for MAIL batches: the label
// documents stored per batch and the carrier contracts used to create
// shipments and follow them.
package shipping

import (
	"time"

	"titledesk/internal/shared/errors"
)

// Document is a purchased shipping label for a batch. Regenerating a label
// soft-deletes the previous document rather than removing it, so the audit
// trail of purchased labels survives.
type Document struct {
	ID             uint
	BatchID        uint
	ServiceType    string
	ShipDate       string
	TrackingNumber string
	Label          []byte
	IsDeleted      bool
	CreatedBy      uint
	CreatedAt      time.Time
}

// NewDocument validates and builds a label document.
func NewDocument(batchID uint, serviceType, shipDate, trackingNumber string, label []byte, createdBy uint) (*Document, error) {
	if batchID == 0 {
		return nil, errors.NewValidationError("batch id is required")
	}
	if trackingNumber == "" {
		return nil, errors.NewValidationError("tracking number is required")
	}
	if len(label) == 0 {
		return nil, errors.NewValidationError("label content is required")
	}
	return &Document{
		BatchID:        batchID,
		ServiceType:    serviceType,
		ShipDate:       shipDate,
		TrackingNumber: trackingNumber,
		Label:          label,
		CreatedBy:      createdBy,
		CreatedAt:      time.Now(),
	}, nil
}
