// Package check models the invoice checks reconciled against batches. Check
// rows are uploaded from accounting CSVs and keyed by ticket within a batch.
package check

import (
	"time"

	"titledesk/internal/shared/errors"
)

// InvoiceCheck is one check line attached to a ticket inside a batch. Order
// distinguishes multiple checks written for the same ticket.
type InvoiceCheck struct {
	ID          uint
	BatchID     uint
	TicketID    uint
	Order       int
	CheckNumber string
	Amount      float64
	CreatedBy   uint
	CreatedAt   time.Time
}

// New validates and builds a check row.
func New(batchID, ticketID uint, order int, checkNumber string, amount float64, createdBy uint) (*InvoiceCheck, error) {
	if batchID == 0 {
		return nil, errors.NewValidationError("batch id is required")
	}
	if ticketID == 0 {
		return nil, errors.NewValidationError("ticket id is required")
	}
	if order < 1 {
		return nil, errors.NewValidationError("check order must be positive")
	}
	return &InvoiceCheck{
		BatchID:     batchID,
		TicketID:    ticketID,
		Order:       order,
		CheckNumber: checkNumber,
		Amount:      amount,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}, nil
}
