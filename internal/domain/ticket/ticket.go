// Package ticket exposes the slice of the ticket pipeline batch prep cares
// about: which tickets are eligible for batching and the status moves this
// subsystem is allowed to make.
package ticket

import "time"

// Status is a ticket's position in the batch prep pipeline.
type Status string

const (
	StatusReadyForBatchPrep Status = "ready_for_batch_prep"
	StatusBatchAssigned     Status = "batch_assigned"
	StatusSentToDmv         Status = "sent_to_dmv"
)

// IsValid reports whether s is a known pipeline status.
func (s Status) IsValid() bool {
	switch s {
	case StatusReadyForBatchPrep, StatusBatchAssigned, StatusSentToDmv:
		return true
	}
	return false
}

// Ticket is the read model of a customer ticket as seen by batch prep.
type Ticket struct {
	ID                  uint
	CustomerName        string
	TransactionTypeID   uint
	TransactionTypeName string
	EstimationFee       float64
	Status              Status
	SentToDmvAt         *time.Time
	SentToDmvBy         *uint
	CreatedAt           time.Time
}
