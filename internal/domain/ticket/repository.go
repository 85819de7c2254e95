package ticket

import (
	"context"
	"time"
)

// Repository provides the ticket reads and status writes used by batch prep.
type Repository interface {
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Ticket, error)

	// ExistingIDs returns the subset of ids that exist.
	ExistingIDs(ctx context.Context, ids []uint) ([]uint, error)

	// UpdateStatus moves all given tickets to status in one statement.
	UpdateStatus(ctx context.Context, ids []uint, status Status) error

	// MarkSentToDmv sets status, timestamp and actor for the given tickets.
	MarkSentToDmv(ctx context.Context, ids []uint, by uint, at time.Time) error
}
