package check

import "context"

// Repository persists invoice checks.
type Repository interface {
	// ReplaceForBatches deletes all checks for the given batches and inserts
	// rows in their place. rows may span a subset of batchIDs; batches not
	// present in rows simply end up with no checks.
	ReplaceForBatches(ctx context.Context, batchIDs []uint, rows []*InvoiceCheck) error

	FindByBatchIDs(ctx context.Context, batchIDs []uint) ([]*InvoiceCheck, error)

	// BatchIDsWithChecks returns the subset of batchIDs that have at least
	// one check row.
	BatchIDsWithChecks(ctx context.Context, batchIDs []uint) ([]uint, error)
}
