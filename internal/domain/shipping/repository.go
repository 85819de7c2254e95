package shipping

import "context"

// Repository persists shipping label documents.
type Repository interface {
	// BulkCreate inserts documents in one statement and backfills IDs.
	BulkCreate(ctx context.Context, docs []*Document) error

	// SoftDeleteByBatchIDs marks all live documents of the given batches deleted.
	SoftDeleteByBatchIDs(ctx context.Context, batchIDs []uint) error

	// FindLiveByBatchIDs returns non-deleted documents for the batches.
	FindLiveByBatchIDs(ctx context.Context, batchIDs []uint) ([]*Document, error)

	// BatchIDsWithDocuments returns the subset of batchIDs that have a live document.
	BatchIDsWithDocuments(ctx context.Context, batchIDs []uint) ([]uint, error)

	// CountLiveByBatchIDs returns the raw number of live document rows across
	// the batches. Callers comparing this against the batch count assume one
	// label per batch.
	CountLiveByBatchIDs(ctx context.Context, batchIDs []uint) (int64, error)
}
