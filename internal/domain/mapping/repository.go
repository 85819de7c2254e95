package mapping

import "context"

// CountyTicket is a (countyID, ticketID) pair targeted by a replace call.
type CountyTicket struct {
	CountyID uint
	TicketID uint
}

// Repository persists ticket-to-county mapping rows.
type Repository interface {
	// BulkCreate inserts rows in a single statement and backfills IDs.
	BulkCreate(ctx context.Context, rows []*Mapping) error

	// DeleteForReplace clears stale placements before a replace: it removes
	// rows whose (countyID, ticketID) is in pairs and whose city is either
	// null or one of cityIDs. Rows pinned to other cities survive.
	DeleteForReplace(ctx context.Context, pairs []CountyTicket, cityIDs []uint) error

	// DeleteByTicketsAndBatch removes rows for ticketIDs whose batch is
	// batchID or null. Rows belonging to a different batch are untouched.
	// A nil batchID deletes only unassigned rows.
	DeleteByTicketsAndBatch(ctx context.Context, ticketIDs []uint, batchID *uint) error

	FindByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*Mapping, error)
	FindByBatchID(ctx context.Context, batchID uint) ([]*Mapping, error)

	// AssignBatch points the rows for ticketIDs that still carry the given
	// county/city at batchID. Rows remapped to another lane since the
	// request was read are left untouched.
	AssignBatch(ctx context.Context, ticketIDs []uint, countyID uint, cityID *uint, batchID uint) error

	// TicketIDsForBatches returns the ticket ids mapped to any of the batches.
	TicketIDsForBatches(ctx context.Context, batchIDs []uint) ([]uint, error)

	// FirstTicketIDForBatch returns the earliest-inserted ticket of a batch,
	// or 0 when the batch has no mappings.
	FirstTicketIDForBatch(ctx context.Context, batchID uint) (uint, error)

	// CountPerBatch returns mapped ticket counts keyed by batch id.
	CountPerBatch(ctx context.Context, batchIDs []uint) (map[uint]int64, error)
}
