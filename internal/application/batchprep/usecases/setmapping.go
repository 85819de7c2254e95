package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/county"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/domain/ticket"
	"titledesk/internal/infrastructure/lock"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// SetMappingCommand carries the desired (county, ticket, city) placements as
// three parallel arrays. ExistingBatchID is set when an already grouped batch
// is being edited.
type SetMappingCommand struct {
	CountyIDs       []uint
	TicketIDs       []uint
	CityIDs         []*uint
	CreatedBy       uint
	ExistingBatchID *uint
}

// SetMappingUseCase replaces the mapping rows for the requested placements.
type SetMappingUseCase struct {
	mappingRepo mapping.Repository
	countyRepo  county.Repository
	ticketRepo  ticket.Repository
	batchRepo   batch.Repository
	txManager   TransactionManager
	locker      lock.Locker
	logger      logger.Interface
}

// NewSetMappingUseCase creates a new use case.
func NewSetMappingUseCase(
	mappingRepo mapping.Repository,
	countyRepo county.Repository,
	ticketRepo ticket.Repository,
	batchRepo batch.Repository,
	txManager TransactionManager,
	locker lock.Locker,
	logger logger.Interface,
) *SetMappingUseCase {
	return &SetMappingUseCase{
		mappingRepo: mappingRepo,
		countyRepo:  countyRepo,
		ticketRepo:  ticketRepo,
		batchRepo:   batchRepo,
		txManager:   txManager,
		locker:      locker,
		logger:      logger,
	}
}

// Execute clears stale placements and inserts the new desired state. This is
// a wholesale replace, not a diff: existing rows matching the input's
// (county, ticket) pairs whose city is null or among the supplied cities are
// deleted, then the deduplicated candidates are bulk-inserted.
func (uc *SetMappingUseCase) Execute(ctx context.Context, cmd SetMappingCommand) error {
	uc.logger.Infow("executing set mapping use case",
		"tickets", len(cmd.TicketIDs),
		"existing_batch_id", cmd.ExistingBatchID,
	)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid command", "error", err)
		return err
	}

	if err := uc.validateReferences(ctx, cmd); err != nil {
		return err
	}

	var editedBatch *batch.Batch
	if cmd.ExistingBatchID != nil {
		b, err := uc.batchRepo.FindByID(ctx, *cmd.ExistingBatchID)
		if err != nil {
			uc.logger.Errorw("failed to load edited batch", "batch_id", *cmd.ExistingBatchID, "error", err)
			return err
		}
		editedBatch = b
	}

	release, err := acquireTicketLocks(ctx, uc.locker, cmd.TicketIDs)
	if err != nil {
		return err
	}
	defer release()

	entries := make([]mapping.Entry, 0, len(cmd.TicketIDs))
	pairs := make([]mapping.CountyTicket, 0, len(cmd.TicketIDs))
	cityIDs := make([]uint, 0, len(cmd.CityIDs))
	for i := range cmd.TicketIDs {
		entries = append(entries, mapping.Entry{
			TicketID: cmd.TicketIDs[i],
			CountyID: cmd.CountyIDs[i],
			CityID:   cmd.CityIDs[i],
		})
		pairs = append(pairs, mapping.CountyTicket{CountyID: cmd.CountyIDs[i], TicketID: cmd.TicketIDs[i]})
		if cmd.CityIDs[i] != nil {
			cityIDs = append(cityIDs, *cmd.CityIDs[i])
		}
	}
	entries = mapping.DedupeEntries(entries)

	rows := make([]*mapping.Mapping, 0, len(entries))
	for _, e := range entries {
		row, err := mapping.New(e.TicketID, e.CountyID, e.CityID, cmd.CreatedBy)
		if err != nil {
			return err
		}
		// Editing a batch that already holds this exact (county, city) placement
		// keeps the assignment instead of resetting the row to unassigned.
		if editedBatch != nil && editedBatch.CountyID() == e.CountyID && cityEqual(editedBatch.CityID(), e.CityID) {
			id := editedBatch.ID()
			row.BatchID = &id
		}
		rows = append(rows, row)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.mappingRepo.DeleteForReplace(txCtx, pairs, cityIDs); err != nil {
			return fmt.Errorf("failed to clear stale mappings: %w", err)
		}
		if err := uc.mappingRepo.BulkCreate(txCtx, rows); err != nil {
			return fmt.Errorf("failed to insert mappings: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to replace mappings", "error", err)
		return err
	}

	return nil
}

func (uc *SetMappingUseCase) validateCommand(cmd SetMappingCommand) error {
	if len(cmd.TicketIDs) == 0 {
		return errors.NewValidationError("at least one placement is required")
	}
	if len(cmd.CountyIDs) != len(cmd.TicketIDs) || len(cmd.CityIDs) != len(cmd.TicketIDs) {
		return errors.NewValidationError("countyIds, ticketIds and cityIds must have the same length")
	}
	if cmd.CreatedBy == 0 {
		return errors.NewValidationError("created by is required")
	}
	return nil
}

func (uc *SetMappingUseCase) validateReferences(ctx context.Context, cmd SetMappingCommand) error {
	countyIDs := uniqueIDs(cmd.CountyIDs)
	existing, err := uc.countyRepo.ExistingIDs(ctx, countyIDs)
	if err != nil {
		return fmt.Errorf("failed to validate counties: %w", err)
	}
	if missing := missingIDs(countyIDs, existing); len(missing) > 0 {
		return errors.NewNotFoundError("county not found", fmt.Sprintf("%v", missing))
	}

	ticketIDs := uniqueIDs(cmd.TicketIDs)
	existing, err = uc.ticketRepo.ExistingIDs(ctx, ticketIDs)
	if err != nil {
		return fmt.Errorf("failed to validate tickets: %w", err)
	}
	if missing := missingIDs(ticketIDs, existing); len(missing) > 0 {
		return errors.NewNotFoundError("ticket not found", fmt.Sprintf("%v", missing))
	}

	return nil
}

func cityEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(requested, existing []uint) []uint {
	have := make(map[uint]struct{}, len(existing))
	for _, id := range existing {
		have[id] = struct{}{}
	}
	var missing []uint
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
