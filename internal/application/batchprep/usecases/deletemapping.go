package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/domain/mapping"
	"titledesk/internal/domain/ticket"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// DeleteMappingCommand removes tickets from the batch-prep queue. BatchID
// scopes the deletion when the tickets were pulled out of a specific batch.
type DeleteMappingCommand struct {
	TicketIDs []uint
	BatchID   *uint
}

// DeleteMappingUseCase removes mapping rows and resets ticket statuses.
type DeleteMappingUseCase struct {
	mappingRepo mapping.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

// NewDeleteMappingUseCase creates a new use case.
func NewDeleteMappingUseCase(
	mappingRepo mapping.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *DeleteMappingUseCase {
	return &DeleteMappingUseCase{
		mappingRepo: mappingRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute resets the tickets to ready_for_batch_prep and deletes their
// mapping rows whose batch is BatchID or null. Rows pinned to a different
// batch survive. Deleting tickets with no mapping rows is a no-op.
func (uc *DeleteMappingUseCase) Execute(ctx context.Context, cmd DeleteMappingCommand) error {
	uc.logger.Infow("executing delete mapping use case",
		"tickets", len(cmd.TicketIDs),
		"batch_id", cmd.BatchID,
	)

	if len(cmd.TicketIDs) == 0 {
		return errors.NewValidationError("at least one ticket id is required")
	}

	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.UpdateStatus(txCtx, cmd.TicketIDs, ticket.StatusReadyForBatchPrep); err != nil {
			return fmt.Errorf("failed to reset ticket statuses: %w", err)
		}
		if err := uc.mappingRepo.DeleteByTicketsAndBatch(txCtx, cmd.TicketIDs, cmd.BatchID); err != nil {
			return fmt.Errorf("failed to delete mappings: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete mappings", "error", err)
		return err
	}

	return nil
}
