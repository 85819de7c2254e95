package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// DeleteBatchCommand removes a batch's effect on its tickets.
type DeleteBatchCommand struct {
	BatchID uint
}

// DeleteBatchUseCase routes batch deletion through mapping deletion: the
// tickets go back to the prep queue and their rows for this batch disappear.
// The batch row itself stays as history.
type DeleteBatchUseCase struct {
	batchRepo      batch.Repository
	mappingRepo    mapping.Repository
	deleteMappings DeleteMappingExecutor
	logger         logger.Interface
}

// NewDeleteBatchUseCase creates a new use case.
func NewDeleteBatchUseCase(
	batchRepo batch.Repository,
	mappingRepo mapping.Repository,
	deleteMappings DeleteMappingExecutor,
	logger logger.Interface,
) *DeleteBatchUseCase {
	return &DeleteBatchUseCase{
		batchRepo:      batchRepo,
		mappingRepo:    mappingRepo,
		deleteMappings: deleteMappings,
		logger:         logger,
	}
}

func (uc *DeleteBatchUseCase) Execute(ctx context.Context, cmd DeleteBatchCommand) error {
	uc.logger.Infow("executing delete batch use case", "batch_id", cmd.BatchID)

	if cmd.BatchID == 0 {
		return errors.NewValidationError("batch id is required")
	}

	if _, err := uc.batchRepo.FindByID(ctx, cmd.BatchID); err != nil {
		uc.logger.Errorw("failed to load batch", "batch_id", cmd.BatchID, "error", err)
		return err
	}

	mappings, err := uc.mappingRepo.FindByBatchID(ctx, cmd.BatchID)
	if err != nil {
		return fmt.Errorf("failed to load batch mappings: %w", err)
	}
	if len(mappings) == 0 {
		// Nothing mapped; deletion is a no-op.
		return nil
	}

	ticketIDs := make([]uint, 0, len(mappings))
	for _, m := range mappings {
		ticketIDs = append(ticketIDs, m.TicketID)
	}

	batchID := cmd.BatchID
	return uc.deleteMappings.Execute(ctx, DeleteMappingCommand{
		TicketIDs: uniqueIDs(ticketIDs),
		BatchID:   &batchID,
	})
}
