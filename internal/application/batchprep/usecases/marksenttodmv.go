package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/domain/mapping"
	"titledesk/internal/domain/ticket"
	"titledesk/internal/shared/biztime"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// MarkSentToDmvCommand transitions all tickets of the given batches to
// sent_to_dmv. Independent of completion: the caller coordinates order.
type MarkSentToDmvCommand struct {
	BatchIDs []uint
	SentBy   uint
}

// MarkSentToDmvUseCase stamps the DMV handoff on a batch set's tickets.
type MarkSentToDmvUseCase struct {
	mappingRepo mapping.Repository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

// NewMarkSentToDmvUseCase creates a new use case.
func NewMarkSentToDmvUseCase(
	mappingRepo mapping.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *MarkSentToDmvUseCase {
	return &MarkSentToDmvUseCase{
		mappingRepo: mappingRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *MarkSentToDmvUseCase) Execute(ctx context.Context, cmd MarkSentToDmvCommand) error {
	uc.logger.Infow("executing mark sent to dmv use case",
		"batch_ids", cmd.BatchIDs,
		"sent_by", cmd.SentBy,
	)

	if len(cmd.BatchIDs) == 0 {
		return errors.NewValidationError("at least one batch id is required")
	}
	if cmd.SentBy == 0 {
		return errors.NewValidationError("sent by is required")
	}

	ticketIDs, err := uc.mappingRepo.TicketIDsForBatches(ctx, cmd.BatchIDs)
	if err != nil {
		uc.logger.Errorw("failed to resolve batch tickets", "error", err)
		return fmt.Errorf("failed to resolve batch tickets: %w", err)
	}
	if len(ticketIDs) == 0 {
		return errors.NewNotFoundError("no tickets mapped to the given batches")
	}

	if err := uc.ticketRepo.MarkSentToDmv(ctx, ticketIDs, cmd.SentBy, biztime.NowUTC()); err != nil {
		uc.logger.Errorw("failed to mark tickets sent to dmv", "error", err)
		return fmt.Errorf("failed to mark tickets sent to dmv: %w", err)
	}

	return nil
}
