package usecases

import (
	"context"
	"fmt"
	"io"

	"titledesk/internal/application/batchprep/services"
	"titledesk/internal/domain/check"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// UploadChecksCommand replaces the reconciliation checks of a batch set from
// an uploaded CSV file.
type UploadChecksCommand struct {
	BatchIDs  []uint
	File      io.Reader
	CreatedBy uint
}

// UploadChecksUseCase validates and applies the accounting CSV. Existing
// check rows for the target batches are replaced wholesale, not merged.
type UploadChecksUseCase struct {
	checkRepo   check.Repository
	mappingRepo mapping.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

// NewUploadChecksUseCase creates a new use case.
func NewUploadChecksUseCase(
	checkRepo check.Repository,
	mappingRepo mapping.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *UploadChecksUseCase {
	return &UploadChecksUseCase{
		checkRepo:   checkRepo,
		mappingRepo: mappingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute parses the file and rejects the whole upload when any referenced
// ticket does not belong to the supplied batches. No partial insert happens.
func (uc *UploadChecksUseCase) Execute(ctx context.Context, cmd UploadChecksCommand) error {
	uc.logger.Infow("executing upload checks use case",
		"batch_ids", cmd.BatchIDs,
	)

	if len(cmd.BatchIDs) == 0 {
		return errors.NewValidationError("at least one batch id is required")
	}
	if cmd.File == nil {
		return errors.NewValidationError("csv file is required")
	}

	rows, err := services.ParseChecksCSV(cmd.File)
	if err != nil {
		uc.logger.Warnw("rejected check upload", "error", err)
		return err
	}

	allowedBatches := make(map[uint]struct{}, len(cmd.BatchIDs))
	for _, id := range cmd.BatchIDs {
		allowedBatches[id] = struct{}{}
	}

	ticketIDs, err := uc.mappingRepo.TicketIDsForBatches(ctx, cmd.BatchIDs)
	if err != nil {
		return fmt.Errorf("failed to resolve batch tickets: %w", err)
	}
	allowedTickets := make(map[uint]struct{}, len(ticketIDs))
	for _, id := range ticketIDs {
		allowedTickets[id] = struct{}{}
	}

	checks := make([]*check.InvoiceCheck, 0, len(rows))
	for _, row := range rows {
		if _, ok := allowedBatches[row.BatchID]; !ok {
			return errors.NewBadRequestError(
				fmt.Sprintf("batch %d is not part of this upload", row.BatchID))
		}
		if _, ok := allowedTickets[row.TicketID]; !ok {
			return errors.NewBadRequestError(
				fmt.Sprintf("ticket %d does not belong to the given batches", row.TicketID))
		}

		c, err := check.New(row.BatchID, row.TicketID, row.Order, row.CheckNumber, row.Amount, cmd.CreatedBy)
		if err != nil {
			return err
		}
		checks = append(checks, c)
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.checkRepo.ReplaceForBatches(txCtx, cmd.BatchIDs, checks)
	})
	if err != nil {
		uc.logger.Errorw("failed to replace checks", "error", err)
		return fmt.Errorf("failed to replace checks: %w", err)
	}

	return nil
}
