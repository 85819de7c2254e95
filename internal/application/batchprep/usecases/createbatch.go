package usecases

import (
	"context"
	"fmt"
	"time"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/domain/ticket"
	"titledesk/internal/infrastructure/lock"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// BatchRequestItem is one requested placement: which ticket goes to which
// (county, city) lane, and the date for its processing type.
type BatchRequestItem struct {
	CountyID       uint
	CityID         *uint
	ProcessingType string
	TicketID       uint
	WalkDate       *time.Time
	DropDate       *time.Time
	MailDate       *time.Time
}

// CreateBatchCommand groups the requested items into batches. TargetBatchID
// reuses that batch's group instead of opening a new one.
type CreateBatchCommand struct {
	Items         []BatchRequestItem
	CreatedBy     uint
	TargetBatchID *uint
}

// CreateBatchUseCase is the grouping engine: it partitions request items by
// (county, city, processing type), upserts one batch per key inside the
// owning group, and repoints the mapping rows at the resulting batches.
type CreateBatchUseCase struct {
	batchRepo   batch.Repository
	groupRepo   batch.GroupRepository
	mappingRepo mapping.Repository
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	locker      lock.Locker
	logger      logger.Interface
}

// NewCreateBatchUseCase creates a new use case.
func NewCreateBatchUseCase(
	batchRepo batch.Repository,
	groupRepo batch.GroupRepository,
	mappingRepo mapping.Repository,
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	locker lock.Locker,
	logger logger.Interface,
) *CreateBatchUseCase {
	return &CreateBatchUseCase{
		batchRepo:   batchRepo,
		groupRepo:   groupRepo,
		mappingRepo: mappingRepo,
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		locker:      locker,
		logger:      logger,
	}
}

// batchGroup is one partition of the request keyed by (county, city, type).
type batchGroup struct {
	countyID       uint
	cityID         *uint
	processingType batch.ProcessingType
	date           *time.Time
	ticketIDs      []uint
}

// Execute runs the grouping algorithm. Failures abort the transaction; the
// caller retries the whole call, nothing is resumable.
func (uc *CreateBatchUseCase) Execute(ctx context.Context, cmd CreateBatchCommand) (*dto.CreateBatchResultDTO, error) {
	uc.logger.Infow("executing create batch use case",
		"items", len(cmd.Items),
		"target_batch_id", cmd.TargetBatchID,
	)

	groups, ticketIDs, err := uc.partition(cmd)
	if err != nil {
		uc.logger.Warnw("invalid command", "error", err)
		return nil, err
	}

	release, err := acquireTicketLocks(ctx, uc.locker, ticketIDs)
	if err != nil {
		return nil, err
	}
	defer release()

	result := &dto.CreateBatchResultDTO{}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.UpdateStatus(txCtx, ticketIDs, ticket.StatusBatchAssigned); err != nil {
			return fmt.Errorf("failed to mark tickets batch assigned: %w", err)
		}

		groupID, err := uc.resolveGroup(txCtx, cmd)
		if err != nil {
			return err
		}
		result.GroupID = groupID

		for _, g := range groups {
			b, err := uc.upsertBatch(txCtx, groupID, g, cmd.CreatedBy)
			if err != nil {
				return err
			}

			// Mapping reassignment must run after the batch exists since it
			// needs the id. Only rows still on this (county, city) lane move.
			if err := uc.mappingRepo.AssignBatch(txCtx, g.ticketIDs, g.countyID, g.cityID, b.ID()); err != nil {
				return fmt.Errorf("failed to assign mappings to batch %d: %w", b.ID(), err)
			}

			switch g.processingType {
			case batch.ProcessingWalk:
				result.BatchIDs.Walk = append(result.BatchIDs.Walk, b.ID())
			case batch.ProcessingDrop:
				result.BatchIDs.Drop = append(result.BatchIDs.Drop, b.ID())
			case batch.ProcessingMail:
				result.BatchIDs.Mail = append(result.BatchIDs.Mail, b.ID())
			}
		}

		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create batches", "error", err)
		return nil, err
	}

	return result, nil
}

// partition splits the items into groups keyed by (county, city, type),
// preserving first-seen group order. The first non-nil date matching the
// group's processing type wins.
func (uc *CreateBatchUseCase) partition(cmd CreateBatchCommand) ([]*batchGroup, []uint, error) {
	if len(cmd.Items) == 0 {
		return nil, nil, errors.NewValidationError("at least one batch request item is required")
	}
	if cmd.CreatedBy == 0 {
		return nil, nil, errors.NewValidationError("created by is required")
	}

	type groupKey struct {
		countyID uint
		cityID   uint
		hasCity  bool
		pt       batch.ProcessingType
	}

	index := make(map[groupKey]*batchGroup)
	var groups []*batchGroup
	var ticketIDs []uint

	for _, item := range cmd.Items {
		pt, err := batch.ParseProcessingType(item.ProcessingType)
		if err != nil {
			return nil, nil, err
		}
		if item.TicketID == 0 {
			return nil, nil, errors.NewValidationError("ticket id is required")
		}

		key := groupKey{countyID: item.CountyID, pt: pt}
		if item.CityID != nil {
			key.cityID = *item.CityID
			key.hasCity = true
		}

		g, ok := index[key]
		if !ok {
			g = &batchGroup{countyID: item.CountyID, cityID: item.CityID, processingType: pt}
			index[key] = g
			groups = append(groups, g)
		}

		g.ticketIDs = append(g.ticketIDs, item.TicketID)
		ticketIDs = append(ticketIDs, item.TicketID)

		if g.date == nil {
			g.date = dateForType(item, pt)
		}
	}

	for _, g := range groups {
		if g.date == nil {
			return nil, nil, errors.NewValidationError(
				fmt.Sprintf("missing %s processing date for county %d", g.processingType, g.countyID))
		}
	}

	return groups, uniqueIDs(ticketIDs), nil
}

func dateForType(item BatchRequestItem, pt batch.ProcessingType) *time.Time {
	switch pt {
	case batch.ProcessingWalk:
		return item.WalkDate
	case batch.ProcessingDrop:
		return item.DropDate
	case batch.ProcessingMail:
		return item.MailDate
	}
	return nil
}

func (uc *CreateBatchUseCase) resolveGroup(ctx context.Context, cmd CreateBatchCommand) (uint, error) {
	if cmd.TargetBatchID != nil {
		target, err := uc.batchRepo.FindByID(ctx, *cmd.TargetBatchID)
		if err != nil {
			return 0, fmt.Errorf("failed to load target batch: %w", err)
		}
		return target.GroupID(), nil
	}

	g := batch.NewGroup(cmd.CreatedBy)
	if err := uc.groupRepo.Save(ctx, g); err != nil {
		return 0, fmt.Errorf("failed to create batch group: %w", err)
	}
	return g.ID(), nil
}

// upsertBatch reuses the batch already holding this group key or creates a
// new one. Same grouping key twice never produces a duplicate batch row.
func (uc *CreateBatchUseCase) upsertBatch(ctx context.Context, groupID uint, g *batchGroup, createdBy uint) (*batch.Batch, error) {
	existing, err := uc.batchRepo.FindByGroupKey(ctx, groupID, g.countyID, g.cityID, g.processingType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up batch by group key: %w", err)
	}

	if existing != nil {
		existing.SetProcessingDate(*g.date)
		if err := uc.batchRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update batch %d: %w", existing.ID(), err)
		}
		return existing, nil
	}

	b, err := batch.NewBatch(groupID, g.countyID, g.cityID, g.processingType, *g.date, createdBy)
	if err != nil {
		return nil, err
	}
	if err := uc.batchRepo.Save(ctx, b); err != nil {
		return nil, fmt.Errorf("failed to save batch: %w", err)
	}
	return b, nil
}
