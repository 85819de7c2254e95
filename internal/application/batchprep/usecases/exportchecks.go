package usecases

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/application/batchprep/services"
	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/check"
	"titledesk/internal/domain/county"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// ExportChecksQuery asks for the accounting CSV of a batch set.
type ExportChecksQuery struct {
	BatchIDs []uint
}

// ExportChecksResult carries the encoded file.
type ExportChecksResult struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"-"`
}

// ExportChecksUseCase encodes the reconciliation CSV: one row per
// (ticket, check-index) from the county's configured check count, batches
// ordered so the processing-type column forms runs.
type ExportChecksUseCase struct {
	batchRepo   batch.Repository
	mappingRepo mapping.Repository
	checkRepo   check.Repository
	countyRepo  county.Repository
	logger      logger.Interface
}

// NewExportChecksUseCase creates a new use case.
func NewExportChecksUseCase(
	batchRepo batch.Repository,
	mappingRepo mapping.Repository,
	checkRepo check.Repository,
	countyRepo county.Repository,
	logger logger.Interface,
) *ExportChecksUseCase {
	return &ExportChecksUseCase{
		batchRepo:   batchRepo,
		mappingRepo: mappingRepo,
		checkRepo:   checkRepo,
		countyRepo:  countyRepo,
		logger:      logger,
	}
}

var exportTypeOrder = map[batch.ProcessingType]int{
	batch.ProcessingWalk: 0,
	batch.ProcessingDrop: 1,
	batch.ProcessingMail: 2,
}

func (uc *ExportChecksUseCase) Execute(ctx context.Context, query ExportChecksQuery) (*ExportChecksResult, error) {
	uc.logger.Infow("executing export checks use case",
		"batch_ids", query.BatchIDs,
	)

	if len(query.BatchIDs) == 0 {
		return nil, errors.NewValidationError("at least one batch id is required")
	}

	batchIDs := uniqueIDs(query.BatchIDs)
	batches, err := uc.batchRepo.FindByIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load batches: %w", err)
	}
	if len(batches) != len(batchIDs) {
		return nil, errors.NewNotFoundError("batch not found")
	}

	// Group batches of the same processing type together so the run-length
	// encoded type column produces one label per lane.
	slices.SortStableFunc(batches, func(a, b *batch.Batch) int {
		if d := exportTypeOrder[a.ProcessingType()] - exportTypeOrder[b.ProcessingType()]; d != 0 {
			return d
		}
		return int(a.ID()) - int(b.ID())
	})

	checksByTicket, err := uc.loadChecks(ctx, batchIDs)
	if err != nil {
		return nil, err
	}

	ruleCache := make(map[string]*county.ProcessingRule)
	items := make([]services.ExportItem, 0, len(batches))
	for _, b := range batches {
		rule, err := uc.ruleFor(ctx, ruleCache, b)
		if err != nil {
			return nil, err
		}
		checkCount := 1
		if rule != nil && rule.CheckCount > 0 {
			checkCount = rule.CheckCount
		}

		mappings, err := uc.mappingRepo.FindByBatchID(ctx, b.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to load mappings for batch %d: %w", b.ID(), err)
		}

		for _, m := range mappings {
			items = append(items, services.ExportItem{
				BatchID:        b.ID(),
				TicketID:       m.TicketID,
				ProcessingType: string(b.ProcessingType()),
				CheckCount:     checkCount,
				Checks:         checksByTicket[checkKey{batchID: b.ID(), ticketID: m.TicketID}],
			})
		}
	}

	var buf bytes.Buffer
	if err := services.WriteChecksCSV(&buf, services.BuildExportLines(items)); err != nil {
		uc.logger.Errorw("failed to encode checks csv", "error", err)
		return nil, fmt.Errorf("failed to encode checks csv: %w", err)
	}

	return &ExportChecksResult{
		FileName: fmt.Sprintf("checks_export_%s.csv", uuid.NewString()),
		Content:  buf.Bytes(),
	}, nil
}

type checkKey struct {
	batchID  uint
	ticketID uint
}

func (uc *ExportChecksUseCase) loadChecks(ctx context.Context, batchIDs []uint) (map[checkKey][]dto.CheckDTO, error) {
	checks, err := uc.checkRepo.FindByBatchIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load checks: %w", err)
	}

	out := make(map[checkKey][]dto.CheckDTO, len(checks))
	for _, c := range checks {
		key := checkKey{batchID: c.BatchID, ticketID: c.TicketID}
		out[key] = append(out[key], dto.CheckDTO{
			Order:       c.Order,
			CheckNumber: c.CheckNumber,
			Amount:      c.Amount,
		})
	}
	return out, nil
}

func (uc *ExportChecksUseCase) ruleFor(ctx context.Context, cache map[string]*county.ProcessingRule, b *batch.Batch) (*county.ProcessingRule, error) {
	key := fmt.Sprintf("%d", b.CountyID())
	if b.CityID() != nil {
		key = fmt.Sprintf("%d:%d", b.CountyID(), *b.CityID())
	}
	if rule, ok := cache[key]; ok {
		return rule, nil
	}

	rule, err := uc.countyRepo.FindRule(ctx, b.CountyID(), b.CityID())
	if err != nil {
		return nil, fmt.Errorf("failed to load processing rule for batch %d: %w", b.ID(), err)
	}
	cache[key] = rule
	return rule, nil
}
