package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/application/batchprep/services"
	"titledesk/internal/domain/check"
	"titledesk/internal/domain/shipping"
	"titledesk/internal/shared/logger"
)

// ListReviewQuery is the filtered review listing request.
type ListReviewQuery struct {
	Filter dto.ReviewFilter
}

// ListReviewUseCase serves the review queue: open and completed batches for a
// processing type with nested ticket/check/shipping detail.
type ListReviewUseCase struct {
	queryRepo    BatchQueryRepository
	shippingRepo shipping.Repository
	checkRepo    check.Repository
	logger       logger.Interface
}

// NewListReviewUseCase creates a new use case.
func NewListReviewUseCase(
	queryRepo BatchQueryRepository,
	shippingRepo shipping.Repository,
	checkRepo check.Repository,
	logger logger.Interface,
) *ListReviewUseCase {
	return &ListReviewUseCase{
		queryRepo:    queryRepo,
		shippingRepo: shippingRepo,
		checkRepo:    checkRepo,
		logger:       logger,
	}
}

// Execute lists batches matching the filter and computes the two
// all-or-nothing completeness flags across the filtered set: a flag is true
// only when the matching record count equals the batch count.
func (uc *ListReviewUseCase) Execute(ctx context.Context, query ListReviewQuery) (*dto.ReviewListDTO, error) {
	uc.logger.Infow("executing list review use case",
		"processing_type", query.Filter.ProcessingType,
		"batch_ids", len(query.Filter.BatchIDs),
	)

	rows, total, err := uc.queryRepo.ReviewRows(ctx, query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to query review rows", "error", err)
		return nil, fmt.Errorf("failed to query review rows: %w", err)
	}

	items := services.GroupReviewRows(rows)

	result := &dto.ReviewListDTO{Items: items, Total: total}

	batchIDs := make([]uint, 0, len(items))
	for _, item := range items {
		batchIDs = append(batchIDs, item.BatchID)
	}
	if len(batchIDs) == 0 {
		return result, nil
	}

	labelCount, err := uc.shippingRepo.CountLiveByBatchIDs(ctx, batchIDs)
	if err != nil {
		uc.logger.Errorw("failed to count shipping documents", "error", err)
		return nil, fmt.Errorf("failed to count shipping documents: %w", err)
	}
	result.GenerateFedexLabel = labelCount == int64(len(batchIDs))

	withChecks, err := uc.checkRepo.BatchIDsWithChecks(ctx, batchIDs)
	if err != nil {
		uc.logger.Errorw("failed to count check batches", "error", err)
		return nil, fmt.Errorf("failed to count check batches: %w", err)
	}
	result.UploadedCsv = len(withChecks) == len(batchIDs)

	return result, nil
}
