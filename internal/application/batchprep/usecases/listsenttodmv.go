package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/shared/logger"
)

// ListSentToDmvQuery filters the sent-to-DMV / completed queue.
type ListSentToDmvQuery struct {
	Filter dto.ListFilter
}

// ListSentToDmvUseCase lists completed batches with their check and shipping
// detail for display.
type ListSentToDmvUseCase struct {
	queryRepo BatchQueryRepository
	logger    logger.Interface
}

// NewListSentToDmvUseCase creates a new use case.
func NewListSentToDmvUseCase(queryRepo BatchQueryRepository, logger logger.Interface) *ListSentToDmvUseCase {
	return &ListSentToDmvUseCase{queryRepo: queryRepo, logger: logger}
}

func (uc *ListSentToDmvUseCase) Execute(ctx context.Context, query ListSentToDmvQuery) (*BatchSummaryListResult, error) {
	uc.logger.Infow("executing list sent to dmv use case",
		"processing_type", query.Filter.ProcessingType,
	)

	rows, total, err := uc.queryRepo.SentToDmvRows(ctx, query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to query sent to dmv batches", "error", err)
		return nil, fmt.Errorf("failed to query sent to dmv batches: %w", err)
	}

	return &BatchSummaryListResult{Items: summaryDTOs(rows), Total: total}, nil
}
