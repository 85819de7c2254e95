package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/shared/logger"
)

// ListIncompleteQuery filters the incomplete queue.
type ListIncompleteQuery struct {
	Filter dto.ListFilter
}

// BatchSummaryListResult is the shared shape of the incomplete and
// sent-to-DMV listings.
type BatchSummaryListResult struct {
	Items []dto.BatchSummaryDTO `json:"items"`
	Total int64                 `json:"total"`
}

// ListIncompleteUseCase lists batches that have not been completed yet.
type ListIncompleteUseCase struct {
	queryRepo BatchQueryRepository
	logger    logger.Interface
}

// NewListIncompleteUseCase creates a new use case.
func NewListIncompleteUseCase(queryRepo BatchQueryRepository, logger logger.Interface) *ListIncompleteUseCase {
	return &ListIncompleteUseCase{queryRepo: queryRepo, logger: logger}
}

func (uc *ListIncompleteUseCase) Execute(ctx context.Context, query ListIncompleteQuery) (*BatchSummaryListResult, error) {
	uc.logger.Infow("executing list incomplete use case",
		"processing_type", query.Filter.ProcessingType,
	)

	rows, total, err := uc.queryRepo.IncompleteRows(ctx, query.Filter)
	if err != nil {
		uc.logger.Errorw("failed to query incomplete batches", "error", err)
		return nil, fmt.Errorf("failed to query incomplete batches: %w", err)
	}

	return &BatchSummaryListResult{Items: summaryDTOs(rows), Total: total}, nil
}

func summaryDTOs(rows []dto.BatchSummaryRow) []dto.BatchSummaryDTO {
	items := make([]dto.BatchSummaryDTO, 0, len(rows))
	for _, row := range rows {
		item := dto.BatchSummaryDTO{
			BatchID:        row.BatchID,
			GroupID:        row.GroupID,
			CountyID:       row.CountyID,
			CountyName:     row.CountyName,
			CityID:         row.CityID,
			CityName:       row.CityName,
			ProcessingType: row.ProcessingType,
			DateProcessing: row.DateProcessing,
			Comment:        row.Comment,
			CompletedAt:    row.CompletedAt,
			CreatedBy:      row.CreatedBy,
			CreatedAt:      row.CreatedAt,
			TicketCount:    row.TicketCount,
			CheckCount:     row.CheckCount,
		}
		if row.TrackingNumber != nil {
			item.TrackingNumber = *row.TrackingNumber
		}
		items = append(items, item)
	}
	return items
}
