package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/domain/batch"
	"titledesk/internal/shared/logger"
)

// ListHistoryQuery pages through render history records.
type ListHistoryQuery struct {
	Offset int
	Limit  int
}

// ListHistoryResult is one page of render history.
type ListHistoryResult struct {
	Items []dto.HistoryDTO `json:"items"`
	Total int64            `json:"total"`
}

// ListHistoryUseCase serves the polling endpoint paired with the
// "in progress" completion response.
type ListHistoryUseCase struct {
	historyRepo batch.HistoryRepository
	logger      logger.Interface
}

// NewListHistoryUseCase creates a new use case.
func NewListHistoryUseCase(historyRepo batch.HistoryRepository, logger logger.Interface) *ListHistoryUseCase {
	return &ListHistoryUseCase{historyRepo: historyRepo, logger: logger}
}

func (uc *ListHistoryUseCase) Execute(ctx context.Context, query ListHistoryQuery) (*ListHistoryResult, error) {
	uc.logger.Infow("executing list history use case",
		"offset", query.Offset,
		"limit", query.Limit,
	)

	if query.Limit <= 0 {
		query.Limit = 20
	}

	records, total, err := uc.historyRepo.List(ctx, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list render history", "error", err)
		return nil, fmt.Errorf("failed to list render history: %w", err)
	}

	items := make([]dto.HistoryDTO, 0, len(records))
	for _, h := range records {
		items = append(items, dto.HistoryDTO{
			ID:        h.ID(),
			GroupID:   h.GroupID(),
			FileName:  h.FileName(),
			Status:    string(h.Status()),
			BatchIDs:  h.BatchIDs(),
			Failure:   h.Failure(),
			CreatedBy: h.CreatedBy(),
			CreatedAt: h.CreatedAt(),
		})
	}

	return &ListHistoryResult{Items: items, Total: total}, nil
}
