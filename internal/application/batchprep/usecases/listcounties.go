package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/domain/county"
	"titledesk/internal/shared/logger"
)

// ListCountiesUseCase serves the county master data the batch UI selects
// from. The data is maintained elsewhere; this is read-only.
type ListCountiesUseCase struct {
	countyRepo county.Repository
	logger     logger.Interface
}

// NewListCountiesUseCase creates a new use case.
func NewListCountiesUseCase(countyRepo county.Repository, logger logger.Interface) *ListCountiesUseCase {
	return &ListCountiesUseCase{countyRepo: countyRepo, logger: logger}
}

func (uc *ListCountiesUseCase) Execute(ctx context.Context) ([]dto.CountyDTO, error) {
	uc.logger.Infow("executing list counties use case")

	counties, err := uc.countyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list counties", "error", err)
		return nil, fmt.Errorf("failed to list counties: %w", err)
	}

	items := make([]dto.CountyDTO, 0, len(counties))
	for _, c := range counties {
		items = append(items, dto.CountyDTO{
			ID:     c.ID,
			Name:   c.Name,
			Number: c.Number,
		})
	}
	return items, nil
}
