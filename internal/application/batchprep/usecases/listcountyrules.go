package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/domain/county"
	"titledesk/internal/shared/logger"
)

// ListCountyRulesQuery fetches the processing rules of one county.
type ListCountyRulesQuery struct {
	CountyID uint
}

// ListCountyRulesUseCase serves per-city processing configuration for the
// batch UI. The carrier address itself stays server-side; only its presence
// is exposed.
type ListCountyRulesUseCase struct {
	countyRepo county.Repository
	logger     logger.Interface
}

// NewListCountyRulesUseCase creates a new use case.
func NewListCountyRulesUseCase(countyRepo county.Repository, logger logger.Interface) *ListCountyRulesUseCase {
	return &ListCountyRulesUseCase{countyRepo: countyRepo, logger: logger}
}

func (uc *ListCountyRulesUseCase) Execute(ctx context.Context, query ListCountyRulesQuery) ([]dto.ProcessingRuleDTO, error) {
	uc.logger.Infow("executing list county rules use case", "county_id", query.CountyID)

	if _, err := uc.countyRepo.FindByID(ctx, query.CountyID); err != nil {
		return nil, err
	}

	rules, err := uc.countyRepo.ListRules(ctx, query.CountyID)
	if err != nil {
		uc.logger.Errorw("failed to list county rules", "error", err, "county_id", query.CountyID)
		return nil, fmt.Errorf("failed to list county rules: %w", err)
	}

	items := make([]dto.ProcessingRuleDTO, 0, len(rules))
	for _, rule := range rules {
		items = append(items, dto.ProcessingRuleDTO{
			ID:                   rule.ID,
			CountyID:             rule.CountyID,
			CityID:               rule.CityID,
			CityName:             rule.CityName,
			WalkRoundLimit:       rule.WorkRounds,
			DropRoundLimit:       rule.DropWorkRounds,
			AllowDuplicateRounds: rule.AllowDuplicateRounds,
			WorksType:            string(rule.WorksType),
			CheckCount:           rule.CheckCount,
			HasCarrierAddress:    rule.FedexAddress != nil,
		})
	}
	return items, nil
}
