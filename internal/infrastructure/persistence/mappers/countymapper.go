package mappers

import (
	"encoding/json"
	"fmt"

	"titledesk/internal/domain/county"
	"titledesk/internal/infrastructure/persistence/models"
)

// CountyMapper converts county master data models to domain read models.
// County data is read-only in this service, so there is no ToModel side for
// counties themselves; rules keep one for test fixtures.
type CountyMapper interface {
	CountyToDomain(model *models.CountyModel) *county.County
	RuleToDomain(model *models.ProcessingRuleModel) (*county.ProcessingRule, error)
	RuleToModel(rule *county.ProcessingRule) (*models.ProcessingRuleModel, error)
}

type CountyMapperImpl struct{}

func NewCountyMapper() CountyMapper {
	return &CountyMapperImpl{}
}

func (m *CountyMapperImpl) CountyToDomain(model *models.CountyModel) *county.County {
	return &county.County{
		ID:        model.ID,
		Name:      model.Name,
		Number:    model.Number,
		CreatedAt: fromMillis(model.CreatedAt),
	}
}

func (m *CountyMapperImpl) RuleToDomain(model *models.ProcessingRuleModel) (*county.ProcessingRule, error) {
	rule := &county.ProcessingRule{
		ID:                   model.ID,
		CountyID:             model.CountyID,
		CityID:               model.CityID,
		CityName:             model.CityName,
		WorkRounds:           county.ParseRoundLimit(model.WorkRounds),
		DropWorkRounds:       county.ParseRoundLimit(model.DropWorkRounds),
		AllowDuplicateRounds: model.AllowDuplicateRounds,
		WorksType:            county.WorksType(model.WorksType),
		CheckCount:           model.CheckCount,
	}

	if model.FedexAddress != "" {
		var addr county.FedexAddress
		if err := json.Unmarshal([]byte(model.FedexAddress), &addr); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fedex address: %w", err)
		}
		rule.FedexAddress = &addr
	}

	return rule, nil
}

func (m *CountyMapperImpl) RuleToModel(rule *county.ProcessingRule) (*models.ProcessingRuleModel, error) {
	model := &models.ProcessingRuleModel{
		ID:                   rule.ID,
		CountyID:             rule.CountyID,
		CityID:               rule.CityID,
		CityName:             rule.CityName,
		WorkRounds:           rule.WorkRounds.Storage(),
		DropWorkRounds:       rule.DropWorkRounds.Storage(),
		AllowDuplicateRounds: rule.AllowDuplicateRounds,
		WorksType:            string(rule.WorksType),
		CheckCount:           rule.CheckCount,
	}

	if rule.FedexAddress != nil {
		addr, err := json.Marshal(rule.FedexAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal fedex address: %w", err)
		}
		model.FedexAddress = string(addr)
	}

	return model, nil
}
