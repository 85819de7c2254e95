package mappers

import (
	"titledesk/internal/domain/mapping"
	"titledesk/internal/infrastructure/persistence/models"
)

// MappingMapper converts between mapping rows and persistence models.
type MappingMapper interface {
	ToModel(m *mapping.Mapping) *models.MappingModel
	ToDomain(model *models.MappingModel) *mapping.Mapping
}

type MappingMapperImpl struct{}

func NewMappingMapper() MappingMapper {
	return &MappingMapperImpl{}
}

func (mp *MappingMapperImpl) ToModel(m *mapping.Mapping) *models.MappingModel {
	return &models.MappingModel{
		ID:        m.ID,
		TicketID:  m.TicketID,
		CountyID:  m.CountyID,
		CityID:    m.CityID,
		BatchID:   m.BatchID,
		CreatedBy: m.CreatedBy,
		CreatedAt: toMillis(m.CreatedAt),
	}
}

func (mp *MappingMapperImpl) ToDomain(model *models.MappingModel) *mapping.Mapping {
	return &mapping.Mapping{
		ID:        model.ID,
		TicketID:  model.TicketID,
		CountyID:  model.CountyID,
		CityID:    model.CityID,
		BatchID:   model.BatchID,
		CreatedBy: model.CreatedBy,
		CreatedAt: fromMillis(model.CreatedAt),
	}
}
