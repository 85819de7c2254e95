package mappers

import (
	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/persistence/models"
)

// BatchGroupMapper converts between batch groups and persistence models.
type BatchGroupMapper interface {
	ToModel(g *batch.Group) *models.BatchGroupModel
	ToDomain(model *models.BatchGroupModel) *batch.Group
}

type BatchGroupMapperImpl struct{}

func NewBatchGroupMapper() BatchGroupMapper {
	return &BatchGroupMapperImpl{}
}

func (m *BatchGroupMapperImpl) ToModel(g *batch.Group) *models.BatchGroupModel {
	return &models.BatchGroupModel{
		ID:          g.ID(),
		CompletedAt: toMillisPtr(g.CompletedAt()),
		CompletedBy: g.CompletedBy(),
		CreatedBy:   g.CreatedBy(),
		CreatedAt:   toMillis(g.CreatedAt()),
	}
}

func (m *BatchGroupMapperImpl) ToDomain(model *models.BatchGroupModel) *batch.Group {
	return batch.ReconstructGroup(
		model.ID,
		fromMillisPtr(model.CompletedAt),
		model.CompletedBy,
		model.CreatedBy,
		fromMillis(model.CreatedAt),
	)
}
