package mappers

import (
	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/persistence/models"
)

// BatchMapper handles the conversion between Batch domain entities and persistence models.
type BatchMapper interface {
	// ToModel converts a batch domain entity to a persistence model.
	ToModel(b *batch.Batch) *models.BatchModel

	// ToDomain converts a batch persistence model to a domain entity.
	ToDomain(model *models.BatchModel) *batch.Batch
}

// BatchMapperImpl is the concrete implementation of BatchMapper.
type BatchMapperImpl struct{}

// NewBatchMapper creates a new BatchMapper.
func NewBatchMapper() BatchMapper {
	return &BatchMapperImpl{}
}

// ToModel converts a batch domain entity to a persistence model.
func (m *BatchMapperImpl) ToModel(b *batch.Batch) *models.BatchModel {
	return &models.BatchModel{
		ID:             b.ID(),
		GroupID:        b.GroupID(),
		CountyID:       b.CountyID(),
		CityID:         b.CityID(),
		ProcessingType: b.ProcessingType().String(),
		WalkDate:       toMillisPtr(b.WalkDate()),
		DropDate:       toMillisPtr(b.DropDate()),
		MailDate:       toMillisPtr(b.MailDate()),
		DateProcessing: toMillisPtr(b.DateProcessing()),
		Comment:        b.Comment(),
		CompletedAt:    toMillisPtr(b.CompletedAt()),
		CompletedBy:    b.CompletedBy(),
		CreatedBy:      b.CreatedBy(),
		CreatedAt:      toMillis(b.CreatedAt()),
		UpdatedAt:      toMillis(b.UpdatedAt()),
	}
}

// ToDomain converts a batch persistence model to a domain entity.
func (m *BatchMapperImpl) ToDomain(model *models.BatchModel) *batch.Batch {
	return batch.ReconstructBatch(
		model.ID,
		model.GroupID,
		model.CountyID,
		model.CityID,
		batch.ProcessingType(model.ProcessingType),
		fromMillisPtr(model.WalkDate),
		fromMillisPtr(model.DropDate),
		fromMillisPtr(model.MailDate),
		fromMillisPtr(model.DateProcessing),
		model.Comment,
		fromMillisPtr(model.CompletedAt),
		model.CompletedBy,
		model.CreatedBy,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	)
}
