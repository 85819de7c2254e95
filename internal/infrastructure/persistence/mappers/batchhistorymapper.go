package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/persistence/models"
)

// BatchHistoryMapper converts between render history records and persistence models.
type BatchHistoryMapper interface {
	ToModel(h *batch.History) (*models.BatchHistoryModel, error)
	ToDomain(model *models.BatchHistoryModel) (*batch.History, error)
}

type BatchHistoryMapperImpl struct{}

func NewBatchHistoryMapper() BatchHistoryMapper {
	return &BatchHistoryMapperImpl{}
}

func (m *BatchHistoryMapperImpl) ToModel(h *batch.History) (*models.BatchHistoryModel, error) {
	batchIDs, err := json.Marshal(h.BatchIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch ids: %w", err)
	}

	return &models.BatchHistoryModel{
		ID:        h.ID(),
		GroupID:   h.GroupID(),
		FileName:  h.FileName(),
		Status:    string(h.Status()),
		BatchIDs:  datatypes.JSON(batchIDs),
		Failure:   h.Failure(),
		CreatedBy: h.CreatedBy(),
		CreatedAt: toMillis(h.CreatedAt()),
		UpdatedAt: toMillis(h.UpdatedAt()),
	}, nil
}

func (m *BatchHistoryMapperImpl) ToDomain(model *models.BatchHistoryModel) (*batch.History, error) {
	var batchIDs []uint
	if len(model.BatchIDs) > 0 {
		if err := json.Unmarshal(model.BatchIDs, &batchIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal batch ids: %w", err)
		}
	}

	return batch.ReconstructHistory(
		model.ID,
		model.GroupID,
		model.FileName,
		batch.HistoryStatus(model.Status),
		batchIDs,
		model.Failure,
		model.CreatedBy,
		fromMillis(model.CreatedAt),
		fromMillis(model.UpdatedAt),
	), nil
}
