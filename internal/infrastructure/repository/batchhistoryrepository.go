package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
	"titledesk/internal/shared/errors"
)

type BatchHistoryRepository struct {
	db     *gorm.DB
	mapper mappers.BatchHistoryMapper
}

func NewBatchHistoryRepository(db *gorm.DB) *BatchHistoryRepository {
	return &BatchHistoryRepository{
		db:     db,
		mapper: mappers.NewBatchHistoryMapper(),
	}
}

func (r *BatchHistoryRepository) Save(ctx context.Context, h *batch.History) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save batch history: %w", err)
	}

	h.SetID(model.ID)
	return nil
}

func (r *BatchHistoryRepository) Update(ctx context.Context, h *batch.History) error {
	model, err := r.mapper.ToModel(h)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BatchHistoryModel{}).
		Where("id = ?", model.ID).
		Select("file_name", "status", "failure", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update batch history: %w", result.Error)
	}

	return nil
}

func (r *BatchHistoryRepository) FindByID(ctx context.Context, id uint) (*batch.History, error) {
	var model models.BatchHistoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("batch history not found")
		}
		return nil, fmt.Errorf("failed to find batch history: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *BatchHistoryRepository) List(ctx context.Context, offset, limit int) ([]*batch.History, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.BatchHistoryModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count batch histories: %w", err)
	}

	var list []models.BatchHistoryModel
	if err := tx.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list batch histories: %w", err)
	}

	histories := make([]*batch.History, 0, len(list))
	for i := range list {
		h, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, 0, err
		}
		histories = append(histories, h)
	}

	return histories, total, nil
}
