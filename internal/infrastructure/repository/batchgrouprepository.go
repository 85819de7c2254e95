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

type BatchGroupRepository struct {
	db     *gorm.DB
	mapper mappers.BatchGroupMapper
}

func NewBatchGroupRepository(db *gorm.DB) *BatchGroupRepository {
	return &BatchGroupRepository{
		db:     db,
		mapper: mappers.NewBatchGroupMapper(),
	}
}

func (r *BatchGroupRepository) Save(ctx context.Context, g *batch.Group) error {
	model := r.mapper.ToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save batch group: %w", err)
	}

	g.SetID(model.ID)
	return nil
}

func (r *BatchGroupRepository) Update(ctx context.Context, g *batch.Group) error {
	model := r.mapper.ToModel(g)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BatchGroupModel{}).
		Where("id = ?", model.ID).
		Select("completed_at", "completed_by").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update batch group: %w", result.Error)
	}

	return nil
}

func (r *BatchGroupRepository) FindByID(ctx context.Context, id uint) (*batch.Group, error) {
	var model models.BatchGroupModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("batch group not found")
		}
		return nil, fmt.Errorf("failed to find batch group: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}
