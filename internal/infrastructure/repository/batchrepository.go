package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
	"titledesk/internal/shared/errors"
)

type BatchRepository struct {
	db     *gorm.DB
	mapper mappers.BatchMapper
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{
		db:     db,
		mapper: mappers.NewBatchMapper(),
	}
}

// cityScope matches a nullable city column portably across mysql and sqlite.
func cityScope(column string, cityID *uint) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if cityID == nil {
			return tx.Where(column + " IS NULL")
		}
		return tx.Where(column+" = ?", *cityID)
	}
}

func (r *BatchRepository) Save(ctx context.Context, b *batch.Batch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save batch: %w", err)
	}

	b.SetID(model.ID)
	return nil
}

func (r *BatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	model := r.mapper.ToModel(b)
	tx := db.GetTxFromContext(ctx, r.db)

	// Updates skips zero values; Select forces the mirrored date columns and
	// comment through even when cleared.
	result := tx.
		Model(&models.BatchModel{}).
		Where("id = ?", model.ID).
		Select("group_id", "county_id", "city_id", "processing_type",
			"walk_date", "drop_date", "mail_date", "date_processing",
			"comment", "completed_at", "completed_by", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update batch: %w", result.Error)
	}

	return nil
}

func (r *BatchRepository) FindByID(ctx context.Context, id uint) (*batch.Batch, error) {
	var model models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("batch not found")
		}
		return nil, fmt.Errorf("failed to find batch: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *BatchRepository) FindByIDs(ctx context.Context, ids []uint) ([]*batch.Batch, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find batches: %w", err)
	}

	batches := make([]*batch.Batch, 0, len(list))
	for i := range list {
		batches = append(batches, r.mapper.ToDomain(&list[i]))
	}
	return batches, nil
}

func (r *BatchRepository) FindByGroupID(ctx context.Context, groupID uint) ([]*batch.Batch, error) {
	var list []models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("group_id = ?", groupID).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find batches by group: %w", err)
	}

	batches := make([]*batch.Batch, 0, len(list))
	for i := range list {
		batches = append(batches, r.mapper.ToDomain(&list[i]))
	}
	return batches, nil
}

func (r *BatchRepository) FindByGroupKey(ctx context.Context, groupID, countyID uint, cityID *uint, pt batch.ProcessingType) (*batch.Batch, error) {
	var model models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("group_id = ? AND county_id = ? AND processing_type = ?", groupID, countyID, pt.String()).
		Scopes(cityScope("city_id", cityID)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find batch by group key: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *BatchRepository) CountForDay(ctx context.Context, countyID uint, cityID *uint, pt batch.ProcessingType, from, to time.Time) (int64, error) {
	var dateColumn string
	switch pt {
	case batch.ProcessingWalk:
		dateColumn = "walk_date"
	case batch.ProcessingDrop:
		dateColumn = "drop_date"
	case batch.ProcessingMail:
		dateColumn = "mail_date"
	default:
		return 0, fmt.Errorf("unknown processing type: %s", pt)
	}

	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.BatchModel{}).
		Where("county_id = ?", countyID).
		Scopes(cityScope("city_id", cityID)).
		Where(dateColumn+" BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count batches for day: %w", err)
	}

	return count, nil
}

func (r *BatchRepository) FindLatestForDay(ctx context.Context, countyID uint, cityID *uint, from, to time.Time) (*batch.Batch, error) {
	var model models.BatchModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("county_id = ?", countyID).
		Scopes(cityScope("city_id", cityID)).
		Where("date_processing BETWEEN ? AND ?", from.UnixMilli(), to.UnixMilli()).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest batch for day: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *BatchRepository) MarkCompleted(ctx context.Context, ids []uint, by uint, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.BatchModel{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"completed_at": at.UnixMilli(),
			"completed_by": by,
			"updated_at":   time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark batches completed: %w", result.Error)
	}

	return nil
}

func (r *BatchRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Delete(&models.BatchModel{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	return nil
}
