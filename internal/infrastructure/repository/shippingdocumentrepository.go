package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titledesk/internal/domain/shipping"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
)

type ShippingDocumentRepository struct {
	db     *gorm.DB
	mapper mappers.ShippingDocumentMapper
}

func NewShippingDocumentRepository(db *gorm.DB) *ShippingDocumentRepository {
	return &ShippingDocumentRepository{
		db:     db,
		mapper: mappers.NewShippingDocumentMapper(),
	}
}

func (r *ShippingDocumentRepository) BulkCreate(ctx context.Context, docs []*shipping.Document) error {
	if len(docs) == 0 {
		return nil
	}

	list := make([]models.ShippingDocumentModel, 0, len(docs))
	for _, doc := range docs {
		list = append(list, *r.mapper.ToModel(doc))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&list).Error; err != nil {
		return fmt.Errorf("failed to bulk create shipping documents: %w", err)
	}

	for i := range docs {
		docs[i].ID = list[i].ID
	}
	return nil
}

func (r *ShippingDocumentRepository) SoftDeleteByBatchIDs(ctx context.Context, batchIDs []uint) error {
	if len(batchIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ShippingDocumentModel{}).
		Where("batch_id IN ? AND is_deleted = ?", batchIDs, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to soft delete shipping documents: %w", result.Error)
	}

	return nil
}

func (r *ShippingDocumentRepository) FindLiveByBatchIDs(ctx context.Context, batchIDs []uint) ([]*shipping.Document, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	var list []models.ShippingDocumentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Scopes(db.NotDeleted()).
		Where("batch_id IN ?", batchIDs).
		Order("batch_id, id").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find shipping documents: %w", err)
	}

	docs := make([]*shipping.Document, 0, len(list))
	for i := range list {
		docs = append(docs, r.mapper.ToDomain(&list[i]))
	}
	return docs, nil
}

func (r *ShippingDocumentRepository) BatchIDsWithDocuments(ctx context.Context, batchIDs []uint) ([]uint, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ShippingDocumentModel{}).
		Scopes(db.NotDeleted()).
		Distinct("batch_id").
		Where("batch_id IN ?", batchIDs).
		Pluck("batch_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find batches with documents: %w", err)
	}
	return ids, nil
}

func (r *ShippingDocumentRepository) CountLiveByBatchIDs(ctx context.Context, batchIDs []uint) (int64, error) {
	if len(batchIDs) == 0 {
		return 0, nil
	}

	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ShippingDocumentModel{}).
		Scopes(db.NotDeleted()).
		Where("batch_id IN ?", batchIDs).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count shipping documents: %w", err)
	}
	return count, nil
}
