package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"titledesk/internal/domain/check"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
)

type InvoiceCheckRepository struct {
	db     *gorm.DB
	mapper mappers.InvoiceCheckMapper
}

func NewInvoiceCheckRepository(db *gorm.DB) *InvoiceCheckRepository {
	return &InvoiceCheckRepository{
		db:     db,
		mapper: mappers.NewInvoiceCheckMapper(),
	}
}

func (r *InvoiceCheckRepository) ReplaceForBatches(ctx context.Context, batchIDs []uint, rows []*check.InvoiceCheck) error {
	if len(batchIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("batch_id IN ?", batchIDs).Delete(&models.InvoiceCheckModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear checks for batches: %w", err)
	}

	if len(rows) == 0 {
		return nil
	}

	list := make([]models.InvoiceCheckModel, 0, len(rows))
	for _, row := range rows {
		list = append(list, *r.mapper.ToModel(row))
	}
	if err := tx.Create(&list).Error; err != nil {
		return fmt.Errorf("failed to insert checks: %w", err)
	}

	for i := range rows {
		rows[i].ID = list[i].ID
	}
	return nil
}

func (r *InvoiceCheckRepository) FindByBatchIDs(ctx context.Context, batchIDs []uint) ([]*check.InvoiceCheck, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	var list []models.InvoiceCheckModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("batch_id IN ?", batchIDs).
		Order("batch_id, ticket_id, check_order").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find checks: %w", err)
	}

	rows := make([]*check.InvoiceCheck, 0, len(list))
	for i := range list {
		rows = append(rows, r.mapper.ToDomain(&list[i]))
	}
	return rows, nil
}

func (r *InvoiceCheckRepository) BatchIDsWithChecks(ctx context.Context, batchIDs []uint) ([]uint, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.InvoiceCheckModel{}).
		Distinct("batch_id").
		Where("batch_id IN ?", batchIDs).
		Pluck("batch_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to find batches with checks: %w", err)
	}
	return ids, nil
}
