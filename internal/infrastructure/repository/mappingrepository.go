package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titledesk/internal/domain/mapping"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
)

type MappingRepository struct {
	db     *gorm.DB
	mapper mappers.MappingMapper
}

func NewMappingRepository(db *gorm.DB) *MappingRepository {
	return &MappingRepository{
		db:     db,
		mapper: mappers.NewMappingMapper(),
	}
}

func (r *MappingRepository) BulkCreate(ctx context.Context, rows []*mapping.Mapping) error {
	if len(rows) == 0 {
		return nil
	}

	list := make([]models.MappingModel, 0, len(rows))
	for _, row := range rows {
		list = append(list, *r.mapper.ToModel(row))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&list).Error; err != nil {
		return fmt.Errorf("failed to bulk create mappings: %w", err)
	}

	for i := range rows {
		rows[i].ID = list[i].ID
	}
	return nil
}

func (r *MappingRepository) DeleteForReplace(ctx context.Context, pairs []mapping.CountyTicket, cityIDs []uint) error {
	if len(pairs) == 0 {
		return nil
	}

	pairValues := make([][]interface{}, 0, len(pairs))
	for _, p := range pairs {
		pairValues = append(pairValues, []interface{}{p.CountyID, p.TicketID})
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("(county_id, ticket_id) IN ?", pairValues)
	if len(cityIDs) > 0 {
		query = query.Where("city_id IS NULL OR city_id IN ?", cityIDs)
	} else {
		query = query.Where("city_id IS NULL")
	}

	if err := query.Delete(&models.MappingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete mappings for replace: %w", err)
	}
	return nil
}

func (r *MappingRepository) DeleteByTicketsAndBatch(ctx context.Context, ticketIDs []uint, batchID *uint) error {
	if len(ticketIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Where("ticket_id IN ?", ticketIDs)
	if batchID != nil {
		query = query.Where("batch_id = ? OR batch_id IS NULL", *batchID)
	} else {
		query = query.Where("batch_id IS NULL")
	}

	if err := query.Delete(&models.MappingModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete mappings by tickets and batch: %w", err)
	}
	return nil
}

func (r *MappingRepository) FindByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*mapping.Mapping, error) {
	if len(ticketIDs) == 0 {
		return nil, nil
	}

	var list []models.MappingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("ticket_id IN ?", ticketIDs).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find mappings by ticket ids: %w", err)
	}

	rows := make([]*mapping.Mapping, 0, len(list))
	for i := range list {
		rows = append(rows, r.mapper.ToDomain(&list[i]))
	}
	return rows, nil
}

func (r *MappingRepository) FindByBatchID(ctx context.Context, batchID uint) ([]*mapping.Mapping, error) {
	var list []models.MappingModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("batch_id = ?", batchID).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find mappings by batch id: %w", err)
	}

	rows := make([]*mapping.Mapping, 0, len(list))
	for i := range list {
		rows = append(rows, r.mapper.ToDomain(&list[i]))
	}
	return rows, nil
}

func (r *MappingRepository) AssignBatch(ctx context.Context, ticketIDs []uint, countyID uint, cityID *uint, batchID uint) error {
	if len(ticketIDs) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	// The county/city condition keeps rows remapped to another lane after the
	// grouping request was read from being captured by this batch.
	result := tx.
		Model(&models.MappingModel{}).
		Where("ticket_id IN ? AND county_id = ?", ticketIDs, countyID).
		Scopes(cityScope("city_id", cityID)).
		Updates(map[string]interface{}{
			"batch_id":   batchID,
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to assign mappings to batch: %w", result.Error)
	}

	return nil
}

func (r *MappingRepository) TicketIDsForBatches(ctx context.Context, batchIDs []uint) ([]uint, error) {
	if len(batchIDs) == 0 {
		return nil, nil
	}

	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MappingModel{}).
		Where("batch_id IN ?", batchIDs).
		Order("id").
		Pluck("ticket_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to collect ticket ids for batches: %w", err)
	}
	return ids, nil
}

func (r *MappingRepository) FirstTicketIDForBatch(ctx context.Context, batchID uint) (uint, error) {
	var model models.MappingModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("batch_id = ?", batchID).
		Order("id").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find first ticket for batch: %w", err)
	}
	return model.TicketID, nil
}

func (r *MappingRepository) CountPerBatch(ctx context.Context, batchIDs []uint) (map[uint]int64, error) {
	if len(batchIDs) == 0 {
		return map[uint]int64{}, nil
	}

	type row struct {
		BatchID uint
		Total   int64
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MappingModel{}).
		Select("batch_id, COUNT(*) AS total").
		Where("batch_id IN ?", batchIDs).
		Group("batch_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count mappings per batch: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.BatchID] = r.Total
	}
	return counts, nil
}
