package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"titledesk/internal/domain/ticket"
	"titledesk/internal/infrastructure/persistence/mappers"
	"titledesk/internal/infrastructure/persistence/models"
	db "titledesk/internal/shared/db"
	"titledesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *TicketRepository) FindByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var list []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		tickets = append(tickets, r.mapper.ToDomain(&list[i]))
	}
	return tickets, nil
}

func (r *TicketRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketModel{}).
		Where("id IN ?", ids).
		Pluck("id", &existing).Error; err != nil {
		return nil, fmt.Errorf("failed to check ticket ids: %w", err)
	}
	return existing, nil
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, ids []uint, status ticket.Status) error {
	if len(ids) == 0 {
		return nil
	}
	if !status.IsValid() {
		return errors.NewValidationError("invalid ticket status: " + string(status))
	}

	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}

	return nil
}

func (r *TicketRepository) MarkSentToDmv(ctx context.Context, ids []uint, by uint, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":         string(ticket.StatusSentToDmv),
			"sent_to_dmv_at": at.UnixMilli(),
			"sent_to_dmv_by": by,
			"updated_at":     time.Now().UnixMilli(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark tickets sent to dmv: %w", result.Error)
	}

	return nil
}
