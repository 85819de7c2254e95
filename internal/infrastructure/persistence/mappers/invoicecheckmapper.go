package mappers

import (
	"titledesk/internal/domain/check"
	"titledesk/internal/infrastructure/persistence/models"
)

// InvoiceCheckMapper converts between invoice checks and persistence models.
type InvoiceCheckMapper interface {
	ToModel(c *check.InvoiceCheck) *models.InvoiceCheckModel
	ToDomain(model *models.InvoiceCheckModel) *check.InvoiceCheck
}

type InvoiceCheckMapperImpl struct{}

func NewInvoiceCheckMapper() InvoiceCheckMapper {
	return &InvoiceCheckMapperImpl{}
}

func (m *InvoiceCheckMapperImpl) ToModel(c *check.InvoiceCheck) *models.InvoiceCheckModel {
	return &models.InvoiceCheckModel{
		ID:          c.ID,
		BatchID:     c.BatchID,
		TicketID:    c.TicketID,
		CheckOrder:  c.Order,
		CheckNumber: c.CheckNumber,
		Amount:      c.Amount,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   toMillis(c.CreatedAt),
	}
}

func (m *InvoiceCheckMapperImpl) ToDomain(model *models.InvoiceCheckModel) *check.InvoiceCheck {
	return &check.InvoiceCheck{
		ID:          model.ID,
		BatchID:     model.BatchID,
		TicketID:    model.TicketID,
		Order:       model.CheckOrder,
		CheckNumber: model.CheckNumber,
		Amount:      model.Amount,
		CreatedBy:   model.CreatedBy,
		CreatedAt:   fromMillis(model.CreatedAt),
	}
}
