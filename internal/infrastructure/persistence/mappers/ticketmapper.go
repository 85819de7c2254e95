package mappers

import (
	"titledesk/internal/domain/ticket"
	"titledesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts ticket models to the batch prep read model.
type TicketMapper interface {
	ToDomain(model *models.TicketModel) *ticket.Ticket
	ToModel(t *ticket.Ticket) *models.TicketModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) *ticket.Ticket {
	return &ticket.Ticket{
		ID:                  model.ID,
		CustomerName:        model.CustomerName,
		TransactionTypeID:   model.TransactionTypeID,
		TransactionTypeName: model.TransactionTypeName,
		EstimationFee:       model.EstimationFee,
		Status:              ticket.Status(model.Status),
		SentToDmvAt:         fromMillisPtr(model.SentToDmvAt),
		SentToDmvBy:         model.SentToDmvBy,
		CreatedAt:           fromMillis(model.CreatedAt),
	}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                  t.ID,
		CustomerName:        t.CustomerName,
		TransactionTypeID:   t.TransactionTypeID,
		TransactionTypeName: t.TransactionTypeName,
		EstimationFee:       t.EstimationFee,
		Status:              string(t.Status),
		SentToDmvAt:         toMillisPtr(t.SentToDmvAt),
		SentToDmvBy:         t.SentToDmvBy,
		CreatedAt:           toMillis(t.CreatedAt),
	}
}
