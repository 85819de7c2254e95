package mappers

import (
	"titledesk/internal/domain/shipping"
	"titledesk/internal/infrastructure/persistence/models"
)

// ShippingDocumentMapper converts between label documents and persistence models.
type ShippingDocumentMapper interface {
	ToModel(d *shipping.Document) *models.ShippingDocumentModel
	ToDomain(model *models.ShippingDocumentModel) *shipping.Document
}

type ShippingDocumentMapperImpl struct{}

func NewShippingDocumentMapper() ShippingDocumentMapper {
	return &ShippingDocumentMapperImpl{}
}

func (m *ShippingDocumentMapperImpl) ToModel(d *shipping.Document) *models.ShippingDocumentModel {
	return &models.ShippingDocumentModel{
		ID:             d.ID,
		BatchID:        d.BatchID,
		ServiceType:    d.ServiceType,
		ShipDate:       d.ShipDate,
		TrackingNumber: d.TrackingNumber,
		Label:          d.Label,
		IsDeleted:      d.IsDeleted,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      toMillis(d.CreatedAt),
	}
}

func (m *ShippingDocumentMapperImpl) ToDomain(model *models.ShippingDocumentModel) *shipping.Document {
	return &shipping.Document{
		ID:             model.ID,
		BatchID:        model.BatchID,
		ServiceType:    model.ServiceType,
		ShipDate:       model.ShipDate,
		TrackingNumber: model.TrackingNumber,
		Label:          model.Label,
		IsDeleted:      model.IsDeleted,
		CreatedBy:      model.CreatedBy,
		CreatedAt:      fromMillis(model.CreatedAt),
	}
}
