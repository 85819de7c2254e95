package migration

import (
	"titledesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CountyModel{},
		&models.ProcessingRuleModel{},
		&models.TicketModel{},
		&models.MappingModel{},
		&models.BatchGroupModel{},
		&models.BatchModel{},
		&models.BatchHistoryModel{},
		&models.InvoiceCheckModel{},
		&models.ShippingDocumentModel{},
	}
}
