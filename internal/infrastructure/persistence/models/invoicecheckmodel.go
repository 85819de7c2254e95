package models

type InvoiceCheckModel struct {
	ID          uint    `gorm:"primaryKey"`
	BatchID     uint    `gorm:"not null;index:idx_check_batch_ticket"`
	TicketID    uint    `gorm:"not null;index:idx_check_batch_ticket"`
	CheckOrder  int     `gorm:"not null;default:1"`
	CheckNumber string  `gorm:"size:50;not null"`
	Amount      float64 `gorm:"not null;default:0"`
	CreatedBy   uint    `gorm:"not null"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (InvoiceCheckModel) TableName() string {
	return "invoice_checks"
}
