package models

type TicketModel struct {
	ID                  uint    `gorm:"primaryKey"`
	CustomerName        string  `gorm:"size:200;not null;index"`
	TransactionTypeID   uint    `gorm:"not null;index"`
	TransactionTypeName string  `gorm:"size:100;not null"`
	EstimationFee       float64 `gorm:"not null;default:0"`
	Status              string  `gorm:"size:30;not null;index"`
	SentToDmvAt         *int64
	SentToDmvBy         *uint
	CreatedAt           int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt           int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
