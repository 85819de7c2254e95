package models

type ShippingDocumentModel struct {
	ID             uint   `gorm:"primaryKey"`
	BatchID        uint   `gorm:"not null;index"`
	ServiceType    string `gorm:"size:50"`
	ShipDate       string `gorm:"size:20"`
	TrackingNumber string `gorm:"size:50;not null;index"`
	Label          []byte `gorm:"type:mediumblob"`
	IsDeleted      bool   `gorm:"not null;default:false;index"`
	CreatedBy      uint   `gorm:"not null"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ShippingDocumentModel) TableName() string {
	return "shipping_documents"
}
