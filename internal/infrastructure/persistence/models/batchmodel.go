package models

type BatchModel struct {
	ID             uint   `gorm:"primaryKey"`
	GroupID        uint   `gorm:"not null;index:idx_batch_group_key"`
	CountyID       uint   `gorm:"not null;index:idx_batch_group_key;index:idx_batch_county_city"`
	CityID         *uint  `gorm:"index:idx_batch_group_key;index:idx_batch_county_city"`
	ProcessingType string `gorm:"size:10;not null;index:idx_batch_group_key"`
	WalkDate       *int64 `gorm:"index"`
	DropDate       *int64 `gorm:"index"`
	MailDate       *int64 `gorm:"index"`
	DateProcessing *int64 `gorm:"index"`
	Comment        string `gorm:"type:text"`
	CompletedAt    *int64 `gorm:"index"`
	CompletedBy    *uint
	CreatedBy      uint  `gorm:"not null;index"`
	CreatedAt      int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (BatchModel) TableName() string {
	return "batches"
}
