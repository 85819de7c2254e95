package models

type BatchGroupModel struct {
	ID          uint `gorm:"primaryKey"`
	CompletedAt *int64
	CompletedBy *uint
	CreatedBy   uint  `gorm:"not null;index"`
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (BatchGroupModel) TableName() string {
	return "batch_groups"
}
