package models

import "gorm.io/datatypes"

type BatchHistoryModel struct {
	ID        uint           `gorm:"primaryKey"`
	GroupID   uint           `gorm:"not null;index"`
	FileName  string         `gorm:"size:255"`
	Status    string         `gorm:"size:30;not null;index"`
	BatchIDs  datatypes.JSON `gorm:"not null"`
	Failure   string         `gorm:"type:text"`
	CreatedBy uint           `gorm:"not null;index"`
	CreatedAt int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (BatchHistoryModel) TableName() string {
	return "batch_histories"
}
