package models

type MappingModel struct {
	ID        uint  `gorm:"primaryKey"`
	TicketID  uint  `gorm:"not null;index"`
	CountyID  uint  `gorm:"not null;index:idx_mapping_county_city"`
	CityID    *uint `gorm:"index:idx_mapping_county_city"`
	BatchID   *uint `gorm:"index"`
	CreatedBy uint  `gorm:"not null"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (MappingModel) TableName() string {
	return "ticket_county_mappings"
}
