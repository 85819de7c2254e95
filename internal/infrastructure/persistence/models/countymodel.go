package models

type CountyModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;index"`
	Number    string `gorm:"size:20"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CountyModel) TableName() string {
	return "counties"
}

type ProcessingRuleModel struct {
	ID                   uint   `gorm:"primaryKey"`
	CountyID             uint   `gorm:"not null;index:idx_rule_county_city"`
	CityID               *uint  `gorm:"index:idx_rule_county_city"`
	CityName             string `gorm:"size:100"`
	WorkRounds           string `gorm:"size:20;not null;default:0"`
	DropWorkRounds       string `gorm:"size:20;not null;default:0"`
	AllowDuplicateRounds bool   `gorm:"not null;default:false"`
	WorksType            string `gorm:"size:30;not null"`
	CheckCount           int    `gorm:"not null;default:0"`
	FedexAddress         string `gorm:"type:json"`
	CreatedAt            int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt            int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ProcessingRuleModel) TableName() string {
	return "county_processing_rules"
}
