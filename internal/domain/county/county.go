// Package county holds the county master data consumed by batch prep:
// counties themselves and their per-city processing rules (round limits,
// works type, check counts, return-shipping addresses). The data is
// maintained elsewhere; this subsystem only reads it.
package county

import "time"

// WorksType classifies what kind of transactions a county office processes.
type WorksType string

const (
	WorksTypeTitle           WorksType = "TITLE"
	WorksTypeRenewal         WorksType = "RENEWAL"
	WorksTypeTitleAndRenewal WorksType = "TITLE_AND_RENEWAL"
)

// County is a county office tickets are routed to.
type County struct {
	ID        uint
	Name      string
	Number    string
	CreatedAt time.Time
}

// FedexAddress is the configured carrier address for a county office.
// Counties without one cannot receive return-shipping labels.
type FedexAddress struct {
	PersonName  string
	PhoneNumber string
	CompanyName string
	Street      string
	City        string
	StateCode   string
	PostalCode  string
	CountryCode string
}

// ProcessingRule is the per (county, city) processing configuration.
// CityID is nil for the county-level row with no city override.
type ProcessingRule struct {
	ID                   uint
	CountyID             uint
	CityID               *uint
	CityName             string
	WorkRounds           RoundLimit
	DropWorkRounds       RoundLimit
	AllowDuplicateRounds bool
	WorksType            WorksType
	CheckCount           int
	FedexAddress         *FedexAddress
}
