// Package dto defines the read models and response shapes of the batch prep
// application layer.
package dto

import "time"

// ReviewRow is one flat row of the review join: batch x ticket x check x
// shipping document. The aggregation service folds these into nested
// responses; the query mechanism that produced them is irrelevant to it.
type ReviewRow struct {
	BatchID             uint
	GroupID             uint
	CountyID            uint
	CountyName          string
	CountyNumber        string
	CityID              *uint
	CityName            string
	ProcessingType      string
	DateProcessing      *time.Time
	Comment             string
	CompletedAt         *time.Time
	TicketID            uint
	CustomerName        string
	TransactionTypeID   uint
	TransactionTypeName string
	EstimationFee       float64
	CheckOrder          *int
	CheckNumber         *string
	CheckAmount         *float64
	TrackingNumber      *string
}

// BatchSummaryRow is one row of the incomplete / sent-to-DMV listings.
type BatchSummaryRow struct {
	BatchID        uint
	GroupID        uint
	CountyID       uint
	CountyName     string
	CityID         *uint
	CityName       string
	ProcessingType string
	DateProcessing *time.Time
	Comment        string
	CompletedAt    *time.Time
	CreatedBy      uint
	CreatedAt      time.Time
	TicketCount    int64
	TrackingNumber *string
	CheckCount     int64
}
