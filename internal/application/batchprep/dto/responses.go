package dto

import "time"

// CheckDTO is one reconciled check under a ticket.
type CheckDTO struct {
	Order       int     `json:"order"`
	CheckNumber string  `json:"checkNumber"`
	Amount      float64 `json:"amount"`
}

// TicketDTO is one ticket inside a transaction-type group.
type TicketDTO struct {
	TicketID      uint       `json:"ticketId"`
	CustomerName  string     `json:"customerName"`
	EstimationFee float64    `json:"estimationFee"`
	Checks        []CheckDTO `json:"checks,omitempty"`
}

// TransactionGroupDTO bundles a batch's tickets sharing a transaction type,
// in first-seen order.
type TransactionGroupDTO struct {
	TransactionTypeID   uint        `json:"transactionTypeId"`
	TransactionTypeName string      `json:"transactionTypeName"`
	Tickets             []TicketDTO `json:"tickets"`
}

// BatchReviewDTO is one batch in the review listing with its nested detail.
type BatchReviewDTO struct {
	BatchID        uint                  `json:"batchId"`
	GroupID        uint                  `json:"groupId"`
	CountyID       uint                  `json:"countyId"`
	CountyName     string                `json:"countyName"`
	CityID         *uint                 `json:"cityId,omitempty"`
	CityName       string                `json:"cityName,omitempty"`
	ProcessingType string                `json:"processingType"`
	DateProcessing *time.Time            `json:"dateProcessing,omitempty"`
	Comment        string                `json:"comment,omitempty"`
	CompletedAt    *time.Time            `json:"completedAt,omitempty"`
	TrackingNumber string                `json:"trackingNumber,omitempty"`
	Groups         []TransactionGroupDTO `json:"transactionGroups"`
}

// ReviewListDTO is the full review listing response. The two completeness
// flags compare counts across the whole filtered batch set: they flip true
// only when every batch in the set is covered.
type ReviewListDTO struct {
	Items              []BatchReviewDTO `json:"items"`
	Total              int64            `json:"total"`
	GenerateFedexLabel bool             `json:"generateFedexLabel"`
	UploadedCsv        bool             `json:"uploadedCsv"`
}

// BatchSummaryDTO is one batch in the incomplete / sent-to-DMV listings.
type BatchSummaryDTO struct {
	BatchID        uint       `json:"batchId"`
	GroupID        uint       `json:"groupId"`
	CountyID       uint       `json:"countyId"`
	CountyName     string     `json:"countyName"`
	CityID         *uint      `json:"cityId,omitempty"`
	CityName       string     `json:"cityName,omitempty"`
	ProcessingType string     `json:"processingType"`
	DateProcessing *time.Time `json:"dateProcessing,omitempty"`
	Comment        string     `json:"comment,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	CreatedBy      uint       `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	TicketCount    int64      `json:"ticketCount"`
	TrackingNumber string     `json:"trackingNumber,omitempty"`
	CheckCount     int64      `json:"checkCount,omitempty"`
}

// RoundInfoDTO is the round/quota calculation for one (county, city) pair.
// Limits marshal as a number or the configured unlimited marker string.
type RoundInfoDTO struct {
	CountyID                uint        `json:"countyId"`
	CityID                  *uint       `json:"cityId,omitempty"`
	WalkRoundLimit          interface{} `json:"walkRoundLimit"`
	DropRoundLimit          interface{} `json:"dropRoundLimit"`
	CompletedWalkRoundLimit int64       `json:"completedWalkRoundLimit"`
	CompletedDropRoundLimit int64       `json:"completedDropRoundLimit"`
	AllowDuplicateRounds    bool        `json:"allowDuplicateRounds"`
	WorksType               string      `json:"worksType,omitempty"`
	CheckCount              int         `json:"checkCount"`
	PreviouslyCreatedRound  *string     `json:"previouslyCreatedRound,omitempty"`
}

// CreateBatchResultDTO partitions the created/reused batch ids by
// processing type for caller convenience.
type CreateBatchResultDTO struct {
	GroupID  uint              `json:"groupId"`
	BatchIDs BatchIDsByTypeDTO `json:"batchIds"`
}

type BatchIDsByTypeDTO struct {
	Walk []uint `json:"walk"`
	Drop []uint `json:"drop"`
	Mail []uint `json:"mail"`
}

// CountyDTO is one county office in the master data listing.
type CountyDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
}

// ProcessingRuleDTO is one per-(county, city) processing configuration row.
// Round limits marshal as a number or the unlimited marker string.
type ProcessingRuleDTO struct {
	ID                   uint        `json:"id"`
	CountyID             uint        `json:"countyId"`
	CityID               *uint       `json:"cityId,omitempty"`
	CityName             string      `json:"cityName,omitempty"`
	WalkRoundLimit       interface{} `json:"walkRoundLimit"`
	DropRoundLimit       interface{} `json:"dropRoundLimit"`
	AllowDuplicateRounds bool        `json:"allowDuplicateRounds"`
	WorksType            string      `json:"worksType"`
	CheckCount           int         `json:"checkCount"`
	HasCarrierAddress    bool        `json:"hasCarrierAddress"`
}

// HistoryDTO is one render history record.
type HistoryDTO struct {
	ID        uint      `json:"id"`
	GroupID   uint      `json:"groupId"`
	FileName  string    `json:"fileName,omitempty"`
	Status    string    `json:"status"`
	BatchIDs  []uint    `json:"batchIds"`
	Failure   string    `json:"failure,omitempty"`
	CreatedBy uint      `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
