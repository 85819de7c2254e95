package dto

import "time"

// ReviewFilter narrows the review listing. Search is free text; when it is
// numeric it additionally matches ticket ids, batch ids and check amounts.
type ReviewFilter struct {
	ProcessingType    string
	BatchIDs          []uint
	CountyID          *uint
	DateFrom          *time.Time
	DateTo            *time.Time
	CustomerName      string
	TransactionTypeID *uint
	Search            string
	Offset            int
	Limit             int
}

// ListFilter narrows the incomplete and sent-to-DMV listings.
type ListFilter struct {
	CountyID       *uint
	ProcessingType string
	DateFrom       *time.Time
	DateTo         *time.Time
	CompletedFrom  *time.Time
	CompletedTo    *time.Time
	CreatedBy      *uint
	Offset         int
	Limit          int
}
