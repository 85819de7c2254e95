// Package batch contains the batch aggregate: batches of tickets grouped per
// (county, city, processing type), the groups that tie batches created
// together, and the render history of completed groups.
package batch

import (
	"time"

	"titledesk/internal/shared/errors"
)

// Batch is a set of tickets bound for one county office on one date via one
// processing type. Tickets themselves attach through mapping rows; the batch
// carries the destination and scheduling facts.
type Batch struct {
	id             uint
	groupID        uint
	countyID       uint
	cityID         *uint
	processingType ProcessingType
	walkDate       *time.Time
	dropDate       *time.Time
	mailDate       *time.Time
	dateProcessing *time.Time
	comment        string
	completedAt    *time.Time
	completedBy    *uint
	createdBy      uint
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBatch creates a batch for a group key. The processing date lands in the
// per-type date column and is mirrored into dateProcessing.
func NewBatch(groupID, countyID uint, cityID *uint, pt ProcessingType, date time.Time, createdBy uint) (*Batch, error) {
	if groupID == 0 {
		return nil, errors.NewValidationError("group id is required")
	}
	if countyID == 0 {
		return nil, errors.NewValidationError("county id is required")
	}
	if !pt.IsValid() {
		return nil, errors.NewValidationError("invalid processing type: " + pt.String())
	}
	if date.IsZero() {
		return nil, errors.NewValidationError("processing date is required")
	}

	now := time.Now()
	b := &Batch{
		groupID:        groupID,
		countyID:       countyID,
		cityID:         cityID,
		processingType: pt,
		createdBy:      createdBy,
		createdAt:      now,
		updatedAt:      now,
	}
	b.SetProcessingDate(date)
	return b, nil
}

// ReconstructBatch rebuilds a batch from persistence.
func ReconstructBatch(
	id, groupID, countyID uint,
	cityID *uint,
	pt ProcessingType,
	walkDate, dropDate, mailDate, dateProcessing *time.Time,
	comment string,
	completedAt *time.Time,
	completedBy *uint,
	createdBy uint,
	createdAt, updatedAt time.Time,
) *Batch {
	return &Batch{
		id:             id,
		groupID:        groupID,
		countyID:       countyID,
		cityID:         cityID,
		processingType: pt,
		walkDate:       walkDate,
		dropDate:       dropDate,
		mailDate:       mailDate,
		dateProcessing: dateProcessing,
		comment:        comment,
		completedAt:    completedAt,
		completedBy:    completedBy,
		createdBy:      createdBy,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Batch) ID() uint                       { return b.id }
func (b *Batch) GroupID() uint                  { return b.groupID }
func (b *Batch) CountyID() uint                 { return b.countyID }
func (b *Batch) CityID() *uint                  { return b.cityID }
func (b *Batch) ProcessingType() ProcessingType { return b.processingType }
func (b *Batch) WalkDate() *time.Time           { return b.walkDate }
func (b *Batch) DropDate() *time.Time           { return b.dropDate }
func (b *Batch) MailDate() *time.Time           { return b.mailDate }
func (b *Batch) DateProcessing() *time.Time     { return b.dateProcessing }
func (b *Batch) Comment() string                { return b.comment }
func (b *Batch) CompletedAt() *time.Time        { return b.completedAt }
func (b *Batch) CompletedBy() *uint             { return b.completedBy }
func (b *Batch) CreatedBy() uint                { return b.createdBy }
func (b *Batch) CreatedAt() time.Time           { return b.createdAt }
func (b *Batch) UpdatedAt() time.Time           { return b.updatedAt }

// SetID assigns the database ID after persistence.
func (b *Batch) SetID(id uint) { b.id = id }

// SetProcessingDate writes date into the column matching the processing type
// and mirrors it into dateProcessing, clearing the other two columns.
func (b *Batch) SetProcessingDate(date time.Time) {
	d := date
	b.walkDate = nil
	b.dropDate = nil
	b.mailDate = nil
	switch b.processingType {
	case ProcessingWalk:
		b.walkDate = &d
	case ProcessingDrop:
		b.dropDate = &d
	case ProcessingMail:
		b.mailDate = &d
	}
	b.dateProcessing = &d
	b.updatedAt = time.Now()
}

// SetComment replaces the operator comment.
func (b *Batch) SetComment(comment string) {
	b.comment = comment
	b.updatedAt = time.Now()
}

// IsCompleted reports whether the batch's group has been completed.
func (b *Batch) IsCompleted() bool {
	return b.completedAt != nil
}

// Complete stamps completion. Completing twice is rejected.
func (b *Batch) Complete(by uint, at time.Time) error {
	if b.completedAt != nil {
		return errors.NewConflictError("batch is already completed")
	}
	b.completedAt = &at
	b.completedBy = &by
	b.updatedAt = time.Now()
	return nil
}
