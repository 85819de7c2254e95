package batch

import "time"

// Group ties together the batches created by one grouping request so they
// can be completed and rendered as a unit.
type Group struct {
	id          uint
	completedAt *time.Time
	completedBy *uint
	createdBy   uint
	createdAt   time.Time
}

// NewGroup creates an open group.
func NewGroup(createdBy uint) *Group {
	return &Group{
		createdBy: createdBy,
		createdAt: time.Now(),
	}
}

// ReconstructGroup rebuilds a group from persistence.
func ReconstructGroup(id uint, completedAt *time.Time, completedBy *uint, createdBy uint, createdAt time.Time) *Group {
	return &Group{
		id:          id,
		completedAt: completedAt,
		completedBy: completedBy,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (g *Group) ID() uint                { return g.id }
func (g *Group) CompletedAt() *time.Time { return g.completedAt }
func (g *Group) CompletedBy() *uint      { return g.completedBy }
func (g *Group) CreatedBy() uint         { return g.createdBy }
func (g *Group) CreatedAt() time.Time    { return g.createdAt }

// SetID assigns the database ID after persistence.
func (g *Group) SetID(id uint) { g.id = id }

// IsCompleted reports whether the group has been completed.
func (g *Group) IsCompleted() bool { return g.completedAt != nil }

// Complete stamps completion.
func (g *Group) Complete(by uint, at time.Time) {
	g.completedAt = &at
	g.completedBy = &by
}
