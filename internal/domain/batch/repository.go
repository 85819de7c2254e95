package batch

import (
	"context"
	"time"
)

// Repository persists batches.
type Repository interface {
	Save(ctx context.Context, b *Batch) error
	Update(ctx context.Context, b *Batch) error
	FindByID(ctx context.Context, id uint) (*Batch, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*Batch, error)
	FindByGroupID(ctx context.Context, groupID uint) ([]*Batch, error)

	// FindByGroupKey returns the batch with the same grouping identity inside
	// a group, or (nil, nil) when none exists.
	FindByGroupKey(ctx context.Context, groupID, countyID uint, cityID *uint, pt ProcessingType) (*Batch, error)

	// CountForDay counts batches for (countyID, cityID) whose per-type date
	// column for pt falls inside [from, to], completed or not.
	CountForDay(ctx context.Context, countyID uint, cityID *uint, pt ProcessingType, from, to time.Time) (int64, error)

	// FindLatestForDay returns the most recently created batch for
	// (countyID, cityID) with any processing date inside [from, to], or
	// (nil, nil) when the day has none.
	FindLatestForDay(ctx context.Context, countyID uint, cityID *uint, from, to time.Time) (*Batch, error)

	// MarkCompleted stamps completion on all given batches in one statement.
	MarkCompleted(ctx context.Context, ids []uint, by uint, at time.Time) error

	Delete(ctx context.Context, id uint) error
}

// GroupRepository persists batch groups.
type GroupRepository interface {
	Save(ctx context.Context, g *Group) error
	Update(ctx context.Context, g *Group) error
	FindByID(ctx context.Context, id uint) (*Group, error)
}

// HistoryRepository persists render history records.
type HistoryRepository interface {
	Save(ctx context.Context, h *History) error
	Update(ctx context.Context, h *History) error
	FindByID(ctx context.Context, id uint) (*History, error)
	List(ctx context.Context, offset, limit int) ([]*History, int64, error)
}
