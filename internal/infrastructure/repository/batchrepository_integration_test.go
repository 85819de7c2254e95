package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/batch"
	"titledesk/internal/shared/errors"
)

func seedBatch(t *testing.T, repo *BatchRepository, groupID, countyID uint, cityID *uint, pt batch.ProcessingType, date time.Time) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(groupID, countyID, cityID, pt, date, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), b))
	return b
}

func TestBatchRepository_FindByGroupKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchRepository(db)
	ctx := context.Background()

	date := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	saved := seedBatch(t, repo, 1, 1, nil, batch.ProcessingWalk, date)

	t.Run("matches on full key including null city", func(t *testing.T) {
		found, err := repo.FindByGroupKey(ctx, 1, 1, nil, batch.ProcessingWalk)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, saved.ID(), found.ID())
	})

	t.Run("different city is a different key", func(t *testing.T) {
		found, err := repo.FindByGroupKey(ctx, 1, 1, ptrUint(7), batch.ProcessingWalk)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("different processing type is a different key", func(t *testing.T) {
		found, err := repo.FindByGroupKey(ctx, 1, 1, nil, batch.ProcessingDrop)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestBatchRepository_CountForDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchRepository(db)
	ctx := context.Background()

	day := time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)
	from := time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)

	seedBatch(t, repo, 1, 1, nil, batch.ProcessingWalk, day)
	completed := seedBatch(t, repo, 2, 1, nil, batch.ProcessingWalk, day)
	seedBatch(t, repo, 3, 1, nil, batch.ProcessingMail, day)
	seedBatch(t, repo, 4, 1, nil, batch.ProcessingWalk, day.Add(48*time.Hour))

	t.Run("counts only the type's date column inside the window", func(t *testing.T) {
		count, err := repo.CountForDay(ctx, 1, nil, batch.ProcessingWalk, from, to)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("completed batches still count", func(t *testing.T) {
		require.NoError(t, repo.MarkCompleted(ctx, []uint{completed.ID()}, 1, day))

		count, err := repo.CountForDay(ctx, 1, nil, batch.ProcessingWalk, from, to)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

func TestBatchRepository_FindLatestForDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchRepository(db)
	ctx := context.Background()

	day := time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)
	from := time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)
	to := from.Add(24*time.Hour - time.Millisecond)

	seedBatch(t, repo, 1, 1, nil, batch.ProcessingWalk, day)
	latest := seedBatch(t, repo, 2, 1, nil, batch.ProcessingDrop, day)

	t.Run("returns the most recently created batch", func(t *testing.T) {
		found, err := repo.FindLatestForDay(ctx, 1, nil, from, to)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, latest.ID(), found.ID())
	})

	t.Run("returns nil outside the window", func(t *testing.T) {
		found, err := repo.FindLatestForDay(ctx, 1, nil, from.Add(72*time.Hour), to.Add(72*time.Hour))
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestBatchRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchRepository(db)
	ctx := context.Background()

	b := seedBatch(t, repo, 1, 1, nil, batch.ProcessingWalk, time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC))

	newDate := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	b.SetProcessingDate(newDate)
	b.SetComment("hand delivered")
	require.NoError(t, repo.Update(ctx, b))

	found, err := repo.FindByID(ctx, b.ID())
	require.NoError(t, err)
	require.NotNil(t, found.WalkDate())
	assert.Equal(t, newDate.UnixMilli(), found.WalkDate().UnixMilli())
	require.NotNil(t, found.DateProcessing())
	assert.Equal(t, newDate.UnixMilli(), found.DateProcessing().UnixMilli())
	assert.Equal(t, "hand delivered", found.Comment())
	assert.Nil(t, found.DropDate())
	assert.Nil(t, found.MailDate())
}

func TestBatchRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchRepository(db)
	ctx := context.Background()

	found, err := repo.FindByID(ctx, 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Nil(t, found)
}
