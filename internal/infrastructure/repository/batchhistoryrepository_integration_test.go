package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/batch"
)

func TestBatchHistoryRepository_SaveAndUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchHistoryRepository(db)
	ctx := context.Background()

	h, err := batch.NewHistory(1, []uint{10, 11}, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, h))
	require.NotZero(t, h.ID())

	h.MarkReady("county_report_abc.html")
	require.NoError(t, repo.Update(ctx, h))

	found, err := repo.FindByID(ctx, h.ID())
	require.NoError(t, err)
	assert.Equal(t, batch.HistoryReadyToDownload, found.Status())
	assert.Equal(t, "county_report_abc.html", found.FileName())
	assert.Equal(t, []uint{10, 11}, found.BatchIDs())
}

func TestBatchHistoryRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewBatchHistoryRepository(db)
	ctx := context.Background()

	first, err := batch.NewHistory(1, []uint{10}, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first))

	second, err := batch.NewHistory(2, []uint{20}, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, second))

	histories, total, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, histories, 2)
	// Newest first, id breaking created_at ties.
	assert.Equal(t, second.ID(), histories[0].ID())
}
