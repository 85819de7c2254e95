package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/check"
	"titledesk/internal/domain/shipping"
)

func newCheck(t *testing.T, batchID, ticketID uint, order int, number string, amount float64) *check.InvoiceCheck {
	t.Helper()
	row, err := check.New(batchID, ticketID, order, number, amount, 1)
	require.NoError(t, err)
	return row
}

func TestInvoiceCheckRepository_ReplaceForBatches(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceCheckRepository(db)
	ctx := context.Background()

	err := repo.ReplaceForBatches(ctx, []uint{5, 6}, []*check.InvoiceCheck{
		newCheck(t, 5, 100, 1, "CHK-1", 50),
		newCheck(t, 6, 200, 1, "CHK-2", 75),
	})
	require.NoError(t, err)

	// A second upload for batch 5 wipes its previous rows; batch 6 keeps its.
	err = repo.ReplaceForBatches(ctx, []uint{5}, []*check.InvoiceCheck{
		newCheck(t, 5, 100, 1, "CHK-9", 60),
		newCheck(t, 5, 100, 2, "CHK-10", 10),
	})
	require.NoError(t, err)

	rows, err := repo.FindByBatchIDs(ctx, []uint{5, 6})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "CHK-9", rows[0].CheckNumber)
	assert.Equal(t, "CHK-10", rows[1].CheckNumber)
	assert.Equal(t, "CHK-2", rows[2].CheckNumber)
}

func TestInvoiceCheckRepository_BatchIDsWithChecks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInvoiceCheckRepository(db)
	ctx := context.Background()

	err := repo.ReplaceForBatches(ctx, []uint{5}, []*check.InvoiceCheck{
		newCheck(t, 5, 100, 1, "CHK-1", 50),
		newCheck(t, 5, 101, 1, "CHK-2", 25),
	})
	require.NoError(t, err)

	ids, err := repo.BatchIDsWithChecks(ctx, []uint{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, ids)
}

func newDocument(t *testing.T, batchID uint, tracking string) *shipping.Document {
	t.Helper()
	doc, err := shipping.NewDocument(batchID, "STANDARD_OVERNIGHT", "2025-03-03", tracking, []byte("pdf"), 1)
	require.NoError(t, err)
	return doc
}

func TestShippingDocumentRepository_SoftDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShippingDocumentRepository(db)
	ctx := context.Background()

	err := repo.BulkCreate(ctx, []*shipping.Document{
		newDocument(t, 5, "794000000001"),
		newDocument(t, 6, "794000000002"),
	})
	require.NoError(t, err)

	require.NoError(t, repo.SoftDeleteByBatchIDs(ctx, []uint{5, 6}))

	count, err := repo.CountLiveByBatchIDs(ctx, []uint{5, 6})
	require.NoError(t, err)
	assert.Zero(t, count)

	// A regenerated label becomes the only live document.
	err = repo.BulkCreate(ctx, []*shipping.Document{newDocument(t, 5, "794000000003")})
	require.NoError(t, err)

	live, err := repo.FindLiveByBatchIDs(ctx, []uint{5, 6})
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "794000000003", live[0].TrackingNumber)

	ids, err := repo.BatchIDsWithDocuments(ctx, []uint{5, 6})
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, ids)
}
