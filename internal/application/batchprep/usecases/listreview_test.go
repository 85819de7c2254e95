package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/shared/logger"
)

func reviewRowsFor(batchIDs ...uint) []dto.ReviewRow {
	rows := make([]dto.ReviewRow, 0, len(batchIDs))
	for i, id := range batchIDs {
		rows = append(rows, dto.ReviewRow{
			BatchID:             id,
			TicketID:            uint(100 + i),
			TransactionTypeID:   1,
			TransactionTypeName: "Title Transfer",
		})
	}
	return rows
}

func TestListReviewCompletenessFlagsRequireFullCoverage(t *testing.T) {
	queryRepo := &mockQueryRepository{
		ReviewRowsFunc: func(ctx context.Context, filter dto.ReviewFilter) ([]dto.ReviewRow, int64, error) {
			return reviewRowsFor(10, 11), 2, nil
		},
	}
	// One label row for two batches: flag stays false.
	shippingRepo := &mockShippingRepository{
		CountLiveByBatchIDsFunc: func(ctx context.Context, batchIDs []uint) (int64, error) {
			return 1, nil
		},
	}
	// Both batches have checks: flag flips true.
	checkRepo := &mockCheckRepository{
		BatchIDsWithChecksFunc: func(ctx context.Context, batchIDs []uint) ([]uint, error) {
			return []uint{10, 11}, nil
		},
	}

	uc := NewListReviewUseCase(queryRepo, shippingRepo, checkRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListReviewQuery{})
	require.NoError(t, err)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.False(t, result.GenerateFedexLabel)
	assert.True(t, result.UploadedCsv)
}

func TestListReviewLabelFlagCountEquality(t *testing.T) {
	queryRepo := &mockQueryRepository{
		ReviewRowsFunc: func(ctx context.Context, filter dto.ReviewFilter) ([]dto.ReviewRow, int64, error) {
			return reviewRowsFor(10, 11), 2, nil
		},
	}
	// Raw row count equality: two live documents on one batch and none on the
	// other still satisfies the count comparison. Known edge of the flag.
	shippingRepo := &mockShippingRepository{
		CountLiveByBatchIDsFunc: func(ctx context.Context, batchIDs []uint) (int64, error) {
			return 2, nil
		},
	}

	uc := NewListReviewUseCase(queryRepo, shippingRepo, &mockCheckRepository{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListReviewQuery{})
	require.NoError(t, err)
	assert.True(t, result.GenerateFedexLabel)
	assert.False(t, result.UploadedCsv)
}

func TestListReviewEmptyResultSkipsFlagQueries(t *testing.T) {
	shippingCalled := false
	shippingRepo := &mockShippingRepository{
		CountLiveByBatchIDsFunc: func(ctx context.Context, batchIDs []uint) (int64, error) {
			shippingCalled = true
			return 0, nil
		},
	}

	uc := NewListReviewUseCase(&mockQueryRepository{}, shippingRepo, &mockCheckRepository{}, logger.NewNop())

	result, err := uc.Execute(context.Background(), ListReviewQuery{})
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.False(t, result.GenerateFedexLabel)
	assert.False(t, result.UploadedCsv)
	assert.False(t, shippingCalled)
}
