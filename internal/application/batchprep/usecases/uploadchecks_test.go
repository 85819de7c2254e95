package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/check"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

func newUploadChecksUseCase(checkRepo *mockCheckRepository, mappingRepo *mockMappingRepository) *UploadChecksUseCase {
	return NewUploadChecksUseCase(checkRepo, mappingRepo, &mockTxManager{}, logger.NewNop())
}

func TestUploadChecksReplacesWholesale(t *testing.T) {
	mappingRepo := &mockMappingRepository{
		TicketIDsForBatchesFunc: func(ctx context.Context, batchIDs []uint) ([]uint, error) {
			return []uint{100, 101}, nil
		},
	}
	var replacedBatches []uint
	var replaced []*check.InvoiceCheck
	checkRepo := &mockCheckRepository{
		ReplaceForBatchesFunc: func(ctx context.Context, batchIDs []uint, rows []*check.InvoiceCheck) error {
			replacedBatches = batchIDs
			replaced = rows
			return nil
		},
	}

	uc := newUploadChecksUseCase(checkRepo, mappingRepo)

	csv := "batch,task_id,check,amount\n10,100_1,CHK-1,50.00\n10,101_1,CHK-2,25.00\n"
	err := uc.Execute(context.Background(), UploadChecksCommand{
		BatchIDs:  []uint{10},
		File:      strings.NewReader(csv),
		CreatedBy: 1,
	})

	require.NoError(t, err)
	assert.Equal(t, []uint{10}, replacedBatches)
	require.Len(t, replaced, 2)
	assert.Equal(t, "CHK-1", replaced[0].CheckNumber)
	assert.Equal(t, 50.0, replaced[0].Amount)
}

func TestUploadChecksRejectsForeignTicket(t *testing.T) {
	mappingRepo := &mockMappingRepository{
		TicketIDsForBatchesFunc: func(ctx context.Context, batchIDs []uint) ([]uint, error) {
			return []uint{100}, nil
		},
	}
	replaceCalled := false
	checkRepo := &mockCheckRepository{
		ReplaceForBatchesFunc: func(ctx context.Context, batchIDs []uint, rows []*check.InvoiceCheck) error {
			replaceCalled = true
			return nil
		},
	}

	uc := newUploadChecksUseCase(checkRepo, mappingRepo)

	csv := "batch,task_id,check,amount\n10,100_1,CHK-1,50.00\n10,999_1,CHK-2,25.00\n"
	err := uc.Execute(context.Background(), UploadChecksCommand{
		BatchIDs:  []uint{10},
		File:      strings.NewReader(csv),
		CreatedBy: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsBadRequestError(err))
	// Whole upload rejected, nothing written.
	assert.False(t, replaceCalled)
}

func TestUploadChecksRejectsForeignBatch(t *testing.T) {
	mappingRepo := &mockMappingRepository{
		TicketIDsForBatchesFunc: func(ctx context.Context, batchIDs []uint) ([]uint, error) {
			return []uint{100}, nil
		},
	}

	uc := newUploadChecksUseCase(&mockCheckRepository{}, mappingRepo)

	csv := "batch,task_id,check,amount\n77,100_1,CHK-1,50.00\n"
	err := uc.Execute(context.Background(), UploadChecksCommand{
		BatchIDs:  []uint{10},
		File:      strings.NewReader(csv),
		CreatedBy: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsBadRequestError(err))
}

func TestUploadChecksRejectsMalformedFile(t *testing.T) {
	uc := newUploadChecksUseCase(&mockCheckRepository{}, &mockMappingRepository{})

	err := uc.Execute(context.Background(), UploadChecksCommand{
		BatchIDs:  []uint{10},
		File:      strings.NewReader("not,a,valid\nheader"),
		CreatedBy: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsBadRequestError(err))
}
