package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/infrastructure/lock"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

func uintPtr(v uint) *uint { return &v }

func testBatch(t *testing.T, id, groupID, countyID uint, cityID *uint, pt batch.ProcessingType) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(groupID, countyID, cityID, pt, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), 1)
	require.NoError(t, err)
	b.SetID(id)
	return b
}

func newSetMappingUseCase(mappingRepo *mockMappingRepository, countyRepo *mockCountyRepository, ticketRepo *mockTicketRepository, batchRepo *mockBatchRepository) *SetMappingUseCase {
	return NewSetMappingUseCase(
		mappingRepo, countyRepo, ticketRepo, batchRepo,
		&mockTxManager{}, lock.NewKeyedMutex(), logger.NewNop(),
	)
}

func TestSetMappingRejectsMismatchedArrays(t *testing.T) {
	uc := newSetMappingUseCase(&mockMappingRepository{}, &mockCountyRepository{}, &mockTicketRepository{}, &mockBatchRepository{})

	err := uc.Execute(context.Background(), SetMappingCommand{
		CountyIDs: []uint{1, 2},
		TicketIDs: []uint{100},
		CityIDs:   []*uint{nil},
		CreatedBy: 1,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestSetMappingUnknownCountyIsNotFound(t *testing.T) {
	countyRepo := &mockCountyRepository{
		ExistingIDsFunc: func(ctx context.Context, ids []uint) ([]uint, error) {
			return nil, nil
		},
	}
	uc := newSetMappingUseCase(&mockMappingRepository{}, countyRepo, &mockTicketRepository{}, &mockBatchRepository{})

	err := uc.Execute(context.Background(), SetMappingCommand{
		CountyIDs: []uint{99},
		TicketIDs: []uint{100},
		CityIDs:   []*uint{nil},
		CreatedBy: 1,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSetMappingDeletesThenInsertsDeduplicated(t *testing.T) {
	var deletedPairs []mapping.CountyTicket
	var deletedCities []uint
	var inserted []*mapping.Mapping
	mappingRepo := &mockMappingRepository{
		DeleteForReplaceFunc: func(ctx context.Context, pairs []mapping.CountyTicket, cityIDs []uint) error {
			deletedPairs = pairs
			deletedCities = cityIDs
			return nil
		},
		BulkCreateFunc: func(ctx context.Context, rows []*mapping.Mapping) error {
			inserted = rows
			return nil
		},
	}
	uc := newSetMappingUseCase(mappingRepo, &mockCountyRepository{}, &mockTicketRepository{}, &mockBatchRepository{})

	// Ticket 100 appears twice on the same (county, city) lane; first wins.
	err := uc.Execute(context.Background(), SetMappingCommand{
		CountyIDs: []uint{1, 1, 2},
		TicketIDs: []uint{100, 100, 101},
		CityIDs:   []*uint{uintPtr(7), uintPtr(7), nil},
		CreatedBy: 1,
	})

	require.NoError(t, err)
	assert.Len(t, deletedPairs, 3)
	assert.Equal(t, []uint{7, 7}, deletedCities)

	require.Len(t, inserted, 2)
	assert.Equal(t, uint(100), inserted[0].TicketID)
	assert.Equal(t, uint(101), inserted[1].TicketID)
	for _, row := range inserted {
		assert.Nil(t, row.BatchID)
	}
}

func TestSetMappingKeepsAssignmentWhenEditingMatchingBatch(t *testing.T) {
	edited := testBatch(t, 5, 1, 1, nil, batch.ProcessingWalk)
	batchRepo := &mockBatchRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*batch.Batch, error) {
			return edited, nil
		},
	}

	var inserted []*mapping.Mapping
	mappingRepo := &mockMappingRepository{
		BulkCreateFunc: func(ctx context.Context, rows []*mapping.Mapping) error {
			inserted = rows
			return nil
		},
	}
	uc := newSetMappingUseCase(mappingRepo, &mockCountyRepository{}, &mockTicketRepository{}, batchRepo)

	batchID := uint(5)
	err := uc.Execute(context.Background(), SetMappingCommand{
		CountyIDs:       []uint{1, 2},
		TicketIDs:       []uint{100, 101},
		CityIDs:         []*uint{nil, nil},
		CreatedBy:       1,
		ExistingBatchID: &batchID,
	})

	require.NoError(t, err)
	require.Len(t, inserted, 2)
	// Same (county, city) as the edited batch keeps the assignment.
	require.NotNil(t, inserted[0].BatchID)
	assert.Equal(t, uint(5), *inserted[0].BatchID)
	// A different county goes back to unassigned.
	assert.Nil(t, inserted[1].BatchID)
}
