package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/check"
	"titledesk/internal/domain/county"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/shared/logger"
)

func TestExportChecksOrdersLanesAndExpandsCheckSlots(t *testing.T) {
	// Input order MAIL before WALK; the export regroups lanes.
	batchRepo := &mockBatchRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*batch.Batch, error) {
			return []*batch.Batch{
				testBatch(t, 20, 42, 1, nil, batch.ProcessingMail),
				testBatch(t, 10, 42, 1, nil, batch.ProcessingWalk),
			}, nil
		},
	}
	mappingRepo := &mockMappingRepository{
		FindByBatchIDFunc: func(ctx context.Context, batchID uint) ([]*mapping.Mapping, error) {
			if batchID == 10 {
				return []*mapping.Mapping{{TicketID: 100, CountyID: 1}}, nil
			}
			return []*mapping.Mapping{{TicketID: 200, CountyID: 1}}, nil
		},
	}
	checkRepo := &mockCheckRepository{
		FindByBatchIDsFunc: func(ctx context.Context, batchIDs []uint) ([]*check.InvoiceCheck, error) {
			return []*check.InvoiceCheck{
				{BatchID: 10, TicketID: 100, Order: 1, CheckNumber: "CHK-1", Amount: 50},
			}, nil
		},
	}
	countyRepo := &mockCountyRepository{
		FindRuleFunc: func(ctx context.Context, countyID uint, cityID *uint) (*county.ProcessingRule, error) {
			return &county.ProcessingRule{CountyID: countyID, CheckCount: 2}, nil
		},
	}

	uc := NewExportChecksUseCase(batchRepo, mappingRepo, checkRepo, countyRepo, logger.NewNop())

	result, err := uc.Execute(context.Background(), ExportChecksQuery{BatchIDs: []uint{20, 10}})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.FileName, "checks_export_"))

	lines := strings.Split(strings.TrimSpace(string(result.Content)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "processing_type,batch,task_id,check,amount", lines[0])
	// WALK lane first, two check slots per ticket, label only on the first
	// row of the run.
	assert.Equal(t, "WALK,10,100_1,CHK-1,50.00", lines[1])
	assert.Equal(t, ",10,100_2,,", lines[2])
	assert.Equal(t, "MAIL,20,200_1,,", lines[3])
	assert.Equal(t, ",20,200_2,,", lines[4])
}
