package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/shared/errors"
)

func TestParseChecksCSV(t *testing.T) {
	input := "batch,task_id,check,amount\n" +
		"10,100_1,CHK-1,50.00\n" +
		"10,100_2,CHK-2,25.50\n" +
		"11,103,CHK-3,60\n"

	rows, err := ParseChecksCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, CheckCSVRow{BatchID: 10, TicketID: 100, Order: 1, CheckNumber: "CHK-1", Amount: 50}, rows[0])
	assert.Equal(t, CheckCSVRow{BatchID: 10, TicketID: 100, Order: 2, CheckNumber: "CHK-2", Amount: 25.5}, rows[1])
	// A bare ticket id in task_id means the first check slot.
	assert.Equal(t, CheckCSVRow{BatchID: 11, TicketID: 103, Order: 1, CheckNumber: "CHK-3", Amount: 60}, rows[2])
}

func TestParseChecksCSVEmptyAmount(t *testing.T) {
	input := "batch,task_id,check,amount\n10,100_1,CHK-1,\n"

	rows, err := ParseChecksCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].Amount)
}

func TestParseChecksCSVRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing column", "batch,task_id,check\n10,100_1,CHK-1\n"},
		{"no data rows", "batch,task_id,check,amount\n"},
		{"bad batch id", "batch,task_id,check,amount\nabc,100_1,CHK-1,50\n"},
		{"bad task id", "batch,task_id,check,amount\n10,abc_1,CHK-1,50\n"},
		{"bad task order", "batch,task_id,check,amount\n10,100_zero,CHK-1,50\n"},
		{"bad amount", "batch,task_id,check,amount\n10,100_1,CHK-1,fifty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseChecksCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.IsBadRequestError(err))
		})
	}
}

func TestBuildExportLinesRunLengthEncodesProcessingType(t *testing.T) {
	items := []ExportItem{
		{BatchID: 10, TicketID: 100, ProcessingType: "WALK", CheckCount: 2, Checks: []dto.CheckDTO{
			{Order: 1, CheckNumber: "CHK-1", Amount: 50},
		}},
		{BatchID: 10, TicketID: 101, ProcessingType: "WALK", CheckCount: 1},
		{BatchID: 11, TicketID: 102, ProcessingType: "DROP", CheckCount: 1, Checks: []dto.CheckDTO{
			{Order: 1, CheckNumber: "CHK-9", Amount: 12.5},
		}},
	}

	lines := BuildExportLines(items)
	require.Len(t, lines, 4)

	// Only the first row of each processing-type run carries the label.
	assert.Equal(t, "WALK", lines[0].ProcessingType)
	assert.Equal(t, "", lines[1].ProcessingType)
	assert.Equal(t, "", lines[2].ProcessingType)
	assert.Equal(t, "DROP", lines[3].ProcessingType)

	// Ticket 100 expands to its configured two check slots.
	assert.Equal(t, "100_1", lines[0].TaskID)
	assert.Equal(t, "CHK-1", lines[0].CheckNumber)
	assert.Equal(t, "50.00", lines[0].Amount)
	assert.Equal(t, "100_2", lines[1].TaskID)
	assert.Equal(t, "", lines[1].CheckNumber)

	assert.Equal(t, "102_1", lines[3].TaskID)
	assert.Equal(t, "12.50", lines[3].Amount)
}

func TestBuildExportLinesZeroCheckCountStillEmitsOneRow(t *testing.T) {
	lines := BuildExportLines([]ExportItem{{BatchID: 10, TicketID: 100, ProcessingType: "WALK"}})
	require.Len(t, lines, 1)
	assert.Equal(t, "100_1", lines[0].TaskID)
}

func TestWriteChecksCSVRoundTrip(t *testing.T) {
	lines := []ExportLine{
		{ProcessingType: "WALK", BatchID: 10, TaskID: "100_1", CheckNumber: "CHK-1", Amount: "50.00"},
		{BatchID: 10, TaskID: "100_2"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteChecksCSV(&buf, lines))

	got := buf.String()
	assert.Equal(t, "processing_type,batch,task_id,check,amount\n"+
		"WALK,10,100_1,CHK-1,50.00\n"+
		",10,100_2,,\n", got)

	// The body columns stay parseable by the upload decoder.
	rows, err := ParseChecksCSV(strings.NewReader("batch,task_id,check,amount\n10,100_1,CHK-1,50.00\n"))
	require.NoError(t, err)
	assert.Equal(t, uint(100), rows[0].TicketID)
}
