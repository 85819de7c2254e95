package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/shared/errors"
)

// CheckCSVRow is one parsed line of the reconciliation upload.
type CheckCSVRow struct {
	BatchID     uint
	TicketID    uint
	Order       int
	CheckNumber string
	Amount      float64
}

// ParseChecksCSV decodes the accounting upload. Expected columns:
// batch, task_id ("<ticketId>_<order>"), check, amount. A header row is
// required; any malformed line rejects the whole file.
func ParseChecksCSV(r io.Reader) ([]CheckCSVRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewBadRequestError("malformed csv file", err.Error())
	}
	if len(records) < 2 {
		return nil, errors.NewBadRequestError("csv file contains no data rows")
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"batch", "task_id", "check", "amount"} {
		if _, ok := col[required]; !ok {
			return nil, errors.NewBadRequestError("csv is missing required column: " + required)
		}
	}

	rows := make([]CheckCSVRow, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2

		batchID, err := strconv.ParseUint(strings.TrimSpace(record[col["batch"]]), 10, 32)
		if err != nil {
			return nil, errors.NewBadRequestError(fmt.Sprintf("line %d: invalid batch id", line))
		}

		ticketID, order, err := parseTaskID(record[col["task_id"]])
		if err != nil {
			return nil, errors.NewBadRequestError(fmt.Sprintf("line %d: %s", line, err.Error()))
		}

		checkNumber := strings.TrimSpace(record[col["check"]])

		amountRaw := strings.TrimSpace(record[col["amount"]])
		amount := 0.0
		if amountRaw != "" {
			amount, err = strconv.ParseFloat(amountRaw, 64)
			if err != nil {
				return nil, errors.NewBadRequestError(fmt.Sprintf("line %d: invalid amount", line))
			}
		}

		rows = append(rows, CheckCSVRow{
			BatchID:     uint(batchID),
			TicketID:    ticketID,
			Order:       order,
			CheckNumber: checkNumber,
			Amount:      amount,
		})
	}

	return rows, nil
}

// parseTaskID splits "<ticketId>_<order>"; a bare ticket id means order 1.
func parseTaskID(raw string) (uint, int, error) {
	trimmed := strings.TrimSpace(raw)
	ticketPart, orderPart, found := strings.Cut(trimmed, "_")

	ticketID, err := strconv.ParseUint(ticketPart, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid task_id %q", trimmed)
	}

	order := 1
	if found {
		order, err = strconv.Atoi(orderPart)
		if err != nil || order < 1 {
			return 0, 0, fmt.Errorf("invalid task_id %q", trimmed)
		}
	}

	return uint(ticketID), order, nil
}

// ExportItem is one ticket to encode: its checks and the county-configured
// check count deciding how many rows it expands into.
type ExportItem struct {
	BatchID        uint
	TicketID       uint
	ProcessingType string
	CheckCount     int
	Checks         []dto.CheckDTO
}

// ExportLine is one encoded CSV line.
type ExportLine struct {
	ProcessingType string
	BatchID        uint
	TaskID         string
	CheckNumber    string
	Amount         string
}

// BuildExportLines expands tickets into (ticket, check-index) rows. The
// processing_type column is run-length encoded: stamped only on the first
// row of each new processing-type run.
func BuildExportLines(items []ExportItem) []ExportLine {
	lines := make([]ExportLine, 0, len(items))
	lastType := ""

	for _, item := range items {
		count := item.CheckCount
		if count < 1 {
			count = 1
		}

		byOrder := make(map[int]dto.CheckDTO, len(item.Checks))
		for _, c := range item.Checks {
			byOrder[c.Order] = c
		}

		for order := 1; order <= count; order++ {
			line := ExportLine{
				BatchID: item.BatchID,
				TaskID:  fmt.Sprintf("%d_%d", item.TicketID, order),
			}
			if item.ProcessingType != lastType {
				line.ProcessingType = item.ProcessingType
				lastType = item.ProcessingType
			}
			if c, ok := byOrder[order]; ok {
				line.CheckNumber = c.CheckNumber
				line.Amount = strconv.FormatFloat(c.Amount, 'f', 2, 64)
			}
			lines = append(lines, line)
		}
	}

	return lines
}

// WriteChecksCSV encodes export lines with the upload's column layout plus
// the leading processing_type label column.
func WriteChecksCSV(w io.Writer, lines []ExportLine) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"processing_type", "batch", "task_id", "check", "amount"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, line := range lines {
		record := []string{
			line.ProcessingType,
			strconv.FormatUint(uint64(line.BatchID), 10),
			line.TaskID,
			line.CheckNumber,
			line.Amount,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
