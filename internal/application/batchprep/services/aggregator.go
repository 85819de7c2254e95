// Package services holds the pure transformation logic of batch prep:
// folding flat join rows into nested review payloads and encoding/decoding
// the reconciliation CSV. Nothing here touches storage.
package services

import (
	"titledesk/internal/application/batchprep/dto"
)

// GroupReviewRows folds flat join rows into one entry per batch. Grouping is
// by batchId, then by (transactionTypeId, name) within a batch, then by
// ticketId within a group, all preserving first-seen order. Check columns
// repeat per joined row; they are deduplicated by check order per ticket.
func GroupReviewRows(rows []dto.ReviewRow) []dto.BatchReviewDTO {
	type ticketKey struct {
		batchID  uint
		typeID   uint
		typeName string
		ticketID uint
	}

	batchIndex := make(map[uint]int)
	groupIndex := make(map[[3]interface{}]int)
	ticketIndex := make(map[ticketKey]int)
	seenChecks := make(map[ticketKey]map[int]struct{})

	out := make([]dto.BatchReviewDTO, 0)

	for _, row := range rows {
		bi, ok := batchIndex[row.BatchID]
		if !ok {
			out = append(out, dto.BatchReviewDTO{
				BatchID:        row.BatchID,
				GroupID:        row.GroupID,
				CountyID:       row.CountyID,
				CountyName:     row.CountyName,
				CityID:         row.CityID,
				CityName:       row.CityName,
				ProcessingType: row.ProcessingType,
				DateProcessing: row.DateProcessing,
				Comment:        row.Comment,
				CompletedAt:    row.CompletedAt,
			})
			bi = len(out) - 1
			batchIndex[row.BatchID] = bi
		}
		b := &out[bi]

		if b.TrackingNumber == "" && row.TrackingNumber != nil {
			b.TrackingNumber = *row.TrackingNumber
		}

		gk := [3]interface{}{row.BatchID, row.TransactionTypeID, row.TransactionTypeName}
		gi, ok := groupIndex[gk]
		if !ok {
			b.Groups = append(b.Groups, dto.TransactionGroupDTO{
				TransactionTypeID:   row.TransactionTypeID,
				TransactionTypeName: row.TransactionTypeName,
			})
			gi = len(b.Groups) - 1
			groupIndex[gk] = gi
		}
		g := &b.Groups[gi]

		tk := ticketKey{batchID: row.BatchID, typeID: row.TransactionTypeID, typeName: row.TransactionTypeName, ticketID: row.TicketID}
		ti, ok := ticketIndex[tk]
		if !ok {
			g.Tickets = append(g.Tickets, dto.TicketDTO{
				TicketID:      row.TicketID,
				CustomerName:  row.CustomerName,
				EstimationFee: row.EstimationFee,
			})
			ti = len(g.Tickets) - 1
			ticketIndex[tk] = ti
			seenChecks[tk] = make(map[int]struct{})
		}
		t := &g.Tickets[ti]

		if row.CheckOrder != nil && row.CheckNumber != nil {
			if _, dup := seenChecks[tk][*row.CheckOrder]; !dup {
				seenChecks[tk][*row.CheckOrder] = struct{}{}
				amount := 0.0
				if row.CheckAmount != nil {
					amount = *row.CheckAmount
				}
				t.Checks = append(t.Checks, dto.CheckDTO{
					Order:       *row.CheckOrder,
					CheckNumber: *row.CheckNumber,
					Amount:      amount,
				})
			}
		}
	}

	return out
}
