package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"titledesk/internal/application/batchprep/dto"
	db "titledesk/internal/shared/db"
)

// BatchQueryRepository serves the flat listing joins behind the review,
// incomplete and sent-to-DMV queues. It returns rows, not entities; the
// application layer folds them into nested payloads.
type BatchQueryRepository struct {
	db *gorm.DB
}

func NewBatchQueryRepository(db *gorm.DB) *BatchQueryRepository {
	return &BatchQueryRepository{db: db}
}

type reviewScan struct {
	BatchID             uint
	GroupID             uint
	CountyID            uint
	CountyName          string
	CountyNumber        string
	CityID              *uint
	CityName            string
	ProcessingType      string
	DateProcessing      *int64
	Comment             string
	CompletedAt         *int64
	TicketID            uint
	CustomerName        string
	TransactionTypeID   uint
	TransactionTypeName string
	EstimationFee       float64
	CheckOrder          *int
	CheckNumber         *string
	CheckAmount         *float64
	TrackingNumber      *string
}

// ReviewRows pages by batch, not by joined row: the fan-out over tickets and
// checks would otherwise split a batch across pages. Limit <= 0 disables
// pagination, which the report builder relies on.
func (r *BatchQueryRepository) ReviewRows(ctx context.Context, filter dto.ReviewFilter) ([]dto.ReviewRow, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	base := r.filteredBatches(tx, filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("b.id").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count review batches: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	idQuery := base.Session(&gorm.Session{}).
		Select("b.id").
		Group("b.id").
		Order("MAX(b.created_at) DESC, b.id DESC")
	if filter.Limit > 0 {
		idQuery = idQuery.Offset(filter.Offset).Limit(filter.Limit)
	}

	var pageIDs []uint
	if err := idQuery.Pluck("b.id", &pageIDs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to page review batches: %w", err)
	}
	if len(pageIDs) == 0 {
		return nil, total, nil
	}

	var scans []reviewScan
	err := tx.
		Table("batches AS b").
		Select(`b.id AS batch_id, b.group_id, b.county_id, c.name AS county_name,
			c.number AS county_number, b.city_id, COALESCE(r.city_name, '') AS city_name,
			b.processing_type, b.date_processing, b.comment, b.completed_at,
			t.id AS ticket_id, t.customer_name, t.transaction_type_id,
			t.transaction_type_name, t.estimation_fee,
			ic.check_order, ic.check_number, ic.amount AS check_amount,
			sd.tracking_number`).
		Joins("JOIN ticket_county_mappings m ON m.batch_id = b.id").
		Joins("JOIN tickets t ON t.id = m.ticket_id").
		Joins("JOIN counties c ON c.id = b.county_id").
		Joins(`LEFT JOIN county_processing_rules r ON r.county_id = b.county_id
			AND ((r.city_id IS NULL AND b.city_id IS NULL) OR r.city_id = b.city_id)`).
		Joins("LEFT JOIN invoice_checks ic ON ic.batch_id = b.id AND ic.ticket_id = t.id").
		Joins("LEFT JOIN shipping_documents sd ON sd.batch_id = b.id AND sd.is_deleted = ?", false).
		Where("b.id IN ?", pageIDs).
		Order("b.created_at DESC, b.id DESC, m.id ASC, ic.check_order ASC").
		Scan(&scans).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query review rows: %w", err)
	}

	rows := make([]dto.ReviewRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, dto.ReviewRow{
			BatchID:             s.BatchID,
			GroupID:             s.GroupID,
			CountyID:            s.CountyID,
			CountyName:          s.CountyName,
			CountyNumber:        s.CountyNumber,
			CityID:              s.CityID,
			CityName:            s.CityName,
			ProcessingType:      s.ProcessingType,
			DateProcessing:      millisPtrToTime(s.DateProcessing),
			Comment:             s.Comment,
			CompletedAt:         millisPtrToTime(s.CompletedAt),
			TicketID:            s.TicketID,
			CustomerName:        s.CustomerName,
			TransactionTypeID:   s.TransactionTypeID,
			TransactionTypeName: s.TransactionTypeName,
			EstimationFee:       s.EstimationFee,
			CheckOrder:          s.CheckOrder,
			CheckNumber:         s.CheckNumber,
			CheckAmount:         s.CheckAmount,
			TrackingNumber:      s.TrackingNumber,
		})
	}

	return rows, total, nil
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func millisPtrToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := millisToTime(*ms)
	return &t
}

// filteredBatches builds the filter query shared by count and page phases.
func (r *BatchQueryRepository) filteredBatches(tx *gorm.DB, filter dto.ReviewFilter) *gorm.DB {
	q := tx.
		Table("batches AS b").
		Joins("JOIN ticket_county_mappings m ON m.batch_id = b.id").
		Joins("JOIN tickets t ON t.id = m.ticket_id")

	if filter.ProcessingType != "" {
		q = q.Where("b.processing_type = ?", filter.ProcessingType)
	}
	if len(filter.BatchIDs) > 0 {
		q = q.Where("b.id IN ?", filter.BatchIDs)
	}
	if filter.CountyID != nil {
		q = q.Where("b.county_id = ?", *filter.CountyID)
	}
	if filter.DateFrom != nil {
		q = q.Where("b.date_processing >= ?", filter.DateFrom.UnixMilli())
	}
	if filter.DateTo != nil {
		q = q.Where("b.date_processing <= ?", filter.DateTo.UnixMilli())
	}
	if filter.CustomerName != "" {
		q = q.Where("t.customer_name LIKE ?", "%"+filter.CustomerName+"%")
	}
	if filter.TransactionTypeID != nil {
		q = q.Where("t.transaction_type_id = ?", *filter.TransactionTypeID)
	}
	if filter.Search != "" {
		q = q.Where(searchCondition(tx, filter.Search))
	}

	return q
}

// searchCondition matches free text against customer and transaction type
// names; a numeric term additionally matches ticket ids, batch ids and check
// amounts.
func searchCondition(tx *gorm.DB, term string) *gorm.DB {
	like := "%" + term + "%"
	cond := tx.
		Where("t.customer_name LIKE ?", like).
		Or("t.transaction_type_name LIKE ?", like)

	if n, err := strconv.ParseUint(term, 10, 64); err == nil {
		cond = cond.
			Or("t.id = ?", n).
			Or("b.id = ?", n)
	}
	if amount, err := strconv.ParseFloat(term, 64); err == nil {
		cond = cond.Or(
			"EXISTS (SELECT 1 FROM invoice_checks ic2 WHERE ic2.batch_id = b.id AND ic2.amount = ?)",
			amount)
	}

	return cond
}

type summaryScan struct {
	BatchID        uint
	GroupID        uint
	CountyID       uint
	CountyName     string
	CityID         *uint
	CityName       string
	ProcessingType string
	DateProcessing *int64
	Comment        string
	CompletedAt    *int64
	CreatedBy      uint
	CreatedAt      int64
	TicketCount    int64
	TrackingNumber *string
	CheckCount     int64
}

func (r *BatchQueryRepository) IncompleteRows(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error) {
	return r.summaryRows(ctx, filter, false)
}

func (r *BatchQueryRepository) SentToDmvRows(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error) {
	return r.summaryRows(ctx, filter, true)
}

func (r *BatchQueryRepository) summaryRows(ctx context.Context, filter dto.ListFilter, completed bool) ([]dto.BatchSummaryRow, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	q := tx.
		Table("batches AS b").
		Joins("JOIN counties c ON c.id = b.county_id")

	if completed {
		q = q.Where("b.completed_at IS NOT NULL")
	} else {
		q = q.Where("b.completed_at IS NULL")
	}

	if filter.CountyID != nil {
		q = q.Where("b.county_id = ?", *filter.CountyID)
	}
	if filter.ProcessingType != "" {
		q = q.Where("b.processing_type = ?", filter.ProcessingType)
	}
	if filter.DateFrom != nil {
		q = q.Where("b.date_processing >= ?", filter.DateFrom.UnixMilli())
	}
	if filter.DateTo != nil {
		q = q.Where("b.date_processing <= ?", filter.DateTo.UnixMilli())
	}
	if filter.CompletedFrom != nil {
		q = q.Where("b.completed_at >= ?", filter.CompletedFrom.UnixMilli())
	}
	if filter.CompletedTo != nil {
		q = q.Where("b.completed_at <= ?", filter.CompletedTo.UnixMilli())
	}
	if filter.CreatedBy != nil {
		q = q.Where("b.created_by = ?", *filter.CreatedBy)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count batches: %w", err)
	}

	q = q.Select(`b.id AS batch_id, b.group_id, b.county_id, c.name AS county_name,
		b.city_id, COALESCE(r.city_name, '') AS city_name, b.processing_type,
		b.date_processing, b.comment, b.completed_at, b.created_by, b.created_at,
		(SELECT COUNT(*) FROM ticket_county_mappings m WHERE m.batch_id = b.id) AS ticket_count,
		(SELECT sd.tracking_number FROM shipping_documents sd
			WHERE sd.batch_id = b.id AND sd.is_deleted = ? ORDER BY sd.id DESC LIMIT 1) AS tracking_number,
		(SELECT COUNT(*) FROM invoice_checks ic WHERE ic.batch_id = b.id) AS check_count`, false).
		Joins(`LEFT JOIN county_processing_rules r ON r.county_id = b.county_id
			AND ((r.city_id IS NULL AND b.city_id IS NULL) OR r.city_id = b.city_id)`).
		Order("b.created_at DESC, b.id DESC")

	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}

	var scans []summaryScan
	if err := q.Scan(&scans).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query batch summaries: %w", err)
	}

	rows := make([]dto.BatchSummaryRow, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, dto.BatchSummaryRow{
			BatchID:        s.BatchID,
			GroupID:        s.GroupID,
			CountyID:       s.CountyID,
			CountyName:     s.CountyName,
			CityID:         s.CityID,
			CityName:       s.CityName,
			ProcessingType: s.ProcessingType,
			DateProcessing: millisPtrToTime(s.DateProcessing),
			Comment:        s.Comment,
			CompletedAt:    millisPtrToTime(s.CompletedAt),
			CreatedBy:      s.CreatedBy,
			CreatedAt:      millisToTime(s.CreatedAt),
			TicketCount:    s.TicketCount,
			TrackingNumber: s.TrackingNumber,
			CheckCount:     s.CheckCount,
		})
	}

	return rows, total, nil
}
