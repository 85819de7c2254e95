package usecases

import (
	"context"
	"time"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/domain/batch"
	"titledesk/internal/domain/check"
	"titledesk/internal/domain/county"
	"titledesk/internal/domain/mapping"
	"titledesk/internal/domain/shipping"
	"titledesk/internal/domain/ticket"
	"titledesk/internal/infrastructure/report"
)

type mockMappingRepository struct {
	BulkCreateFunc              func(ctx context.Context, rows []*mapping.Mapping) error
	DeleteForReplaceFunc        func(ctx context.Context, pairs []mapping.CountyTicket, cityIDs []uint) error
	DeleteByTicketsAndBatchFunc func(ctx context.Context, ticketIDs []uint, batchID *uint) error
	FindByTicketIDsFunc         func(ctx context.Context, ticketIDs []uint) ([]*mapping.Mapping, error)
	FindByBatchIDFunc           func(ctx context.Context, batchID uint) ([]*mapping.Mapping, error)
	AssignBatchFunc             func(ctx context.Context, ticketIDs []uint, countyID uint, cityID *uint, batchID uint) error
	TicketIDsForBatchesFunc     func(ctx context.Context, batchIDs []uint) ([]uint, error)
	FirstTicketIDForBatchFunc   func(ctx context.Context, batchID uint) (uint, error)
	CountPerBatchFunc           func(ctx context.Context, batchIDs []uint) (map[uint]int64, error)
}

func (m *mockMappingRepository) BulkCreate(ctx context.Context, rows []*mapping.Mapping) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, rows)
	}
	return nil
}

func (m *mockMappingRepository) DeleteForReplace(ctx context.Context, pairs []mapping.CountyTicket, cityIDs []uint) error {
	if m.DeleteForReplaceFunc != nil {
		return m.DeleteForReplaceFunc(ctx, pairs, cityIDs)
	}
	return nil
}

func (m *mockMappingRepository) DeleteByTicketsAndBatch(ctx context.Context, ticketIDs []uint, batchID *uint) error {
	if m.DeleteByTicketsAndBatchFunc != nil {
		return m.DeleteByTicketsAndBatchFunc(ctx, ticketIDs, batchID)
	}
	return nil
}

func (m *mockMappingRepository) FindByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*mapping.Mapping, error) {
	if m.FindByTicketIDsFunc != nil {
		return m.FindByTicketIDsFunc(ctx, ticketIDs)
	}
	return nil, nil
}

func (m *mockMappingRepository) FindByBatchID(ctx context.Context, batchID uint) ([]*mapping.Mapping, error) {
	if m.FindByBatchIDFunc != nil {
		return m.FindByBatchIDFunc(ctx, batchID)
	}
	return nil, nil
}

func (m *mockMappingRepository) AssignBatch(ctx context.Context, ticketIDs []uint, countyID uint, cityID *uint, batchID uint) error {
	if m.AssignBatchFunc != nil {
		return m.AssignBatchFunc(ctx, ticketIDs, countyID, cityID, batchID)
	}
	return nil
}

func (m *mockMappingRepository) TicketIDsForBatches(ctx context.Context, batchIDs []uint) ([]uint, error) {
	if m.TicketIDsForBatchesFunc != nil {
		return m.TicketIDsForBatchesFunc(ctx, batchIDs)
	}
	return nil, nil
}

func (m *mockMappingRepository) FirstTicketIDForBatch(ctx context.Context, batchID uint) (uint, error) {
	if m.FirstTicketIDForBatchFunc != nil {
		return m.FirstTicketIDForBatchFunc(ctx, batchID)
	}
	return 0, nil
}

func (m *mockMappingRepository) CountPerBatch(ctx context.Context, batchIDs []uint) (map[uint]int64, error) {
	if m.CountPerBatchFunc != nil {
		return m.CountPerBatchFunc(ctx, batchIDs)
	}
	return nil, nil
}

type mockCountyRepository struct {
	ListFunc        func(ctx context.Context) ([]*county.County, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*county.County, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) ([]*county.County, error)
	ExistingIDsFunc func(ctx context.Context, ids []uint) ([]uint, error)
	FindRuleFunc    func(ctx context.Context, countyID uint, cityID *uint) (*county.ProcessingRule, error)
	ListRulesFunc   func(ctx context.Context, countyID uint) ([]*county.ProcessingRule, error)
}

func (m *mockCountyRepository) List(ctx context.Context) ([]*county.County, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCountyRepository) FindByID(ctx context.Context, id uint) (*county.County, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCountyRepository) FindByIDs(ctx context.Context, ids []uint) ([]*county.County, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockCountyRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.ExistingIDsFunc != nil {
		return m.ExistingIDsFunc(ctx, ids)
	}
	return ids, nil
}

func (m *mockCountyRepository) FindRule(ctx context.Context, countyID uint, cityID *uint) (*county.ProcessingRule, error) {
	if m.FindRuleFunc != nil {
		return m.FindRuleFunc(ctx, countyID, cityID)
	}
	return nil, nil
}

func (m *mockCountyRepository) ListRules(ctx context.Context, countyID uint) ([]*county.ProcessingRule, error) {
	if m.ListRulesFunc != nil {
		return m.ListRulesFunc(ctx, countyID)
	}
	return nil, nil
}

type mockTicketRepository struct {
	FindByIDFunc      func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByIDsFunc     func(ctx context.Context, ids []uint) ([]*ticket.Ticket, error)
	ExistingIDsFunc   func(ctx context.Context, ids []uint) ([]uint, error)
	UpdateStatusFunc  func(ctx context.Context, ids []uint, status ticket.Status) error
	MarkSentToDmvFunc func(ctx context.Context, ids []uint, by uint, at time.Time) error
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByIDs(ctx context.Context, ids []uint) ([]*ticket.Ticket, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockTicketRepository) ExistingIDs(ctx context.Context, ids []uint) ([]uint, error) {
	if m.ExistingIDsFunc != nil {
		return m.ExistingIDsFunc(ctx, ids)
	}
	return ids, nil
}

func (m *mockTicketRepository) UpdateStatus(ctx context.Context, ids []uint, status ticket.Status) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, ids, status)
	}
	return nil
}

func (m *mockTicketRepository) MarkSentToDmv(ctx context.Context, ids []uint, by uint, at time.Time) error {
	if m.MarkSentToDmvFunc != nil {
		return m.MarkSentToDmvFunc(ctx, ids, by, at)
	}
	return nil
}

type mockBatchRepository struct {
	SaveFunc             func(ctx context.Context, b *batch.Batch) error
	UpdateFunc           func(ctx context.Context, b *batch.Batch) error
	FindByIDFunc         func(ctx context.Context, id uint) (*batch.Batch, error)
	FindByIDsFunc        func(ctx context.Context, ids []uint) ([]*batch.Batch, error)
	FindByGroupIDFunc    func(ctx context.Context, groupID uint) ([]*batch.Batch, error)
	FindByGroupKeyFunc   func(ctx context.Context, groupID, countyID uint, cityID *uint, pt batch.ProcessingType) (*batch.Batch, error)
	CountForDayFunc      func(ctx context.Context, countyID uint, cityID *uint, pt batch.ProcessingType, from, to time.Time) (int64, error)
	FindLatestForDayFunc func(ctx context.Context, countyID uint, cityID *uint, from, to time.Time) (*batch.Batch, error)
	MarkCompletedFunc    func(ctx context.Context, ids []uint, by uint, at time.Time) error
	DeleteFunc           func(ctx context.Context, id uint) error
}

func (m *mockBatchRepository) Save(ctx context.Context, b *batch.Batch) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, b)
	}
	return nil
}

func (m *mockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, b)
	}
	return nil
}

func (m *mockBatchRepository) FindByID(ctx context.Context, id uint) (*batch.Batch, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBatchRepository) FindByIDs(ctx context.Context, ids []uint) ([]*batch.Batch, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockBatchRepository) FindByGroupID(ctx context.Context, groupID uint) ([]*batch.Batch, error) {
	if m.FindByGroupIDFunc != nil {
		return m.FindByGroupIDFunc(ctx, groupID)
	}
	return nil, nil
}

func (m *mockBatchRepository) FindByGroupKey(ctx context.Context, groupID, countyID uint, cityID *uint, pt batch.ProcessingType) (*batch.Batch, error) {
	if m.FindByGroupKeyFunc != nil {
		return m.FindByGroupKeyFunc(ctx, groupID, countyID, cityID, pt)
	}
	return nil, nil
}

func (m *mockBatchRepository) CountForDay(ctx context.Context, countyID uint, cityID *uint, pt batch.ProcessingType, from, to time.Time) (int64, error) {
	if m.CountForDayFunc != nil {
		return m.CountForDayFunc(ctx, countyID, cityID, pt, from, to)
	}
	return 0, nil
}

func (m *mockBatchRepository) FindLatestForDay(ctx context.Context, countyID uint, cityID *uint, from, to time.Time) (*batch.Batch, error) {
	if m.FindLatestForDayFunc != nil {
		return m.FindLatestForDayFunc(ctx, countyID, cityID, from, to)
	}
	return nil, nil
}

func (m *mockBatchRepository) MarkCompleted(ctx context.Context, ids []uint, by uint, at time.Time) error {
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, ids, by, at)
	}
	return nil
}

func (m *mockBatchRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockGroupRepository struct {
	SaveFunc     func(ctx context.Context, g *batch.Group) error
	UpdateFunc   func(ctx context.Context, g *batch.Group) error
	FindByIDFunc func(ctx context.Context, id uint) (*batch.Group, error)
}

func (m *mockGroupRepository) Save(ctx context.Context, g *batch.Group) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, g)
	}
	g.SetID(1)
	return nil
}

func (m *mockGroupRepository) Update(ctx context.Context, g *batch.Group) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, g)
	}
	return nil
}

func (m *mockGroupRepository) FindByID(ctx context.Context, id uint) (*batch.Group, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return batch.ReconstructGroup(id, nil, nil, 1, time.Now()), nil
}

type mockHistoryRepository struct {
	SaveFunc     func(ctx context.Context, h *batch.History) error
	UpdateFunc   func(ctx context.Context, h *batch.History) error
	FindByIDFunc func(ctx context.Context, id uint) (*batch.History, error)
	ListFunc     func(ctx context.Context, offset, limit int) ([]*batch.History, int64, error)
}

func (m *mockHistoryRepository) Save(ctx context.Context, h *batch.History) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, h)
	}
	h.SetID(1)
	return nil
}

func (m *mockHistoryRepository) Update(ctx context.Context, h *batch.History) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, h)
	}
	return nil
}

func (m *mockHistoryRepository) FindByID(ctx context.Context, id uint) (*batch.History, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockHistoryRepository) List(ctx context.Context, offset, limit int) ([]*batch.History, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, 0, nil
}

type mockCheckRepository struct {
	ReplaceForBatchesFunc  func(ctx context.Context, batchIDs []uint, rows []*check.InvoiceCheck) error
	FindByBatchIDsFunc     func(ctx context.Context, batchIDs []uint) ([]*check.InvoiceCheck, error)
	BatchIDsWithChecksFunc func(ctx context.Context, batchIDs []uint) ([]uint, error)
}

func (m *mockCheckRepository) ReplaceForBatches(ctx context.Context, batchIDs []uint, rows []*check.InvoiceCheck) error {
	if m.ReplaceForBatchesFunc != nil {
		return m.ReplaceForBatchesFunc(ctx, batchIDs, rows)
	}
	return nil
}

func (m *mockCheckRepository) FindByBatchIDs(ctx context.Context, batchIDs []uint) ([]*check.InvoiceCheck, error) {
	if m.FindByBatchIDsFunc != nil {
		return m.FindByBatchIDsFunc(ctx, batchIDs)
	}
	return nil, nil
}

func (m *mockCheckRepository) BatchIDsWithChecks(ctx context.Context, batchIDs []uint) ([]uint, error) {
	if m.BatchIDsWithChecksFunc != nil {
		return m.BatchIDsWithChecksFunc(ctx, batchIDs)
	}
	return nil, nil
}

type mockShippingRepository struct {
	BulkCreateFunc            func(ctx context.Context, docs []*shipping.Document) error
	SoftDeleteByBatchIDsFunc  func(ctx context.Context, batchIDs []uint) error
	FindLiveByBatchIDsFunc    func(ctx context.Context, batchIDs []uint) ([]*shipping.Document, error)
	BatchIDsWithDocumentsFunc func(ctx context.Context, batchIDs []uint) ([]uint, error)
	CountLiveByBatchIDsFunc   func(ctx context.Context, batchIDs []uint) (int64, error)
}

func (m *mockShippingRepository) BulkCreate(ctx context.Context, docs []*shipping.Document) error {
	if m.BulkCreateFunc != nil {
		return m.BulkCreateFunc(ctx, docs)
	}
	return nil
}

func (m *mockShippingRepository) SoftDeleteByBatchIDs(ctx context.Context, batchIDs []uint) error {
	if m.SoftDeleteByBatchIDsFunc != nil {
		return m.SoftDeleteByBatchIDsFunc(ctx, batchIDs)
	}
	return nil
}

func (m *mockShippingRepository) FindLiveByBatchIDs(ctx context.Context, batchIDs []uint) ([]*shipping.Document, error) {
	if m.FindLiveByBatchIDsFunc != nil {
		return m.FindLiveByBatchIDsFunc(ctx, batchIDs)
	}
	return nil, nil
}

func (m *mockShippingRepository) BatchIDsWithDocuments(ctx context.Context, batchIDs []uint) ([]uint, error) {
	if m.BatchIDsWithDocumentsFunc != nil {
		return m.BatchIDsWithDocumentsFunc(ctx, batchIDs)
	}
	return nil, nil
}

func (m *mockShippingRepository) CountLiveByBatchIDs(ctx context.Context, batchIDs []uint) (int64, error) {
	if m.CountLiveByBatchIDsFunc != nil {
		return m.CountLiveByBatchIDsFunc(ctx, batchIDs)
	}
	return 0, nil
}

type mockQueryRepository struct {
	ReviewRowsFunc     func(ctx context.Context, filter dto.ReviewFilter) ([]dto.ReviewRow, int64, error)
	IncompleteRowsFunc func(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error)
	SentToDmvRowsFunc  func(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error)
}

func (m *mockQueryRepository) ReviewRows(ctx context.Context, filter dto.ReviewFilter) ([]dto.ReviewRow, int64, error) {
	if m.ReviewRowsFunc != nil {
		return m.ReviewRowsFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockQueryRepository) IncompleteRows(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error) {
	if m.IncompleteRowsFunc != nil {
		return m.IncompleteRowsFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockQueryRepository) SentToDmvRows(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error) {
	if m.SentToDmvRowsFunc != nil {
		return m.SentToDmvRowsFunc(ctx, filter)
	}
	return nil, 0, nil
}

// mockTxManager runs the function directly; transactional behavior is
// covered by the repository integration tests.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockLabelProvider struct {
	CreateShipmentFunc func(ctx context.Context, req shipping.ShipmentRequest) (*shipping.ShipmentResult, error)
}

func (m *mockLabelProvider) CreateShipment(ctx context.Context, req shipping.ShipmentRequest) (*shipping.ShipmentResult, error) {
	if m.CreateShipmentFunc != nil {
		return m.CreateShipmentFunc(ctx, req)
	}
	return &shipping.ShipmentResult{TrackingNumber: "794000000000"}, nil
}

type mockTrackingProvider struct {
	TrackFunc func(ctx context.Context, trackingNumber string) (*shipping.TrackingSummary, error)
}

func (m *mockTrackingProvider) Track(ctx context.Context, trackingNumber string) (*shipping.TrackingSummary, error) {
	if m.TrackFunc != nil {
		return m.TrackFunc(ctx, trackingNumber)
	}
	return &shipping.TrackingSummary{TrackingNumber: trackingNumber}, nil
}

type mockRenderer struct {
	RenderFunc func(data report.Data) ([]byte, error)
}

func (m *mockRenderer) Render(data report.Data) ([]byte, error) {
	if m.RenderFunc != nil {
		return m.RenderFunc(data)
	}
	return []byte("<html></html>"), nil
}

type mockStorage struct {
	SaveFunc func(content []byte) (string, error)
	OpenFunc func(fileName string) ([]byte, error)
}

func (m *mockStorage) Save(content []byte) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(content)
	}
	return "county_report_test.html", nil
}

func (m *mockStorage) Open(fileName string) ([]byte, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(fileName)
	}
	return []byte("<html></html>"), nil
}

type mockNotifier struct {
	ReadyFunc  func(fileName string, batchIDs []uint) error
	FailedFunc func(reason string, batchIDs []uint) error
}

func (m *mockNotifier) NotifyReportReady(fileName string, batchIDs []uint) error {
	if m.ReadyFunc != nil {
		return m.ReadyFunc(fileName, batchIDs)
	}
	return nil
}

func (m *mockNotifier) NotifyReportFailed(reason string, batchIDs []uint) error {
	if m.FailedFunc != nil {
		return m.FailedFunc(reason, batchIDs)
	}
	return nil
}
