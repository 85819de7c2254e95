package usecases

import (
	"context"
	"fmt"
	"time"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/application/batchprep/services"
	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/email"
	"titledesk/internal/infrastructure/report"
	"titledesk/internal/shared/biztime"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/goroutine"
	"titledesk/internal/shared/logger"
)

// CompleteBatchCommand finishes a set of batches: comments are persisted and
// the county report is rendered. Comments is keyed by batch id.
type CompleteBatchCommand struct {
	BatchIDs    []uint
	Comments    map[uint]string
	CompletedBy uint
}

// CompleteBatchResult reports the render outcome. Status is the history
// status reached before the render budget expired; in_progress means the
// render is still running detached and the caller should poll the history.
type CompleteBatchResult struct {
	HistoryID uint   `json:"historyId"`
	Status    string `json:"status"`
	FileName  string `json:"fileName,omitempty"`
}

// CompleteBatchUseCase runs the completion flow. The render races a fixed
// time budget: finishing inside it returns the final status synchronously,
// otherwise the caller gets in_progress immediately while the detached
// continuation persists its own outcome. Batches are marked completed only
// by a successful render, never by the timeout path.
type CompleteBatchUseCase struct {
	batchRepo   batch.Repository
	groupRepo   batch.GroupRepository
	historyRepo batch.HistoryRepository
	queryRepo   BatchQueryRepository
	renderer    ReportRenderer
	storage     report.Storage
	notifier    email.Notifier
	txManager   TransactionManager
	budget      time.Duration
	now         func() time.Time
	logger      logger.Interface
}

// NewCompleteBatchUseCase creates a new use case.
func NewCompleteBatchUseCase(
	batchRepo batch.Repository,
	groupRepo batch.GroupRepository,
	historyRepo batch.HistoryRepository,
	queryRepo BatchQueryRepository,
	renderer ReportRenderer,
	storage report.Storage,
	notifier email.Notifier,
	txManager TransactionManager,
	budget time.Duration,
	logger logger.Interface,
) *CompleteBatchUseCase {
	return &CompleteBatchUseCase{
		batchRepo:   batchRepo,
		groupRepo:   groupRepo,
		historyRepo: historyRepo,
		queryRepo:   queryRepo,
		renderer:    renderer,
		storage:     storage,
		notifier:    notifier,
		txManager:   txManager,
		budget:      budget,
		now:         biztime.NowUTC,
		logger:      logger,
	}
}

type renderOutcome struct {
	status   batch.HistoryStatus
	fileName string
}

func (uc *CompleteBatchUseCase) Execute(ctx context.Context, cmd CompleteBatchCommand) (*CompleteBatchResult, error) {
	uc.logger.Infow("executing complete batch use case",
		"batch_ids", cmd.BatchIDs,
		"completed_by", cmd.CompletedBy,
	)

	if len(cmd.BatchIDs) == 0 {
		return nil, errors.NewValidationError("at least one batch id is required")
	}
	if cmd.CompletedBy == 0 {
		return nil, errors.NewValidationError("completed by is required")
	}

	batchIDs := uniqueIDs(cmd.BatchIDs)
	batches, err := uc.batchRepo.FindByIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load batches: %w", err)
	}
	if len(batches) != len(batchIDs) {
		return nil, errors.NewNotFoundError("batch not found")
	}

	if err := uc.persistComments(ctx, batches, cmd.Comments); err != nil {
		uc.logger.Errorw("failed to persist batch comments", "error", err)
		return nil, err
	}

	history, err := batch.NewHistory(batches[0].GroupID(), batchIDs, cmd.CompletedBy)
	if err != nil {
		return nil, err
	}
	if err := uc.historyRepo.Save(ctx, history); err != nil {
		return nil, fmt.Errorf("failed to record render history: %w", err)
	}

	data, err := uc.buildReportData(ctx, batchIDs)
	if err != nil {
		uc.logger.Errorw("failed to build report data", "error", err)
		return nil, err
	}

	// The continuation outlives the request when the budget expires, so it
	// must not inherit the request's cancellation.
	bgCtx := context.WithoutCancel(ctx)
	done := make(chan renderOutcome, 1)
	goroutine.SafeGo(uc.logger, "county-report-render", func() {
		done <- uc.renderAndPersist(bgCtx, history, batchIDs, cmd.CompletedBy, data)
	})

	select {
	case outcome := <-done:
		return &CompleteBatchResult{
			HistoryID: history.ID(),
			Status:    string(outcome.status),
			FileName:  outcome.fileName,
		}, nil
	case <-time.After(uc.budget):
		uc.logger.Warnw("county report render exceeded budget, continuing in background",
			"history_id", history.ID(),
			"budget", uc.budget,
		)
		return &CompleteBatchResult{
			HistoryID: history.ID(),
			Status:    string(batch.HistoryInProgress),
		}, nil
	}
}

// persistComments applies the keyed comment updates inside one transaction.
func (uc *CompleteBatchUseCase) persistComments(ctx context.Context, batches []*batch.Batch, comments map[uint]string) error {
	if len(comments) == 0 {
		return nil
	}
	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, b := range batches {
			comment, ok := comments[b.ID()]
			if !ok {
				continue
			}
			b.SetComment(comment)
			if err := uc.batchRepo.Update(txCtx, b); err != nil {
				return fmt.Errorf("failed to update comment on batch %d: %w", b.ID(), err)
			}
		}
		return nil
	})
}

// renderAndPersist is the whole render continuation: it records its own
// outcome whether or not the caller is still waiting. Only a successful
// render marks the batches completed.
func (uc *CompleteBatchUseCase) renderAndPersist(ctx context.Context, history *batch.History, batchIDs []uint, completedBy uint, data report.Data) renderOutcome {
	content, err := uc.renderer.Render(data)
	if err != nil {
		return uc.failRender(ctx, history, batchIDs, fmt.Sprintf("render failed: %v", err))
	}

	fileName, err := uc.storage.Save(content)
	if err != nil {
		return uc.failRender(ctx, history, batchIDs, fmt.Sprintf("failed to store report: %v", err))
	}

	history.MarkReady(fileName)
	if err := uc.historyRepo.Update(ctx, history); err != nil {
		uc.logger.Errorw("failed to mark render history ready", "history_id", history.ID(), "error", err)
		return renderOutcome{status: batch.HistoryFailed}
	}

	completedAt := uc.now()
	if err := uc.batchRepo.MarkCompleted(ctx, batchIDs, completedBy, completedAt); err != nil {
		uc.logger.Errorw("failed to mark batches completed", "batch_ids", batchIDs, "error", err)
		return renderOutcome{status: batch.HistoryFailed}
	}

	uc.completeGroup(ctx, history.GroupID(), completedBy, completedAt)

	if err := uc.notifier.NotifyReportReady(fileName, batchIDs); err != nil {
		uc.logger.Warnw("failed to send report ready notification", "error", err)
	}

	return renderOutcome{status: batch.HistoryReadyToDownload, fileName: fileName}
}

func (uc *CompleteBatchUseCase) failRender(ctx context.Context, history *batch.History, batchIDs []uint, reason string) renderOutcome {
	uc.logger.Errorw("county report render failed", "history_id", history.ID(), "reason", reason)

	history.MarkFailed(reason)
	if err := uc.historyRepo.Update(ctx, history); err != nil {
		uc.logger.Errorw("failed to mark render history failed", "history_id", history.ID(), "error", err)
	}
	if err := uc.notifier.NotifyReportFailed(reason, batchIDs); err != nil {
		uc.logger.Warnw("failed to send report failed notification", "error", err)
	}
	return renderOutcome{status: batch.HistoryFailed}
}

func (uc *CompleteBatchUseCase) completeGroup(ctx context.Context, groupID, by uint, at time.Time) {
	g, err := uc.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		uc.logger.Warnw("failed to load batch group for completion", "group_id", groupID, "error", err)
		return
	}
	if g.IsCompleted() {
		return
	}
	g.Complete(by, at)
	if err := uc.groupRepo.Update(ctx, g); err != nil {
		uc.logger.Warnw("failed to mark batch group completed", "group_id", groupID, "error", err)
	}
}

// buildReportData folds the review rows of the requested batches into the
// per-page report sections.
func (uc *CompleteBatchUseCase) buildReportData(ctx context.Context, batchIDs []uint) (report.Data, error) {
	rows, _, err := uc.queryRepo.ReviewRows(ctx, dto.ReviewFilter{BatchIDs: batchIDs})
	if err != nil {
		return report.Data{}, fmt.Errorf("failed to query report rows: %w", err)
	}

	countyNumbers := make(map[uint]string, len(batchIDs))
	for _, row := range rows {
		if _, ok := countyNumbers[row.BatchID]; !ok {
			countyNumbers[row.BatchID] = row.CountyNumber
		}
	}

	items := services.GroupReviewRows(rows)
	data := report.Data{GeneratedAt: uc.now()}
	for _, item := range items {
		section := report.BatchSection{
			BatchID:        item.BatchID,
			CountyName:     item.CountyName,
			CountyNumber:   countyNumbers[item.BatchID],
			CityName:       item.CityName,
			ProcessingType: item.ProcessingType,
			Comment:        item.Comment,
		}
		if item.DateProcessing != nil {
			section.ProcessingDate = *item.DateProcessing
		}
		for _, g := range item.Groups {
			group := report.TransactionGroup{TypeName: g.TransactionTypeName}
			for _, t := range g.Tickets {
				line := report.TicketLine{
					TicketID:      t.TicketID,
					CustomerName:  t.CustomerName,
					EstimationFee: t.EstimationFee,
				}
				for _, c := range t.Checks {
					line.Checks = append(line.Checks, report.CheckLine{CheckNumber: c.CheckNumber, Amount: c.Amount})
				}
				group.Tickets = append(group.Tickets, line)
			}
			section.Groups = append(section.Groups, group)
		}
		data.Batches = append(data.Batches, section)
	}

	return data, nil
}
