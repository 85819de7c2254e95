package usecases

import (
	"context"
	"fmt"

	"titledesk/internal/domain/batch"
	"titledesk/internal/infrastructure/report"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// DownloadReportCommand fetches a rendered county report by history id.
type DownloadReportCommand struct {
	HistoryID uint
}

// DownloadReportResult carries the report file.
type DownloadReportResult struct {
	FileName string `json:"fileName"`
	Content  []byte `json:"-"`
}

// DownloadReportUseCase serves a ready report and records the download.
type DownloadReportUseCase struct {
	historyRepo batch.HistoryRepository
	storage     report.Storage
	logger      logger.Interface
}

// NewDownloadReportUseCase creates a new use case.
func NewDownloadReportUseCase(
	historyRepo batch.HistoryRepository,
	storage report.Storage,
	logger logger.Interface,
) *DownloadReportUseCase {
	return &DownloadReportUseCase{
		historyRepo: historyRepo,
		storage:     storage,
		logger:      logger,
	}
}

func (uc *DownloadReportUseCase) Execute(ctx context.Context, cmd DownloadReportCommand) (*DownloadReportResult, error) {
	uc.logger.Infow("executing download report use case", "history_id", cmd.HistoryID)

	if cmd.HistoryID == 0 {
		return nil, errors.NewValidationError("history id is required")
	}

	history, err := uc.historyRepo.FindByID(ctx, cmd.HistoryID)
	if err != nil {
		uc.logger.Errorw("failed to load render history", "history_id", cmd.HistoryID, "error", err)
		return nil, err
	}

	if err := history.MarkDownloaded(); err != nil {
		return nil, err
	}

	content, err := uc.storage.Open(history.FileName())
	if err != nil {
		uc.logger.Errorw("failed to open report file", "file_name", history.FileName(), "error", err)
		return nil, fmt.Errorf("failed to open report file: %w", err)
	}

	if err := uc.historyRepo.Update(ctx, history); err != nil {
		uc.logger.Warnw("failed to record report download", "history_id", cmd.HistoryID, "error", err)
	}

	return &DownloadReportResult{FileName: history.FileName(), Content: content}, nil
}
