package usecases

import (
	"context"

	"titledesk/internal/application/batchprep/dto"
	"titledesk/internal/infrastructure/report"
)

// BatchQueryRepository serves the flat listing joins the aggregation service
// folds into nested responses.
type BatchQueryRepository interface {
	ReviewRows(ctx context.Context, filter dto.ReviewFilter) ([]dto.ReviewRow, int64, error)
	IncompleteRows(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error)
	SentToDmvRows(ctx context.Context, filter dto.ListFilter) ([]dto.BatchSummaryRow, int64, error)
}

// TransactionManager runs a function inside one database transaction.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReportRenderer renders the county report document.
type ReportRenderer interface {
	Render(data report.Data) ([]byte, error)
}

type SetMappingExecutor interface {
	Execute(ctx context.Context, cmd SetMappingCommand) error
}

type DeleteMappingExecutor interface {
	Execute(ctx context.Context, cmd DeleteMappingCommand) error
}

type CreateBatchExecutor interface {
	Execute(ctx context.Context, cmd CreateBatchCommand) (*dto.CreateBatchResultDTO, error)
}

type ComputeRoundsExecutor interface {
	Execute(ctx context.Context, query ComputeRoundsQuery) ([]dto.RoundInfoDTO, error)
}

type ListReviewExecutor interface {
	Execute(ctx context.Context, query ListReviewQuery) (*dto.ReviewListDTO, error)
}

type ListIncompleteExecutor interface {
	Execute(ctx context.Context, query ListIncompleteQuery) (*BatchSummaryListResult, error)
}

type ListSentToDmvExecutor interface {
	Execute(ctx context.Context, query ListSentToDmvQuery) (*BatchSummaryListResult, error)
}

type DeleteBatchExecutor interface {
	Execute(ctx context.Context, cmd DeleteBatchCommand) error
}

type CompleteBatchExecutor interface {
	Execute(ctx context.Context, cmd CompleteBatchCommand) (*CompleteBatchResult, error)
}

type MarkSentToDmvExecutor interface {
	Execute(ctx context.Context, cmd MarkSentToDmvCommand) error
}

type GenerateLabelExecutor interface {
	Execute(ctx context.Context, cmd GenerateLabelCommand) (*GenerateLabelResult, error)
}

type TrackShipmentExecutor interface {
	Execute(ctx context.Context, query TrackShipmentQuery) (*TrackShipmentResult, error)
}

type UploadChecksExecutor interface {
	Execute(ctx context.Context, cmd UploadChecksCommand) error
}

type ExportChecksExecutor interface {
	Execute(ctx context.Context, query ExportChecksQuery) (*ExportChecksResult, error)
}

type DownloadReportExecutor interface {
	Execute(ctx context.Context, cmd DownloadReportCommand) (*DownloadReportResult, error)
}

type ListHistoryExecutor interface {
	Execute(ctx context.Context, query ListHistoryQuery) (*ListHistoryResult, error)
}

type ListCountiesExecutor interface {
	Execute(ctx context.Context) ([]dto.CountyDTO, error)
}

type ListCountyRulesExecutor interface {
	Execute(ctx context.Context, query ListCountyRulesQuery) ([]dto.ProcessingRuleDTO, error)
}
