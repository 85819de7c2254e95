package batch

import (
	"time"

	"titledesk/internal/shared/errors"
)

// HistoryStatus tracks a render job's lifecycle.
type HistoryStatus string

const (
	HistoryInProgress      HistoryStatus = "in_progress"
	HistoryReadyToDownload HistoryStatus = "ready_to_download"
	HistoryFailed          HistoryStatus = "failed"
	HistoryDownloaded      HistoryStatus = "downloaded"
)

// History records one county report render for a completed group: which
// batches went in, where the file landed, and whether the render finished.
type History struct {
	id        uint
	groupID   uint
	fileName  string
	status    HistoryStatus
	batchIDs  []uint
	failure   string
	createdBy uint
	createdAt time.Time
	updatedAt time.Time
}

// NewHistory opens an in-progress render record.
func NewHistory(groupID uint, batchIDs []uint, createdBy uint) (*History, error) {
	if groupID == 0 {
		return nil, errors.NewValidationError("group id is required")
	}
	if len(batchIDs) == 0 {
		return nil, errors.NewValidationError("at least one batch is required")
	}
	now := time.Now()
	return &History{
		groupID:   groupID,
		status:    HistoryInProgress,
		batchIDs:  batchIDs,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructHistory rebuilds a history record from persistence.
func ReconstructHistory(
	id, groupID uint,
	fileName string,
	status HistoryStatus,
	batchIDs []uint,
	failure string,
	createdBy uint,
	createdAt, updatedAt time.Time,
) *History {
	return &History{
		id:        id,
		groupID:   groupID,
		fileName:  fileName,
		status:    status,
		batchIDs:  batchIDs,
		failure:   failure,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *History) ID() uint              { return h.id }
func (h *History) GroupID() uint         { return h.groupID }
func (h *History) FileName() string      { return h.fileName }
func (h *History) Status() HistoryStatus { return h.status }
func (h *History) BatchIDs() []uint      { return h.batchIDs }
func (h *History) Failure() string       { return h.failure }
func (h *History) CreatedBy() uint       { return h.createdBy }
func (h *History) CreatedAt() time.Time  { return h.createdAt }
func (h *History) UpdatedAt() time.Time  { return h.updatedAt }

// SetID assigns the database ID after persistence.
func (h *History) SetID(id uint) { h.id = id }

// MarkReady records the rendered file and flips the record to downloadable.
func (h *History) MarkReady(fileName string) {
	h.fileName = fileName
	h.status = HistoryReadyToDownload
	h.updatedAt = time.Now()
}

// MarkFailed records the render failure.
func (h *History) MarkFailed(reason string) {
	h.status = HistoryFailed
	h.failure = reason
	h.updatedAt = time.Now()
}

// MarkDownloaded flips a ready record to downloaded. Only ready records can
// be downloaded.
func (h *History) MarkDownloaded() error {
	if h.status != HistoryReadyToDownload && h.status != HistoryDownloaded {
		return errors.NewConflictError("report is not ready for download")
	}
	h.status = HistoryDownloaded
	h.updatedAt = time.Now()
	return nil
}
