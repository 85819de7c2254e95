package batchprep

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// ReportHandler covers the completion history listing and report download.
type ReportHandler struct {
	listHistory    usecases.ListHistoryExecutor
	downloadReport usecases.DownloadReportExecutor
	logger         logger.Interface
}

func NewReportHandler(
	listHistory usecases.ListHistoryExecutor,
	downloadReport usecases.DownloadReportExecutor,
) *ReportHandler {
	return &ReportHandler{
		listHistory:    listHistory,
		downloadReport: downloadReport,
		logger:         logger.NewLogger(),
	}
}

// ListHistory handles GET /api/v1/reports
func (h *ReportHandler) ListHistory(c *gin.Context) {
	page := utils.ParsePagination(c)

	query := usecases.ListHistoryQuery{
		Offset: page.Offset(),
		Limit:  page.PageSize,
	}
	result, err := h.listHistory.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, page.Page, page.PageSize)
}

// DownloadReport handles GET /api/v1/reports/:id/download
func (h *ReportHandler) DownloadReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid history ID")
		return
	}

	cmd := usecases.DownloadReportCommand{HistoryID: uint(id)}
	result, err := h.downloadReport.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "text/html; charset=utf-8", result.Content)
}
