package batchprep

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/interfaces/http/middleware"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// BatchHandler covers batch creation, the three listings, deletion,
// completion and the sent-to-DMV flag.
type BatchHandler struct {
	createBatch    usecases.CreateBatchExecutor
	listReview     usecases.ListReviewExecutor
	listIncomplete usecases.ListIncompleteExecutor
	listSentToDmv  usecases.ListSentToDmvExecutor
	deleteBatch    usecases.DeleteBatchExecutor
	completeBatch  usecases.CompleteBatchExecutor
	markSentToDmv  usecases.MarkSentToDmvExecutor
	logger         logger.Interface
}

func NewBatchHandler(
	createBatch usecases.CreateBatchExecutor,
	listReview usecases.ListReviewExecutor,
	listIncomplete usecases.ListIncompleteExecutor,
	listSentToDmv usecases.ListSentToDmvExecutor,
	deleteBatch usecases.DeleteBatchExecutor,
	completeBatch usecases.CompleteBatchExecutor,
	markSentToDmv usecases.MarkSentToDmvExecutor,
) *BatchHandler {
	return &BatchHandler{
		createBatch:    createBatch,
		listReview:     listReview,
		listIncomplete: listIncomplete,
		listSentToDmv:  listSentToDmv,
		deleteBatch:    deleteBatch,
		completeBatch:  completeBatch,
		markSentToDmv:  markSentToDmv,
		logger:         logger.NewLogger(),
	}
}

// CreateBatches handles POST /api/v1/batches
func (h *BatchHandler) CreateBatches(c *gin.Context) {
	var req CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create batch request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cmd, err := req.ToCommand(middleware.OperatorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createBatch.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Batches created successfully")
}

// ListReview handles GET /api/v1/batches/review
func (h *BatchHandler) ListReview(c *gin.Context) {
	filter, page, err := parseReviewFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listReview.Execute(c.Request.Context(), usecases.ListReviewQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batches retrieved successfully", gin.H{
		"items":              result.Items,
		"total":              result.Total,
		"generateFedexLabel": result.GenerateFedexLabel,
		"uploadedCsv":        result.UploadedCsv,
		"page":               page.Page,
		"pageSize":           page.PageSize,
	})
}

// ListIncomplete handles GET /api/v1/batches/incomplete
func (h *BatchHandler) ListIncomplete(c *gin.Context) {
	filter, page, err := parseListFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listIncomplete.Execute(c.Request.Context(), usecases.ListIncompleteQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, page.Page, page.PageSize)
}

// ListSentToDmv handles GET /api/v1/batches/sent-to-dmv
func (h *BatchHandler) ListSentToDmv(c *gin.Context) {
	filter, page, err := parseListFilter(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listSentToDmv.Execute(c.Request.Context(), usecases.ListSentToDmvQuery{Filter: filter})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, page.Page, page.PageSize)
}

// DeleteBatch handles DELETE /api/v1/batches/:id
func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid batch ID")
		return
	}

	cmd := usecases.DeleteBatchCommand{BatchID: uint(id)}
	if err := h.deleteBatch.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batch deleted successfully", nil)
}

// CompleteBatches handles POST /api/v1/batches/complete
func (h *BatchHandler) CompleteBatches(c *gin.Context) {
	var req CompleteBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid complete batch request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cmd := usecases.CompleteBatchCommand{
		BatchIDs:    req.BatchIDs,
		Comments:    req.Comments,
		CompletedBy: middleware.OperatorID(c),
	}
	result, err := h.completeBatch.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batch completion started", result)
}

// MarkSentToDmv handles POST /api/v1/batches/sent-to-dmv
func (h *BatchHandler) MarkSentToDmv(c *gin.Context) {
	var req MarkSentToDmvRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid sent to dmv request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cmd := usecases.MarkSentToDmvCommand{
		BatchIDs: req.BatchIDs,
		SentBy:   middleware.OperatorID(c),
	}
	if err := h.markSentToDmv.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Batches marked as sent to DMV", nil)
}
