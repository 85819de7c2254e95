package batchprep

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/interfaces/http/middleware"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// CheckHandler covers the invoice check CSV round trip.
type CheckHandler struct {
	uploadChecks usecases.UploadChecksExecutor
	exportChecks usecases.ExportChecksExecutor
	logger       logger.Interface
}

func NewCheckHandler(
	uploadChecks usecases.UploadChecksExecutor,
	exportChecks usecases.ExportChecksExecutor,
) *CheckHandler {
	return &CheckHandler{
		uploadChecks: uploadChecks,
		exportChecks: exportChecks,
		logger:       logger.NewLogger(),
	}
}

// UploadChecks handles POST /api/v1/checks/upload
//
// Multipart form with a "file" part and a comma separated "batch_ids" field.
func (h *CheckHandler) UploadChecks(c *gin.Context) {
	batchIDs, err := parseUintList(c.PostForm("batch_ids"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(batchIDs) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "batch_ids is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warnw("missing upload file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "CSV file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	cmd := usecases.UploadChecksCommand{
		BatchIDs:  batchIDs,
		File:      file,
		CreatedBy: middleware.OperatorID(c),
	}
	if err := h.uploadChecks.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Checks uploaded successfully", nil)
}

// ExportChecks handles GET /api/v1/checks/export
func (h *CheckHandler) ExportChecks(c *gin.Context) {
	batchIDs, err := parseUintList(c.Query("batch_ids"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(batchIDs) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "batch_ids is required")
		return
	}

	query := usecases.ExportChecksQuery{BatchIDs: batchIDs}
	result, err := h.exportChecks.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "text/csv", result.Content)
}
