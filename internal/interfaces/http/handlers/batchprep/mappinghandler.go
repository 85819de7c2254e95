package batchprep

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/interfaces/http/middleware"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// MappingHandler covers the ticket placement endpoints.
type MappingHandler struct {
	setMapping    usecases.SetMappingExecutor
	deleteMapping usecases.DeleteMappingExecutor
	logger        logger.Interface
}

func NewMappingHandler(
	setMapping usecases.SetMappingExecutor,
	deleteMapping usecases.DeleteMappingExecutor,
) *MappingHandler {
	return &MappingHandler{
		setMapping:    setMapping,
		deleteMapping: deleteMapping,
		logger:        logger.NewLogger(),
	}
}

// SetMapping handles PUT /api/v1/mappings
func (h *MappingHandler) SetMapping(c *gin.Context) {
	var req SetMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid set mapping request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cmd := req.ToCommand(middleware.OperatorID(c))
	if err := h.setMapping.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mappings replaced successfully", nil)
}

// DeleteMapping handles DELETE /api/v1/mappings
func (h *MappingHandler) DeleteMapping(c *gin.Context) {
	var req DeleteMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid delete mapping request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cmd := usecases.DeleteMappingCommand{
		TicketIDs: req.TicketIDs,
		BatchID:   req.BatchID,
	}
	if err := h.deleteMapping.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mappings deleted successfully", nil)
}
