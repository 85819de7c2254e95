package batchprep

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// CountyHandler serves read-only county master data for the batch UI.
type CountyHandler struct {
	listCounties    usecases.ListCountiesExecutor
	listCountyRules usecases.ListCountyRulesExecutor
	logger          logger.Interface
}

func NewCountyHandler(
	listCounties usecases.ListCountiesExecutor,
	listCountyRules usecases.ListCountyRulesExecutor,
) *CountyHandler {
	return &CountyHandler{
		listCounties:    listCounties,
		listCountyRules: listCountyRules,
		logger:          logger.NewLogger(),
	}
}

// ListCounties handles GET /api/v1/counties
func (h *CountyHandler) ListCounties(c *gin.Context) {
	counties, err := h.listCounties.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Counties retrieved successfully", counties)
}

// ListCountyRules handles GET /api/v1/counties/:id/rules
func (h *CountyHandler) ListCountyRules(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid county ID")
		return
	}

	query := usecases.ListCountyRulesQuery{CountyID: uint(id)}
	rules, err := h.listCountyRules.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Processing rules retrieved successfully", rules)
}
