package batchprep

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// RoundHandler serves the round/quota preview for county-city pairs.
type RoundHandler struct {
	computeRounds usecases.ComputeRoundsExecutor
	logger        logger.Interface
}

func NewRoundHandler(computeRounds usecases.ComputeRoundsExecutor) *RoundHandler {
	return &RoundHandler{
		computeRounds: computeRounds,
		logger:        logger.NewLogger(),
	}
}

// ComputeRounds handles GET /api/v1/rounds
//
// county_ids and city_ids are parallel comma separated lists; an empty slot
// in city_ids targets the county-level lane ("7,,3"). date is optional and
// switches the response from config-only to day-window counts.
func (h *RoundHandler) ComputeRounds(c *gin.Context) {
	countyIDs, err := parseUintList(c.Query("county_ids"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if len(countyIDs) == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "county_ids is required")
		return
	}

	cityIDs, err := parseOptionalUintList(c.Query("city_ids"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if cityIDs == nil {
		cityIDs = make([]*uint, len(countyIDs))
	}

	date, err := queryDatePtr(c, "date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ComputeRoundsQuery{
		CountyIDs: countyIDs,
		CityIDs:   cityIDs,
		Date:      date,
	}
	rounds, err := h.computeRounds.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Rounds computed successfully", rounds)
}
