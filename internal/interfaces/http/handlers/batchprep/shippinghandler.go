package batchprep

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"titledesk/internal/application/batchprep/usecases"
	"titledesk/internal/interfaces/http/middleware"
	"titledesk/internal/shared/logger"
	"titledesk/internal/shared/utils"
)

// ShippingHandler covers carrier label purchase and shipment tracking.
type ShippingHandler struct {
	generateLabel usecases.GenerateLabelExecutor
	trackShipment usecases.TrackShipmentExecutor
	logger        logger.Interface
}

func NewShippingHandler(
	generateLabel usecases.GenerateLabelExecutor,
	trackShipment usecases.TrackShipmentExecutor,
) *ShippingHandler {
	return &ShippingHandler{
		generateLabel: generateLabel,
		trackShipment: trackShipment,
		logger:        logger.NewLogger(),
	}
}

// GenerateLabels handles POST /api/v1/shipping/labels
func (h *ShippingHandler) GenerateLabels(c *gin.Context) {
	var req GenerateLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid generate label request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	cmd := usecases.GenerateLabelCommand{
		BatchIDs:  req.BatchIDs,
		CreatedBy: middleware.OperatorID(c),
	}
	result, err := h.generateLabel.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Labels generated successfully")
}

// TrackShipment handles GET /api/v1/shipping/tracking/:trackingNumber
func (h *ShippingHandler) TrackShipment(c *gin.Context) {
	trackingNumber := c.Param("trackingNumber")
	if trackingNumber == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Tracking number is required")
		return
	}

	query := usecases.TrackShipmentQuery{TrackingNumber: trackingNumber}
	result, err := h.trackShipment.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tracking retrieved successfully", result)
}
