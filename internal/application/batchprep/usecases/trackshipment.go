package usecases

import (
	"context"

	"titledesk/internal/domain/shipping"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// TrackShipmentQuery asks the carrier for a shipment's scan history.
type TrackShipmentQuery struct {
	TrackingNumber string
}

// TrackShipmentResult wraps the condensed tracking view.
type TrackShipmentResult struct {
	Summary *shipping.TrackingSummary `json:"summary"`
}

// TrackShipmentUseCase queries the carrier tracking API.
type TrackShipmentUseCase struct {
	tracker shipping.TrackingProvider
	logger  logger.Interface
}

// NewTrackShipmentUseCase creates a new use case.
func NewTrackShipmentUseCase(tracker shipping.TrackingProvider, logger logger.Interface) *TrackShipmentUseCase {
	return &TrackShipmentUseCase{tracker: tracker, logger: logger}
}

func (uc *TrackShipmentUseCase) Execute(ctx context.Context, query TrackShipmentQuery) (*TrackShipmentResult, error) {
	uc.logger.Infow("executing track shipment use case",
		"tracking_number", query.TrackingNumber,
	)

	if query.TrackingNumber == "" {
		return nil, errors.NewValidationError("tracking number is required")
	}

	summary, err := uc.tracker.Track(ctx, query.TrackingNumber)
	if err != nil {
		uc.logger.Errorw("carrier tracking failed", "tracking_number", query.TrackingNumber, "error", err)
		return nil, err
	}

	return &TrackShipmentResult{Summary: summary}, nil
}
