package fedex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"titledesk/internal/domain/shipping"
	"titledesk/internal/infrastructure/cache"
	"titledesk/internal/shared/config"
	"titledesk/internal/shared/errors"
	"titledesk/internal/shared/logger"
)

// TrackClient follows shipments through the FedEx track API. Tracking uses
// separate credentials from shipping, so it carries its own token source.
// It implements shipping.TrackingProvider.
type TrackClient struct {
	cfg        *config.CarrierConfig
	httpClient *http.Client
	tokens     *tokenSource
	logger     logger.Interface
}

// NewTrackClient creates a track-API client with its own token cache.
func NewTrackClient(cfg *config.CarrierConfig) *TrackClient {
	return &TrackClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSecs) * time.Second,
		},
		tokens: newTokenSource(cfg.TrackHost, cfg.TrackClientID, cfg.TrackClientSecret, scopeTrack,
			cache.NewTTLCache[tokenScope, string]()),
		logger: logger.NewLogger().With("component", "carrier.fedex.track"),
	}
}

// Track queries the carrier and condenses the response for operators.
func (c *TrackClient) Track(ctx context.Context, trackingNumber string) (*shipping.TrackingSummary, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	body := trackRequest{
		TrackingInfo: []trackingInfo{{
			TrackingNumberInfo: trackingNumberInfo{TrackingNumber: trackingNumber},
		}},
		IncludeDetailedScans: true,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tracking request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TrackHost+"/track/v1/trackingnumbers", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build tracking request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tracking request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tracking response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, carrierError(resp.StatusCode, raw)
	}

	var trackResp trackResponse
	if err := json.Unmarshal(raw, &trackResp); err != nil {
		return nil, fmt.Errorf("failed to decode tracking response: %w", err)
	}

	if len(trackResp.Output.CompleteTrackResults) == 0 ||
		len(trackResp.Output.CompleteTrackResults[0].TrackResults) == 0 {
		return nil, errors.NewNotFoundError("no tracking information found for " + trackingNumber)
	}

	result := trackResp.Output.CompleteTrackResults[0].TrackResults[0]
	return summarize(trackingNumber, result), nil
}

// summarize reshapes one carrier track result: scan events are grouped by
// (derivedStatusCode, derivedStatus) preserving first-seen group order.
func summarize(trackingNumber string, result trackResult) *shipping.TrackingSummary {
	summary := &shipping.TrackingSummary{
		TrackingNumber:   trackingNumber,
		LatestStatusCode: result.LatestStatusDetail.Code,
		LatestStatus:     result.LatestStatusDetail.Description,
		ShipperAddress:   formatAddress(result.ShipperInformation.LocationContactAndAddress.Address),
		RecipientAddress: formatAddress(result.RecipientInformation.LocationContactAndAddress.Address),
	}

	for _, d := range result.DateAndTimes {
		summary.EstimatedDeliveries = append(summary.EstimatedDeliveries, shipping.EstimatedDelivery{
			Type:     d.Type,
			DateTime: d.DateTime,
		})
	}

	type groupKey struct {
		code   string
		status string
	}
	index := make(map[groupKey]int)

	for _, ev := range result.ScanEvents {
		key := groupKey{code: ev.DerivedStatusCode, status: ev.DerivedStatus}
		i, ok := index[key]
		if !ok {
			summary.ScanGroups = append(summary.ScanGroups, shipping.ScanGroup{
				DerivedStatusCode: ev.DerivedStatusCode,
				DerivedStatus:     ev.DerivedStatus,
			})
			i = len(summary.ScanGroups) - 1
			index[key] = i
		}
		summary.ScanGroups[i].Events = append(summary.ScanGroups[i].Events, shipping.ScanEvent{
			Date:                 ev.Date,
			EventType:            ev.EventType,
			EventDescription:     ev.EventDescription,
			ExceptionDescription: ev.ExceptionDescription,
			Location:             formatAddress(ev.ScanLocation),
		})
	}

	return summary
}

func formatAddress(a trackAddress) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.City, a.StateOrProvinceCode, a.PostalCode, a.CountryCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
