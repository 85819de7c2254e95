// Package fedex implements the carrier label and tracking providers against
// the FedEx REST APIs.
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

// Client purchases return labels through the FedEx ship API. It implements
// shipping.LabelProvider.
type Client struct {
	cfg        *config.CarrierConfig
	httpClient *http.Client
	tokens     *tokenSource
	logger     logger.Interface
}

// NewClient creates a ship-API client with its own token cache.
func NewClient(cfg *config.CarrierConfig) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeoutSecs) * time.Second,
		},
		tokens: newTokenSource(cfg.Host, cfg.ClientID, cfg.ClientSecret, scopeShip,
			cache.NewTTLCache[tokenScope, string]()),
		logger: logger.NewLogger().With("component", "carrier.fedex"),
	}
}

// CreateShipment purchases a label to the recipient and downloads its
// document stream.
func (c *Client) CreateShipment(ctx context.Context, req shipping.ShipmentRequest) (*shipping.ShipmentResult, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	body := c.buildShipRequest(req)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal shipment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host+"/ship/v1/shipments", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build shipment request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("shipment request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read shipment response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, carrierError(resp.StatusCode, raw)
	}

	var shipResp shipResponse
	if err := json.Unmarshal(raw, &shipResp); err != nil {
		return nil, fmt.Errorf("failed to decode shipment response: %w", err)
	}

	if len(shipResp.Output.TransactionShipments) == 0 {
		return nil, errors.NewInternalError("carrier response contained no shipments")
	}
	shipment := shipResp.Output.TransactionShipments[0]

	labelURL := ""
	if len(shipment.PieceResponses) > 0 && len(shipment.PieceResponses[0].PackageDocuments) > 0 {
		labelURL = shipment.PieceResponses[0].PackageDocuments[0].URL
	}
	if labelURL == "" {
		return nil, errors.NewInternalError("carrier response contained no label document")
	}

	label, err := c.downloadLabel(ctx, labelURL, token)
	if err != nil {
		return nil, err
	}

	c.logger.Infow("carrier label created",
		"batch_id", req.BatchID,
		"tracking_number", shipment.MasterTrackingNumber)

	return &shipping.ShipmentResult{
		ServiceType:    shipment.ServiceType,
		ShipDate:       shipment.ShipDatestamp,
		TrackingNumber: shipment.MasterTrackingNumber,
		Label:          label,
	}, nil
}

func (c *Client) buildShipRequest(req shipping.ShipmentRequest) shipRequest {
	shipper := c.cfg.Shipper
	return shipRequest{
		LabelResponseOptions: "URL_ONLY",
		AccountNumber:        accountNumber{Value: c.cfg.AccountNumber},
		RequestedShipment: requestedShipment{
			Shipper: party{
				Contact: contact{
					PersonName:  shipper.PersonName,
					PhoneNumber: shipper.PhoneNumber,
					CompanyName: shipper.CompanyName,
				},
				Address: address{
					StreetLines:         []string{shipper.Street},
					City:                shipper.City,
					StateOrProvinceCode: shipper.StateCode,
					PostalCode:          shipper.PostalCode,
					CountryCode:         shipper.CountryCode,
				},
			},
			Recipients: []party{{
				Contact: contact{
					PersonName:  req.Recipient.PersonName,
					PhoneNumber: req.Recipient.PhoneNumber,
					CompanyName: req.Recipient.CompanyName,
				},
				Address: address{
					StreetLines:         []string{req.Recipient.Street},
					City:                req.Recipient.City,
					StateOrProvinceCode: req.Recipient.StateCode,
					PostalCode:          req.Recipient.PostalCode,
					CountryCode:         recipientCountry(req.Recipient.CountryCode),
				},
			}},
			ShipDatestamp:          req.ShipDate,
			ServiceType:            c.cfg.ServiceType,
			PackagingType:          c.cfg.PackagingType,
			PickupType:             c.cfg.PickupType,
			BlockInsightVisibility: false,
			ShippingChargesPayment: shippingChargesPayment{PaymentType: "SENDER"},
			LabelSpecification: labelSpecification{
				ImageType:       "PDF",
				LabelStockType:  c.cfg.LabelStockType,
				LabelFormatType: "COMMON2D",
			},
			RequestedPackageLineItems: []requestedPackageLineItem{{
				Weight: weight{Units: "LB", Value: 1},
			}},
		},
	}
}

func recipientCountry(code string) string {
	if code == "" {
		return "US"
	}
	return code
}

func (c *Client) downloadLabel(ctx context.Context, url, token string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build label download request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("label download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, carrierError(resp.StatusCode, raw)
	}

	label, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read label stream: %w", err)
	}
	if len(label) == 0 {
		return nil, errors.NewInternalError("carrier returned an empty label document")
	}
	return label, nil
}

// carrierError surfaces the carrier's own error messages, concatenated.
func carrierError(status int, raw []byte) error {
	var errResp errorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && len(errResp.Errors) > 0 {
		messages := make([]string, 0, len(errResp.Errors))
		for _, e := range errResp.Errors {
			messages = append(messages, e.Message)
		}
		msg := strings.Join(messages, "; ")
		if status >= 400 && status < 500 {
			return errors.NewBadRequestError(msg)
		}
		return errors.NewInternalError(msg)
	}
	return errors.NewInternalError(fmt.Sprintf("carrier request failed with status %d", status))
}
