package shipping

import (
	"context"

	"titledesk/internal/domain/county"
)

// ShipmentRequest asks a carrier for a return label to a county office.
type ShipmentRequest struct {
	BatchID   uint
	Recipient county.FedexAddress
	ShipDate  string
	Reference string
}

// ShipmentResult is the purchased label.
type ShipmentResult struct {
	ServiceType    string
	ShipDate       string
	TrackingNumber string
	Label          []byte
}

// LabelProvider purchases return-shipping labels.
type LabelProvider interface {
	CreateShipment(ctx context.Context, req ShipmentRequest) (*ShipmentResult, error)
}

// ScanEvent is one carrier scan.
type ScanEvent struct {
	Date                 string `json:"date"`
	EventType            string `json:"eventType"`
	EventDescription     string `json:"eventDescription"`
	ExceptionDescription string `json:"exceptionDescription,omitempty"`
	Location             string `json:"location,omitempty"`
}

// ScanGroup bundles scan events sharing a derived status, in first-seen order.
type ScanGroup struct {
	DerivedStatusCode string      `json:"derivedStatusCode"`
	DerivedStatus     string      `json:"derivedStatus"`
	Events            []ScanEvent `json:"events"`
}

// EstimatedDelivery is one time-window entry from the carrier.
type EstimatedDelivery struct {
	Type     string `json:"type"`
	DateTime string `json:"dateTime"`
}

// TrackingSummary is the condensed tracking view served to operators.
type TrackingSummary struct {
	TrackingNumber      string              `json:"trackingNumber"`
	LatestStatusCode    string              `json:"latestStatusCode"`
	LatestStatus        string              `json:"latestStatus"`
	ShipperAddress      string              `json:"shipperAddress,omitempty"`
	RecipientAddress    string              `json:"recipientAddress,omitempty"`
	EstimatedDeliveries []EstimatedDelivery `json:"estimatedDeliveries,omitempty"`
	ScanGroups          []ScanGroup         `json:"scanGroups"`
}

// TrackingProvider follows shipments by tracking number.
type TrackingProvider interface {
	Track(ctx context.Context, trackingNumber string) (*TrackingSummary, error)
}
