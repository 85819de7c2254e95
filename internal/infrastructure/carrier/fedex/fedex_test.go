package fedex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titledesk/internal/domain/county"
	"titledesk/internal/domain/shipping"
	"titledesk/internal/shared/config"
	"titledesk/internal/shared/errors"
)

func carrierConfig(host string) *config.CarrierConfig {
	return &config.CarrierConfig{
		Host:               host,
		TrackHost:          host,
		ClientID:           "ship-id",
		ClientSecret:       "ship-secret",
		TrackClientID:      "track-id",
		TrackClientSecret:  "track-secret",
		AccountNumber:      "123456789",
		ServiceType:        "STANDARD_OVERNIGHT",
		PackagingType:      "FEDEX_ENVELOPE",
		PickupType:         "USE_SCHEDULED_PICKUP",
		LabelStockType:     "PAPER_85X11_TOP_HALF_LABEL",
		RequestTimeoutSecs: 5,
		Shipper: config.CarrierContactConfig{
			PersonName:  "Back Office",
			PhoneNumber: "5125550100",
			CompanyName: "TitleDesk",
			Street:      "100 Congress Ave",
			City:        "Austin",
			StateCode:   "TX",
			PostalCode:  "78701",
			CountryCode: "US",
		},
	}
}

func recipient() county.FedexAddress {
	return county.FedexAddress{
		PersonName:  "Travis County Tax Office",
		PhoneNumber: "5125550111",
		Street:      "5501 Airport Blvd",
		City:        "Austin",
		StateCode:   "TX",
		PostalCode:  "78751",
	}
}

func TestCreateShipment(t *testing.T) {
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "ship-id", r.FormValue("client_id"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-1",
			"token_type":   "bearer",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/label.pdf", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Write([]byte("%PDF-1.4 label"))
	})

	var server *httptest.Server
	mux.HandleFunc("/ship/v1/shipments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req shipRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "123456789", req.AccountNumber.Value)
		require.Len(t, req.RequestedShipment.Recipients, 1)
		assert.Equal(t, "Travis County Tax Office", req.RequestedShipment.Recipients[0].Contact.PersonName)

		json.NewEncoder(w).Encode(shipResponse{
			Output: shipOutput{TransactionShipments: []transactionShipment{{
				ServiceType:          "STANDARD_OVERNIGHT",
				ShipDatestamp:        "2025-03-10",
				MasterTrackingNumber: "794600000001",
				PieceResponses: []pieceResponse{{
					PackageDocuments: []packageDocument{{URL: server.URL + "/label.pdf"}},
				}},
			}}},
		})
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(carrierConfig(server.URL))

	result, err := client.CreateShipment(context.Background(), shipping.ShipmentRequest{
		BatchID:   7,
		Recipient: recipient(),
		ShipDate:  "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "794600000001", result.TrackingNumber)
	assert.Equal(t, "STANDARD_OVERNIGHT", result.ServiceType)
	assert.Equal(t, "2025-03-10", result.ShipDate)
	assert.Equal(t, []byte("%PDF-1.4 label"), result.Label)

	// second shipment reuses the cached token
	_, err = client.CreateShipment(context.Background(), shipping.ShipmentRequest{
		BatchID:   8,
		Recipient: recipient(),
		ShipDate:  "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestCreateShipmentCarrierErrorMessages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "tok-1",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/ship/v1/shipments", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(errorResponse{
			Errors: []apiError{
				{Code: "SHIP.RECIPIENT.POSTAL.INVALID", Message: "Recipient postal code is invalid."},
				{Code: "SHIP.SERVICE.UNAVAILABLE", Message: "Service not available to destination."},
			},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(carrierConfig(server.URL))

	_, err := client.CreateShipment(context.Background(), shipping.ShipmentRequest{
		BatchID:   7,
		Recipient: recipient(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsBadRequestError(err))
	assert.Contains(t, err.Error(), "Recipient postal code is invalid.")
	assert.Contains(t, err.Error(), "Service not available to destination.")
}

func TestCreateShipmentTokenFailureIsConflict(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(carrierConfig(server.URL))

	_, err := client.CreateShipment(context.Background(), shipping.ShipmentRequest{
		BatchID:   7,
		Recipient: recipient(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestTrackGroupsScanEvents(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "track-id", r.FormValue("client_id"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "track-tok",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/track/v1/trackingnumbers", func(w http.ResponseWriter, r *http.Request) {
		var req trackRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IncludeDetailedScans)

		json.NewEncoder(w).Encode(trackResponse{
			Output: trackOutput{CompleteTrackResults: []completeTrackResult{{
				TrackingNumber: "794600000001",
				TrackResults: []trackResult{{
					LatestStatusDetail: latestStatusDetail{Code: "IT", Description: "In transit"},
					DateAndTimes: []dateAndTime{
						{Type: "ESTIMATED_DELIVERY", DateTime: "2025-03-12T17:00:00-06:00"},
					},
					ScanEvents: []scanEvent{
						{DerivedStatusCode: "PU", DerivedStatus: "Picked up", EventDescription: "Picked up"},
						{DerivedStatusCode: "IT", DerivedStatus: "In transit", EventDescription: "Departed FedEx hub"},
						{DerivedStatusCode: "PU", DerivedStatus: "Picked up", EventDescription: "Tendered at drop box"},
						{DerivedStatusCode: "IT", DerivedStatus: "In transit", EventDescription: "Arrived at FedEx hub"},
					},
				}},
			}}},
		})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewTrackClient(carrierConfig(server.URL))

	summary, err := client.Track(context.Background(), "794600000001")
	require.NoError(t, err)
	assert.Equal(t, "In transit", summary.LatestStatus)
	require.Len(t, summary.EstimatedDeliveries, 1)

	// groups keep first-seen order: PU first, then IT, events appended in order
	require.Len(t, summary.ScanGroups, 2)
	assert.Equal(t, "PU", summary.ScanGroups[0].DerivedStatusCode)
	require.Len(t, summary.ScanGroups[0].Events, 2)
	assert.Equal(t, "Picked up", summary.ScanGroups[0].Events[0].EventDescription)
	assert.Equal(t, "Tendered at drop box", summary.ScanGroups[0].Events[1].EventDescription)
	assert.Equal(t, "IT", summary.ScanGroups[1].DerivedStatusCode)
	require.Len(t, summary.ScanGroups[1].Events, 2)
}

func TestTrackUnknownNumber(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "track-tok",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/track/v1/trackingnumbers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(trackResponse{})
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewTrackClient(carrierConfig(server.URL))

	_, err := client.Track(context.Background(), "000000000000")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
