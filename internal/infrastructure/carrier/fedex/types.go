package fedex

// Wire shapes for the FedEx ship and track APIs. Only the fields this
// service reads or writes are modeled.

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	TransactionID string     `json:"transactionId"`
	Errors        []apiError `json:"errors"`
}

type contact struct {
	PersonName  string `json:"personName"`
	PhoneNumber string `json:"phoneNumber"`
	CompanyName string `json:"companyName,omitempty"`
}

type address struct {
	StreetLines         []string `json:"streetLines"`
	City                string   `json:"city"`
	StateOrProvinceCode string   `json:"stateOrProvinceCode"`
	PostalCode          string   `json:"postalCode"`
	CountryCode         string   `json:"countryCode"`
}

type party struct {
	Contact contact `json:"contact"`
	Address address `json:"address"`
}

type requestedPackageLineItem struct {
	Weight weight `json:"weight"`
}

type weight struct {
	Units string  `json:"units"`
	Value float64 `json:"value"`
}

type shippingChargesPayment struct {
	PaymentType string `json:"paymentType"`
}

type labelSpecification struct {
	ImageType       string `json:"imageType"`
	LabelStockType  string `json:"labelStockType"`
	LabelFormatType string `json:"labelFormatType"`
}

type requestedShipment struct {
	Shipper                   party                      `json:"shipper"`
	Recipients                []party                    `json:"recipients"`
	ShipDatestamp             string                     `json:"shipDatestamp"`
	ServiceType               string                     `json:"serviceType"`
	PackagingType             string                     `json:"packagingType"`
	PickupType                string                     `json:"pickupType"`
	BlockInsightVisibility    bool                       `json:"blockInsightVisibility"`
	ShippingChargesPayment    shippingChargesPayment     `json:"shippingChargesPayment"`
	LabelSpecification        labelSpecification         `json:"labelSpecification"`
	RequestedPackageLineItems []requestedPackageLineItem `json:"requestedPackageLineItems"`
}

type shipRequest struct {
	LabelResponseOptions string            `json:"labelResponseOptions"`
	AccountNumber        accountNumber     `json:"accountNumber"`
	RequestedShipment    requestedShipment `json:"requestedShipment"`
}

type accountNumber struct {
	Value string `json:"value"`
}

type packageDocument struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	DocType     string `json:"docType"`
}

type pieceResponse struct {
	PackageDocuments []packageDocument `json:"packageDocuments"`
}

type transactionShipment struct {
	ServiceType          string          `json:"serviceType"`
	ShipDatestamp        string          `json:"shipDatestamp"`
	MasterTrackingNumber string          `json:"masterTrackingNumber"`
	PieceResponses       []pieceResponse `json:"pieceResponses"`
}

type shipOutput struct {
	TransactionShipments []transactionShipment `json:"transactionShipments"`
}

type shipResponse struct {
	TransactionID string     `json:"transactionId"`
	Output        shipOutput `json:"output"`
}

type trackingNumberInfo struct {
	TrackingNumber string `json:"trackingNumber"`
}

type trackingInfo struct {
	TrackingNumberInfo trackingNumberInfo `json:"trackingNumberInfo"`
}

type trackRequest struct {
	TrackingInfo         []trackingInfo `json:"trackingInfo"`
	IncludeDetailedScans bool           `json:"includeDetailedScans"`
}

type trackAddress struct {
	City                string `json:"city"`
	StateOrProvinceCode string `json:"stateOrProvinceCode"`
	CountryCode         string `json:"countryCode"`
	PostalCode          string `json:"postalCode"`
}

type locationDetail struct {
	LocationContactAndAddress struct {
		Address trackAddress `json:"address"`
	} `json:"locationContactAndAddress"`
}

type scanEvent struct {
	Date                 string       `json:"date"`
	EventType            string       `json:"eventType"`
	EventDescription     string       `json:"eventDescription"`
	ExceptionDescription string       `json:"exceptionDescription"`
	DerivedStatusCode    string       `json:"derivedStatusCode"`
	DerivedStatus        string       `json:"derivedStatus"`
	ScanLocation         trackAddress `json:"scanLocation"`
}

type latestStatusDetail struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type dateAndTime struct {
	Type     string `json:"type"`
	DateTime string `json:"dateTime"`
}

type trackResult struct {
	TrackingNumberInfo   trackingNumberInfo   `json:"trackingNumberInfo"`
	LatestStatusDetail   latestStatusDetail   `json:"latestStatusDetail"`
	DateAndTimes         []dateAndTime        `json:"dateAndTimes"`
	ScanEvents           []scanEvent          `json:"scanEvents"`
	ShipperInformation   locationDetail       `json:"shipperInformation"`
	RecipientInformation locationDetail       `json:"recipientInformation"`
}

type completeTrackResult struct {
	TrackingNumber string        `json:"trackingNumber"`
	TrackResults   []trackResult `json:"trackResults"`
}

type trackOutput struct {
	CompleteTrackResults []completeTrackResult `json:"completeTrackResults"`
}

type trackResponse struct {
	TransactionID string      `json:"transactionId"`
	Output        trackOutput `json:"output"`
}
