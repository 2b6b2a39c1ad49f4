// Package domain contains the canonical entities exchanged with callers of the
// distribution gateway. These shapes are supplier-agnostic: the vendor codec in
// internal/alliance translates them to and from the wire protocol.
package domain

// CredentialType selects the supplier environment and credential set.
type CredentialType string

// Supported credential types.
const (
	CredentialTest CredentialType = "TEST"
	CredentialLive CredentialType = "LIVE"
)

// TypeOfTrip is the journey shape requested by the caller.
type TypeOfTrip string

// Supported trip types.
const (
	TripOneWay    TypeOfTrip = "ONEWAY"
	TripRoundTrip TypeOfTrip = "ROUNDTRIP"
	TripMultiCity TypeOfTrip = "MULTICITY"
)

// TravelType distinguishes domestic from international travel.
type TravelType string

// Supported travel types.
const (
	TravelDomestic      TravelType = "DOM"
	TravelInternational TravelType = "INT"
)

// Credential is the vendor credential bundle supplied per request.
type Credential struct {
	UserID           string `json:"userId"`
	Password         string `json:"password"`
	PseudoCityCode   string `json:"pseudoCityCode"`
	WSAPTargetBranch string `json:"wSAP_TargetBranch"`
	AccountNumber    string `json:"accountNumber"`
}

// CorporateDeal identifies a negotiated deal code for an airline.
type CorporateDeal struct {
	AirlineCode  string `json:"airlineCode"`
	DealCode     string `json:"dealCode"`
	DealCodeType string `json:"dealCodeType"`
}

// Vendor describes one supplier entry in the request's vendor list.
// This gateway serves a single supplier; only vendorList[0] is consulted.
type Vendor struct {
	VendorCode      string          `json:"vendorCode"`
	Credential      Credential      `json:"credential"`
	CorporateDeals  []CorporateDeal `json:"corporatedealCode"`
	FareTypes       []string        `json:"fareTypes"`
	ProductClass    []string        `json:"productClass"`
	IncludeAirlines []string        `json:"includeAirlines"`
	ExcludeAirlines []string        `json:"excludeAirlines"`
}

// CommonRequest carries the envelope fields shared by every operation.
type CommonRequest struct {
	TypeOfTrip     TypeOfTrip     `json:"typeOfTrip"`
	CredentialType CredentialType `json:"credentialType"`
	TravelType     TravelType     `json:"travelType"`
	SystemEntity   string         `json:"systemEntity,omitempty"`
	SystemName     string         `json:"systemName,omitempty"`
	CorpCode       string         `json:"corpCode,omitempty"`
	RequestorCode  string         `json:"requestorCode,omitempty"`
	EmpCode        string         `json:"empCode,omitempty"`

	// UniqueKey and TraceID are generated by the gateway when absent.
	UniqueKey string `json:"uniqueKey"`
	TraceID   string `json:"traceId,omitempty"`

	VendorList []Vendor `json:"vendorList"`
}

// UserID returns the vendor user id used as rqid on every supplier call.
func (r *CommonRequest) UserID() string {
	if len(r.VendorList) == 0 {
		return ""
	}
	return r.VendorList[0].Credential.UserID
}

// Sector is one requested origin-destination pair for a search.
type Sector struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// DepartureDate is in DD-MM-YYYY format.
	DepartureDate     string `json:"departureDate"`
	DepartureTimeFrom string `json:"departureTimeFrom,omitempty"`
	DepartureTimeTo   string `json:"departureTimeTo,omitempty"`
	CabinClass        string `json:"cabinClass"`
}

// PaxDetail carries the requested passenger counts.
type PaxDetail struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Youths   int `json:"youths,omitempty"`
	Students int `json:"student,omitempty"`
	Seniors  int `json:"senior,omitempty"`
}

// SearchRequest is the canonical flight availability request.
type SearchRequest struct {
	CommonRequest
	Sectors   []Sector  `json:"sectors"`
	PaxDetail PaxDetail `json:"paxDetail"`
	MaxStops  int       `json:"maxStops,omitempty"`
	MaxResult int       `json:"maxResult,omitempty"`

	// IndexOffset is the starting itinerary index number. Defaults to 1.
	IndexOffset int `json:"indexOffset,omitempty"`
}

// PricingRequest re-quotes a previously searched itinerary.
type PricingRequest struct {
	CommonRequest
	Journey []Journey `json:"journey"`
}

// BookingRequest creates and pays a reservation for a priced itinerary.
type BookingRequest struct {
	CommonRequest
	Journey       []BookingJourney `json:"journey"`
	GSTDetails    *GSTDetails      `json:"gstDetails,omitempty"`
	IsHoldBooking bool             `json:"isHoldBooking,omitempty"`
}

// TicketRequest issues tickets (the supplier's payment step) for a booking
// that already holds a record locator.
type TicketRequest struct {
	CommonRequest
	Journey []BookingJourney `json:"journey"`
}

// ImportPNRRequest retrieves a supplier booking by record locator.
type ImportPNRRequest struct {
	CommonRequest
	Journey []ImportPNRJourney `json:"journey"`
}

// ImportPNRJourney names the record locator to import.
type ImportPNRJourney struct {
	UID         string               `json:"uid,omitempty"`
	Origin      string               `json:"origin"`
	Destination string               `json:"destination"`
	Itinerary   []ImportPNRItinerary `json:"itinerary"`
}

// ImportPNRItinerary holds the supplier record locator.
type ImportPNRItinerary struct {
	RecordLocator string `json:"recordLocator"`
}

// GSTDetails carries optional tax registration data for corporate bookings.
type GSTDetails struct {
	FullName     string `json:"fullName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	HomePhone    string `json:"homePhone,omitempty"`
	WorkPhone    string `json:"workPhone,omitempty"`
	GSTNumber    string `json:"gstNumber,omitempty"`
	CompanyName  string `json:"companyName,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	CountryCode  string `json:"countryCode,omitempty"`
}
