package domain

// Journey is the itinerary container. Exactly one journey with one active
// itinerary exists per request; the protocol has no multi-segment batching.
type Journey struct {
	JourneyKey  string      `json:"journeyKey"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Itinerary   []Itinerary `json:"itinerary"`
}

// Itinerary is one bookable fare option over an ordered sequence of segments.
// TotalPrice is derived: it always equals BaseFare + Taxes after aggregation.
type Itinerary struct {
	UID         string  `json:"uid"`
	IndexNumber int     `json:"indexNumber"`
	BaseFare    float64 `json:"baseFare"`
	Taxes       float64 `json:"taxes"`
	TotalPrice  float64 `json:"totalPrice"`
	Currency    string  `json:"currency"`
	Provider    string  `json:"provider"`

	PromoCodeType string `json:"promoCodeType"`
	ValCarrier    string `json:"valCarrier"`
	FareFamily    string `json:"fareFamily"`

	AirSegments  []AirSegment      `json:"airSegments"`
	PriceBreakup []PriceBreakupRow `json:"priceBreakup"`

	FreeSeat        bool     `json:"freeSeat"`
	FreeMeal        bool     `json:"freeMeal"`
	CarbonEmission  string   `json:"carbonEmission"`
	RefundableFare  bool     `json:"refundableFare"`
	FareType        string   `json:"fareType"`
	PromotionalCode string   `json:"promotionalCode"`
	Key             string   `json:"key"`
	HostTokens      []string `json:"hostTokens"`
	SessionKey      string   `json:"sessionKey"`
	InPolicy        bool     `json:"inPolicy"`
	IsRecommended   bool     `json:"isRecommended"`
}

// AirSegment is one flown leg. Segments are created once per decoded supplier
// tuple and immutable afterward.
type AirSegment struct {
	AirlineCode    string        `json:"airlineCode"`
	AirlineName    string        `json:"airlineName"`
	FlightNumber   string        `json:"fltNum"`
	ClassOfService string        `json:"classofService"`
	CabinClass     string        `json:"cabinClass"`
	Departure      AirportDetail `json:"departure"`
	Arrival        AirportDetail `json:"arrival"`

	OperatingCarrier OperatingCarrier `json:"operatingCarrier"`

	// FlyingTime is "H:MM"; empty means unknown duration.
	FlyingTime string `json:"flyingTime"`
	TravelTime string `json:"travelTime"`
	EquipType  string `json:"equipType"`
	Group      string `json:"group"`

	BaggageInfo string `json:"baggageInfo"`
	HandBaggage string `json:"handBaggage"`

	ProductClass       string `json:"productClass"`
	NoSeats            int    `json:"noSeats"`
	FareBasisCode      string `json:"fareBasisCode"`
	AvailabilitySource string `json:"availabilitySource"`
	IsConnect          bool   `json:"isConnect"`
	Key                string `json:"key"`
}

// AirportDetail is a departure or arrival point with local date and time in
// the canonical DD/MM/YYYY + HH:mm representation, enriched best-effort from
// the reference lookup.
type AirportDetail struct {
	Code        string `json:"code"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Name        string `json:"name"`
	Terminal    string `json:"terminal"`
	CityCode    string `json:"cityCode"`
	CityName    string `json:"cityName"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

// OperatingCarrier identifies the carrier actually flying the segment.
type OperatingCarrier struct {
	Code string `json:"code"`
}

// PriceBreakupRow is the per-passenger-type decomposition of the price.
// TaxBreakup entries are unique by tax type: a repeated tax type for the same
// passenger type is dropped, not summed. That mirrors the vendor contract.
type PriceBreakupRow struct {
	PassengerType string       `json:"passengerType"`
	NoOfPassenger int          `json:"noOfPassenger"`
	BaseFare      float64      `json:"baseFare"`
	Tax           float64      `json:"tax"`
	TaxBreakup    []TaxBreakup `json:"taxBreakup"`
	AirPenalty    []AirPenalty `json:"airPenalty"`
	Key           string       `json:"key"`
}

// TaxBreakup is one itemized tax line.
type TaxBreakup struct {
	TaxType string  `json:"taxType"`
	Amount  float64 `json:"amount"`
}

// AirPenalty is a change or cancellation penalty line.
type AirPenalty struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
}

// FareSummary is the output of the fare aggregation engine: one breakup row
// per passenger type plus engine-wide totals.
type FareSummary struct {
	PriceBreakup []PriceBreakupRow
	TotalPrice   float64
	Taxes        float64
	BaseFare     float64
}

// SearchResponse is the canonical search result envelope.
type SearchResponse struct {
	UniqueKey string    `json:"uniqueKey"`
	TraceID   string    `json:"traceId"`
	Journey   []Journey `json:"journey"`
}

// PricingJourney is a journey annotated with a re-quote outcome.
type PricingJourney struct {
	Journey
	PriceChange bool `json:"priceChange"`
}

// PricingResponse is the canonical pricing result envelope.
type PricingResponse struct {
	UniqueKey string           `json:"uniqueKey"`
	TraceID   string           `json:"traceId"`
	Journey   []PricingJourney `json:"journey"`
}
