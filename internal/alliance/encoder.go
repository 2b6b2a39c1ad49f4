package alliance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

const (
	appInformation = "information"
	appTransaction = "transaction"
)

// salutations remaps adult titles to the supplier's child/infant salutation
// codes. Anything unmapped falls back to MSTR.
var salutations = map[string]string{
	"MR":   "MSTR",
	"MRS":  "MISS",
	"MISS": "MISS",
	"MS":   "MISS",
}

// NewSearchParams builds the get_schedule_v2 query. flightDate is already in
// the supplier's YYYYMMDD form.
func NewSearchParams(userID, org, des, flightDate string) *Params {
	p := NewParams()
	p.Add("rqid", userID)
	p.Add("airline_code", SupplierCode)
	p.Add("app", appInformation)
	p.Add("action", ActionSearch)
	p.Add("org", org)
	p.Add("des", des)
	p.Add("flight_date", flightDate)
	return p
}

// NewFareParams builds the get_fare_v2_new query for one flight group. A
// connecting group collapses into a single call: org is the first sector's
// origin, des the last sector's destination, and flight_no the comma-joined
// flight numbers without the airline prefix. The flight date passes through
// in the supplier's own YYYYMMDD form.
func NewFareParams(userID string, sectors []ScheduleFlight) (*Params, error) {
	if len(sectors) == 0 {
		return nil, fmt.Errorf("fare query needs at least one sector")
	}

	numbers := make([]string, 0, len(sectors))
	for _, s := range sectors {
		numbers = append(numbers, s.FlightNumber())
	}

	p := NewParams()
	p.Add("rqid", userID)
	p.Add("airline_code", SupplierCode)
	p.Add("action", ActionFare)
	p.Add("app", appInformation)
	p.Add("org", sectors[0].Origin)
	p.Add("des", sectors[len(sectors)-1].Destination)
	p.Add("flight_no", strings.Join(numbers, ","))
	p.Add("flight_date", sectors[0].DepartureDate)
	return p, nil
}

// NewBookParams builds the booking_v2 query: header fields, one positional
// field group per traveler, passenger counts, infant-parent links and
// optional GST fields, in that order.
func NewBookParams(userID string, journey *domain.BookingJourney, gst *domain.GSTDetails) (*Params, error) {
	if len(journey.Itinerary) == 0 || len(journey.Itinerary[0].AirSegments) == 0 {
		return nil, fmt.Errorf("booking needs at least one air segment")
	}
	itin := &journey.Itinerary[0]
	seg := &itin.AirSegments[0]

	depDate, err := EncodeSegmentDate(seg.Departure.Date)
	if err != nil {
		return nil, fmt.Errorf("departure date: %w", err)
	}

	p := NewParams()
	p.Add("rqid", userID)
	p.Add("airline_code", SupplierCode)
	p.Add("action", ActionBook)
	p.Add("app", appTransaction)
	// Flight numbers and fare basis codes comma-join across the whole
	// itinerary; the date comes from the first segment only.
	flightNos := make([]string, 0, len(itin.AirSegments))
	fareBases := make([]string, 0, len(itin.AirSegments))
	for i := range itin.AirSegments {
		flightNos = append(flightNos, itin.AirSegments[i].FlightNumber)
		fareBases = append(fareBases, itin.AirSegments[i].FareBasisCode)
	}

	p.Add("org", seg.Departure.Code)
	p.Add("des", seg.Arrival.Code)
	p.Add("dep_flight_no", strings.Join(flightNos, ","))
	p.Add("dep_date", depDate)
	p.Add("subclass_dep", strings.Join(fareBases, ","))
	if len(journey.TravellerDetails) > 0 {
		p.Add("caller", journey.TravellerDetails[0].FirstName)
	}

	counts := map[domain.PaxType]int{}
	adults := 0
	for i := range journey.TravellerDetails {
		trv := &journey.TravellerDetails[i]
		typ := trv.Type
		if typ != domain.PaxChild && typ != domain.PaxInfant {
			typ = domain.PaxAdult
		}
		counts[typ]++
		idx := counts[typ]
		prefix := paxPrefix(typ)

		if typ == domain.PaxAdult {
			adults++
			if idx == 1 {
				p.Add("contact_1", trv.FirstName)
				if trv.ContactDetails != nil {
					p.Add("email", trv.ContactDetails.Email)
				}
			}
		}

		if err := addTraveler(p, prefix, idx, typ, trv); err != nil {
			return nil, fmt.Errorf("traveler %s %s: %w", trv.FirstName, trv.LastName, err)
		}
	}

	p.Add("num_pax_adult", strconv.Itoa(counts[domain.PaxAdult]))
	p.Add("num_pax_child", strconv.Itoa(counts[domain.PaxChild]))
	p.Add("num_pax_infant", strconv.Itoa(counts[domain.PaxInfant]))

	// Each infant links to an adult by 1-based index, clamped to the number
	// of adults actually present.
	for i := 1; i <= counts[domain.PaxInfant]; i++ {
		parent := i
		if parent > adults {
			parent = adults
		}
		p.Add(fmt.Sprintf("i_parent_%d", i), strconv.Itoa(parent))
	}

	if gst != nil {
		addIfPresent(p, "gst_number", gst.GSTNumber)
		addIfPresent(p, "gst_company", gst.CompanyName)
		addIfPresent(p, "gst_email", gst.EmailAddress)
		addIfPresent(p, "gst_phone", gst.WorkPhone)
	}

	return p, nil
}

func paxPrefix(t domain.PaxType) string {
	switch t {
	case domain.PaxChild:
		return "c"
	case domain.PaxInfant:
		return "i"
	default:
		return "a"
	}
}

func addTraveler(p *Params, prefix string, idx int, typ domain.PaxType, trv *domain.Traveler) error {
	field := func(name string) string {
		return fmt.Sprintf("%s_%s_%d", prefix, name, idx)
	}

	p.Add(field("first_name"), trv.FirstName)
	p.Add(field("last_name"), trv.LastName)
	p.Add(field("salutation"), salutationFor(typ, trv.Title))
	p.Add(field("title"), strings.ToUpper(trv.Title))

	if trv.DOB != "" {
		dob, err := EncodeISODate(trv.DOB)
		if err != nil {
			return fmt.Errorf("birth date: %w", err)
		}
		p.Add(field("birthdate"), dob)
	}

	addIfPresent(p, field("mobile"), trv.ContactDetails.PhoneOrMobile())

	nationality := trv.Nationality
	if trv.PassportDetails != nil {
		if trv.PassportDetails.IssuingCountry != "" {
			nationality = trv.PassportDetails.IssuingCountry
		}
		if trv.PassportDetails.Number != "" {
			p.Add(field("passport"), trv.PassportDetails.Number)
			if trv.PassportDetails.ExpiryDate != "" {
				exp, err := EncodeISODate(trv.PassportDetails.ExpiryDate)
				if err != nil {
					return fmt.Errorf("passport expiry: %w", err)
				}
				p.Add(field("passport_exp"), exp)
			}
		}
	}
	p.Add(field("nationality"), nationality)
	return nil
}

// salutationFor returns the wire salutation: adults keep their title
// uppercased, children and infants go through the salutation remap.
func salutationFor(typ domain.PaxType, title string) string {
	upper := strings.ToUpper(title)
	if typ == domain.PaxAdult {
		return upper
	}
	if mapped, ok := salutations[upper]; ok {
		return mapped
	}
	return "MSTR"
}

func addIfPresent(p *Params, key, value string) {
	if value != "" {
		p.Add(key, value)
	}
}

// NewPaymentParams builds the payment (ticket issue) query.
func NewPaymentParams(userID, bookCode string) *Params {
	p := NewParams()
	p.Add("rqid", userID)
	p.Add("airline_code", SupplierCode)
	p.Add("action", ActionPayment)
	p.Add("app", appTransaction)
	p.Add("book_code", bookCode)
	return p
}

// NewPNRRetrieveParams builds the get_all_book_info_2 query.
func NewPNRRetrieveParams(userID, bookCode string) *Params {
	p := NewParams()
	p.Add("rqid", userID)
	p.Add("airline_code", SupplierCode)
	p.Add("action", ActionRetrievePNR)
	p.Add("app", appInformation)
	p.Add("book_code", bookCode)
	return p
}

// NewPNRFareParams builds the get_book_price_detail_info_2 query.
func NewPNRFareParams(userID, bookCode string) *Params {
	p := NewParams()
	p.Add("rqid", userID)
	p.Add("airline_code", SupplierCode)
	p.Add("action", ActionPNRFare)
	p.Add("app", appInformation)
	p.Add("book_code", bookCode)
	return p
}

// WireFlightsFromItinerary rebuilds supplier flight tuples from a canonical
// itinerary so a priced option can be re-quoted through the fare endpoint.
func WireFlightsFromItinerary(itin *domain.Itinerary) ([]ScheduleFlight, error) {
	if len(itin.AirSegments) == 0 {
		return nil, fmt.Errorf("itinerary has no air segments")
	}

	flights := make([]ScheduleFlight, 0, len(itin.AirSegments))
	for i := range itin.AirSegments {
		seg := &itin.AirSegments[i]

		depDate, err := EncodeSegmentDate(seg.Departure.Date)
		if err != nil {
			return nil, fmt.Errorf("segment %d departure date: %w", i, err)
		}
		arrDate, err := EncodeSegmentDate(seg.Arrival.Date)
		if err != nil {
			return nil, fmt.Errorf("segment %d arrival date: %w", i, err)
		}

		flights = append(flights, ScheduleFlight{
			FlightCode:        seg.AirlineCode + "-" + seg.FlightNumber,
			Origin:            seg.Departure.Code,
			Destination:       seg.Arrival.Code,
			DepartureDate:     depDate,
			ArrivalDate:       arrDate,
			DepartureTime:     strings.ReplaceAll(seg.Departure.Time, ":", ""),
			ArrivalTime:       strings.ReplaceAll(seg.Arrival.Time, ":", ""),
			Transit:           seg.Departure.Code + "-" + seg.Arrival.Code,
			Status:            "Scheduled",
			DepartureTerminal: seg.Departure.Terminal,
			ArrivalTerminal:   seg.Arrival.Terminal,
		})
	}
	return flights, nil
}
