package alliance

import (
	"context"
	"encoding/json"
	"time"

	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/logger"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/timeutil"
	"github.com/raviWithTraversia/alliance-API/internal/reference"
)

// Segment field values the supplier never transmits for retrieved bookings.
// They are fixed on this route network and filled in as constants.
const (
	defaultFlyingTime  = "04:30"
	defaultEquipType   = "773"
	defaultBaggage     = "1PCG"
	defaultHandBaggage = "7KG"
	defaultCabinClass  = "Economy"
)

// Decoder turns supplier wire tuples into canonical entities, enriching
// airport and airline fields from the reference lookup. Malformed elements
// are skipped with a warning; only structural failures surface as errors.
type Decoder struct {
	ref   reference.Lookup
	clock timeutil.Clock
	log   *logger.Logger
}

// NewDecoder creates a Decoder. A nil logger disables decode warnings.
func NewDecoder(ref reference.Lookup, clock timeutil.Clock, log *logger.Logger) *Decoder {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Decoder{ref: ref, clock: clock, log: log}
}

// FlightGroups flattens the schedule envelope's mixed shapes into groups of
// flight tuples: one group per bookable option, with connecting options
// keeping their sectors together. Undecodable elements are dropped.
func (d *Decoder) FlightGroups(env *ScheduleEnvelope) [][]ScheduleFlight {
	groups := make([][]ScheduleFlight, 0, len(env.Schedule))
	for i, raw := range env.Schedule {
		group, err := decodeFlightGroup(raw)
		if err != nil {
			derr := domain.NewDecodeError("schedule", i, err)
			d.log.Warn().Err(derr).Int("index", i).Msg("Skipping undecodable schedule entry")
			continue
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// decodeFlightGroup handles the schedule element's two shapes: a bare
// 16-tuple for a direct flight, or an array of 16-tuples for a connection.
// The shapes are distinguished by the first element: a nested array means a
// group, a scalar means a flight tuple.
func decodeFlightGroup(raw json.RawMessage) ([]ScheduleFlight, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, nil
	}

	if elems[0][0] == '[' {
		var group []ScheduleFlight
		if err := json.Unmarshal(raw, &group); err != nil {
			return nil, err
		}
		return group, nil
	}

	var single ScheduleFlight
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []ScheduleFlight{single}, nil
}

// Segments converts a group of schedule flights into canonical air segments
// priced under the given fare row. A flight that fails date or time decoding
// is skipped with a warning.
func (d *Decoder) Segments(ctx context.Context, flights []ScheduleFlight, fare *FareRow) []domain.AirSegment {
	segments := make([]domain.AirSegment, 0, len(flights))
	for i := range flights {
		seg, err := d.segment(ctx, &flights[i], fare, len(flights) > 1)
		if err != nil {
			derr := domain.NewDecodeError("flight", i, err)
			d.log.Warn().Err(derr).Str("flight", flights[i].FlightCode).Msg("Skipping undecodable flight")
			continue
		}
		segments = append(segments, *seg)
	}
	return segments
}

func (d *Decoder) segment(ctx context.Context, f *ScheduleFlight, fare *FareRow, isConnect bool) (*domain.AirSegment, error) {
	depDate, err := DecodeSupplierDate(f.DepartureDate)
	if err != nil {
		return nil, err
	}
	arrDate, err := DecodeSupplierDate(f.ArrivalDate)
	if err != nil {
		return nil, err
	}
	depTime, err := DecodeLegacyTime(f.DepartureTime)
	if err != nil {
		return nil, err
	}
	arrTime, err := DecodeLegacyTime(f.ArrivalTime)
	if err != nil {
		return nil, err
	}

	airline, num := SplitFlightCode(f.FlightCode)
	if airline == "" {
		airline = SupplierCode
	}

	seg := &domain.AirSegment{
		AirlineCode:      airline,
		AirlineName:      d.airlineName(ctx, airline),
		FlightNumber:     num,
		ClassOfService:   "Y",
		CabinClass:       defaultCabinClass,
		Departure:        d.airportDetail(ctx, f.Origin, depDate, depTime, f.DepartureTerminal),
		Arrival:          d.airportDetail(ctx, f.Destination, arrDate, arrTime, f.ArrivalTerminal),
		OperatingCarrier: domain.OperatingCarrier{Code: airline},
		FlyingTime:       DecodeDuration(f.Duration),
		TravelTime:       DecodeDuration(f.Duration),
		EquipType:        f.Aircraft,
		NoSeats:          f.AvailableSeats(),
		HandBaggage:      defaultHandBaggage,
		IsConnect:        isConnect,
		Key:              f.Key,
	}
	if seg.FlyingTime == "" {
		d.log.Warn().Str("duration", f.Duration).Str("flight", f.FlightCode).
			Msg("Unparseable flight duration, leaving empty")
	}
	if fare != nil {
		seg.FareBasisCode = fare.FareBasis
		if fare.BaggageAdult != "" {
			seg.BaggageInfo = fare.BaggageAdult + "KG"
		}
	}
	return seg, nil
}

// Travelers converts PNR passenger tuples. The overloaded document field is
// surfaced through both the contact and the passport views when non-empty.
func (d *Decoder) Travelers(paxList []PNRPassenger) []domain.Traveler {
	travelers := make([]domain.Traveler, 0, len(paxList))
	for i := range paxList {
		trv, err := d.traveler(&paxList[i])
		if err != nil {
			derr := domain.NewDecodeError("passenger", i, err)
			d.log.Warn().Err(derr).Str("name", paxList[i].FirstName).Msg("Skipping undecodable passenger")
			continue
		}
		travelers = append(travelers, *trv)
	}
	return travelers
}

func (d *Decoder) traveler(p *PNRPassenger) (*domain.Traveler, error) {
	trv := &domain.Traveler{
		TravellerID: p.PaxID,
		Type:        p.PaxType(),
		Title:       p.Title,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
	}

	if p.BirthDate != "" {
		dob, err := DecodeLegacyDate(p.BirthDate, false)
		if err != nil {
			return nil, err
		}
		trv.DOB = dob
		trv.Age = d.ageAt(dob)
	}

	// Index 3 is overloaded on the wire, so it feeds both the contact and
	// the passport view regardless of what index 2 carries.
	trv.ContactDetails = &domain.ContactDetails{
		Phone:  p.Document,
		Mobile: p.Document,
	}

	if p.Document != "" {
		trv.PassportDetails = &domain.PassportDetails{
			Number:         p.Document,
			IssuingCountry: p.DocumentCountry,
		}
	}
	if p.DocumentCountry != "" {
		trv.Nationality = p.DocumentCountry
	}

	if p.TicketNumber != "" {
		trv.ETicket = []domain.ETicket{{ETicketNumber: p.TicketNumber}}
	}
	return trv, nil
}

// ageAt computes whole years from a canonical DD/MM/YYYY birth date to now.
func (d *Decoder) ageAt(dob string) int {
	born, err := time.Parse(layoutCanonical, dob)
	if err != nil {
		return 0
	}
	now := d.clock.Now()
	years := now.Year() - born.Year()
	if now.YearDay() < born.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// RouteSegments converts PNR route tuples into canonical air segments. Route
// dates are in segment context, so the century is always 20xx.
func (d *Decoder) RouteSegments(ctx context.Context, routes []PNRRoute) []domain.AirSegment {
	segments := make([]domain.AirSegment, 0, len(routes))
	for i := range routes {
		seg, err := d.routeSegment(ctx, &routes[i], len(routes) > 1)
		if err != nil {
			derr := domain.NewDecodeError("route", i, err)
			d.log.Warn().Err(derr).Str("flight", routes[i].FlightCode).Msg("Skipping undecodable route")
			continue
		}
		segments = append(segments, *seg)
	}
	return segments
}

func (d *Decoder) routeSegment(ctx context.Context, r *PNRRoute, isConnect bool) (*domain.AirSegment, error) {
	depDate, err := DecodeLegacyDate(r.DepartureDate, true)
	if err != nil {
		return nil, err
	}
	arrDate, err := DecodeLegacyDate(r.ArrivalDate, true)
	if err != nil {
		return nil, err
	}
	depTime, err := DecodeLegacyTime(r.DepartureTime)
	if err != nil {
		return nil, err
	}
	arrTime, err := DecodeLegacyTime(r.ArrivalTime)
	if err != nil {
		return nil, err
	}

	airline, num := SplitFlightCode(r.FlightCode)
	if airline == "" {
		airline = SupplierCode
	}

	cabin := r.CabinClass
	if cabin == "" {
		cabin = defaultCabinClass
	}

	return &domain.AirSegment{
		AirlineCode:      airline,
		AirlineName:      d.airlineName(ctx, airline),
		FlightNumber:     num,
		ClassOfService:   r.Subclass,
		CabinClass:       cabin,
		Departure:        d.airportDetail(ctx, r.Origin, depDate, depTime, ""),
		Arrival:          d.airportDetail(ctx, r.Destination, arrDate, arrTime, ""),
		OperatingCarrier: domain.OperatingCarrier{Code: airline},
		FlyingTime:       defaultFlyingTime,
		TravelTime:       defaultFlyingTime,
		EquipType:        defaultEquipType,
		BaggageInfo:      defaultBaggage,
		HandBaggage:      defaultHandBaggage,
		FareBasisCode:    r.FareBasis,
		IsConnect:        isConnect,
		Key:              "1",
	}, nil
}

func (d *Decoder) airlineName(ctx context.Context, code string) string {
	if d.ref == nil {
		return ""
	}
	airline, err := d.ref.FindAirline(ctx, code)
	if err != nil {
		d.log.Warn().Err(err).Str("airline", code).Msg("Airline lookup failed")
		return ""
	}
	if airline == nil {
		return ""
	}
	return airline.Name
}

func (d *Decoder) airportDetail(ctx context.Context, code, date, tm, terminal string) domain.AirportDetail {
	detail := domain.AirportDetail{
		Code:     code,
		Date:     date,
		Time:     tm,
		Terminal: terminal,
	}
	if d.ref == nil {
		return detail
	}
	airport, err := d.ref.FindAirport(ctx, code)
	if err != nil {
		d.log.Warn().Err(err).Str("airport", code).Msg("Airport lookup failed")
		return detail
	}
	if airport != nil {
		detail.Name = airport.Name
		detail.CityCode = airport.CityCode
		detail.CityName = airport.CityName
		detail.CountryCode = airport.CountryCode
		detail.CountryName = airport.CountryName
	}
	return detail
}
