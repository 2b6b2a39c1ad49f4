package alliance

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// SupplierCode is the fixed airline code of the Alliance supplier.
const SupplierCode = "9I"

// Wire actions understood by the supplier endpoint.
const (
	ActionSearch      = "get_schedule_v2"
	ActionFare        = "get_fare_v2_new"
	ActionBook        = "booking_v2"
	ActionPayment     = "payment"
	ActionRetrievePNR = "get_all_book_info_2"
	ActionPNRFare     = "get_book_price_detail_info_2"
)

// wireString decodes a JSON value that the supplier emits sometimes as a
// string and sometimes as a bare number.
type wireString string

func (w *wireString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*w = wireString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*w = wireString(n.String())
	return nil
}

func (w wireString) String() string { return string(w) }

// tuple gives positional access to a raw JSON array with out-of-range
// tolerance: missing trailing elements read as zero values.
type tuple []json.RawMessage

func (t tuple) Str(i int) string {
	if i >= len(t) {
		return ""
	}
	var w wireString
	if err := json.Unmarshal(t[i], &w); err != nil {
		return ""
	}
	return string(w)
}

func (t tuple) Float(i int) float64 {
	if i >= len(t) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(t[i], &f); err != nil {
		// Numbers occasionally arrive quoted.
		s := t.Str(i)
		f, _ = strconv.ParseFloat(s, 64)
	}
	return f
}

func (t tuple) Raw(i int) json.RawMessage {
	if i >= len(t) {
		return nil
	}
	return t[i]
}

// SplitFlightCode splits a "9I-123" style code into airline and flight
// number. A code without the separator comes back as the flight number with
// an empty airline part.
func SplitFlightCode(code string) (airline, number string) {
	idx := strings.Index(code, "-")
	if idx < 0 {
		return "", code
	}
	return code[:idx], code[idx+1:]
}

// AvailabilityBucket is one [subclass, seats] pair from the flight tuple's
// availability matrix.
type AvailabilityBucket struct {
	Subclass string
	Seats    string
}

func (b *AvailabilityBucket) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	b.Subclass = t.Str(0)
	b.Seats = t.Str(1)
	return nil
}

// ScheduleFlight is the supplier's 16-element flight tuple.
type ScheduleFlight struct {
	FlightCode        string // "9I-601": airline code, dash, flight number
	Origin            string
	Destination       string
	DepartureDate     string // YYYYMMDD
	ArrivalDate       string // YYYYMMDD
	DepartureTime     string // HHmm
	ArrivalTime       string // HHmm
	Duration          string // "1h30m" dialect
	Aircraft          string
	Transit           string
	Availability      []AvailabilityBucket
	Key               string
	TravelDetails     string
	Status            string
	DepartureTerminal string
	ArrivalTerminal   string
}

func (f *ScheduleFlight) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if len(t) < 16 {
		return fmt.Errorf("flight tuple has %d elements, want 16", len(t))
	}

	f.FlightCode = t.Str(0)
	f.Origin = t.Str(1)
	f.Destination = t.Str(2)
	f.DepartureDate = t.Str(3)
	f.ArrivalDate = t.Str(4)
	f.DepartureTime = t.Str(5)
	f.ArrivalTime = t.Str(6)
	f.Duration = t.Str(7)
	f.Aircraft = t.Str(8)
	f.Transit = t.Str(9)
	f.Key = t.Str(11)
	f.TravelDetails = t.Str(12)
	f.Status = t.Str(13)
	f.DepartureTerminal = t.Str(14)
	f.ArrivalTerminal = t.Str(15)

	if raw := t.Raw(10); raw != nil {
		if err := json.Unmarshal(raw, &f.Availability); err != nil {
			return fmt.Errorf("flight availability: %w", err)
		}
	}
	return nil
}

// FlightNumber returns the numeric flight number without the airline prefix.
func (f *ScheduleFlight) FlightNumber() string {
	_, num := SplitFlightCode(f.FlightCode)
	return num
}

// AvailableSeats returns the seat count of the first availability bucket in
// subclass S or A, or 0 when neither appears.
func (f *ScheduleFlight) AvailableSeats() int {
	for _, b := range f.Availability {
		if b.Subclass == "S" || b.Subclass == "A" {
			n, err := strconv.Atoi(b.Seats)
			if err != nil {
				return 0
			}
			return n
		}
	}
	return 0
}

// ScheduleEnvelope is the get_schedule_v2 response. The schedule field mixes
// two shapes per element: a bare flight tuple for a direct flight, or an
// array of flight tuples for a connecting itinerary.
type ScheduleEnvelope struct {
	WSAccessID wireString        `json:"ws_access_id"`
	ErrCode    wireString        `json:"err_code"`
	ErrMessage string            `json:"err_message"`
	Org        string            `json:"org"`
	Des        string            `json:"des"`
	FlightDate string            `json:"flight_date"`
	Schedule   []json.RawMessage `json:"schedule"`
}

// OK reports whether the envelope carries a success code.
func (e *ScheduleEnvelope) OK() bool { return e.ErrCode == "0" }

// FareColumns is one 8-number fare column: the per-passenger-type price
// block inside a fare tuple.
type FareColumns struct {
	TotalFare   float64
	BasicFare   float64
	Insurance   float64
	AirportTax  float64
	Surcharge   float64
	TerminalFee float64
	BookingFee  float64
	VAT         float64
}

func (c *FareColumns) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	c.TotalFare = t.Float(0)
	c.BasicFare = t.Float(1)
	c.Insurance = t.Float(2)
	c.AirportTax = t.Float(3)
	c.Surcharge = t.Float(4)
	c.TerminalFee = t.Float(5)
	c.BookingFee = t.Float(6)
	c.VAT = t.Float(7)
	return nil
}

// TaxLines expands the tax columns in their fixed wire order.
func (c FareColumns) TaxLines() []domain.TaxBreakup {
	return []domain.TaxBreakup{
		{TaxType: "insurance", Amount: c.Insurance},
		{TaxType: "airport_tax", Amount: c.AirportTax},
		{TaxType: "surcharge", Amount: c.Surcharge},
		{TaxType: "terminal_fee", Amount: c.TerminalFee},
		{TaxType: "booking_fee", Amount: c.BookingFee},
		{TaxType: "vat", Amount: c.VAT},
	}
}

// TaxTotal sums all tax columns.
func (c FareColumns) TaxTotal() float64 {
	return c.Insurance + c.AirportTax + c.Surcharge + c.TerminalFee + c.BookingFee + c.VAT
}

// FareRow is the supplier's fare tuple: fare basis, six passenger-type
// column blocks, then flags, stay limits, currency, agent amounts,
// incentives, baggage allowances and other fees.
type FareRow struct {
	FareBasis string

	Adult        FareColumns
	Child        FareColumns
	Infant       FareColumns
	AdultReturn  FareColumns
	ChildReturn  FareColumns
	InfantReturn FareColumns

	Notes    string
	IsIbook  string
	MinStay  string
	MaxStay  string
	Currency string

	AgentTotalAdult       float64
	AgentTotalAdultReturn float64
	AgentTotalChild       float64
	AgentTotalChildReturn float64

	IncentiveAdult float64
	IncentiveChild float64

	BaggageAdult string
	BaggageChild string

	OtherFeesAdult  json.RawMessage
	OtherFeesChild  json.RawMessage
	OtherFeesInfant json.RawMessage
}

func (r *FareRow) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if len(t) < 7 {
		return fmt.Errorf("fare tuple has %d elements, want at least 7", len(t))
	}

	r.FareBasis = t.Str(0)

	cols := []*FareColumns{&r.Adult, &r.Child, &r.Infant, &r.AdultReturn, &r.ChildReturn, &r.InfantReturn}
	for i, c := range cols {
		if raw := t.Raw(i + 1); raw != nil {
			if err := json.Unmarshal(raw, c); err != nil {
				return fmt.Errorf("fare columns %d: %w", i+1, err)
			}
		}
	}

	r.Notes = t.Str(7)
	r.IsIbook = t.Str(8)
	r.MinStay = t.Str(9)
	r.MaxStay = t.Str(10)
	r.Currency = t.Str(11)
	r.AgentTotalAdult = t.Float(12)
	r.AgentTotalAdultReturn = t.Float(13)
	r.AgentTotalChild = t.Float(14)
	r.AgentTotalChildReturn = t.Float(15)
	r.IncentiveAdult = t.Float(16)
	r.IncentiveChild = t.Float(17)
	r.BaggageAdult = t.Str(18)
	r.BaggageChild = t.Str(19)
	r.OtherFeesAdult = t.Raw(20)
	r.OtherFeesChild = t.Raw(21)
	r.OtherFeesInfant = t.Raw(22)
	return nil
}

// Columns returns the outbound column block for the given passenger type.
func (r *FareRow) Columns(t domain.PaxType) FareColumns {
	switch t {
	case domain.PaxChild:
		return r.Child
	case domain.PaxInfant:
		return r.Infant
	default:
		return r.Adult
	}
}

// FareEnvelope is the get_fare_v2_new response.
type FareEnvelope struct {
	WSAccessID wireString `json:"ws_access_id"`
	ErrCode    wireString `json:"err_code"`
	ErrMsg     string     `json:"err_msg"`
	Org        string     `json:"org"`
	Des        string     `json:"des"`
	FlightNo   string     `json:"flight_no"`
	FlightDate string     `json:"flight_date"`
	FareInfo   []FareRow  `json:"fare_info"`
}

// OK reports whether the envelope carries a success code.
func (e *FareEnvelope) OK() bool { return e.ErrCode == "0" }

// BookEnvelope is the booking_v2 response.
type BookEnvelope struct {
	ErrCode           wireString `json:"err_code"`
	ErrMsg            string     `json:"err_msg"`
	BookCode          string     `json:"book_code"`
	Org               string     `json:"org"`
	Des               string     `json:"des"`
	DepDate           string     `json:"dep_date"`
	DepFlightNo       string     `json:"dep_flight_no"`
	NormalSales       float64    `json:"normal_sales"`
	BookBalance       float64    `json:"book_balance"`
	PayLimit          string     `json:"pay_limit"`
	Status            string     `json:"status"`
	BookCcy           string     `json:"book_ccy"`
	AdditionalMessage string     `json:"additional_message"`
}

// OK reports whether the envelope carries a success code.
func (e *BookEnvelope) OK() bool { return e.ErrCode == "0" }

// TicketUnit is one [passenger name, ticket number] pair from the payment
// response.
type TicketUnit struct {
	PassengerName string
	TicketNumber  string
}

func (u *TicketUnit) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	u.PassengerName = t.Str(0)
	u.TicketNumber = t.Str(1)
	return nil
}

// PaymentEnvelope is the payment response.
type PaymentEnvelope struct {
	ErrCode     wireString   `json:"err_code"`
	ErrMsg      string       `json:"err_msg"`
	BookCode    string       `json:"book_code"`
	BookBalance float64      `json:"book_balance"`
	Ccy         string       `json:"ccy"`
	TicketUnit  []TicketUnit `json:"ticket_unit"`
}

// OK reports whether the envelope carries a success code.
func (e *PaymentEnvelope) OK() bool { return e.ErrCode == "0" }

// PNRPassenger is the supplier's 12-element passenger tuple from the
// booking-retrieval response.
//
// Index 3 is overloaded on the wire: for a domestic passenger it carries a
// phone number, for an international one a passport number, with index 4
// then holding the issuing country. The tuple itself cannot distinguish the
// two, so both readings are surfaced and the decoder populates both the
// contact and the passport views.
type PNRPassenger struct {
	FirstName       string
	LastName        string
	Phone           string // index 2
	Document        string // index 3: phone or passport number
	DocumentCountry string // index 4: nationality / issuing country
	TypeCode        string // index 5: A, C or I
	TicketNumber    string // index 6
	SeatNumber      string // index 7
	BirthDate       string // index 8: DD-MON-YY
	FarePrice       string // index 9
	Title           string // index 10
	PaxID           string // index 11
}

func (p *PNRPassenger) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if len(t) < 6 {
		return fmt.Errorf("passenger tuple has %d elements, want at least 6", len(t))
	}
	p.FirstName = t.Str(0)
	p.LastName = t.Str(1)
	p.Phone = t.Str(2)
	p.Document = t.Str(3)
	p.DocumentCountry = t.Str(4)
	p.TypeCode = t.Str(5)
	p.TicketNumber = t.Str(6)
	p.SeatNumber = t.Str(7)
	p.BirthDate = t.Str(8)
	p.FarePrice = t.Str(9)
	p.Title = t.Str(10)
	p.PaxID = t.Str(11)
	return nil
}

// PaxType maps the tuple's single-letter type code to the canonical type.
func (p *PNRPassenger) PaxType() domain.PaxType {
	switch p.TypeCode {
	case "C":
		return domain.PaxChild
	case "I":
		return domain.PaxInfant
	default:
		return domain.PaxAdult
	}
}

// PNRRoute is the supplier's 13-element route tuple from the
// booking-retrieval response.
type PNRRoute struct {
	Origin         string
	Destination    string
	DepartureDate  string // DD-MON-YY
	ArrivalDate    string // DD-MON-YY
	DepartureTime  string // HHmm
	ArrivalTime    string // HHmm
	Subclass       string
	FlightCode     string // "9I-601"
	AdditionalInfo string
	Status         string
	CabinClass     string
	TicketNumber   string
	FareBasis      string
}

func (r *PNRRoute) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if len(t) < 8 {
		return fmt.Errorf("route tuple has %d elements, want at least 8", len(t))
	}
	r.Origin = t.Str(0)
	r.Destination = t.Str(1)
	r.DepartureDate = t.Str(2)
	r.ArrivalDate = t.Str(3)
	r.DepartureTime = t.Str(4)
	r.ArrivalTime = t.Str(5)
	r.Subclass = t.Str(6)
	r.FlightCode = t.Str(7)
	r.AdditionalInfo = t.Str(8)
	r.Status = t.Str(9)
	r.CabinClass = t.Str(10)
	r.TicketNumber = t.Str(11)
	r.FareBasis = t.Str(12)
	return nil
}

// PNREnvelope is the get_all_book_info_2 response.
type PNREnvelope struct {
	ErrCode      wireString     `json:"err_code"`
	ErrMsg       string         `json:"err_msg"`
	BookCode     string         `json:"book_code"`
	Caller       string         `json:"caller"`
	Contact      string         `json:"contact"`
	Contact2     string         `json:"contact_2"`
	ContactEmail string         `json:"contact_email"`
	NormalSales  float64        `json:"normal_sales"`
	BookBalance  float64        `json:"book_balance"`
	BookCcy      string         `json:"book_ccy"`
	OrgDes       string         `json:"org_des"`
	PayLimit     string         `json:"pay_limit"`
	CreateTime   string         `json:"create_time"`
	PaxList      []PNRPassenger `json:"pax_list"`
	RouteInfo    []PNRRoute     `json:"route_info"`
}

// OK reports whether the envelope carries a success code.
func (e *PNREnvelope) OK() bool { return e.ErrCode == "0" }

// PNRFareLine is one 6-element detail-price tuple: booking code, passenger
// name, origin, destination, fare component label and amount.
type PNRFareLine struct {
	BookCode      string
	PassengerName string
	Origin        string
	Destination   string
	FareType      string
	Amount        float64
}

func (l *PNRFareLine) UnmarshalJSON(data []byte) error {
	var t tuple
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	if len(t) < 6 {
		return fmt.Errorf("detail price tuple has %d elements, want 6", len(t))
	}
	l.BookCode = t.Str(0)
	l.PassengerName = t.Str(1)
	l.Origin = t.Str(2)
	l.Destination = t.Str(3)
	l.FareType = t.Str(4)
	l.Amount = t.Float(5)
	return nil
}

// PNRFareEnvelope is the get_book_price_detail_info_2 response.
type PNRFareEnvelope struct {
	ErrCode     wireString    `json:"err_code"`
	ErrMsg      string        `json:"err_msg"`
	BookCode    string        `json:"book_code"`
	BookCcy     string        `json:"book_ccy"`
	BookBalance float64       `json:"book_balance"`
	NormalSales float64       `json:"normal_sales"`
	DetailPrice []PNRFareLine `json:"detail_price"`
}

// OK reports whether the envelope carries a success code.
func (e *PNRFareEnvelope) OK() bool { return e.ErrCode == "0" }
