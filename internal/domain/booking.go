package domain

// PNRStatus is the reservation state reported to the caller.
type PNRStatus string

// Reservation states.
const (
	PNRFailed    PNRStatus = "Failed"
	PNRHold      PNRStatus = "Hold"
	PNRConfirmed PNRStatus = "Confirmed"
)

// PaymentStatus is the payment state reported to the caller.
type PaymentStatus string

// Payment states.
const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

// BookingStatus is the booking state machine. A request starts at
// {Failed, Unpaid}, moves to {Confirmed, Unpaid} once the supplier returns a
// book code, and to {Confirmed, Paid} only after a payment call returns at
// least one ticket unit. Within one request lifecycle a Confirmed booking
// never transitions back to Failed.
type BookingStatus struct {
	PNRStatus     PNRStatus     `json:"pnrStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
}

// NewBookingStatus returns the initial {Failed, Unpaid} state.
func NewBookingStatus() BookingStatus {
	return BookingStatus{PNRStatus: PNRFailed, PaymentStatus: PaymentUnpaid}
}

// Confirm marks the reservation confirmed.
func (s *BookingStatus) Confirm() {
	s.PNRStatus = PNRConfirmed
}

// MarkPaid marks the reservation paid.
func (s *BookingStatus) MarkPaid() {
	s.PaymentStatus = PaymentPaid
}

// RecordLocator is a supplier booking reference.
type RecordLocator struct {
	Type string `json:"type"`
	PNR  string `json:"pnr"`
}

// BookingJourney is a journey carrying traveler details.
type BookingJourney struct {
	Journey
	TravellerDetails []Traveler      `json:"travellerDetails"`
	Status           *BookingStatus  `json:"status,omitempty"`
	RecLocInfo       []RecordLocator `json:"recLocInfo"`
}

// BookingResponse is the canonical booking (and PNR import) result envelope.
type BookingResponse struct {
	UniqueKey  string           `json:"uniqueKey"`
	TraceID    string           `json:"traceId"`
	Journey    []BookingJourney `json:"journey"`
	GSTDetails *GSTDetails      `json:"gstDetails,omitempty"`
}

// FirstPNR returns the first GDS record locator on the journey, if any.
func (j *BookingJourney) FirstPNR() string {
	for _, rec := range j.RecLocInfo {
		if rec.PNR != "" {
			return rec.PNR
		}
	}
	return ""
}
