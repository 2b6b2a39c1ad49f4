package usecase

import (
	"context"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// Book implements AirService. A booking is two supplier steps: booking_v2
// creates the reservation, then payment issues the tickets. A payment
// failure leaves the booking Confirmed/Unpaid rather than failing the
// request: the reservation exists and can still be ticketed later.
func (s *airService) Book(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error) {
	if err := validateBooking(req); err != nil {
		return nil, err
	}
	ensureKeys(&req.CommonRequest)

	journey := req.Journey[0]
	status := domain.NewBookingStatus()
	journey.Status = &status

	resp := &domain.BookingResponse{
		UniqueKey:  req.UniqueKey,
		TraceID:    req.TraceID,
		Journey:    []domain.BookingJourney{},
		GSTDetails: req.GSTDetails,
	}

	call := newCall(auditlog.ServiceAirBooking, &req.CommonRequest)
	log := s.log.WithTraceID(req.TraceID)

	bookEnv, err := s.gateway.Book(ctx, call, &journey, req.GSTDetails)
	if err != nil {
		resp.Journey = append(resp.Journey, journey)
		return resp, err
	}

	status.Confirm()
	journey.RecLocInfo = []domain.RecordLocator{{Type: "GDS", PNR: bookEnv.BookCode}}
	log.Info().Str("book_code", bookEnv.BookCode).Msg("Reservation created")

	if !req.IsHoldBooking {
		payEnv, err := s.gateway.Pay(ctx, call, bookEnv.BookCode)
		if err != nil {
			log.Warn().Err(err).Str("book_code", bookEnv.BookCode).
				Msg("Payment failed, booking held unpaid")
		} else if len(payEnv.TicketUnit) > 0 {
			status.MarkPaid()
			alliance.ReconcileTickets(payEnv.TicketUnit, journey.TravellerDetails)
		}
	}

	resp.Journey = append(resp.Journey, journey)
	return resp, nil
}

// Ticket implements AirService. It runs the payment step for a booking that
// already holds a record locator, then attaches the issued ticket numbers.
func (s *airService) Ticket(ctx context.Context, req *domain.TicketRequest) (*domain.BookingResponse, error) {
	if len(req.VendorList) == 0 || req.UserID() == "" {
		return nil, domain.WrapInvalidRequest("vendorList with a credential userId is required")
	}
	if len(req.Journey) == 0 {
		return nil, domain.WrapInvalidRequest("a journey is required")
	}
	ensureKeys(&req.CommonRequest)

	journey := req.Journey[0]
	pnr := journey.FirstPNR()
	if pnr == "" {
		return nil, domain.WrapInvalidRequest("the journey carries no record locator")
	}

	call := newCall(auditlog.ServiceTicketing, &req.CommonRequest)
	payEnv, err := s.gateway.Pay(ctx, call, pnr)
	if err != nil {
		return nil, err
	}

	status := domain.NewBookingStatus()
	status.Confirm()
	if len(payEnv.TicketUnit) > 0 {
		status.MarkPaid()
		alliance.ReconcileTickets(payEnv.TicketUnit, journey.TravellerDetails)
	}
	journey.Status = &status

	return &domain.BookingResponse{
		UniqueKey: req.UniqueKey,
		TraceID:   req.TraceID,
		Journey:   []domain.BookingJourney{journey},
	}, nil
}

func validateBooking(req *domain.BookingRequest) error {
	if len(req.VendorList) == 0 || req.UserID() == "" {
		return domain.WrapInvalidRequest("vendorList with a credential userId is required")
	}
	if len(req.Journey) == 0 || len(req.Journey[0].Itinerary) == 0 {
		return domain.WrapInvalidRequest("a journey with one itinerary is required")
	}
	if len(req.Journey[0].Itinerary[0].AirSegments) == 0 {
		return domain.WrapInvalidRequest("the itinerary has no air segments")
	}
	if len(req.Journey[0].TravellerDetails) == 0 {
		return domain.WrapInvalidRequest("at least one traveller is required")
	}
	for i := range req.Journey[0].TravellerDetails {
		trv := &req.Journey[0].TravellerDetails[i]
		if trv.FirstName == "" || trv.LastName == "" {
			return domain.WrapInvalidRequest("traveller %d needs first and last name", i+1)
		}
	}
	return nil
}
