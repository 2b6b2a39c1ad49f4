package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

func bookableJourney() domain.BookingJourney {
	return domain.BookingJourney{
		Journey: domain.Journey{
			JourneyKey:  "j-1",
			Origin:      "DEL",
			Destination: "IXJ",
			Itinerary:   []domain.Itinerary{pricedItinerary(1000)},
		},
		TravellerDetails: []domain.Traveler{{
			Type: domain.PaxAdult, Title: "Mr", FirstName: "John", LastName: "Doe",
			ContactDetails: &domain.ContactDetails{Email: "john@example.com", Mobile: "9810001000"},
		}},
	}
}

func bookingRequest() *domain.BookingRequest {
	return &domain.BookingRequest{
		CommonRequest: commonRequest(),
		Journey:       []domain.BookingJourney{bookableJourney()},
	}
}

func TestBook_ConfirmedAndPaid(t *testing.T) {
	gw := &stubGateway{
		bookEnv: &alliance.BookEnvelope{BookCode: "ABC123"},
		payEnv: &alliance.PaymentEnvelope{
			BookCode:   "ABC123",
			TicketUnit: []alliance.TicketUnit{{PassengerName: "JOHN DOE", TicketNumber: "8847741234567"}},
		},
	}
	svc := newTestService(gw)

	resp, err := svc.Book(context.Background(), bookingRequest())
	require.NoError(t, err)

	require.Len(t, resp.Journey, 1)
	journey := resp.Journey[0]

	require.NotNil(t, journey.Status)
	assert.Equal(t, domain.PNRConfirmed, journey.Status.PNRStatus)
	assert.Equal(t, domain.PaymentPaid, journey.Status.PaymentStatus)

	require.Len(t, journey.RecLocInfo, 1)
	assert.Equal(t, "GDS", journey.RecLocInfo[0].Type)
	assert.Equal(t, "ABC123", journey.RecLocInfo[0].PNR)

	require.Len(t, journey.TravellerDetails[0].ETicket, 1)
	assert.Equal(t, "8847741234567", journey.TravellerDetails[0].ETicket[0].ETicketNumber)

	assert.Equal(t, []string{"ABC123"}, gw.bookCodes)
}

func TestBook_VendorRejection(t *testing.T) {
	vendorErr := domain.NewVendorError("booking_v2", "12", "Seat no longer available")
	gw := &stubGateway{bookErr: vendorErr}
	svc := newTestService(gw)

	resp, err := svc.Book(context.Background(), bookingRequest())
	require.Error(t, err)
	assert.True(t, domain.IsVendorError(err))

	// The failed journey still comes back so the caller sees its state.
	require.NotNil(t, resp)
	require.Len(t, resp.Journey, 1)
	assert.Equal(t, domain.PNRFailed, resp.Journey[0].Status.PNRStatus)
	assert.Equal(t, domain.PaymentUnpaid, resp.Journey[0].Status.PaymentStatus)
	assert.Equal(t, 0, gw.payCalls)
}

func TestBook_PaymentFailureLeavesBookingHeld(t *testing.T) {
	gw := &stubGateway{
		bookEnv: &alliance.BookEnvelope{BookCode: "ABC123"},
		payErr:  domain.NewVendorError("payment", "40", "Insufficient deposit"),
	}
	svc := newTestService(gw)

	resp, err := svc.Book(context.Background(), bookingRequest())
	require.NoError(t, err)

	journey := resp.Journey[0]
	assert.Equal(t, domain.PNRConfirmed, journey.Status.PNRStatus)
	assert.Equal(t, domain.PaymentUnpaid, journey.Status.PaymentStatus)
	assert.Equal(t, "ABC123", journey.FirstPNR())
}

func TestBook_NoTicketUnitsStaysUnpaid(t *testing.T) {
	gw := &stubGateway{
		bookEnv: &alliance.BookEnvelope{BookCode: "ABC123"},
		payEnv:  &alliance.PaymentEnvelope{BookCode: "ABC123"},
	}
	svc := newTestService(gw)

	resp, err := svc.Book(context.Background(), bookingRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentUnpaid, resp.Journey[0].Status.PaymentStatus)
}

func TestBook_HoldSkipsPayment(t *testing.T) {
	gw := &stubGateway{
		bookEnv: &alliance.BookEnvelope{BookCode: "ABC123"},
	}
	svc := newTestService(gw)

	req := bookingRequest()
	req.IsHoldBooking = true
	resp, err := svc.Book(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, gw.payCalls)
	assert.Equal(t, domain.PNRConfirmed, resp.Journey[0].Status.PNRStatus)
	assert.Equal(t, domain.PaymentUnpaid, resp.Journey[0].Status.PaymentStatus)
}

func TestBook_Validation(t *testing.T) {
	svc := newTestService(&stubGateway{})

	req := bookingRequest()
	req.Journey[0].TravellerDetails = nil
	_, err := svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))

	req = bookingRequest()
	req.Journey[0].TravellerDetails[0].LastName = ""
	_, err = svc.Book(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
}

func TestTicket(t *testing.T) {
	gw := &stubGateway{
		payEnv: &alliance.PaymentEnvelope{
			BookCode:   "ABC123",
			TicketUnit: []alliance.TicketUnit{{PassengerName: "JOHN DOE", TicketNumber: "8847741234567"}},
		},
	}
	svc := newTestService(gw)

	journey := bookableJourney()
	journey.RecLocInfo = []domain.RecordLocator{{Type: "GDS", PNR: "ABC123"}}
	req := &domain.TicketRequest{
		CommonRequest: commonRequest(),
		Journey:       []domain.BookingJourney{journey},
	}

	resp, err := svc.Ticket(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{"ABC123"}, gw.bookCodes)
	got := resp.Journey[0]
	assert.Equal(t, domain.PNRConfirmed, got.Status.PNRStatus)
	assert.Equal(t, domain.PaymentPaid, got.Status.PaymentStatus)
	require.Len(t, got.TravellerDetails[0].ETicket, 1)
}

func TestTicket_RequiresRecordLocator(t *testing.T) {
	svc := newTestService(&stubGateway{})

	req := &domain.TicketRequest{
		CommonRequest: commonRequest(),
		Journey:       []domain.BookingJourney{bookableJourney()},
	}

	_, err := svc.Ticket(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
}
