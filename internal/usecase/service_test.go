package usecase

import (
	"context"
	"sync"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/reference"
)

// stubGateway is a scriptable VendorGateway for service tests.
type stubGateway struct {
	mu sync.Mutex

	scheduleEnv *alliance.ScheduleEnvelope
	scheduleErr error

	fareEnv *alliance.FareEnvelope
	fareErr error

	bookEnv *alliance.BookEnvelope
	bookErr error

	payEnv *alliance.PaymentEnvelope
	payErr error

	pnrEnv *alliance.PNREnvelope
	pnrErr error

	pnrFareEnv *alliance.PNRFareEnvelope
	pnrFareErr error

	fareCalls int
	payCalls  int
	bookCodes []string
}

func (g *stubGateway) GetSchedule(_ context.Context, _ alliance.Call, _, _, _ string) (*alliance.ScheduleEnvelope, error) {
	return g.scheduleEnv, g.scheduleErr
}

func (g *stubGateway) GetFare(_ context.Context, _ alliance.Call, _ []alliance.ScheduleFlight) (*alliance.FareEnvelope, error) {
	g.mu.Lock()
	g.fareCalls++
	g.mu.Unlock()
	return g.fareEnv, g.fareErr
}

func (g *stubGateway) Book(_ context.Context, _ alliance.Call, _ *domain.BookingJourney, _ *domain.GSTDetails) (*alliance.BookEnvelope, error) {
	return g.bookEnv, g.bookErr
}

func (g *stubGateway) Pay(_ context.Context, _ alliance.Call, bookCode string) (*alliance.PaymentEnvelope, error) {
	g.mu.Lock()
	g.payCalls++
	g.bookCodes = append(g.bookCodes, bookCode)
	g.mu.Unlock()
	return g.payEnv, g.payErr
}

func (g *stubGateway) RetrievePNR(_ context.Context, _ alliance.Call, _ string) (*alliance.PNREnvelope, error) {
	return g.pnrEnv, g.pnrErr
}

func (g *stubGateway) RetrievePNRFare(_ context.Context, _ alliance.Call, _ string) (*alliance.PNRFareEnvelope, error) {
	return g.pnrFareEnv, g.pnrFareErr
}

var _ VendorGateway = (*stubGateway)(nil)

func newTestService(gw VendorGateway) AirService {
	decoder := alliance.NewDecoder(reference.NewStatic(
		[]reference.Airline{{Code: "9I", Name: "Alliance Air"}},
		nil,
	), nil, nil)
	return NewAirService(gw, decoder, nil, nil)
}

func commonRequest() domain.CommonRequest {
	return domain.CommonRequest{
		TypeOfTrip:     domain.TripOneWay,
		CredentialType: domain.CredentialTest,
		TravelType:     domain.TravelDomestic,
		VendorList: []domain.Vendor{{
			VendorCode: "9I",
			Credential: domain.Credential{UserID: "agent01", Password: "secret"},
		}},
	}
}

func saverFareRow() alliance.FareRow {
	return alliance.FareRow{
		FareBasis: "SAVER",
		Adult: alliance.FareColumns{
			TotalFare: 1000, BasicFare: 800,
			Insurance: 10, AirportTax: 50, Surcharge: 100,
			TerminalFee: 20, BookingFee: 15, VAT: 5,
		},
		Currency:     "INR",
		BaggageAdult: "15",
	}
}

func directFlight(code string) alliance.ScheduleFlight {
	return alliance.ScheduleFlight{
		FlightCode:    code,
		Origin:        "DEL",
		Destination:   "IXJ",
		DepartureDate: "20241225",
		ArrivalDate:   "20241225",
		DepartureTime: "0630",
		ArrivalTime:   "0755",
		Duration:      "1h25m",
		Aircraft:      "AT7",
		Availability:  []alliance.AvailabilityBucket{{Subclass: "S", Seats: "9"}},
		Key:           "k1",
		Status:        "Scheduled",
	}
}
