package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// ImportPNR implements AirService. It retrieves the booking and its detail
// price from the supplier, rebuilds the travelers and segments, and
// aggregates the per-passenger fare lines into a price breakup.
func (s *airService) ImportPNR(ctx context.Context, req *domain.ImportPNRRequest, pnr string) (*domain.BookingResponse, error) {
	if len(req.VendorList) == 0 || req.UserID() == "" {
		return nil, domain.WrapInvalidRequest("vendorList with a credential userId is required")
	}
	if pnr == "" {
		return nil, domain.WrapInvalidRequest("a record locator is required")
	}
	ensureKeys(&req.CommonRequest)

	call := newCall(auditlog.ServiceImportPNR, &req.CommonRequest)

	pnrEnv, err := s.gateway.RetrievePNR(ctx, call, pnr)
	if err != nil {
		return nil, err
	}
	fareEnv, err := s.gateway.RetrievePNRFare(ctx, call, pnr)
	if err != nil {
		return nil, err
	}

	travelers := s.decoder.Travelers(pnrEnv.PaxList)
	segments := s.decoder.RouteSegments(ctx, pnrEnv.RouteInfo)

	summary, err := alliance.AggregateDetailPrice(fareEnv.DetailPrice, travelers)
	if err != nil {
		return nil, err
	}

	status := domain.NewBookingStatus()
	var recLoc []domain.RecordLocator
	if pnrEnv.BookCode != "" {
		recLoc = []domain.RecordLocator{{Type: "GDS", PNR: pnrEnv.BookCode}}
		status.Confirm()
	}
	if anyTicketed(travelers) {
		status.MarkPaid()
	}

	origin, destination := "", ""
	if len(segments) > 0 {
		origin = segments[0].Departure.Code
		destination = segments[len(segments)-1].Arrival.Code
	}

	currency := fareEnv.BookCcy
	if currency == "" {
		currency = pnrEnv.BookCcy
	}

	journey := domain.BookingJourney{
		Journey: domain.Journey{
			JourneyKey:  uuid.NewString(),
			Origin:      origin,
			Destination: destination,
			Itinerary: []domain.Itinerary{{
				UID:            uuid.NewString(),
				IndexNumber:    1,
				BaseFare:       summary.BaseFare,
				Taxes:          summary.Taxes,
				TotalPrice:     summary.TotalPrice,
				Currency:       currency,
				Provider:       alliance.SupplierCode,
				ValCarrier:     alliance.SupplierCode,
				FareFamily:     fareFamilyRegular,
				AirSegments:    segments,
				PriceBreakup:   summary.PriceBreakup,
				RefundableFare: true,
				FareType:       fareTypeRP,
				HostTokens:     []string{},
			}},
		},
		TravellerDetails: travelers,
		Status:           &status,
		RecLocInfo:       recLoc,
	}

	return &domain.BookingResponse{
		UniqueKey: req.UniqueKey,
		TraceID:   req.TraceID,
		Journey:   []domain.BookingJourney{journey},
	}, nil
}

func anyTicketed(travelers []domain.Traveler) bool {
	for i := range travelers {
		if len(travelers[i].ETicket) > 0 {
			return true
		}
	}
	return false
}
