package usecase

import (
	"context"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// Price implements AirService. The supplier has no dedicated pricing call,
// so the itinerary's segments are rebuilt into wire flights and re-quoted
// through the fare endpoint; the row is matched back by fare basis.
func (s *airService) Price(ctx context.Context, req *domain.PricingRequest) (*domain.PricingResponse, error) {
	if err := validatePricing(req); err != nil {
		return nil, err
	}
	ensureKeys(&req.CommonRequest)

	journey := req.Journey[0]
	itin := journey.Itinerary[0]

	sectors, err := alliance.WireFlightsFromItinerary(&itin)
	if err != nil {
		return nil, domain.WrapInvalidRequest("itinerary: %v", err)
	}

	call := newCall(auditlog.ServiceAirPricing, &req.CommonRequest)
	fareEnv, err := s.gateway.GetFare(ctx, call, sectors)
	if err != nil {
		return nil, err
	}

	fareBasis := itin.AirSegments[0].FareBasisCode
	fare := findFareByBasis(fareEnv.FareInfo, fareBasis)
	if fare == nil {
		return nil, domain.NewAggregationError(fareBasis, "fare no longer offered for this itinerary")
	}

	counts := alliance.PaxCountsFromBreakup(itin.PriceBreakup)
	summary, err := alliance.PriceBreakup(fare, counts)
	if err != nil {
		return nil, err
	}

	priceChange := itin.TotalPrice != 0 && summary.TotalPrice != itin.TotalPrice
	if priceChange {
		s.log.WithTraceID(req.TraceID).Info().
			Float64("quoted", itin.TotalPrice).
			Float64("current", summary.TotalPrice).
			Str("fare_basis", fareBasis).
			Msg("Fare changed since search")
	}

	itin.BaseFare = summary.BaseFare
	itin.Taxes = summary.Taxes
	itin.TotalPrice = summary.TotalPrice
	itin.PriceBreakup = summary.PriceBreakup
	if fare.Currency != "" {
		itin.Currency = fare.Currency
	}

	journey.Itinerary = []domain.Itinerary{itin}
	return &domain.PricingResponse{
		UniqueKey: req.UniqueKey,
		TraceID:   req.TraceID,
		Journey: []domain.PricingJourney{{
			Journey:     journey,
			PriceChange: priceChange,
		}},
	}, nil
}

func findFareByBasis(rows []alliance.FareRow, fareBasis string) *alliance.FareRow {
	for i := range rows {
		if rows[i].FareBasis == fareBasis {
			return &rows[i]
		}
	}
	return nil
}

func validatePricing(req *domain.PricingRequest) error {
	if len(req.VendorList) == 0 || req.UserID() == "" {
		return domain.WrapInvalidRequest("vendorList with a credential userId is required")
	}
	if len(req.Journey) == 0 || len(req.Journey[0].Itinerary) == 0 {
		return domain.WrapInvalidRequest("a journey with one itinerary is required")
	}
	if len(req.Journey[0].Itinerary[0].AirSegments) == 0 {
		return domain.WrapInvalidRequest("the itinerary has no air segments")
	}
	return nil
}
