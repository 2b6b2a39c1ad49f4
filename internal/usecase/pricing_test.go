package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

func pricedItinerary(totalPrice float64) domain.Itinerary {
	return domain.Itinerary{
		UID:        "it-1",
		BaseFare:   totalPrice - 200,
		Taxes:      200,
		TotalPrice: totalPrice,
		Currency:   "INR",
		Provider:   "9I",
		AirSegments: []domain.AirSegment{{
			AirlineCode:   "9I",
			FlightNumber:  "601",
			FareBasisCode: "SAVER",
			Departure:     domain.AirportDetail{Code: "DEL", Date: "25/12/2024", Time: "06:30"},
			Arrival:       domain.AirportDetail{Code: "IXJ", Date: "25/12/2024", Time: "07:55"},
		}},
		PriceBreakup: []domain.PriceBreakupRow{{PassengerType: "ADT", NoOfPassenger: 1}},
	}
}

func pricingRequest(totalPrice float64) *domain.PricingRequest {
	return &domain.PricingRequest{
		CommonRequest: commonRequest(),
		Journey: []domain.Journey{{
			JourneyKey:  "j-1",
			Origin:      "DEL",
			Destination: "IXJ",
			Itinerary:   []domain.Itinerary{pricedItinerary(totalPrice)},
		}},
	}
}

func TestPrice_NoChange(t *testing.T) {
	gw := &stubGateway{
		fareEnv: &alliance.FareEnvelope{FareInfo: []alliance.FareRow{saverFareRow()}},
	}
	svc := newTestService(gw)

	resp, err := svc.Price(context.Background(), pricingRequest(1000))
	require.NoError(t, err)

	require.Len(t, resp.Journey, 1)
	assert.False(t, resp.Journey[0].PriceChange)

	itin := resp.Journey[0].Itinerary[0]
	assert.Equal(t, 1000.0, itin.TotalPrice)
	assert.Equal(t, 800.0, itin.BaseFare)
	assert.Equal(t, 200.0, itin.Taxes)
	require.Len(t, itin.PriceBreakup, 1)
	assert.Equal(t, 1, itin.PriceBreakup[0].NoOfPassenger)
}

func TestPrice_ChangeFlagged(t *testing.T) {
	gw := &stubGateway{
		fareEnv: &alliance.FareEnvelope{FareInfo: []alliance.FareRow{saverFareRow()}},
	}
	svc := newTestService(gw)

	resp, err := svc.Price(context.Background(), pricingRequest(900))
	require.NoError(t, err)

	assert.True(t, resp.Journey[0].PriceChange)
	// The response carries the current price, not the stale quote.
	assert.Equal(t, 1000.0, resp.Journey[0].Itinerary[0].TotalPrice)
}

func TestPrice_FareNoLongerOffered(t *testing.T) {
	other := saverFareRow()
	other.FareBasis = "FLEXI"
	gw := &stubGateway{
		fareEnv: &alliance.FareEnvelope{FareInfo: []alliance.FareRow{other}},
	}
	svc := newTestService(gw)

	_, err := svc.Price(context.Background(), pricingRequest(1000))
	require.Error(t, err)
	assert.True(t, domain.IsAggregationError(err))
}

func TestPrice_Validation(t *testing.T) {
	svc := newTestService(&stubGateway{})

	req := pricingRequest(1000)
	req.Journey = nil
	_, err := svc.Price(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))

	req = pricingRequest(1000)
	req.Journey[0].Itinerary[0].AirSegments = nil
	_, err = svc.Price(context.Background(), req)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidRequest(err))
}
