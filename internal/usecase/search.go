package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// Search implements AirService. It queries the schedule once, then fans out
// one fare lookup per flight group with bounded concurrency and assembles
// itineraries with deterministic index numbers.
func (s *airService) Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error) {
	if err := validateSearch(req); err != nil {
		return nil, err
	}
	ensureKeys(&req.CommonRequest)

	sector := req.Sectors[0]
	flightDate, err := alliance.EncodeSearchDate(sector.DepartureDate)
	if err != nil {
		return nil, domain.WrapInvalidRequest("departureDate: %v", err)
	}

	call := newCall(auditlog.ServiceSearch, &req.CommonRequest)
	log := s.log.WithTraceID(req.TraceID)

	env, err := s.gateway.GetSchedule(ctx, call, sector.Origin, sector.Destination, flightDate)
	if err != nil {
		return nil, err
	}

	groups := s.decoder.FlightGroups(env)
	log.Info().
		Int("flight_groups", len(groups)).
		Str("org", sector.Origin).
		Str("des", sector.Destination).
		Msg("Schedule retrieved")

	// Scatter: one fare lookup per flight group. Results keep their group
	// slot so itinerary ordering stays deterministic regardless of which
	// lookup finishes first.
	results := make([][]domain.Itinerary, len(groups))
	sem := make(chan struct{}, s.fareConcurrency)
	var wg sync.WaitGroup

	for i, group := range groups {
		wg.Add(1)
		go func(slot int, sectors []alliance.ScheduleFlight) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Msg("Fare lookup panicked")
				}
			}()
			sem <- struct{}{}
			defer func() { <-sem }()

			itins, err := s.fareItineraries(ctx, call, env, req, sectors)
			if err != nil {
				// A failed fare lookup drops its group, not the search.
				log.Warn().Err(err).Int("group", slot).Msg("Fare lookup failed")
				return
			}
			results[slot] = itins
		}(i, group)
	}
	wg.Wait()

	journey := domain.Journey{
		JourneyKey:  uuid.NewString(),
		Origin:      sector.Origin,
		Destination: sector.Destination,
	}

	index := req.IndexOffset
	if index <= 0 {
		index = 1
	}
	for _, itins := range results {
		for _, itin := range itins {
			itin.IndexNumber = index
			index++
			journey.Itinerary = append(journey.Itinerary, itin)
		}
	}

	return &domain.SearchResponse{
		UniqueKey: req.UniqueKey,
		TraceID:   req.TraceID,
		Journey:   []domain.Journey{journey},
	}, nil
}

// fareItineraries prices one flight group: one supplier fare call, then one
// itinerary per usable fare row.
func (s *airService) fareItineraries(ctx context.Context, call alliance.Call, env *alliance.ScheduleEnvelope, req *domain.SearchRequest, sectors []alliance.ScheduleFlight) ([]domain.Itinerary, error) {
	fareEnv, err := s.gateway.GetFare(ctx, call, sectors)
	if err != nil {
		return nil, err
	}

	counts := alliance.PaxCountsFromDetail(req.PaxDetail)

	itineraries := make([]domain.Itinerary, 0, len(fareEnv.FareInfo))
	for i := range fareEnv.FareInfo {
		fare := &fareEnv.FareInfo[i]

		summary, err := alliance.PriceBreakup(fare, counts)
		if err != nil {
			// A fare row that cannot serve the passenger mix is skipped.
			s.log.Debug().Err(err).Str("fare_basis", fare.FareBasis).Msg("Fare row skipped")
			continue
		}

		itineraries = append(itineraries, domain.Itinerary{
			UID:            uuid.NewString(),
			BaseFare:       summary.BaseFare,
			Taxes:          summary.Taxes,
			TotalPrice:     summary.TotalPrice,
			Currency:       fare.Currency,
			Provider:       alliance.SupplierCode,
			ValCarrier:     alliance.SupplierCode,
			FareFamily:     fareFamilyRegular,
			AirSegments:    s.decoder.Segments(ctx, sectors, fare),
			PriceBreakup:   summary.PriceBreakup,
			RefundableFare: true,
			FareType:       fareTypeRP,
			Key:            env.WSAccessID.String(),
			HostTokens:     []string{},
			IsRecommended:  true,
		})
	}
	return itineraries, nil
}

func validateSearch(req *domain.SearchRequest) error {
	if len(req.VendorList) == 0 || req.UserID() == "" {
		return domain.WrapInvalidRequest("vendorList with a credential userId is required")
	}
	if len(req.Sectors) == 0 {
		return domain.WrapInvalidRequest("at least one sector is required")
	}
	sector := req.Sectors[0]
	if sector.Origin == "" || sector.Destination == "" {
		return domain.WrapInvalidRequest("sector origin and destination are required")
	}
	if sector.CabinClass != "" && sector.CabinClass != cabinEconomy {
		return domain.WrapInvalidRequest("cabin class %q is not offered on this network", sector.CabinClass)
	}
	if req.PaxDetail.Adults <= 0 {
		return domain.WrapInvalidRequest("at least one adult passenger is required")
	}
	if req.PaxDetail.Infants > req.PaxDetail.Adults {
		return domain.WrapInvalidRequest("%d infants exceed %d adults", req.PaxDetail.Infants, req.PaxDetail.Adults)
	}
	return nil
}
