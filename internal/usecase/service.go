// Package usecase orchestrates the gateway operations: it drives the vendor
// codec, aggregates fares and assembles the canonical responses.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/logger"
)

// Itinerary constants for this supplier's single product line.
const (
	fareFamilyRegular = "Regular Fare"
	fareTypeRP        = "RP"
	cabinEconomy      = "Economy"
)

// DefaultFareConcurrency bounds the concurrent fare lookups fanned out per
// search.
const DefaultFareConcurrency = 4

// VendorGateway is the supplier operation surface consumed by the service.
type VendorGateway interface {
	GetSchedule(ctx context.Context, call alliance.Call, org, des, flightDate string) (*alliance.ScheduleEnvelope, error)
	GetFare(ctx context.Context, call alliance.Call, sectors []alliance.ScheduleFlight) (*alliance.FareEnvelope, error)
	Book(ctx context.Context, call alliance.Call, journey *domain.BookingJourney, gst *domain.GSTDetails) (*alliance.BookEnvelope, error)
	Pay(ctx context.Context, call alliance.Call, bookCode string) (*alliance.PaymentEnvelope, error)
	RetrievePNR(ctx context.Context, call alliance.Call, bookCode string) (*alliance.PNREnvelope, error)
	RetrievePNRFare(ctx context.Context, call alliance.Call, bookCode string) (*alliance.PNRFareEnvelope, error)
}

// AirService defines the gateway's five operations.
type AirService interface {
	Search(ctx context.Context, req *domain.SearchRequest) (*domain.SearchResponse, error)
	Price(ctx context.Context, req *domain.PricingRequest) (*domain.PricingResponse, error)
	Book(ctx context.Context, req *domain.BookingRequest) (*domain.BookingResponse, error)
	Ticket(ctx context.Context, req *domain.TicketRequest) (*domain.BookingResponse, error)
	ImportPNR(ctx context.Context, req *domain.ImportPNRRequest, pnr string) (*domain.BookingResponse, error)
}

// Config contains configuration options for the service.
type Config struct {
	FareConcurrency int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{FareConcurrency: DefaultFareConcurrency}
}

type airService struct {
	gateway         VendorGateway
	decoder         *alliance.Decoder
	log             *logger.Logger
	fareConcurrency int
}

// NewAirService creates an AirService. If config is nil, defaults are used.
func NewAirService(gateway VendorGateway, decoder *alliance.Decoder, log *logger.Logger, config *Config) AirService {
	cfg := DefaultConfig()
	if config != nil && config.FareConcurrency > 0 {
		cfg.FareConcurrency = config.FareConcurrency
	}
	if log == nil {
		log = logger.Nop()
	}
	return &airService{
		gateway:         gateway,
		decoder:         decoder,
		log:             log,
		fareConcurrency: cfg.FareConcurrency,
	}
}

// ensureKeys fills in uniqueKey and traceId when the caller omitted them.
func ensureKeys(common *domain.CommonRequest) {
	if common.UniqueKey == "" {
		common.UniqueKey = uuid.NewString()
	}
	if common.TraceID == "" {
		common.TraceID = uuid.NewString()
	}
}

// newCall builds the audit identity for one supplier round trip.
func newCall(service string, common *domain.CommonRequest) alliance.Call {
	return alliance.Call{
		Service:        service,
		UniqueKey:      common.UniqueKey,
		TraceID:        common.TraceID,
		UserID:         common.UserID(),
		CredentialType: common.CredentialType,
	}
}

// Ensure airService implements AirService at compile time.
var _ AirService = (*airService)(nil)
