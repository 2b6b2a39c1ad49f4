// Package main is the entry point for the alliance distribution gateway.
//
// The gateway fronts a single legacy airline supplier (carrier 9I) whose API
// speaks positional query parameters and positional-array JSON. It exposes a
// canonical JSON API for search, pricing, booking, ticketing, and PNR import.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	gatewayhttp "github.com/raviWithTraversia/alliance-API/internal/adapter/http"
	appmiddleware "github.com/raviWithTraversia/alliance-API/internal/adapter/http/middleware"
	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/config"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/logger"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/metrics"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/retry"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/timeutil"
	"github.com/raviWithTraversia/alliance-API/internal/reference"
	"github.com/raviWithTraversia/alliance-API/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	logger.Init(cfg.Logging)
	log := logger.Global

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	appmiddleware.Setup(e, log.Logger)

	// Build stores: Postgres when configured, in-memory otherwise.
	ctx := context.Background()
	auditStore, lookup, closeStores, err := buildStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer closeStores()

	// Vendor call metrics, exposed on /metrics.
	vendorMetrics := metrics.NewVendor(prometheus.DefaultRegisterer)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Supplier gateway
	gateway := alliance.NewGateway(alliance.GatewayConfig{
		Endpoints: alliance.Endpoints{
			TestBaseURL: cfg.Vendor.TestBaseURL,
			LiveBaseURL: cfg.Vendor.LiveBaseURL,
		},
		Transport:   alliance.NewHTTPTransport(cfg.Vendor.CallTimeout),
		CallTimeout: cfg.Vendor.CallTimeout,
		Retry: retry.VendorConfig.
			WithMaxAttempts(cfg.Vendor.RetryAttempts).
			WithInitialDelay(cfg.Vendor.RetryInitialDelay).
			WithMaxDelay(cfg.Vendor.RetryMaxDelay),
		Audit:   auditlog.NewRecorder(auditStore, log),
		Metrics: vendorMetrics,
		Log:     log,
	})

	// Wire service and handler
	decoder := alliance.NewDecoder(lookup, timeutil.NewRealClock(), log)
	service := usecase.NewAirService(gateway, decoder, log, &usecase.Config{
		FareConcurrency: cfg.Vendor.FareConcurrency,
	})
	handler := gatewayhttp.NewAirHandler(service)
	gatewayhttp.RegisterRoutes(e, handler)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// buildStores connects the audit log store and reference data lookup.
// Without a DATABASE_URL both fall back to in-process implementations, which
// is enough for development and for the supplier sandbox.
func buildStores(ctx context.Context, cfg *config.Config) (auditlog.Store, reference.Lookup, func(), error) {
	if cfg.Database.URL == "" {
		return auditlog.NewMemoryStore(), reference.NewStatic(seedAirlines(), seedAirports()), func() {}, nil
	}

	auditStore, err := auditlog.NewPostgresStore(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("audit store: %w", err)
	}
	lookup, err := reference.NewPostgresLookup(ctx, cfg.Database.URL)
	if err != nil {
		auditStore.Close()
		return nil, nil, nil, fmt.Errorf("reference lookup: %w", err)
	}

	closeAll := func() {
		lookup.Close()
		auditStore.Close()
	}
	return auditStore, lookup, closeAll, nil
}

// seedAirlines returns the static airline reference data used without a
// database. The gateway serves a single carrier.
func seedAirlines() []reference.Airline {
	return []reference.Airline{
		{Code: "9I", Name: "Alliance Air"},
	}
}

// seedAirports returns the static airport reference data used without a
// database. Covers the carrier's network hubs.
func seedAirports() []reference.Airport {
	return []reference.Airport{
		{Code: "DEL", Name: "Indira Gandhi International Airport", CityCode: "DEL", CityName: "New Delhi", CountryCode: "IN", CountryName: "India"},
		{Code: "IXJ", Name: "Jammu Airport", CityCode: "IXJ", CityName: "Jammu", CountryCode: "IN", CountryName: "India"},
		{Code: "IXL", Name: "Kushok Bakula Rimpochee Airport", CityCode: "IXL", CityName: "Leh", CountryCode: "IN", CountryName: "India"},
		{Code: "BLR", Name: "Kempegowda International Airport", CityCode: "BLR", CityName: "Bengaluru", CountryCode: "IN", CountryName: "India"},
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", CityCode: "BOM", CityName: "Mumbai", CountryCode: "IN", CountryName: "India"},
		{Code: "HYD", Name: "Rajiv Gandhi International Airport", CityCode: "HYD", CityName: "Hyderabad", CountryCode: "IN", CountryName: "India"},
		{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", CityCode: "CCU", CityName: "Kolkata", CountryCode: "IN", CountryName: "India"},
	}
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
