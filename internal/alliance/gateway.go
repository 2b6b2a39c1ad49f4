package alliance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/logger"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/metrics"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/retry"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/timeutil"
)

// Transport performs one HTTP round trip to the supplier. The supplier's
// protocol is GET-only: everything rides in the query string.
type Transport interface {
	Get(ctx context.Context, rawURL string) ([]byte, error)
}

// HTTPTransport is the production Transport.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a transport with the given overall client timeout.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: timeout}}
}

// Get implements Transport.
func (t *HTTPTransport) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// Endpoints holds the supplier base URLs per credential environment.
type Endpoints struct {
	TestBaseURL string
	LiveBaseURL string
}

// BaseURL resolves the base URL for a credential type.
func (e Endpoints) BaseURL(t domain.CredentialType) string {
	if t == domain.CredentialLive {
		return e.LiveBaseURL
	}
	return e.TestBaseURL
}

// Call carries the per-request identity threaded through every supplier
// round trip for auditing.
type Call struct {
	Service        string
	UniqueKey      string
	TraceID        string
	UserID         string
	CredentialType domain.CredentialType
}

// GatewayConfig configures a Gateway. Zero-value optional fields fall back
// to working defaults.
type GatewayConfig struct {
	Endpoints   Endpoints
	Transport   Transport
	CallTimeout time.Duration
	Retry       retry.Config
	Audit       *auditlog.Recorder
	Metrics     *metrics.Vendor
	Clock       timeutil.Clock
	Log         *logger.Logger
}

// Gateway executes supplier operations: it encodes the query, performs the
// round trip with retry, decodes the envelope, and translates supplier
// rejections into the gateway error taxonomy. Every round trip is measured
// and audited.
type Gateway struct {
	endpoints   Endpoints
	transport   Transport
	callTimeout time.Duration
	retryCfg    retry.Config
	audit       *auditlog.Recorder
	metrics     *metrics.Vendor
	clock       timeutil.Clock
	log         *logger.Logger
}

// NewGateway creates a Gateway.
func NewGateway(cfg GatewayConfig) *Gateway {
	g := &Gateway{
		endpoints:   cfg.Endpoints,
		transport:   cfg.Transport,
		callTimeout: cfg.CallTimeout,
		retryCfg:    cfg.Retry,
		audit:       cfg.Audit,
		metrics:     cfg.Metrics,
		clock:       cfg.Clock,
		log:         cfg.Log,
	}
	if g.transport == nil {
		g.transport = NewHTTPTransport(0)
	}
	if g.callTimeout <= 0 {
		g.callTimeout = 15 * time.Second
	}
	if g.retryCfg.MaxAttempts == 0 {
		g.retryCfg = retry.VendorConfig
	}
	if g.metrics == nil {
		g.metrics = metrics.NewNopVendor()
	}
	if g.clock == nil {
		g.clock = timeutil.NewRealClock()
	}
	if g.log == nil {
		g.log = logger.Nop()
	}
	return g
}

// GetSchedule runs get_schedule_v2.
func (g *Gateway) GetSchedule(ctx context.Context, call Call, org, des, flightDate string) (*ScheduleEnvelope, error) {
	params := NewSearchParams(call.UserID, org, des, flightDate)
	var env ScheduleEnvelope
	if err := g.do(ctx, call, ActionSearch, params, &env); err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, g.vendorError(ActionSearch, env.ErrCode, env.ErrMessage, "Unknown search error")
	}
	return &env, nil
}

// GetFare runs get_fare_v2_new for one flight group.
func (g *Gateway) GetFare(ctx context.Context, call Call, sectors []ScheduleFlight) (*FareEnvelope, error) {
	params, err := NewFareParams(call.UserID, sectors)
	if err != nil {
		return nil, domain.WrapInvalidRequest("%v", err)
	}
	var env FareEnvelope
	if err := g.do(ctx, call, ActionFare, params, &env); err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, g.vendorError(ActionFare, env.ErrCode, env.ErrMsg, "Unknown fare error")
	}
	return &env, nil
}

// Book runs booking_v2.
func (g *Gateway) Book(ctx context.Context, call Call, journey *domain.BookingJourney, gst *domain.GSTDetails) (*BookEnvelope, error) {
	params, err := NewBookParams(call.UserID, journey, gst)
	if err != nil {
		return nil, domain.WrapInvalidRequest("%v", err)
	}
	var env BookEnvelope
	if err := g.do(ctx, call, ActionBook, params, &env); err != nil {
		return nil, err
	}
	if !env.OK() || env.BookCode == "" {
		return nil, g.vendorError(ActionBook, env.ErrCode, env.ErrMsg, "Unknown booking error")
	}
	return &env, nil
}

// Pay runs payment, issuing tickets for a held booking.
func (g *Gateway) Pay(ctx context.Context, call Call, bookCode string) (*PaymentEnvelope, error) {
	params := NewPaymentParams(call.UserID, bookCode)
	var env PaymentEnvelope
	if err := g.do(ctx, call, ActionPayment, params, &env); err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, g.vendorError(ActionPayment, env.ErrCode, env.ErrMsg, "Unknown payment error")
	}
	return &env, nil
}

// RetrievePNR runs get_all_book_info_2.
func (g *Gateway) RetrievePNR(ctx context.Context, call Call, bookCode string) (*PNREnvelope, error) {
	params := NewPNRRetrieveParams(call.UserID, bookCode)
	var env PNREnvelope
	if err := g.do(ctx, call, ActionRetrievePNR, params, &env); err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, g.vendorError(ActionRetrievePNR, env.ErrCode, env.ErrMsg, "Unknown booking retrieve error")
	}
	return &env, nil
}

// RetrievePNRFare runs get_book_price_detail_info_2.
func (g *Gateway) RetrievePNRFare(ctx context.Context, call Call, bookCode string) (*PNRFareEnvelope, error) {
	params := NewPNRFareParams(call.UserID, bookCode)
	var env PNRFareEnvelope
	if err := g.do(ctx, call, ActionPNRFare, params, &env); err != nil {
		return nil, err
	}
	if !env.OK() {
		return nil, g.vendorError(ActionPNRFare, env.ErrCode, env.ErrMsg, "Unknown price detail error")
	}
	return &env, nil
}

func (g *Gateway) vendorError(operation string, code wireString, message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return domain.NewVendorError(operation, string(code), message)
}

// do performs one supplier round trip with retry, records metrics and the
// audit trail, and unmarshals the envelope into out.
func (g *Gateway) do(ctx context.Context, call Call, operation string, params *Params, out interface{}) error {
	fullURL := g.endpoints.BaseURL(call.CredentialType) + "?" + params.Encode()

	reqTS := g.clock.Now()
	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		attemptCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
		defer cancel()
		return g.transport.Get(attemptCtx, fullURL)
	}, g.retryCfg)
	respTS := g.clock.Now()

	result := metrics.ResultSuccess
	status := auditlog.StatusSuccess
	response := string(body)
	if err != nil {
		status = auditlog.StatusFailure
		response = err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			result = metrics.ResultTimeout
		} else {
			result = metrics.ResultFailure
		}
	}
	g.metrics.Observe(operation, result, respTS.Sub(reqTS))
	g.audit.Record(auditlog.Record{
		UniqueKey:         call.UniqueKey,
		TraceID:           call.TraceID,
		ServiceName:       call.Service,
		VendorRequest:     fullURL,
		VendorResponse:    response,
		RequestTimestamp:  reqTS,
		ResponseTimestamp: respTS,
		Status:            status,
	})

	if err != nil {
		g.log.Error().Err(err).
			Str("operation", operation).
			Str("trace_id", call.TraceID).
			Msg("Vendor call failed")
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", domain.ErrVendorTimeout, operation)
		}
		return domain.NewTransportError(operation, err)
	}

	g.log.Debug().
		Str("operation", operation).
		Str("trace_id", call.TraceID).
		Dur("elapsed", respTS.Sub(reqTS)).
		Msg("Vendor call completed")

	if err := json.Unmarshal(body, out); err != nil {
		return domain.NewTransportError(operation, fmt.Errorf("malformed vendor response: %w", err))
	}
	return nil
}
