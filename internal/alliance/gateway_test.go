package alliance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/retry"
)

type scriptedCall struct {
	body []byte
	err  error
}

// scriptedTransport replays a fixed sequence of responses and records the
// URLs it was asked for.
type scriptedTransport struct {
	script []scriptedCall
	urls   []string
}

func (s *scriptedTransport) Get(_ context.Context, rawURL string) ([]byte, error) {
	s.urls = append(s.urls, rawURL)
	if len(s.script) == 0 {
		return nil, errors.New("scripted transport exhausted")
	}
	next := s.script[0]
	s.script = s.script[1:]
	return next.body, next.err
}

func respond(body string) scriptedCall { return scriptedCall{body: []byte(body)} }
func fail(err error) scriptedCall      { return scriptedCall{err: err} }

func fastRetry() retry.Config {
	return retry.VendorConfig.
		WithInitialDelay(time.Millisecond).
		WithMaxDelay(2 * time.Millisecond)
}

func newTestGateway(transport Transport, store auditlog.Store) *Gateway {
	return NewGateway(GatewayConfig{
		Endpoints: Endpoints{
			TestBaseURL: "http://test.supplier.example",
			LiveBaseURL: "http://live.supplier.example",
		},
		Transport: transport,
		Retry:     fastRetry(),
		Audit:     auditlog.NewRecorder(store, nil),
	})
}

func testCall() Call {
	return Call{
		Service:        auditlog.ServiceSearch,
		UniqueKey:      "uk-1",
		TraceID:        "trace-1",
		UserID:         "agent01",
		CredentialType: domain.CredentialTest,
	}
}

func TestGateway_GetSchedule(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		respond(`{"err_code":"0","org":"DEL","des":"IXJ","schedule":[` + flightTupleJSON + `]}`),
	}}
	store := auditlog.NewMemoryStore()
	g := newTestGateway(transport, store)

	env, err := g.GetSchedule(context.Background(), testCall(), "DEL", "IXJ", "20241225")
	require.NoError(t, err)
	assert.Equal(t, "DEL", env.Org)
	assert.Len(t, env.Schedule, 1)

	require.Len(t, transport.urls, 1)
	url := transport.urls[0]
	assert.True(t, strings.HasPrefix(url, "http://test.supplier.example?rqid=agent01"), url)
	assert.Contains(t, url, "action=get_schedule_v2")

	require.Eventually(t, func() bool {
		return len(store.Records()) == 1
	}, time.Second, 5*time.Millisecond)
	rec := store.Records()[0]
	assert.Equal(t, auditlog.StatusSuccess, rec.Status)
	assert.Equal(t, "trace-1", rec.TraceID)
	assert.Equal(t, url, rec.VendorRequest)
}

func TestGateway_LiveCredentialUsesLiveBase(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		respond(`{"err_code":"0","schedule":[]}`),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	call := testCall()
	call.CredentialType = domain.CredentialLive
	_, err := g.GetSchedule(context.Background(), call, "DEL", "IXJ", "20241225")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(transport.urls[0], "http://live.supplier.example?"))
}

func TestGateway_VendorRejectionCarriesMessageVerbatim(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		respond(`{"err_code":"90","err_message":"No schedule available for this date"}`),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	_, err := g.GetSchedule(context.Background(), testCall(), "DEL", "IXJ", "20241225")
	require.Error(t, err)
	assert.True(t, domain.IsVendorError(err))

	var ve *domain.VendorError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "90", ve.Code)
	assert.Equal(t, "No schedule available for this date", ve.Message)
}

func TestGateway_VendorRejectionFallbackMessage(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		respond(`{"err_code":"99"}`),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	_, err := g.GetFare(context.Background(), testCall(), []ScheduleFlight{
		{FlightCode: "9I-601", Origin: "DEL", Destination: "IXJ", DepartureDate: "20241225"},
	})
	require.Error(t, err)

	var ve *domain.VendorError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Unknown fare error", ve.Message)
}

func TestGateway_RetriesTransportFailures(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		fail(errors.New("connection reset")),
		fail(errors.New("connection reset")),
		respond(`{"err_code":"0","schedule":[]}`),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	_, err := g.GetSchedule(context.Background(), testCall(), "DEL", "IXJ", "20241225")
	require.NoError(t, err)
	assert.Len(t, transport.urls, 3)
}

func TestGateway_ExhaustedRetriesReturnTransportError(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		fail(errors.New("connection reset")),
		fail(errors.New("connection reset")),
		fail(errors.New("connection reset")),
	}}
	store := auditlog.NewMemoryStore()
	g := newTestGateway(transport, store)

	_, err := g.GetSchedule(context.Background(), testCall(), "DEL", "IXJ", "20241225")
	require.Error(t, err)

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)

	require.Eventually(t, func() bool {
		return len(store.Records()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, auditlog.StatusFailure, store.Records()[0].Status)
}

func TestGateway_DeadlineBecomesVendorTimeout(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		fail(context.DeadlineExceeded),
		fail(context.DeadlineExceeded),
		fail(context.DeadlineExceeded),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	_, err := g.Pay(context.Background(), testCall(), "ABC123")
	require.Error(t, err)
	assert.True(t, domain.IsVendorTimeout(err))
}

func TestGateway_MalformedBodyIsTransportError(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		respond(`<html>gateway error</html>`),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	_, err := g.RetrievePNR(context.Background(), testCall(), "ABC123")
	require.Error(t, err)

	var te *domain.TransportError
	require.ErrorAs(t, err, &te)
}

func TestGateway_BookWithoutBookCodeIsVendorError(t *testing.T) {
	transport := &scriptedTransport{script: []scriptedCall{
		respond(`{"err_code":"0","book_code":""}`),
	}}
	g := newTestGateway(transport, auditlog.NewMemoryStore())

	journey := bookingJourney(domain.Traveler{
		Type: domain.PaxAdult, Title: "Mr", FirstName: "John", LastName: "Doe",
		ContactDetails: &domain.ContactDetails{Mobile: "9810001000"},
	})

	_, err := g.Book(context.Background(), testCall(), journey, nil)
	require.Error(t, err)
	assert.True(t, domain.IsVendorError(err))
}
