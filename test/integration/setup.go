// Package integration provides helpers and integration tests for the
// distribution gateway. The tests wire the real HTTP handler, service,
// supplier gateway and codec against a fake supplier endpoint, so a request
// travels the same path it would in production.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	gatewayhttp "github.com/raviWithTraversia/alliance-API/internal/adapter/http"
	"github.com/raviWithTraversia/alliance-API/internal/alliance"
	"github.com/raviWithTraversia/alliance-API/internal/auditlog"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/retry"
	"github.com/raviWithTraversia/alliance-API/internal/reference"
	"github.com/raviWithTraversia/alliance-API/internal/usecase"
)

// FakeSupplier is an HTTP test server that plays the legacy supplier. It
// dispatches on the action query parameter and answers with canned
// positional-JSON bodies.
type FakeSupplier struct {
	Server *httptest.Server

	// Responses maps an action name to the JSON body returned for it.
	Responses map[string]string

	mu       sync.Mutex
	requests []map[string]string
}

// NewFakeSupplier starts a fake supplier endpoint.
func NewFakeSupplier() *FakeSupplier {
	f := &FakeSupplier{Responses: map[string]string{}}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		seen := map[string]string{}
		for k := range q {
			seen[k] = q.Get(k)
		}
		f.mu.Lock()
		f.requests = append(f.requests, seen)
		f.mu.Unlock()

		body, ok := f.Responses[q.Get("action")]
		if !ok {
			body = `{"err_code":"90","err_msg":"Unknown action"}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	return f
}

// Close shuts the fake supplier down.
func (f *FakeSupplier) Close() { f.Server.Close() }

// Requests returns the query values of every call seen so far, in order.
func (f *FakeSupplier) Requests() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]string, len(f.requests))
	copy(out, f.requests)
	return out
}

// TestServer wraps an Echo instance running the full gateway stack against a
// fake supplier.
type TestServer struct {
	Echo       *echo.Echo
	AuditStore *auditlog.MemoryStore
}

// NewTestServer wires handler, service, supplier gateway, decoder and
// in-memory stores against the given supplier base URL.
func NewTestServer(supplierURL string) *TestServer {
	auditStore := auditlog.NewMemoryStore()

	gateway := alliance.NewGateway(alliance.GatewayConfig{
		Endpoints: alliance.Endpoints{
			TestBaseURL: supplierURL,
			LiveBaseURL: supplierURL,
		},
		CallTimeout: 5 * time.Second,
		Retry:       retry.VendorConfig.WithInitialDelay(time.Millisecond).WithMaxDelay(5 * time.Millisecond),
		Audit:       auditlog.NewRecorder(auditStore, nil),
	})

	lookup := reference.NewStatic(
		[]reference.Airline{{Code: "9I", Name: "Alliance Air"}},
		[]reference.Airport{
			{Code: "DEL", Name: "Indira Gandhi International Airport", CityName: "New Delhi", CountryCode: "IN"},
			{Code: "IXJ", Name: "Jammu Airport", CityName: "Jammu", CountryCode: "IN"},
		},
	)
	decoder := alliance.NewDecoder(lookup, nil, nil)
	service := usecase.NewAirService(gateway, decoder, nil, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := gatewayhttp.NewAirHandler(service)
	gatewayhttp.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:       e,
		AuditStore: auditStore,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// CommonRequest returns the canonical request envelope used throughout the
// integration tests.
func CommonRequest() domain.CommonRequest {
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

// SearchRequest returns a valid one-way search for the fixture route.
func SearchRequest() *domain.SearchRequest {
	return &domain.SearchRequest{
		CommonRequest: CommonRequest(),
		Sectors: []domain.Sector{{
			Origin:        "DEL",
			Destination:   "IXJ",
			DepartureDate: "25-12-2024",
			CabinClass:    "Economy",
		}},
		PaxDetail: domain.PaxDetail{Adults: 1},
	}
}

// Canned supplier bodies for the fixture route DEL-IXJ on 25 Dec 2024.
const (
	ScheduleBody = `{
		"err_code":"0","ws_access_id":"WS123","org":"DEL","des":"IXJ","flight_date":"20241225",
		"schedule":[
			["9I-601","DEL","IXJ","20241225","20241225","0630","0755","1h25m","AT7","DEL-IXJ",[["S","9"],["Y","4"]],"k1","","Scheduled","T1","T1"]
		]
	}`

	FareBody = `{
		"err_code":"0","ws_access_id":"WS123","org":"DEL","des":"IXJ","flight_no":"601","flight_date":"20241225",
		"fare_info":[
			["SAVER",
			 [1000,800,10,50,100,20,15,5],
			 [0,0,0,0,0,0,0,0],
			 [0,0,0,0,0,0,0,0],
			 [0,0,0,0,0,0,0,0],
			 [0,0,0,0,0,0,0,0],
			 [0,0,0,0,0,0,0,0],
			 "","1","","","INR",0,0,0,0,0,0,"15","15",null,null,null]
		]
	}`

	BookBody = `{"err_code":"0","book_code":"ABC123","org":"DEL","des":"IXJ","book_ccy":"INR","status":"R"}`

	PaymentBody = `{"err_code":"0","book_code":"ABC123","ccy":"INR","ticket_unit":[["JOHN DOE","8847741234567"]]}`

	PNRBody = `{
		"err_code":"0","book_code":"ABC123","book_ccy":"INR",
		"pax_list":[
			["JOHN","DOE","9810001000","A1234567","IN","A","8847741234567","","15-JAN-90","","MR","P1"]
		],
		"route_info":[
			["DEL","IXJ","25-DEC-24","25-DEC-24","0630","0755","S","9I-601","","Confirmed","Economy","8847741234567","SAVER"]
		]
	}`

	PNRFareBody = `{
		"err_code":"0","book_code":"ABC123","book_ccy":"INR",
		"detail_price":[
			["ABC123","JOHN DOE","DEL","IXJ","Basic Fare",500],
			["ABC123","JOHN DOE","DEL","IXJ","VAT",50]
		]
	}`
)
