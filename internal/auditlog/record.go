// Package auditlog persists one structured record per vendor call.
// Persistence is fire-and-forget: a failure to save a record must never fail
// the primary operation.
package auditlog

import "time"

// Service names recorded per vendor call.
const (
	ServiceSearch     = "search"
	ServiceAirPricing = "air_pricing"
	ServiceAirBooking = "air_booking"
	ServiceTicketing  = "ticketing"
	ServiceImportPNR  = "import_pnr"
)

// Call statuses.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Record is the audit trail entry for one supplier round trip.
type Record struct {
	UniqueKey         string
	TraceID           string
	ServiceName       string
	VendorRequest     string
	VendorResponse    string
	RequestTimestamp  time.Time
	ResponseTimestamp time.Time
	Status            string
}
