// Package reference resolves airline and airport codes to display data.
// The store is read-only and populated out of band; enrichment through it is
// best-effort and must never fail a decode.
package reference

import "context"

// Airline is the display record for an airline code.
type Airline struct {
	Code string
	Name string
}

// Airport is the display record for an airport code.
type Airport struct {
	Code        string
	Name        string
	CityCode    string
	CityName    string
	CountryCode string
	CountryName string
}

// Lookup is the read-only reference data contract. A missing entry resolves
// to (nil, nil), never an error: callers substitute empty strings.
type Lookup interface {
	FindAirline(ctx context.Context, code string) (*Airline, error)
	FindAirport(ctx context.Context, code string) (*Airport, error)
}
