package reference

import (
	"context"
	"strings"
)

// Static is an in-memory Lookup seeded at construction. It backs tests and
// deployments without a reference database.
type Static struct {
	airlines map[string]Airline
	airports map[string]Airport
}

// NewStatic creates a Static lookup from the given records.
func NewStatic(airlines []Airline, airports []Airport) *Static {
	s := &Static{
		airlines: make(map[string]Airline, len(airlines)),
		airports: make(map[string]Airport, len(airports)),
	}
	for _, a := range airlines {
		s.airlines[strings.ToUpper(a.Code)] = a
	}
	for _, a := range airports {
		s.airports[strings.ToUpper(a.Code)] = a
	}
	return s
}

// FindAirline implements Lookup.
func (s *Static) FindAirline(_ context.Context, code string) (*Airline, error) {
	if a, ok := s.airlines[strings.ToUpper(code)]; ok {
		return &a, nil
	}
	return nil, nil
}

// FindAirport implements Lookup.
func (s *Static) FindAirport(_ context.Context, code string) (*Airport, error) {
	if a, ok := s.airports[strings.ToUpper(code)]; ok {
		return &a, nil
	}
	return nil, nil
}

var _ Lookup = (*Static)(nil)
