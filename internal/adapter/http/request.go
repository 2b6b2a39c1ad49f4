// Package http provides the HTTP handler layer for the distribution gateway
// API. It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"regexp"

	"github.com/raviWithTraversia/alliance-API/internal/domain"
)

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	searchDatePattern  = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	pnrPattern         = regexp.MustCompile(`^[A-Z0-9]{5,8}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func validateCommon(common *domain.CommonRequest, errs *ValidationErrors) {
	if len(common.VendorList) == 0 {
		errs.Add("vendorList", "vendorList is required")
		return
	}
	if common.VendorList[0].Credential.UserID == "" {
		errs.Add("vendorList[0].credential.userId", "credential userId is required")
	}
	switch common.CredentialType {
	case "", domain.CredentialTest, domain.CredentialLive:
	default:
		errs.Add("credentialType", "credentialType must be TEST or LIVE")
	}
}

func validateSearchRequest(req *domain.SearchRequest) error {
	errs := &ValidationErrors{}
	validateCommon(&req.CommonRequest, errs)

	if len(req.Sectors) == 0 {
		errs.Add("sectors", "at least one sector is required")
	} else {
		sector := &req.Sectors[0]
		if !airportCodePattern.MatchString(sector.Origin) {
			errs.Add("sectors[0].origin", "origin must be a valid 3-letter IATA airport code")
		}
		if !airportCodePattern.MatchString(sector.Destination) {
			errs.Add("sectors[0].destination", "destination must be a valid 3-letter IATA airport code")
		}
		if sector.Origin != "" && sector.Origin == sector.Destination {
			errs.Add("sectors[0].destination", "origin and destination must be different")
		}
		if !searchDatePattern.MatchString(sector.DepartureDate) {
			errs.Add("sectors[0].departureDate", "departureDate must be in DD-MM-YYYY format")
		}
	}

	if req.PaxDetail.Adults < 1 {
		errs.Add("paxDetail.adults", "at least one adult is required")
	}
	total := req.PaxDetail.Adults + req.PaxDetail.Children + req.PaxDetail.Infants
	if total > 9 {
		errs.Add("paxDetail", "total passengers cannot exceed 9")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validatePricingRequest(req *domain.PricingRequest) error {
	errs := &ValidationErrors{}
	validateCommon(&req.CommonRequest, errs)

	if len(req.Journey) == 0 {
		errs.Add("journey", "a journey is required")
	} else if len(req.Journey[0].Itinerary) == 0 {
		errs.Add("journey[0].itinerary", "an itinerary is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateBookingRequest(req *domain.BookingRequest) error {
	errs := &ValidationErrors{}
	validateCommon(&req.CommonRequest, errs)

	if len(req.Journey) == 0 {
		errs.Add("journey", "a journey is required")
	} else {
		journey := &req.Journey[0]
		if len(journey.Itinerary) == 0 {
			errs.Add("journey[0].itinerary", "an itinerary is required")
		}
		if len(journey.TravellerDetails) == 0 {
			errs.Add("journey[0].travellerDetails", "at least one traveller is required")
		}
		for i := range journey.TravellerDetails {
			trv := &journey.TravellerDetails[i]
			field := func(name string) string {
				return fmt.Sprintf("journey[0].travellerDetails[%d].%s", i, name)
			}
			if trv.FirstName == "" {
				errs.Add(field("firstName"), "firstName is required")
			}
			if trv.LastName == "" {
				errs.Add(field("lastName"), "lastName is required")
			}
			switch trv.Type {
			case domain.PaxAdult, domain.PaxChild, domain.PaxInfant:
			default:
				errs.Add(field("type"), "type must be one of: ADT, CHD, INF")
			}
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateTicketRequest(req *domain.TicketRequest) error {
	errs := &ValidationErrors{}
	validateCommon(&req.CommonRequest, errs)

	if len(req.Journey) == 0 {
		errs.Add("journey", "a journey is required")
	} else if req.Journey[0].FirstPNR() == "" {
		errs.Add("journey[0].recLocInfo", "a record locator is required")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateImportPNRRequest(req *domain.ImportPNRRequest, pnr string) error {
	errs := &ValidationErrors{}
	validateCommon(&req.CommonRequest, errs)

	if !pnrPattern.MatchString(pnr) {
		errs.Add("pnr", "pnr must be a 5-8 character alphanumeric record locator")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
