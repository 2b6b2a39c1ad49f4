package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/raviWithTraversia/alliance-API/internal/adapter/http/response"
	"github.com/raviWithTraversia/alliance-API/internal/domain"
	"github.com/raviWithTraversia/alliance-API/internal/usecase"
)

// AirHandler handles HTTP requests for the air distribution endpoints.
type AirHandler struct {
	service usecase.AirService
}

// NewAirHandler creates a new AirHandler backed by the given service.
func NewAirHandler(svc usecase.AirService) *AirHandler {
	return &AirHandler{
		service: svc,
	}
}

// Search handles POST /api/v1/air/search.
func (h *AirHandler) Search(c echo.Context) error {
	var req domain.SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := validateSearchRequest(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.Search(c.Request().Context(), &req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Result(c, result)
}

// Pricing handles POST /api/v1/air/pricing.
func (h *AirHandler) Pricing(c echo.Context) error {
	var req domain.PricingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := validatePricingRequest(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.Price(c.Request().Context(), &req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Result(c, result)
}

// Book handles POST /api/v1/air/book.
func (h *AirHandler) Book(c echo.Context) error {
	var req domain.BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := validateBookingRequest(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.Book(c.Request().Context(), &req)
	if err != nil {
		// A rejected booking still carries the journey state so the
		// caller can see what failed.
		var vendorErr *domain.VendorError
		if errors.As(err, &vendorErr) && result != nil {
			return response.VendorRejectionWithData(c, vendorErr.Message, result)
		}
		return h.handleError(c, err)
	}
	return response.Result(c, result)
}

// Ticket handles POST /api/v1/air/ticket.
func (h *AirHandler) Ticket(c echo.Context) error {
	var req domain.TicketRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := validateTicketRequest(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.Ticket(c.Request().Context(), &req)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Result(c, result)
}

// ImportPNR handles POST /api/v1/air/import-pnr/:pnr.
func (h *AirHandler) ImportPNR(c echo.Context) error {
	pnr := c.Param("pnr")

	var req domain.ImportPNRRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := validateImportPNRRequest(&req, pnr); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.service.ImportPNR(c.Request().Context(), &req, pnr)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Result(c, result)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *AirHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *AirHandler) handleError(c echo.Context, err error) error {
	// Supplier rejected the operation: relay its message verbatim.
	var vendorErr *domain.VendorError
	if errors.As(err, &vendorErr) {
		return response.VendorRejection(c, vendorErr.Message)
	}

	if domain.IsVendorTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if domain.IsAggregationError(err) {
		return response.AggregationFailure(c, err.Error())
	}

	var transportErr *domain.TransportError
	if errors.As(err, &transportErr) {
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *AirHandler) Health(c echo.Context) error {
	return response.Health(c)
}
