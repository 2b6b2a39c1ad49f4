package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gateway.
var (
	// ErrInvalidRequest indicates a malformed or missing required input field.
	// Requests failing this way never reach the vendor.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrVendorTimeout indicates the supplier did not answer within the
	// per-call deadline after retries were exhausted.
	ErrVendorTimeout = errors.New("vendor timeout")
)

// VendorError is a business-level rejection returned by the supplier.
// The supplier's message is carried verbatim.
type VendorError struct {
	// Operation is the supplier operation that failed (search, fare, book, ...).
	Operation string

	// Code is the supplier's err_code value.
	Code string

	// Message is the supplier's error message, verbatim.
	Message string
}

// Error implements the error interface.
func (e *VendorError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("vendor %s failed with code %s", e.Operation, e.Code)
	}
	return fmt.Sprintf("vendor %s: %s", e.Operation, e.Message)
}

// NewVendorError creates a VendorError carrying the supplier's message.
func NewVendorError(operation, code, message string) *VendorError {
	return &VendorError{Operation: operation, Code: code, Message: message}
}

// TransportError is a network-level failure calling the supplier.
type TransportError struct {
	Operation string
	Err       error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("vendor %s transport failure: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a network-level failure.
func NewTransportError(operation string, err error) *TransportError {
	return &TransportError{Operation: operation, Err: err}
}

// DecodeError indicates a single response element could not be mapped to the
// canonical shape. It is scoped to that element: decoding continues for the
// rest of the batch.
type DecodeError struct {
	// Shape names the tuple shape being decoded (flight, passenger, route, fare).
	Shape string

	// Index is the element's position within the batch.
	Index int

	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s[%d]: %v", e.Shape, e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates an element-scoped decode error.
func NewDecodeError(shape string, index int, err error) *DecodeError {
	return &DecodeError{Shape: shape, Index: index, Err: err}
}

// AggregationError indicates a passenger's fare could not be located during
// price-breakup computation. It is fatal for the request: downstream totals
// would otherwise be silently wrong.
type AggregationError struct {
	// Passenger is the normalized passenger name or fare key that failed.
	Passenger string

	Reason string
}

// Error implements the error interface.
func (e *AggregationError) Error() string {
	return fmt.Sprintf("fare aggregation for %q: %s", e.Passenger, e.Reason)
}

// NewAggregationError creates a fare aggregation failure.
func NewAggregationError(passenger, reason string) *AggregationError {
	return &AggregationError{Passenger: passenger, Reason: reason}
}

// WrapInvalidRequest wraps a formatted message with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	args = append([]interface{}{ErrInvalidRequest}, args...)
	return fmt.Errorf("%w: "+format, args...)
}

// IsInvalidRequest checks if the error is (or wraps) ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsVendorTimeout checks if the error is (or wraps) ErrVendorTimeout.
func IsVendorTimeout(err error) bool {
	return errors.Is(err, ErrVendorTimeout)
}

// IsVendorError checks if the error is a supplier business rejection.
func IsVendorError(err error) bool {
	var ve *VendorError
	return errors.As(err, &ve)
}

// IsAggregationError checks if the error is a fare aggregation failure.
func IsAggregationError(err error) bool {
	var ae *AggregationError
	return errors.As(err, &ae)
}
