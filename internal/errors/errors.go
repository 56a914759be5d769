// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidZone indicates a zone outside [1,8] or unparseable zone text
	TypeInvalidZone Type = "INVALID_ZONE"

	// TypeInvalidWeight indicates a non-positive or unparseable weight
	TypeInvalidWeight Type = "INVALID_WEIGHT"

	// TypeInvalidQuery indicates a query string neither grammar could parse
	TypeInvalidQuery Type = "INVALID_QUERY"

	// TypeServiceNotAvailable indicates no service matched the query
	TypeServiceNotAvailable Type = "SERVICE_NOT_AVAILABLE"

	// TypePriceNotFound indicates no price exists for a (zone, weight) pair
	TypePriceNotFound Type = "PRICE_NOT_FOUND"

	// TypeDataNotLoaded indicates a query was attempted before any data was loaded
	TypeDataNotLoaded Type = "DATA_NOT_LOADED"

	// TypeExtraction indicates a table or document extraction error
	TypeExtraction Type = "EXTRACTION_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidZone creates an invalid zone error
func InvalidZone(value, reason string) *Error {
	return Newf(TypeInvalidZone, "invalid zone %q: %s", value, reason).
		WithContext("value", value)
}

// InvalidWeight creates an invalid weight error
func InvalidWeight(value, reason string) *Error {
	return Newf(TypeInvalidWeight, "invalid weight %q: %s", value, reason).
		WithContext("value", value)
}

// InvalidQuery creates an invalid query error
func InvalidQuery(query, reason string, cause error) *Error {
	return Wrapf(TypeInvalidQuery, cause, "invalid query %q: %s", query, reason).
		WithContext("query", query)
}

// ServiceNotAvailable creates a service not available error.
// Suggestions carries up to a handful of known service names for user guidance.
func ServiceNotAvailable(serviceName string, suggestions []string, overflow int) *Error {
	e := Newf(TypeServiceNotAvailable, "service %q not available", serviceName).
		WithContext("service", serviceName)
	if len(suggestions) > 0 {
		e = e.WithContext("suggestions", suggestions)
	}
	if overflow > 0 {
		e = e.WithContext("more", overflow)
	}
	return e
}

// PriceNotFound creates a price not found error
func PriceNotFound(service string, zone int, weight string) *Error {
	return Newf(TypePriceNotFound, "price not found for service %q, zone %d, weight %s lb",
		service, zone, weight).
		WithContext("service", service).
		WithContext("zone", zone).
		WithContext("weight", weight)
}

// DataNotLoaded creates a data not loaded error
func DataNotLoaded() *Error {
	return New(TypeDataNotLoaded, "no price data loaded; load a rate sheet first")
}

// Extraction creates an extraction error
func Extraction(message string, cause error) *Error {
	return Wrap(TypeExtraction, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
