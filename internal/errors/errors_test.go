package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(TypeInvalidZone, "zone out of range")
	if got := err.Error(); got != "[INVALID_ZONE] zone out of range" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := Wrap(TypeInvalidQuery, "invalid query", fmt.Errorf("boom"))
	if got := wrapped.Error(); !strings.Contains(got, "boom") {
		t.Errorf("wrapped Error() = %q, cause missing", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := InvalidZone("99", "must be between 1 and 8")
	wrapped := InvalidQuery("zone 99, 5lb", "invalid zone", cause)

	if !IsType(wrapped, TypeInvalidQuery) {
		t.Errorf("outer type = %v", wrapped.Type)
	}
	if !IsType(wrapped.Unwrap(), TypeInvalidZone) {
		t.Errorf("cause = %v, want INVALID_ZONE", wrapped.Unwrap())
	}
}

func TestIsType(t *testing.T) {
	if IsType(fmt.Errorf("plain"), TypeInternal) {
		t.Error("plain error matched a domain type")
	}
	if !IsType(DataNotLoaded(), TypeDataNotLoaded) {
		t.Error("DataNotLoaded type mismatch")
	}
}

func TestWithContext(t *testing.T) {
	err := ServiceNotAvailable("Unknown", []string{"FedEx 2Day", "FedEx Ground"}, 3)

	if err.Context["service"] != "Unknown" {
		t.Errorf("context service = %v", err.Context["service"])
	}
	suggestions, ok := err.Context["suggestions"].([]string)
	if !ok || len(suggestions) != 2 {
		t.Errorf("suggestions = %v", err.Context["suggestions"])
	}
	if err.Context["more"] != 3 {
		t.Errorf("more = %v, want 3", err.Context["more"])
	}
}
