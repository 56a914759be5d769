// Package rates defines the value objects of the rate-sheet domain:
// shipping zones, package weights, price queries, and the ShippingService
// aggregate that owns a price table.
package rates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ratefinder/internal/errors"
)

// Zone bounds for domestic rate sheets.
const (
	MinZone = 1
	MaxZone = 8
)

// Zone is an immutable value object identifying a shipping-distance tier.
// The zero value is not a valid zone; construct via NewZone or ParseZone.
type Zone struct {
	value int
}

var zonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^z(\d+)$`),      // z2, Z8
	regexp.MustCompile(`(?i)^zone\s*(\d+)$`), // zone 5, Zone5
	regexp.MustCompile(`^(\d+)$`),            // 5
}

// NewZone creates a Zone from an integer, validating the range.
func NewZone(value int) (Zone, error) {
	if value < MinZone || value > MaxZone {
		return Zone{}, errors.InvalidZone(strconv.Itoa(value),
			fmt.Sprintf("zone must be between %d and %d", MinZone, MaxZone))
	}
	return Zone{value: value}, nil
}

// ParseZone parses a zone from its textual forms: "z2", "Zone 5", "zone5", "5".
func ParseZone(s string) (Zone, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return Zone{}, errors.InvalidZone(s, "empty zone string")
	}

	for _, pattern := range zonePatterns {
		m := pattern.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Zone{}, errors.InvalidZone(s, fmt.Sprintf("cannot convert %q to integer", m[1]))
		}
		return NewZone(n)
	}

	return Zone{}, errors.InvalidZone(s, "format not recognized; expected 'z2', 'zone 5', or '5'")
}

// Value returns the zone number.
func (z Zone) Value() int {
	return z.value
}

// String returns the human-readable form, e.g. "Zone 5".
func (z Zone) String() string {
	return fmt.Sprintf("Zone %d", z.value)
}
