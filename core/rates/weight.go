package rates

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"ratefinder/internal/errors"
)

// Weight is an immutable value object holding a package weight in pounds.
// It keeps full decimal precision so lookups never drift from the string
// keys stored in a price table.
type Weight struct {
	value decimal.Decimal
}

// weightPattern matches "3 lb", "3lb", "2.75 lbs", "3"; the unit is optional.
var weightPattern = regexp.MustCompile(`(?i)^([\d.]+)\s*(?:lb|lbs|pound|pounds)?$`)

// NewWeight creates a Weight from a decimal value, validating positivity.
func NewWeight(value decimal.Decimal) (Weight, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return Weight{}, errors.InvalidWeight(value.String(), "weight must be positive")
	}
	return Weight{value: value}, nil
}

// NewWeightFromFloat creates a Weight from a float64.
func NewWeightFromFloat(value float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(value))
}

// ParseWeight parses a weight from its textual forms: "3 lb", "3lb",
// "2.75 lbs", or a bare numeric string.
func ParseWeight(s string) (Weight, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return Weight{}, errors.InvalidWeight(s, "empty weight string")
	}

	m := weightPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return Weight{}, errors.InvalidWeight(s, "format not recognized; expected '3 lb', '3.5 lbs', or a number")
	}

	value, err := decimal.NewFromString(m[1])
	if err != nil {
		return Weight{}, errors.InvalidWeight(s, fmt.Sprintf("cannot convert %q to decimal", m[1]))
	}

	return NewWeight(value)
}

// Value returns the weight in pounds.
func (w Weight) Value() decimal.Decimal {
	return w.value
}

// Key returns the canonical string key used in price tables.
func (w Weight) Key() string {
	return w.value.String()
}

// Equal reports whether two weights are numerically equal.
func (w Weight) Equal(other Weight) bool {
	return w.value.Equal(other.value)
}

// String returns the human-readable form, e.g. "3.5 lb".
func (w Weight) String() string {
	return w.value.String() + " lb"
}
