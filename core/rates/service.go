package rates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"ratefinder/internal/errors"
)

// ShippingService is the aggregate root for one logical shipping service:
// its canonical name, known aliases, and the zone -> weight-key -> price
// table. It is mutated only through SetPrice and AddVariant during load;
// the query path treats it as read-only.
type ShippingService struct {
	// Name is the canonical service name, e.g. "FedEx 2Day".
	Name string

	// Variants lists alternate names a user might query with.
	Variants []string

	// PriceTable maps zone -> weight key -> price.
	PriceTable map[int]map[string]decimal.Decimal
}

// NewShippingService creates a service with the given canonical name and
// alias list.
func NewShippingService(name string, variants []string) (*ShippingService, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New(errors.TypeInternal, "service name cannot be empty")
	}

	return &ShippingService{
		Name:       name,
		Variants:   append([]string(nil), variants...),
		PriceTable: make(map[int]map[string]decimal.Decimal),
	}, nil
}

// SetPrice records the price for a zone and weight. A later write for the
// same pair overwrites the earlier one.
func (s *ShippingService) SetPrice(zone Zone, weight Weight, price decimal.Decimal) error {
	if price.IsNegative() {
		return errors.Newf(errors.TypeInternal, "price must be non-negative, got %s", price)
	}

	zonePrices, ok := s.PriceTable[zone.Value()]
	if !ok {
		zonePrices = make(map[string]decimal.Decimal)
		s.PriceTable[zone.Value()] = zonePrices
	}
	zonePrices[weight.Key()] = price
	return nil
}

// GetPrice looks up the price for a zone and weight. The exact weight key
// is tried first; failing that, stored keys are compared numerically so
// "3" and "3.0" resolve to the same entry.
func (s *ShippingService) GetPrice(zone Zone, weight Weight) (decimal.Decimal, error) {
	zonePrices, ok := s.PriceTable[zone.Value()]
	if !ok {
		return decimal.Zero, errors.PriceNotFound(s.Name, zone.Value(), weight.Value().String())
	}

	if price, ok := zonePrices[weight.Key()]; ok {
		return price, nil
	}

	for key, price := range zonePrices {
		stored, err := decimal.NewFromString(key)
		if err != nil {
			continue
		}
		if stored.Equal(weight.Value()) {
			return price, nil
		}
	}

	return decimal.Zero, errors.PriceNotFound(s.Name, zone.Value(), weight.Value().String())
}

// AddVariant appends an alias, rejecting duplicates and empty strings.
func (s *ShippingService) AddVariant(variant string) error {
	variant = strings.TrimSpace(variant)
	if variant == "" {
		return errors.New(errors.TypeInternal, "variant cannot be empty")
	}
	for _, v := range s.Variants {
		if v == variant {
			return errors.Newf(errors.TypeInternal, "variant %q already exists", variant)
		}
	}
	s.Variants = append(s.Variants, variant)
	return nil
}

// Zones returns the zones that have at least one price, ascending.
func (s *ShippingService) Zones() []int {
	zones := make([]int, 0, len(s.PriceTable))
	for z := range s.PriceTable {
		zones = append(zones, z)
	}
	sort.Ints(zones)
	return zones
}

// WeightRange returns the smallest and largest weights present in the
// price table, or zeros when the table is empty.
func (s *ShippingService) WeightRange() (min, max decimal.Decimal) {
	first := true
	for _, zonePrices := range s.PriceTable {
		for key := range zonePrices {
			w, err := decimal.NewFromString(key)
			if err != nil {
				continue
			}
			if first {
				min, max = w, w
				first = false
				continue
			}
			if w.LessThan(min) {
				min = w
			}
			if w.GreaterThan(max) {
				max = w
			}
		}
	}
	return min, max
}

// PriceCount returns the number of (zone, weight) entries.
func (s *ShippingService) PriceCount() int {
	n := 0
	for _, zonePrices := range s.PriceTable {
		n += len(zonePrices)
	}
	return n
}

// String returns the canonical service name.
func (s *ShippingService) String() string {
	return fmt.Sprintf("%s (%d prices)", s.Name, s.PriceCount())
}
