package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ratefinder/core/rates"
	"ratefinder/core/types"
	"ratefinder/internal/logging"
)

// Factory converts extracted ServicePriceData into queryable
// ShippingService aggregates, attaching the injected alias table.
type Factory struct {
	variants VariantTable
	log      *zap.Logger
}

// NewFactory creates a Factory with the given alias table. A nil table
// falls back to the built-in defaults.
func NewFactory(variants VariantTable) *Factory {
	if variants == nil {
		variants = DefaultVariants()
	}
	return &Factory{variants: variants, log: logging.Logger}
}

// Create builds one ShippingService from an accumulation. Individual
// (zone, weight, price) triples that fail validation are logged and
// skipped, so a service with some malformed rows still yields a usable
// partial price table.
func (f *Factory) Create(data *types.ServicePriceData) (*rates.ShippingService, error) {
	service, err := rates.NewShippingService(data.ServiceName, f.variants.For(data.ServiceName))
	if err != nil {
		return nil, err
	}

	for zoneNum, weightPrices := range data.ZonePrices {
		zone, err := rates.NewZone(zoneNum)
		if err != nil {
			f.log.Warn("skipping invalid zone",
				zap.String("service", data.ServiceName),
				zap.Int("zone", zoneNum),
				zap.Error(err))
			continue
		}

		for weightKey, price := range weightPrices {
			value, err := decimal.NewFromString(weightKey)
			if err != nil {
				f.log.Warn("skipping unparseable weight key",
					zap.String("service", data.ServiceName),
					zap.String("weight", weightKey),
					zap.Error(err))
				continue
			}

			weight, err := rates.NewWeight(value)
			if err != nil {
				f.log.Warn("skipping invalid weight",
					zap.String("service", data.ServiceName),
					zap.String("weight", weightKey),
					zap.Error(err))
				continue
			}

			if err := service.SetPrice(zone, weight, price); err != nil {
				f.log.Warn("skipping invalid price",
					zap.String("service", data.ServiceName),
					zap.Int("zone", zoneNum),
					zap.String("weight", weightKey),
					zap.Error(err))
			}
		}
	}

	f.log.Debug("created shipping service",
		zap.String("service", service.Name),
		zap.Int("prices", service.PriceCount()))

	return service, nil
}

// CreateAll builds services from every accumulation, skipping ones that
// fail outright. The order slice fixes the result order; the first entry
// becomes "the first available service" for generic queries, so iteration
// must never fall back to map order. Names absent from the order slice
// are appended sorted.
func (f *Factory) CreateAll(data map[string]*types.ServicePriceData, order []string) []*rates.ShippingService {
	names := make([]string, 0, len(data))
	seen := make(map[string]struct{}, len(data))
	for _, name := range order {
		if _, ok := data[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		names = append(names, name)
		seen[name] = struct{}{}
	}
	var rest []string
	for name := range data {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	services := make([]*rates.ShippingService, 0, len(names))
	for _, name := range names {
		service, err := f.Create(data[name])
		if err != nil {
			f.log.Error("failed to create service",
				zap.String("service", name),
				zap.Error(err))
			continue
		}
		services = append(services, service)
	}

	return services
}
