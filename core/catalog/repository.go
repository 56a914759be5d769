package catalog

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"ratefinder/core/rates"
	"ratefinder/core/types"
	"ratefinder/internal/errors"
	"ratefinder/internal/logging"
)

// Source supplies extracted rate-sheet data for one document. The PDF
// adapter is the production implementation.
type Source interface {
	Extract(path string) (*types.ExtractedPDFData, error)
}

// Repository owns the canonical ShippingService set. Loads take the
// write lock; the query path reads under the read lock, so concurrent
// searches never observe a half-replaced service set.
type Repository struct {
	mu sync.RWMutex

	source  Source
	factory *Factory
	log     *zap.Logger

	services map[string]*rates.ShippingService
	order    []string          // insertion order, the "first available" service is order[0]
	sources  map[string]string // service name -> source document
	loaded   []string          // documents loaded, for Refresh
}

// NewRepository creates an empty repository.
func NewRepository(source Source, factory *Factory) *Repository {
	return &Repository{
		source:   source,
		factory:  factory,
		log:      logging.Logger,
		services: make(map[string]*rates.ShippingService),
		sources:  make(map[string]string),
	}
}

// Load extracts one document and merges its services into the set.
func (r *Repository) Load(path string) ([]*rates.ShippingService, error) {
	extracted, err := r.source.Extract(path)
	if err != nil {
		return nil, err
	}

	services := r.factory.CreateAll(extracted.ServiceData, extracted.ServiceOrder)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, service := range services {
		if _, ok := r.services[service.Name]; !ok {
			r.order = append(r.order, service.Name)
		}
		r.services[service.Name] = service
		r.sources[service.Name] = path
	}

	found := false
	for _, p := range r.loaded {
		if p == path {
			found = true
			break
		}
	}
	if !found {
		r.loaded = append(r.loaded, path)
	}

	r.log.Info("loaded rate sheet",
		zap.String("path", path),
		zap.Int("services", len(services)),
		zap.Int("tables", len(extracted.PriceTables)))

	return services, nil
}

// LoadAll loads every document, skipping individual failures. It errors
// only when every document fails, so a bad file never silently empties
// the repository.
func (r *Repository) LoadAll(paths []string) error {
	if len(paths) == 0 {
		return errors.Extraction("no rate sheets to load", nil)
	}

	var lastErr error
	loaded := 0
	for _, path := range paths {
		if _, err := r.Load(path); err != nil {
			r.log.Error("failed to load rate sheet", zap.String("path", path), zap.Error(err))
			lastErr = err
			continue
		}
		loaded++
	}

	if loaded == 0 {
		return errors.Extraction("all rate sheets failed to load", lastErr)
	}
	return nil
}

// All returns the loaded services in insertion order.
func (r *Repository) All() []*rates.ShippingService {
	r.mu.RLock()
	defer r.mu.RUnlock()

	services := make([]*rates.ShippingService, 0, len(r.order))
	for _, name := range r.order {
		services = append(services, r.services[name])
	}
	return services
}

// Get looks a service up by canonical name, then case-insensitively over
// names and variants.
func (r *Repository) Get(name string) (*rates.ShippingService, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if service, ok := r.services[name]; ok {
		return service, true
	}

	lower := strings.ToLower(strings.TrimSpace(name))
	for _, svcName := range r.order {
		service := r.services[svcName]
		if strings.ToLower(service.Name) == lower {
			return service, true
		}
		for _, variant := range service.Variants {
			if strings.ToLower(variant) == lower {
				return service, true
			}
		}
	}

	return nil, false
}

// SourceOf returns the document a service was loaded from.
func (r *Repository) SourceOf(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sources[name]
}

// Count returns the number of loaded services.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.services)
}

// Names returns the canonical service names in insertion order.
func (r *Repository) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Refresh clears the set and reloads every previously loaded document.
func (r *Repository) Refresh() error {
	r.mu.Lock()
	paths := append([]string(nil), r.loaded...)
	r.services = make(map[string]*rates.ShippingService)
	r.sources = make(map[string]string)
	r.order = nil
	r.loaded = nil
	r.mu.Unlock()

	if len(paths) == 0 {
		return nil
	}
	return r.LoadAll(paths)
}

// Clear drops all loaded data.
func (r *Repository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services = make(map[string]*rates.ShippingService)
	r.sources = make(map[string]string)
	r.order = nil
	r.loaded = nil
}
