// Package search composes the query parser, service matcher, and price
// lookup into the external-facing search operation.
package search

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"ratefinder/core/catalog"
	"ratefinder/core/query"
	"ratefinder/core/rates"
	"ratefinder/core/types"
	"ratefinder/internal/errors"
	"ratefinder/internal/logging"
)

// maxSuggestions bounds the service names echoed in a
// service-not-available error.
const maxSuggestions = 5

// cacheKeyPrefix namespaces search keys in the shared cache.
const cacheKeyPrefix = "search:"

// Cache is the acceleration layer the searcher optionally writes through.
type Cache interface {
	Get(key string) (*types.SearchResult, bool)
	Set(key string, result *types.SearchResult, ttl time.Duration)
}

// Searcher is the search orchestrator.
type Searcher struct {
	repo    *catalog.Repository
	parser  *query.Parser
	matcher *query.Matcher
	cache   Cache
	ttl     time.Duration
	log     *zap.Logger
}

// NewSearcher creates a Searcher. The cache may be nil, in which case
// every search recomputes.
func NewSearcher(repo *catalog.Repository, cache Cache, ttl time.Duration) *Searcher {
	return &Searcher{
		repo:    repo,
		parser:  query.NewParser(),
		matcher: query.NewMatcher(),
		cache:   cache,
		ttl:     ttl,
		log:     logging.Logger,
	}
}

// Search parses the query, matches the service, and looks up the price.
// Every failure surfaces as a typed error; nothing is retried.
func (s *Searcher) Search(rawQuery string, useCache bool) (*types.SearchResult, error) {
	if s.repo.Count() == 0 {
		return nil, errors.DataNotLoaded()
	}

	key := cacheKey(rawQuery)
	if useCache && s.cache != nil {
		if result, ok := s.cache.Get(key); ok {
			s.log.Debug("cache hit", zap.String("query", rawQuery))
			return result, nil
		}
	}

	priceQuery, err := s.parser.Parse(rawQuery)
	if err != nil {
		return nil, err
	}

	service, err := s.resolveService(priceQuery)
	if err != nil {
		return nil, err
	}

	price, err := service.GetPrice(priceQuery.Zone(), priceQuery.Weight())
	if err != nil {
		return nil, err
	}

	result := &types.SearchResult{
		Price:          price,
		Currency:       "USD",
		Service:        service.Name,
		Zone:           priceQuery.Zone().Value(),
		Weight:         priceQuery.Weight().Value(),
		SourceDocument: s.repo.SourceOf(service.Name),
	}

	if useCache && s.cache != nil {
		s.cache.Set(key, result, s.ttl)
	}

	s.log.Info("search succeeded",
		zap.String("service", service.Name),
		zap.Int("zone", result.Zone),
		zap.String("weight", result.Weight.String()),
		zap.String("price", result.Price.String()))

	return result, nil
}

// resolveService matches the query's service text, applying the generic
// fallback before failing with suggestions.
func (s *Searcher) resolveService(priceQuery rates.PriceQuery) (*rates.ShippingService, error) {
	available := s.repo.All()

	service := s.matcher.Match(priceQuery.ServiceType(), available)
	if service != nil {
		return service, nil
	}

	// Generic/standard queries fall back to the first loaded service.
	if query.Normalize(priceQuery.ServiceType()) == query.Normalize(rates.GenericService) {
		if len(available) > 0 {
			return available[0], nil
		}
	}

	names := s.repo.Names()
	suggestions := names
	overflow := 0
	if len(names) > maxSuggestions {
		suggestions = names[:maxSuggestions]
		overflow = len(names) - maxSuggestions
	}

	return nil, errors.ServiceNotAvailable(priceQuery.ServiceType(), suggestions, overflow)
}

// Services summarizes the loaded services for listings.
func (s *Searcher) Services() []types.ServiceInfo {
	services := s.repo.All()

	infos := make([]types.ServiceInfo, 0, len(services))
	for _, service := range services {
		min, max := service.WeightRange()
		infos = append(infos, types.ServiceInfo{
			Name:           service.Name,
			Variants:       append([]string(nil), service.Variants...),
			Zones:          service.Zones(),
			MinWeight:      min,
			MaxWeight:      max,
			SourceDocument: s.repo.SourceOf(service.Name),
		})
	}

	return infos
}

// Loaded reports whether any price data is available.
func (s *Searcher) Loaded() bool {
	return s.repo.Count() > 0
}

func cacheKey(rawQuery string) string {
	return cacheKeyPrefix + strings.ToLower(strings.TrimSpace(rawQuery))
}
