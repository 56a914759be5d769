package query

import (
	"regexp"
	"strings"

	"ratefinder/core/rates"
)

var (
	punctRe      = regexp.MustCompile(`[-._]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Matcher resolves a query's service text against the available service
// set. Matching is exact after normalization; no edit-distance fuzziness.
type Matcher struct{}

// NewMatcher creates a Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match returns the first service whose normalized canonical name or any
// normalized alias equals the normalized query text, or nil when nothing
// matches. Candidates are tried in their given order.
func (m *Matcher) Match(queryService string, available []*rates.ShippingService) *rates.ShippingService {
	normalized := Normalize(queryService)

	for _, service := range available {
		if Normalize(service.Name) == normalized {
			return service
		}
		for _, variant := range service.Variants {
			if Normalize(variant) == normalized {
				return service
			}
		}
	}

	return nil
}

// MatchAll returns every service the query text matches. Useful for
// surfacing ambiguity.
func (m *Matcher) MatchAll(queryService string, available []*rates.ShippingService) []*rates.ShippingService {
	normalized := Normalize(queryService)

	var matches []*rates.ShippingService
	for _, service := range available {
		if Normalize(service.Name) == normalized {
			matches = append(matches, service)
			continue
		}
		for _, variant := range service.Variants {
			if Normalize(variant) == normalized {
				matches = append(matches, service)
				break
			}
		}
	}

	return matches
}

// Normalize lowercases, strips hyphens, periods, and underscores, and
// collapses whitespace runs to single spaces.
func Normalize(name string) string {
	s := strings.ToLower(name)
	s = punctRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
