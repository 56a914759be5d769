// Package query converts free-text price queries into structured
// PriceQuery values and resolves their service names against the loaded
// service set.
package query

import (
	"regexp"
	"strings"

	"ratefinder/core/rates"
	"ratefinder/internal/errors"
)

var (
	// zoneTokenRe finds the zone anchor in space-delimited queries.
	zoneTokenRe = regexp.MustCompile(`(?i)(?:z|zone)\s*\d+`)

	// weightTokenRe finds the weight anchor. The unit suffix is mandatory
	// here so a bare number is never mistaken for a weight next to a zone;
	// the comma grammar accepts bare numerics because position removes
	// the ambiguity.
	weightTokenRe = regexp.MustCompile(`(?i)[\d.]+\s*(?:lb|lbs|pound|pounds)\b`)
)

// Parser converts a query string into a PriceQuery. Two grammars are
// tried: comma-delimited parts, and free space-delimited text anchored on
// the zone and weight tokens.
type Parser struct{}

// NewParser creates a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse dispatches to the comma grammar when the query contains a comma,
// otherwise the space grammar.
func (p *Parser) Parse(q string) (rates.PriceQuery, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "empty query string", nil)
	}

	if strings.Contains(q, ",") {
		return p.parseComma(q)
	}
	return p.parseSpace(q)
}

// parseComma handles "Service, Zone, Weight[, Packaging]".
func (p *Parser) parseComma(q string) (rates.PriceQuery, error) {
	raw := strings.Split(q, ",")
	parts := make([]string, len(raw))
	for i, part := range raw {
		parts[i] = strings.TrimSpace(part)
	}

	if len(parts) < 3 {
		// "zone 99, 5lb" is really a space-grammar query with a stray
		// comma. When both anchors are present, retry that grammar so
		// the zone/weight error surfaces instead of a part-count
		// complaint.
		if zoneTokenRe.MatchString(q) && weightTokenRe.MatchString(q) {
			return p.parseSpace(q)
		}
		return rates.PriceQuery{}, errors.InvalidQuery(q,
			"comma format requires at least 3 parts: service, zone, weight", nil)
	}
	if len(parts) > 4 {
		return rates.PriceQuery{}, errors.InvalidQuery(q,
			"comma format supports at most 4 parts: service, zone, weight, packaging", nil)
	}

	serviceType := parts[0]
	if serviceType == "" {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "service type is empty", nil)
	}

	zone, err := rates.ParseZone(parts[1])
	if err != nil {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "invalid zone", err)
	}

	weight, err := rates.ParseWeight(parts[2])
	if err != nil {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "invalid weight", err)
	}

	packaging := ""
	if len(parts) == 4 {
		packaging = parts[3]
	}

	return rates.NewPriceQuery(serviceType, zone, weight, packaging)
}

// parseSpace handles "Service Z5 3lb [packaging]" and the inverted
// "3lb to zone 5" ordering. Both the zone and weight tokens are
// mandatory.
func (p *Parser) parseSpace(q string) (rates.PriceQuery, error) {
	zoneLoc := zoneTokenRe.FindStringIndex(q)
	if zoneLoc == nil {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "cannot find zone in query", nil)
	}

	// Prefer the weight after the zone; fall back to the text before it.
	weightLoc := weightTokenRe.FindStringIndex(q[zoneLoc[1]:])
	weightBeforeZone := false
	if weightLoc != nil {
		weightLoc[0] += zoneLoc[1]
		weightLoc[1] += zoneLoc[1]
	} else {
		weightLoc = weightTokenRe.FindStringIndex(q[:zoneLoc[0]])
		weightBeforeZone = weightLoc != nil
	}
	if weightLoc == nil {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "cannot find weight in query", nil)
	}

	zone, err := rates.ParseZone(q[zoneLoc[0]:zoneLoc[1]])
	if err != nil {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "invalid zone", err)
	}

	weight, err := rates.ParseWeight(q[weightLoc[0]:weightLoc[1]])
	if err != nil {
		return rates.PriceQuery{}, errors.InvalidQuery(q, "invalid weight", err)
	}

	// Service text is everything before the earliest anchor. An empty
	// span defers service resolution to the matcher via the generic
	// sentinel.
	serviceEnd := zoneLoc[0]
	if weightLoc[0] < serviceEnd {
		serviceEnd = weightLoc[0]
	}
	serviceType := strings.TrimSpace(q[:serviceEnd])
	if serviceType == "" {
		serviceType = rates.GenericService
	}

	// Packaging is whatever trails the latest anchor. When the weight
	// precedes the zone, the zone is the rightmost anchor by definition.
	tailStart := weightLoc[1]
	if weightBeforeZone || zoneLoc[1] > tailStart {
		tailStart = zoneLoc[1]
	}
	packaging := ""
	if tailStart < len(q) {
		packaging = strings.TrimSpace(q[tailStart:])
	}

	return rates.NewPriceQuery(serviceType, zone, weight, packaging)
}
