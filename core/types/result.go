package types

import "github.com/shopspring/decimal"

// SearchResult is the outcome of a successful price search.
type SearchResult struct {
	// Price is the located shipping price.
	Price decimal.Decimal `json:"price"`

	// Currency is always USD for domestic rate sheets.
	Currency string `json:"currency"`

	// Service is the canonical name of the matched service.
	Service string `json:"service"`

	// Zone is the resolved zone number.
	Zone int `json:"zone"`

	// Weight is the resolved weight in pounds.
	Weight decimal.Decimal `json:"weight"`

	// SourceDocument names the rate sheet the price came from.
	SourceDocument string `json:"source_document,omitempty"`
}

// ServiceInfo summarizes one loaded service for listings.
type ServiceInfo struct {
	// Name is the canonical service name.
	Name string `json:"name"`

	// Variants lists the known aliases.
	Variants []string `json:"variants,omitempty"`

	// Zones lists the zones with price coverage.
	Zones []int `json:"zones"`

	// MinWeight and MaxWeight bound the covered weight range in pounds.
	MinWeight decimal.Decimal `json:"min_weight"`
	MaxWeight decimal.Decimal `json:"max_weight"`

	// SourceDocument names the rate sheet the service was loaded from.
	SourceDocument string `json:"source_document,omitempty"`
}
