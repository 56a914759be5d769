// Package types holds the data models shared between extraction and the
// domain layer: raw extracted tables, per-service accumulations, and the
// per-document container.
package types

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Grid is a raw table as delivered by the underlying PDF extraction: a
// 2-D grid of optional text cells. A nil cell means the extractor found
// nothing at that position.
type Grid [][]*string

// PriceTableData is one raw price table extracted from a page.
type PriceTableData struct {
	// Zone is the shipping zone the page declared.
	Zone int `json:"zone"`

	// ServiceColumns lists canonical service names in column-index order.
	// This ordering is the alignment key for WeightPrices.
	ServiceColumns []string `json:"service_columns"`

	// WeightPrices maps a weight key to one price per service column,
	// positionally aligned with ServiceColumns.
	WeightPrices map[string][]decimal.Decimal `json:"weight_prices"`

	// PageNumber is the 1-based page the table came from.
	PageNumber int `json:"page_number"`
}

// ServicePriceData accumulates every price seen for one service across
// all tables of a document.
type ServicePriceData struct {
	// ServiceName is the canonical service name.
	ServiceName string `json:"service_name"`

	// ZonePrices maps zone -> weight key -> price.
	ZonePrices map[int]map[string]decimal.Decimal `json:"zone_prices"`
}

// NewServicePriceData creates an empty accumulation for a service.
func NewServicePriceData(serviceName string) *ServicePriceData {
	return &ServicePriceData{
		ServiceName: serviceName,
		ZonePrices:  make(map[int]map[string]decimal.Decimal),
	}
}

// AddPrice records a price, overwriting any earlier value for the same
// (zone, weight) pair.
func (s *ServicePriceData) AddPrice(zone int, weight string, price decimal.Decimal) {
	zonePrices, ok := s.ZonePrices[zone]
	if !ok {
		zonePrices = make(map[string]decimal.Decimal)
		s.ZonePrices[zone] = zonePrices
	}
	zonePrices[weight] = price
}

// Zones returns the zones with at least one price, ascending.
func (s *ServicePriceData) Zones() []int {
	zones := make([]int, 0, len(s.ZonePrices))
	for z := range s.ZonePrices {
		zones = append(zones, z)
	}
	sort.Ints(zones)
	return zones
}

// PDFMetadata describes the document a rate sheet came from.
type PDFMetadata struct {
	// FilePath is the source document path.
	FilePath string `json:"file_path"`

	// Title is the first non-empty line of the first page, when present.
	Title string `json:"title,omitempty"`

	// EffectiveDate is the rate effective date line, when present.
	EffectiveDate string `json:"effective_date,omitempty"`

	// TotalPages is the page count of the document.
	TotalPages int `json:"total_pages"`

	// ExtractedTables is the number of price tables recovered.
	ExtractedTables int `json:"extracted_tables"`
}

// ExtractedPDFData is the top-level container for everything recovered
// from one document. Built once during ingestion, read-only afterward.
type ExtractedPDFData struct {
	// Metadata describes the source document.
	Metadata PDFMetadata `json:"metadata"`

	// PriceTables lists every raw table extracted.
	PriceTables []PriceTableData `json:"price_tables"`

	// ServiceData maps canonical service name to its consolidated prices.
	ServiceData map[string]*ServicePriceData `json:"service_data"`

	// ServiceOrder lists the service names in encounter order (table
	// order, then column order). Loading preserves this order so "the
	// first available service" is stable across identical loads.
	ServiceOrder []string `json:"service_order,omitempty"`
}

// ServiceNames returns the consolidated service names, sorted.
func (d *ExtractedPDFData) ServiceNames() []string {
	names := make([]string, 0, len(d.ServiceData))
	for name := range d.ServiceData {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
