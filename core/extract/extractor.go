// Package extract turns raw page text and extracted cell grids into
// validated price table data, and folds those tables into per-service
// price accumulations.
package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ratefinder/core/types"
	"ratefinder/internal/errors"
	"ratefinder/internal/logging"
)

// headerRows is how many leading rows carry service names rather than data.
const headerRows = 2

// ServiceColumn ties a recognized service name to its column index.
type ServiceColumn struct {
	// Index is the zero-based column position in the grid.
	Index int

	// Name is the canonical service name for that column.
	Name string
}

// servicePattern maps a header regex to the canonical service name.
type servicePattern struct {
	re        *regexp.Regexp
	canonical string
}

// Patterns are ordered most-specific first: "2Day A.M." must be tried
// before the generic "2Day" because RE2 has no lookahead to exclude it.
var servicePatterns = []servicePattern{
	{regexp.MustCompile(`(?i)First\s+Overnight`), "FedEx First Overnight"},
	{regexp.MustCompile(`(?i)Priority\s+Overnight`), "FedEx Priority Overnight"},
	{regexp.MustCompile(`(?i)Standard\s+Overnight`), "FedEx Standard Overnight"},
	{regexp.MustCompile(`(?i)2Day\s+A\.?M\.?`), "FedEx 2Day A.M."},
	{regexp.MustCompile(`(?i)2Day`), "FedEx 2Day"},
	{regexp.MustCompile(`(?i)Express\s+Saver`), "FedEx Express Saver"},
	{regexp.MustCompile(`(?i)Ground`), "FedEx Ground"},
}

var (
	zoneMarkerRe = regexp.MustCompile(`(?i)Zone\s+(\d+)`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
	weightUnitRe = regexp.MustCompile(`(?i)lbs?\.?`)
	nonNumericRe = regexp.MustCompile(`[^\d.]`)
	currencyRe   = regexp.MustCompile(`[$€£¥\s,]`)
	priceRe      = regexp.MustCompile(`\d+\.?\d*`)
)

// Extractor recovers PriceTableData from raw page content.
type Extractor struct {
	log *zap.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{log: logging.Logger}
}

// ZoneFromText finds the first "Zone <n>" marker in page text. A page
// without a marker contributes no tables; zone is mandatory context.
func (e *Extractor) ZoneFromText(text string) (int, bool) {
	m := zoneMarkerRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	zone, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return zone, true
}

// ValidateTableStructure rejects grids that cannot hold a price table:
// empty grids, grids with fewer than three rows, and grids whose row
// widths disagree by more than one distinct count.
func (e *Extractor) ValidateTableStructure(grid types.Grid) error {
	if len(grid) == 0 {
		return errors.Extraction("table is empty", nil)
	}
	if len(grid) < 3 {
		return errors.Extraction("table has fewer than 3 rows (need headers + data)", nil)
	}

	widths := make(map[int]struct{})
	for _, row := range grid {
		widths[len(row)] = struct{}{}
	}
	if len(widths) > 2 {
		return errors.Extraction(fmt.Sprintf("inconsistent column counts across %d rows", len(grid)), nil)
	}

	return nil
}

// ServiceColumns scans the header rows for recognizable service names and
// returns (index, canonical name) pairs sorted by column index. Each
// column is recorded at most once; the first matching row wins.
func (e *Extractor) ServiceColumns(header types.Grid) []ServiceColumn {
	var columns []ServiceColumn
	seen := make(map[int]struct{})

	for _, row := range header {
		for colIdx, cell := range row {
			if cell == nil {
				continue
			}
			if _, ok := seen[colIdx]; ok {
				continue
			}

			text := collapseWhitespace(*cell)
			for _, sp := range servicePatterns {
				if sp.re.MatchString(text) {
					columns = append(columns, ServiceColumn{Index: colIdx, Name: sp.canonical})
					seen[colIdx] = struct{}{}
					break
				}
			}
		}
	}

	sort.Slice(columns, func(i, j int) bool { return columns[i].Index < columns[j].Index })
	return columns
}

// WeightPrices walks the data rows and returns weight key -> one price
// per service column. A row is kept only when every service column yields
// a price; partial rows are dropped whole so a missing cell never
// corrupts downstream lookups.
func (e *Extractor) WeightPrices(grid types.Grid, columns []ServiceColumn) map[string][]decimal.Decimal {
	weightPrices := make(map[string][]decimal.Decimal)

	if len(grid) <= headerRows || len(columns) == 0 {
		return weightPrices
	}

	for _, row := range grid[headerRows:] {
		weights := weightsFromRow(row)
		if len(weights) == 0 {
			continue
		}

		for weightIdx, weight := range weights {
			prices := make([]decimal.Decimal, 0, len(columns))

			for _, col := range columns {
				if col.Index >= len(row) {
					continue
				}
				price, ok := priceFromCell(row[col.Index], weightIdx, len(weights))
				if ok {
					prices = append(prices, price)
				}
			}

			if len(prices) == len(columns) {
				weightPrices[weight] = prices
			}
		}
	}

	return weightPrices
}

// Extract combines the per-page steps: find the zone, validate the grid,
// identify service columns, and collect weight prices. It returns nil
// when the grid holds no usable price table.
func (e *Extractor) Extract(pageText string, grid types.Grid, pageNumber int) (*types.PriceTableData, error) {
	zone, ok := e.ZoneFromText(pageText)
	if !ok {
		return nil, nil
	}

	if err := e.ValidateTableStructure(grid); err != nil {
		return nil, err
	}

	header := grid
	if len(header) > headerRows {
		header = grid[:headerRows]
	}
	columns := e.ServiceColumns(header)
	if len(columns) == 0 {
		e.log.Debug("no service columns in table", zap.Int("page", pageNumber))
		return nil, nil
	}

	weightPrices := e.WeightPrices(grid, columns)
	if len(weightPrices) == 0 {
		e.log.Debug("no complete price rows in table",
			zap.Int("page", pageNumber), zap.Int("zone", zone))
		return nil, nil
	}

	names := make([]string, len(columns))
	for i, col := range columns {
		names[i] = col.Name
	}

	return &types.PriceTableData{
		Zone:           zone,
		ServiceColumns: names,
		WeightPrices:   weightPrices,
		PageNumber:     pageNumber,
	}, nil
}

// weightsFromRow extracts weight keys from the first cell, or the second
// when the first is empty.
func weightsFromRow(row []*string) []string {
	if len(row) == 0 {
		return nil
	}
	weights := weightsFromCell(row[0])
	if len(weights) == 0 && len(row) > 1 {
		weights = weightsFromCell(row[1])
	}
	return weights
}

// weightsFromCell tokenizes a cell and strips unit suffixes, turning
// "12lbs." into "12". Tokens that do not survive as numbers are skipped.
func weightsFromCell(cell *string) []string {
	if cell == nil {
		return nil
	}

	var weights []string
	for _, part := range spaceRunRe.Split(strings.TrimSpace(*cell), -1) {
		token := weightUnitRe.ReplaceAllString(part, "")
		token = nonNumericRe.ReplaceAllString(token, "")
		token = strings.Trim(token, ".")
		if token == "" {
			continue
		}
		if _, err := decimal.NewFromString(token); err != nil {
			continue
		}
		weights = append(weights, token)
	}
	return weights
}

// priceFromCell extracts the price for one weight from a cell. A cell may
// stack one price line per weight; when the line count matches the weight
// count the price is taken positionally, otherwise the first parseable
// line is used.
func priceFromCell(cell *string, weightIdx, weightCount int) (decimal.Decimal, bool) {
	if cell == nil {
		return decimal.Zero, false
	}

	lines := strings.Split(strings.TrimSpace(*cell), "\n")

	if len(lines) == weightCount && weightIdx < len(lines) {
		if price, ok := parsePrice(lines[weightIdx]); ok {
			return price, true
		}
		return decimal.Zero, false
	}

	for _, line := range lines {
		if price, ok := parsePrice(line); ok {
			return price, true
		}
	}
	return decimal.Zero, false
}

// parsePrice strips currency symbols and pulls the first decimal number
// out of a price cell line. "*" and empty cells mean no price.
func parsePrice(text string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "*" {
		return decimal.Zero, false
	}

	cleaned := currencyRe.ReplaceAllString(trimmed, "")
	m := priceRe.FindString(cleaned)
	if m == "" {
		return decimal.Zero, false
	}

	price, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, false
	}
	return price, true
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(s, " "))
}
