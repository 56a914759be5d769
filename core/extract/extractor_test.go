package extract

import (
	"testing"

	"github.com/shopspring/decimal"

	"ratefinder/core/types"
)

func cell(s string) *string { return &s }

// grid builds a Grid from plain strings; "-" becomes a nil cell.
func grid(rows ...[]string) types.Grid {
	g := make(types.Grid, len(rows))
	for i, row := range rows {
		cells := make([]*string, len(row))
		for j, s := range row {
			if s == "-" {
				continue
			}
			cells[j] = cell(s)
		}
		g[i] = cells
	}
	return g
}

func TestZoneFromText(t *testing.T) {
	e := NewExtractor()

	cases := []struct {
		text string
		zone int
		ok   bool
	}{
		{"FedEx Rates Effective Jan 6 2025\nZone 5\nWeight...", 5, true},
		{"zone 2 continued", 2, true},
		{"ZONE 8", 8, true},
		{"no marker here", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		zone, ok := e.ZoneFromText(tc.text)
		if ok != tc.ok || zone != tc.zone {
			t.Errorf("ZoneFromText(%q) = (%d, %v), want (%d, %v)", tc.text, zone, ok, tc.zone, tc.ok)
		}
	}
}

func TestValidateTableStructure(t *testing.T) {
	e := NewExtractor()

	if err := e.ValidateTableStructure(nil); err == nil {
		t.Error("empty grid accepted")
	}

	if err := e.ValidateTableStructure(grid(
		[]string{"a", "b"},
		[]string{"c", "d"},
	)); err == nil {
		t.Error("2-row grid accepted")
	}

	// Two distinct widths is tolerated jitter.
	if err := e.ValidateTableStructure(grid(
		[]string{"a", "b", "c"},
		[]string{"d", "e"},
		[]string{"f", "g", "h"},
	)); err != nil {
		t.Errorf("grid with two widths rejected: %v", err)
	}

	// Three distinct widths is structural breakage.
	if err := e.ValidateTableStructure(grid(
		[]string{"a"},
		[]string{"b", "c"},
		[]string{"d", "e", "f"},
	)); err == nil {
		t.Error("grid with three widths accepted")
	}
}

func TestServiceColumns(t *testing.T) {
	e := NewExtractor()

	header := grid(
		[]string{"Weight", "FedEx First\nOvernight", "FedEx 2Day A.M.", "FedEx 2Day", "-"},
		[]string{"-", "-", "-", "-", "FedEx Ground"},
	)

	columns := e.ServiceColumns(header)
	want := []ServiceColumn{
		{Index: 1, Name: "FedEx First Overnight"},
		{Index: 2, Name: "FedEx 2Day A.M."},
		{Index: 3, Name: "FedEx 2Day"},
		{Index: 4, Name: "FedEx Ground"},
	}

	if len(columns) != len(want) {
		t.Fatalf("got %d columns, want %d: %v", len(columns), len(want), columns)
	}
	for i, col := range columns {
		if col != want[i] {
			t.Errorf("column %d = %+v, want %+v", i, col, want[i])
		}
	}
}

func TestServiceColumnsSpecificityOrder(t *testing.T) {
	e := NewExtractor()

	// "2Day A.M." must not be swallowed by the generic "2Day" pattern.
	columns := e.ServiceColumns(grid([]string{"FedEx 2Day A.M."}))
	if len(columns) != 1 || columns[0].Name != "FedEx 2Day A.M." {
		t.Errorf("columns = %v, want single FedEx 2Day A.M.", columns)
	}
}

func TestServiceColumnsFirstMatchWins(t *testing.T) {
	e := NewExtractor()

	// The same column mentioned in both header rows is recorded once,
	// from the first row.
	columns := e.ServiceColumns(grid(
		[]string{"FedEx 2Day"},
		[]string{"FedEx Ground"},
	))
	if len(columns) != 1 || columns[0].Name != "FedEx 2Day" {
		t.Errorf("columns = %v, want single FedEx 2Day", columns)
	}
}

func TestWeightPrices(t *testing.T) {
	e := NewExtractor()

	g := grid(
		[]string{"Weight", "FedEx 2Day", "FedEx Ground"},
		[]string{"", "", ""},
		[]string{"1 lb.", "$ 29.50", "$ 11.15"},
		[]string{"2 lbs.", "$32.25", "$12.40"},
	)
	columns := e.ServiceColumns(g[:2])

	prices := e.WeightPrices(g, columns)
	if len(prices) != 2 {
		t.Fatalf("got %d weight rows, want 2: %v", len(prices), prices)
	}
	if got := prices["1"][0]; !got.Equal(decimal.RequireFromString("29.50")) {
		t.Errorf("price[1][0] = %s, want 29.50", got)
	}
	if got := prices["2"][1]; !got.Equal(decimal.RequireFromString("12.40")) {
		t.Errorf("price[2][1] = %s, want 12.40", got)
	}
}

func TestWeightPricesDropsPartialRows(t *testing.T) {
	e := NewExtractor()

	// Three service columns but the last price is "*": the whole row
	// must be dropped, not partially recorded.
	g := grid(
		[]string{"Weight", "FedEx 2Day", "FedEx Express Saver", "FedEx Ground"},
		[]string{"", "", "", ""},
		[]string{"3", "29.50", "25.10", "*"},
		[]string{"4", "33.00", "27.95", "13.20"},
	)
	columns := e.ServiceColumns(g[:2])

	prices := e.WeightPrices(g, columns)
	if _, ok := prices["3"]; ok {
		t.Error("partial row for weight 3 was recorded")
	}
	if _, ok := prices["4"]; !ok {
		t.Error("complete row for weight 4 was dropped")
	}
}

func TestWeightPricesMultiWeightCell(t *testing.T) {
	e := NewExtractor()

	// One cell stacking two weights, price cells stacking two lines:
	// prices must align positionally, not first-line-wins.
	g := grid(
		[]string{"Weight", "FedEx 2Day"},
		[]string{"", ""},
		[]string{"1lb. 2lbs.", "$29.50\n$32.25"},
	)
	columns := e.ServiceColumns(g[:2])

	prices := e.WeightPrices(g, columns)
	if len(prices) != 2 {
		t.Fatalf("got %d weight rows, want 2: %v", len(prices), prices)
	}
	if got := prices["1"][0]; !got.Equal(decimal.RequireFromString("29.50")) {
		t.Errorf("price for weight 1 = %s, want 29.50", got)
	}
	if got := prices["2"][0]; !got.Equal(decimal.RequireFromString("32.25")) {
		t.Errorf("price for weight 2 = %s, want 32.25", got)
	}
}

func TestWeightPricesSecondColumnWeights(t *testing.T) {
	e := NewExtractor()

	// Weights may live in the second column when the first is empty.
	g := grid(
		[]string{"", "Weight", "FedEx Ground"},
		[]string{"", "", ""},
		[]string{"-", "5 lbs.", "$14.80"},
	)
	columns := e.ServiceColumns(g[:2])

	prices := e.WeightPrices(g, columns)
	if _, ok := prices["5"]; !ok {
		t.Errorf("weight from second column not extracted: %v", prices)
	}
}

func TestExtract(t *testing.T) {
	e := NewExtractor()

	pageText := "FedEx Standard List Rates\nZone 5\n"
	g := grid(
		[]string{"Weight", "FedEx 2Day", "FedEx Ground"},
		[]string{"", "", ""},
		[]string{"1", "29.50", "11.15"},
	)

	table, err := e.Extract(pageText, g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if table == nil {
		t.Fatal("Extract returned no table")
	}
	if table.Zone != 5 || table.PageNumber != 3 {
		t.Errorf("table zone/page = %d/%d, want 5/3", table.Zone, table.PageNumber)
	}
	if len(table.ServiceColumns) != 2 {
		t.Errorf("service columns = %v", table.ServiceColumns)
	}
}

func TestExtractNoZoneMarker(t *testing.T) {
	e := NewExtractor()

	g := grid(
		[]string{"Weight", "FedEx 2Day"},
		[]string{"", ""},
		[]string{"1", "29.50"},
	)

	table, err := e.Extract("no marker on this page", g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if table != nil {
		t.Error("page without zone marker yielded a table")
	}
}
