package extract

import (
	"testing"

	"github.com/shopspring/decimal"

	"ratefinder/core/types"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAssemble(t *testing.T) {
	tables := []types.PriceTableData{
		{
			Zone:           2,
			ServiceColumns: []string{"FedEx 2Day", "FedEx Ground"},
			WeightPrices: map[string][]decimal.Decimal{
				"1": {d("24.00"), d("9.10")},
				"2": {d("26.50"), d("10.05")},
			},
			PageNumber: 3,
		},
		{
			Zone:           5,
			ServiceColumns: []string{"FedEx 2Day"},
			WeightPrices: map[string][]decimal.Decimal{
				"1": {d("29.50")},
			},
			PageNumber: 7,
		},
	}

	services, order := Assemble(tables)

	if len(services) != 2 {
		t.Fatalf("got %d services, want 2", len(services))
	}
	if len(order) != 2 || order[0] != "FedEx 2Day" || order[1] != "FedEx Ground" {
		t.Errorf("order = %v, want column encounter order", order)
	}

	twoDay := services["FedEx 2Day"]
	if twoDay == nil {
		t.Fatal("FedEx 2Day missing")
	}
	if got := twoDay.ZonePrices[2]["2"]; !got.Equal(d("26.50")) {
		t.Errorf("zone 2 weight 2 = %s, want 26.50", got)
	}
	if got := twoDay.ZonePrices[5]["1"]; !got.Equal(d("29.50")) {
		t.Errorf("zone 5 weight 1 = %s, want 29.50", got)
	}

	ground := services["FedEx Ground"]
	if ground == nil {
		t.Fatal("FedEx Ground missing")
	}
	if _, ok := ground.ZonePrices[5]; ok {
		t.Error("FedEx Ground gained a zone it has no column for")
	}
}

func TestAssembleLastWriterWins(t *testing.T) {
	tables := []types.PriceTableData{
		{
			Zone:           5,
			ServiceColumns: []string{"FedEx 2Day"},
			WeightPrices:   map[string][]decimal.Decimal{"3": {d("29.50")}},
			PageNumber:     2,
		},
		{
			Zone:           5,
			ServiceColumns: []string{"FedEx 2Day"},
			WeightPrices:   map[string][]decimal.Decimal{"3": {d("30.25")}},
			PageNumber:     9,
		},
	}

	services, order := Assemble(tables)
	if got := services["FedEx 2Day"].ZonePrices[5]["3"]; !got.Equal(d("30.25")) {
		t.Errorf("later page should overwrite: got %s, want 30.25", got)
	}
	if len(order) != 1 {
		t.Errorf("order = %v, repeated column must appear once", order)
	}
}

func TestAssembleOrderSpansTables(t *testing.T) {
	tables := []types.PriceTableData{
		{
			Zone:           2,
			ServiceColumns: []string{"FedEx Priority Overnight", "FedEx 2Day"},
			WeightPrices:   map[string][]decimal.Decimal{"1": {d("40.10"), d("24.00")}},
		},
		{
			Zone:           5,
			ServiceColumns: []string{"FedEx 2Day", "FedEx Ground"},
			WeightPrices:   map[string][]decimal.Decimal{"1": {d("29.50"), d("11.15")}},
		},
	}

	_, order := Assemble(tables)
	want := []string{"FedEx Priority Overnight", "FedEx 2Day", "FedEx Ground"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestAssembleEmpty(t *testing.T) {
	services, order := Assemble(nil)
	if len(services) != 0 || len(order) != 0 {
		t.Errorf("Assemble(nil) = %v, %v, want empty", services, order)
	}
}
