package rates

import (
	"testing"

	"github.com/shopspring/decimal"

	"ratefinder/internal/errors"
)

func mustZone(t *testing.T, v int) Zone {
	t.Helper()
	z, err := NewZone(v)
	if err != nil {
		t.Fatalf("NewZone(%d): %v", v, err)
	}
	return z
}

func mustWeight(t *testing.T, s string) Weight {
	t.Helper()
	w, err := ParseWeight(s)
	if err != nil {
		t.Fatalf("ParseWeight(%q): %v", s, err)
	}
	return w
}

func TestSetGetPriceRoundTrip(t *testing.T) {
	svc, err := NewShippingService("FedEx 2Day", nil)
	if err != nil {
		t.Fatal(err)
	}

	zone := mustZone(t, 5)
	weight := mustWeight(t, "3")
	price := decimal.RequireFromString("29.50")

	if err := svc.SetPrice(zone, weight, price); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetPrice(zone, weight)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(price) {
		t.Errorf("GetPrice = %s, want %s", got, price)
	}
}

func TestGetPriceNumericKeyFallback(t *testing.T) {
	// Stored under "3", queried as the numerically equal "3.0".
	svc, _ := NewShippingService("FedEx Ground", nil)
	price := decimal.RequireFromString("11.15")
	if err := svc.SetPrice(mustZone(t, 2), mustWeight(t, "3"), price); err != nil {
		t.Fatal(err)
	}

	queried, err := NewWeight(decimal.RequireFromString("3.0"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.GetPrice(mustZone(t, 2), queried)
	if err != nil {
		t.Fatalf("GetPrice with reformatted weight: %v", err)
	}
	if !got.Equal(price) {
		t.Errorf("GetPrice = %s, want %s", got, price)
	}
}

func TestGetPriceNotFound(t *testing.T) {
	svc, _ := NewShippingService("FedEx 2Day", nil)
	_ = svc.SetPrice(mustZone(t, 5), mustWeight(t, "3"), decimal.RequireFromString("29.50"))

	// Missing zone.
	if _, err := svc.GetPrice(mustZone(t, 8), mustWeight(t, "3")); !errors.IsType(err, errors.TypePriceNotFound) {
		t.Errorf("missing zone: error = %v, want PRICE_NOT_FOUND", err)
	}

	// Missing weight within an existing zone.
	if _, err := svc.GetPrice(mustZone(t, 5), mustWeight(t, "7")); !errors.IsType(err, errors.TypePriceNotFound) {
		t.Errorf("missing weight: error = %v, want PRICE_NOT_FOUND", err)
	}
}

func TestSetPriceOverwrites(t *testing.T) {
	svc, _ := NewShippingService("FedEx 2Day", nil)
	zone, weight := mustZone(t, 5), mustWeight(t, "3")

	_ = svc.SetPrice(zone, weight, decimal.RequireFromString("29.50"))
	_ = svc.SetPrice(zone, weight, decimal.RequireFromString("31.00"))

	got, _ := svc.GetPrice(zone, weight)
	if want := decimal.RequireFromString("31.00"); !got.Equal(want) {
		t.Errorf("GetPrice after overwrite = %s, want %s", got, want)
	}
}

func TestAddVariant(t *testing.T) {
	svc, _ := NewShippingService("FedEx 2Day", []string{"2Day"})

	if err := svc.AddVariant("FedEx Second Day"); err != nil {
		t.Fatal(err)
	}
	if err := svc.AddVariant("2Day"); err == nil {
		t.Error("duplicate variant accepted")
	}
	if err := svc.AddVariant("  "); err == nil {
		t.Error("blank variant accepted")
	}
}

func TestZonesAndWeightRange(t *testing.T) {
	svc, _ := NewShippingService("FedEx Ground", nil)
	_ = svc.SetPrice(mustZone(t, 4), mustWeight(t, "10"), decimal.RequireFromString("14.50"))
	_ = svc.SetPrice(mustZone(t, 2), mustWeight(t, "0.5"), decimal.RequireFromString("9.20"))

	zones := svc.Zones()
	if len(zones) != 2 || zones[0] != 2 || zones[1] != 4 {
		t.Errorf("Zones() = %v, want [2 4]", zones)
	}

	min, max := svc.WeightRange()
	if min.String() != "0.5" || max.String() != "10" {
		t.Errorf("WeightRange() = %s..%s, want 0.5..10", min, max)
	}
}
