package delivery_test

import (
	"testing"

	"github.com/example/quim/internal/delivery"
	"github.com/example/quim/internal/models"
)

func TestResolve_DefaultZones(t *testing.T) {
	r := delivery.NewDefaultResolver()
	cases := []struct {
		cep  string
		zone string
		fee  int64
	}{
		{"01310-100", "Centro Expandido", 890},
		{"05400-000", "Centro Expandido", 890},
		{"08200-000", "Centro Expandido", 890},
		{"06100-000", "Grande São Paulo", 1290},
		{"09500-000", "Grande São Paulo", 1290},
		{"12345-678", "Região Metropolitana", 1590},
	}
	for _, tc := range cases {
		quote, ok := r.Resolve(tc.cep)
		if !ok {
			t.Errorf("Resolve(%q) unavailable, want zone %s", tc.cep, tc.zone)
			continue
		}
		if quote.Zone != tc.zone || quote.Fee != tc.fee {
			t.Errorf("Resolve(%q) = %s/%d, want %s/%d", tc.cep, quote.Zone, quote.Fee, tc.zone, tc.fee)
		}
	}
}

func TestResolve_UnmatchedIsUnavailable(t *testing.T) {
	r := delivery.NewDefaultResolver()
	// Outside every zone: unavailable, which is not a zero fee.
	if _, ok := r.Resolve("99999-999"); ok {
		t.Error("Resolve(99999-999) = available, want unavailable")
	}
}

func TestResolve_MalformedCEP(t *testing.T) {
	r := delivery.NewDefaultResolver()
	for _, cep := range []string{"", "1234", "abcdefgh", "123456789", "05400-00"} {
		if _, ok := r.Resolve(cep); ok {
			t.Errorf("Resolve(%q) = available, want unavailable for malformed input", cep)
		}
	}
}

func TestResolve_StripsNonDigits(t *testing.T) {
	r := delivery.NewDefaultResolver()
	dashed, ok1 := r.Resolve("05400-000")
	plain, ok2 := r.Resolve("05400000")
	if !ok1 || !ok2 || dashed != plain {
		t.Errorf("formatting changed the quote: %+v vs %+v", dashed, plain)
	}
}

func TestResolve_FirstDeclaredZoneWinsOnOverlap(t *testing.T) {
	overlapping := []models.DeliveryZone{
		{
			Name: "A", Priority: 1, Fee: 700, ETAMin: 20, ETAMax: 30,
			Ranges: []models.ZoneRange{{Start: 1000000, End: 2999999}},
		},
		{
			Name: "B", Priority: 2, Fee: 1500, ETAMin: 40, ETAMax: 60,
			Ranges: []models.ZoneRange{{Start: 1000000, End: 5999999}},
		},
	}
	r := delivery.NewResolver(overlapping)

	for i := 0; i < 10; i++ {
		quote, ok := r.Resolve("02000-000")
		if !ok || quote.Zone != "A" {
			t.Fatalf("Resolve in overlap returned %+v, want zone A every time", quote)
		}
	}

	// A CEP only zone B covers still resolves.
	quote, ok := r.Resolve("04000-000")
	if !ok || quote.Zone != "B" {
		t.Errorf("Resolve(04000-000) = %+v, want zone B", quote)
	}
}

func TestResolve_PrioritySortIsStable(t *testing.T) {
	// Declaration order breaks priority ties.
	zones := []models.DeliveryZone{
		{Name: "First", Priority: 1, Fee: 100, Ranges: []models.ZoneRange{{Start: 1000000, End: 1999999}}},
		{Name: "Second", Priority: 1, Fee: 200, Ranges: []models.ZoneRange{{Start: 1000000, End: 1999999}}},
	}
	r := delivery.NewResolver(zones)
	quote, ok := r.Resolve("01500-000")
	if !ok || quote.Zone != "First" {
		t.Errorf("Resolve = %+v, want earliest-declared zone", quote)
	}
}

func TestNormalizeCEP(t *testing.T) {
	if digits, ok := delivery.NormalizeCEP("05.400-000"); !ok || digits != "05400000" {
		t.Errorf("NormalizeCEP = %q/%v, want 05400000/true", digits, ok)
	}
	if _, ok := delivery.NormalizeCEP("0540-000"); ok {
		t.Error("NormalizeCEP accepted a 7-digit CEP")
	}
}
